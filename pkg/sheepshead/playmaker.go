package sheepshead

import (
	"fmt"

	"deepsheep/pkg/deck"

	"github.com/sirupsen/logrus"
)

// MakePlay applies a play on behalf of the player
// A rejected play returns a PlayerError wrapping the reason and leaves the hand untouched.
func (h *Hand) MakePlay(player int, play Play) error {
	if err := h.checkPlay(player, play); err != nil {
		h.logger.WithError(err).WithFields(logrus.Fields{
			"player": player,
			"play":   fmt.Sprintf("%v", play),
		}).Debug("rejected play")

		return PlayerError{Player: player, Err: err}
	}

	switch p := play.(type) {
	case PickPlay:
		h.applyPick(player, p)
	case LonerPlay:
		h.applyLoner(player, p)
	case PartnerPlay:
		h.applyPartner(player, p)
	case UnknownPlay:
		h.applyUnknown(player, p)
	case DiscardPlay:
		h.applyDiscard(player, p)
	case TrickPlay:
		h.applyTrick(player, p)
	default:
		panic(fmt.Sprintf("unhandled play type: %T", play))
	}

	h.logger.WithFields(logrus.Fields{
		"player": player,
		"phase":  play.Phase(),
		"play":   play.String(),
	}).Debug("play")

	return nil
}

func (h *Hand) checkPlay(player int, play Play) error {
	if play == nil {
		return ErrIllegalPlay
	}

	if h.IsFinished() {
		return ErrHandIsFinished
	}

	phase, seat := h.readyPlayer()
	if seat < 0 || seat != player {
		return ErrNotPlayersTurn
	}

	if play.Phase() != phase {
		return ErrWrongPhase
	}

	for _, available := range h.AvailablePlays(player) {
		if PlaysEqual(available, play) {
			return nil
		}
	}

	return ErrIllegalPlay
}

func (h *Hand) applyPick(player int, p PickPlay) {
	pr := h.pickingRound
	pr.Decisions = append(pr.Decisions, p.Decision)

	if p.Decision == Pass {
		h.record(player, nil, "passes")
		return
	}

	blinds := pr.Blinds
	for _, c := range blinds {
		h.seats[player].AddCard(c)
	}
	pr.Blinds = deck.Hand{}

	if !h.rules.PartnerIsAllowed() {
		pr.Loner = GoAlone
		pr.UnknownDecisionMade = true
	}

	h.record(player, nil, "picks")
}

func (h *Hand) applyLoner(player int, p LonerPlay) {
	pr := h.pickingRound
	pr.Loner = p.Decision

	if p.Decision == GoAlone || h.rules.PartnerByJackOfDiamonds() {
		pr.UnknownDecisionMade = true
	}

	if p.Decision == GoAlone {
		h.record(player, nil, "goes alone")
	} else {
		h.record(player, nil, "calls a partner")
	}
}

func (h *Hand) applyPartner(player int, p PartnerPlay) {
	pr := h.pickingRound
	pr.PartnerCard = p.Card.Clone()
	pr.PartnerCard.Unknown = false

	if !h.unknownIsRequired(player) {
		pr.UnknownDecisionMade = true
	}

	h.record(player, []*deck.Card{pr.PartnerCard}, "calls the partner card")
}

func (h *Hand) applyUnknown(player int, p UnknownPlay) {
	card := h.seats[player].Find(p.Card)
	card.Unknown = true
	h.pickingRound.UnknownDecisionMade = true

	h.record(player, nil, "plays a card under %s", p.Suit)
}

func (h *Hand) applyDiscard(player int, p DiscardPlay) {
	pr := h.pickingRound
	for _, c := range p.Cards {
		held := h.seats[player].Find(c)
		h.seats[player].Remove(held)
		pr.Discards.AddCard(held)
	}

	h.record(player, nil, "discards %d cards", len(p.Cards))
}

func (h *Hand) applyTrick(player int, p TrickPlay) {
	held := h.seats[player].Find(p.Card)
	h.seats[player].Remove(held)

	trick := h.LatestTrick()
	trick.Laid = append(trick.Laid, held)

	h.record(player, []*deck.Card{held}, "lays")
}
