package sheepshead

import (
	"fmt"

	"deepsheep/pkg/deck"
	"deepsheep/pkg/playable"

	"github.com/sirupsen/logrus"
)

// Phase is the stage the hand is in
type Phase string

// phases
const (
	PhaseUninitialized Phase = "uninitialized"
	PhasePick          Phase = "pick"
	PhaseLoner         Phase = "loner"
	PhasePartner       Phase = "partner"
	PhaseUnknown       Phase = "unknown"
	PhaseDiscard       Phase = "discard"
	PhaseTrick         Phase = "trick"
	// PhaseArbitration means the hand is waiting on Arbitrate()
	PhaseArbitration Phase = "arbitration"
	PhaseFinished    Phase = "finished"
)

// IsUninitialized returns true if nothing has happened yet: no cards dealt, picked or played
func (h *Hand) IsUninitialized() bool {
	return len(h.seats) == 0 && len(h.tricks) == 0 && h.pickingRound == nil
}

// pickingRoundIsFinished returns true if everyone passed or the picker has made every decision
func (h *Hand) pickingRoundIsFinished() bool {
	pr := h.pickingRound
	if pr == nil {
		return false
	}

	if pr.allPassed(h.rules.NumPlayers) {
		return true
	}

	return pr.hasPicker() &&
		pr.Loner != LonerUndecided &&
		pr.UnknownDecisionMade &&
		len(pr.Discards) == h.rules.CardsInBlind()
}

// PickingRoundIsFinished returns true once trick play can begin, or the hand ended without a picker
func (h *Hand) PickingRoundIsFinished() bool {
	return h.pickingRoundIsFinished()
}

// IsFinished returns true if the hand is complete and no more plays or transitions are possible
func (h *Hand) IsFinished() bool {
	if h.pickingRound == nil {
		return false
	}

	if h.rules.NoPickerResult == Doubler && h.pickingRoundIsFinished() && !h.pickingRound.hasPicker() {
		return true
	}

	if len(h.tricks) < h.rules.CardsPerPlayer() {
		return false
	}

	return h.LatestTrick().IsFinished(h.rules.NumPlayers)
}

// IsArbitrable returns true if the hand needs Arbitrate() to advance
func (h *Hand) IsArbitrable() bool {
	return h.IsUninitialized() || h.readyForNextTrick()
}

// readyForNextTrick returns true if the picking round and the latest trick are both done
func (h *Hand) readyForNextTrick() bool {
	if h.IsUninitialized() || h.IsFinished() {
		return false
	}

	if !h.pickingRoundIsFinished() {
		return false
	}

	latest := h.LatestTrick()
	return latest == nil || latest.IsFinished(h.rules.NumPlayers)
}

// IsPlayable returns true if the hand is waiting on a decision from a player
func (h *Hand) IsPlayable() bool {
	_, seat := h.readyPlayer()
	return seat >= 0
}

// Phase returns the hand's current phase
func (h *Hand) Phase() Phase {
	if h.IsUninitialized() {
		return PhaseUninitialized
	}

	if h.IsFinished() {
		return PhaseFinished
	}

	phase, seat := h.readyPlayer()
	if seat < 0 {
		return PhaseArbitration
	}

	return phase
}

// CurrentPlayer returns the seat the hand is waiting on, or -1
func (h *Hand) CurrentPlayer() int {
	_, seat := h.readyPlayer()
	return seat
}

// readyPlayer evaluates the phase predicates in order: pick, loner, partner, unknown, discard, trick
// The first predicate that names a seat wins. -1 is returned if no seat is ready.
func (h *Hand) readyPlayer() (Phase, int) {
	for _, ready := range []struct {
		phase Phase
		fn    func() int
	}{
		{PhasePick, h.readyForPickPlay},
		{PhaseLoner, h.readyForLonerPlay},
		{PhasePartner, h.readyForPartnerPlay},
		{PhaseUnknown, h.readyForUnknownPlay},
		{PhaseDiscard, h.readyForDiscardPlay},
		{PhaseTrick, h.readyForTrickPlay},
	} {
		if seat := ready.fn(); seat >= 0 {
			return ready.phase, seat
		}
	}

	return "", -1
}

// pendingPicker returns the picker while the picking round is still open
func (h *Hand) pendingPicker() int {
	if h.IsUninitialized() || h.pickingRoundIsFinished() {
		return -1
	}

	picker, ok := h.Picker()
	if !ok {
		return -1
	}

	return picker
}

func (h *Hand) readyForPickPlay() int {
	if h.IsUninitialized() || h.pickingRoundIsFinished() {
		return -1
	}

	pr := h.pickingRound
	if pr.hasPicker() {
		return -1
	}

	return SeatAfter(pr.Leader, len(pr.Decisions), h.rules.NumPlayers)
}

func (h *Hand) readyForLonerPlay() int {
	picker := h.pendingPicker()
	if picker < 0 || h.pickingRound.Loner != LonerUndecided {
		return -1
	}

	return picker
}

func (h *Hand) readyForPartnerPlay() int {
	picker := h.pendingPicker()
	if picker < 0 || !h.rules.PartnerByCalledAce() {
		return -1
	}

	pr := h.pickingRound
	if pr.Loner != CallPartner || pr.PartnerCard != nil {
		return -1
	}

	return picker
}

func (h *Hand) readyForUnknownPlay() int {
	picker := h.pendingPicker()
	if picker < 0 {
		return -1
	}

	pr := h.pickingRound
	if pr.Loner == LonerUndecided || pr.UnknownDecisionMade {
		return -1
	}

	if h.rules.PartnerByCalledAce() && pr.Loner == CallPartner && pr.PartnerCard == nil {
		return -1
	}

	return picker
}

func (h *Hand) readyForDiscardPlay() int {
	picker := h.pendingPicker()
	if picker < 0 {
		return -1
	}

	pr := h.pickingRound
	if pr.Loner == LonerUndecided || !pr.UnknownDecisionMade || len(pr.Discards) > 0 {
		return -1
	}

	return picker
}

func (h *Hand) readyForTrickPlay() int {
	if h.IsUninitialized() || h.IsFinished() || !h.pickingRoundIsFinished() {
		return -1
	}

	latest := h.LatestTrick()
	if latest == nil || latest.IsFinished(h.rules.NumPlayers) {
		return -1
	}

	return latest.NextSeat(h.rules.NumPlayers)
}

// Arbitrate performs exactly one system transition
// An uninitialized hand is dealt. Otherwise a new trick is started, led by the
// picking round leader for the first trick and by the previous winner after that.
func (h *Hand) Arbitrate() error {
	if h.IsUninitialized() {
		return h.deal()
	}

	if !h.readyForNextTrick() {
		return ErrNotArbitrable
	}

	leader := h.pickingRound.Leader
	if latest := h.LatestTrick(); latest != nil {
		leader = h.mustTrickWinner(latest)
	}

	h.tricks = append(h.tricks, &Trick{
		Leader: leader,
		Laid:   make([]*deck.Card, 0, h.rules.NumPlayers),
	})

	h.logger.WithFields(logrus.Fields{
		"trick":  len(h.tricks),
		"leader": leader,
	}).Debug("new trick")
	h.record(leader, nil, "leads trick %d", len(h.tricks))

	return nil
}

// deal shuffles a fresh deck with the hand's seed and deals every seat and the blind
func (h *Hand) deal() error {
	d := deck.New()
	d.Shuffle(h.seed)

	perPlayer := h.rules.CardsPerPlayer()
	seats := make([]deck.Hand, h.rules.NumPlayers)
	for i := range seats {
		cards, err := d.DrawN(perPlayer)
		if err != nil {
			return fmt.Errorf("could not deal seat %d: %w", i, err)
		}

		seats[i] = cards
	}

	blinds, err := d.DrawN(h.rules.CardsInBlind())
	if err != nil {
		return fmt.Errorf("could not deal the blind: %w", err)
	}

	if d.CardsLeft() != 0 {
		panic(fmt.Sprintf("%d cards left in the deck after the deal", d.CardsLeft()))
	}

	h.seats = seats
	h.pickingRound = &PickingRound{
		Leader:    0,
		Decisions: make([]PickDecision, 0, h.rules.NumPlayers),
		Discards:  deck.Hand{},
		Blinds:    blinds,
	}

	h.logger.WithFields(logrus.Fields{
		"seed":    h.seed,
		"players": h.rules.NumPlayers,
	}).Debug("dealt")
	h.record(playable.NoSeat, nil, "the hand has been dealt")

	return nil
}
