package sheepshead

import (
	"time"

	"deepsheep/pkg/deck"
	"deepsheep/pkg/playable"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Hand is a single dealt hand of sheepshead
// A Hand is owned by one caller. It is not safe for concurrent use.
type Hand struct {
	id    uuid.UUID
	rules Rules
	seed  int64

	// seats holds the cards in each seat's hand, by position
	seats        []deck.Hand
	pickingRound *PickingRound
	tricks       []*Trick

	log    playable.Log
	logger logrus.FieldLogger
}

// NewHand returns an uninitialized hand
// If seed is 0, a seed is derived from the current time. The first call to Arbitrate() deals the cards.
func NewHand(logger logrus.FieldLogger, rules Rules, seed int64) (*Hand, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}

	if seed < 0 {
		return nil, ErrInvalidSeed
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return newHand(logger, uuid.New(), rules, seed), nil
}

func newHand(logger logrus.FieldLogger, id uuid.UUID, rules Rules, seed int64) *Hand {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Hand{
		id:     id,
		rules:  rules,
		seed:   seed,
		logger: logger.WithField("handID", id.String()),
	}
}

// ID returns the hand's unique identifier
func (h *Hand) ID() string {
	return h.id.String()
}

// Rules returns the rules the hand is played under
func (h *Hand) Rules() Rules {
	return h.rules
}

// Seed returns the seed used to shuffle the deck
func (h *Hand) Seed() int64 {
	return h.seed
}

// NumberOfPlayers is a shortcut for Rules().NumPlayers
func (h *Hand) NumberOfPlayers() int {
	return h.rules.NumPlayers
}

// Dealer returns the dealer's seat
func (h *Hand) Dealer() int {
	return 0
}

// HeldCards returns the cards held by the seat
// The returned slice is a copy, but the cards are shared with the hand
func (h *Hand) HeldCards(seat int) deck.Hand {
	if seat < 0 || seat >= len(h.seats) {
		return nil
	}

	return h.seats[seat].Clone()
}

// PickingRound returns the picking round, or nil if the hand has not been dealt
func (h *Hand) PickingRound() *PickingRound {
	return h.pickingRound
}

// Tricks returns the tricks started so far
func (h *Hand) Tricks() []*Trick {
	return h.tricks
}

// LatestTrick returns the most recently started trick, or nil
func (h *Hand) LatestTrick() *Trick {
	if len(h.tricks) == 0 {
		return nil
	}

	return h.tricks[len(h.tricks)-1]
}

// Log returns the events recorded on the hand
func (h *Hand) Log() []*playable.LogMessage {
	return h.log
}

// LogSince returns the events recorded after the first n
func (h *Hand) LogSince(n int) []*playable.LogMessage {
	return h.log.Since(n)
}

// Picker returns the picker's seat
func (h *Hand) Picker() (int, bool) {
	if h.pickingRound == nil {
		return -1, false
	}

	return h.pickingRound.picker(h.rules.NumPlayers)
}

// PickDecisionBy returns the seat's decision in the picking round
func (h *Hand) PickDecisionBy(seat int) PickDecision {
	if h.pickingRound == nil {
		return PickUnasked
	}

	return h.pickingRound.PickDecisionBy(seat, h.rules.NumPlayers)
}

// partnerIdentity returns the card that identifies the partner, or nil
func (h *Hand) partnerIdentity() *deck.Card {
	pr := h.pickingRound
	if pr == nil || !pr.hasPicker() || pr.Loner != CallPartner {
		return nil
	}

	if h.rules.PartnerByJackOfDiamonds() {
		return &deck.Card{Rank: deck.Jack, Suit: deck.Diamonds}
	}

	return pr.PartnerCard
}

// Partner returns the picker's partner
// The partner is the seat holding or having laid the partner card. A loner has no partner.
func (h *Hand) Partner() (int, bool) {
	card := h.partnerIdentity()
	if card == nil {
		return -1, false
	}

	picker, _ := h.Picker()
	for seat, held := range h.seats {
		if seat != picker && held.HasCard(card) {
			return seat, true
		}
	}

	n := h.rules.NumPlayers
	for _, t := range h.tricks {
		for i, c := range t.Laid {
			if c.Equal(card) {
				if seat := t.SeatOf(i, n); seat != picker {
					return seat, true
				}
			}
		}
	}

	return -1, false
}

// partnerSuit returns the effective suit of the called partner card
func (h *Hand) partnerSuit() deck.Suit {
	pr := h.pickingRound
	if pr == nil || pr.PartnerCard == nil {
		return deck.NoSuit
	}

	pc := pr.PartnerCard
	if h.isTrueTrump(pc) {
		return deck.Trump
	}

	return pc.Suit
}

func (h *Hand) isTrueTrump(c *deck.Card) bool {
	return c.Rank == deck.Queen || c.Rank == deck.Jack || c.Suit == h.rules.TrumpSuit
}

// IsTrump returns true if the card is a trump card
// A disguised card is never trump
func (h *Hand) IsTrump(c *deck.Card) bool {
	if c.Unknown {
		return false
	}

	return h.isTrueTrump(c)
}

// SuitOf returns the effective suit of the card
// Trump cards report deck.Trump, and a disguised card reports the called suit
func (h *Hand) SuitOf(c *deck.Card) deck.Suit {
	if c.Unknown {
		return h.partnerSuit()
	}

	if h.isTrueTrump(c) {
		return deck.Trump
	}

	return c.Suit
}

// RankOf returns the effective rank of the card
func (h *Hand) RankOf(c *deck.Card) int {
	if c.Unknown {
		return deck.UnknownRank
	}

	return c.Rank
}

// record adds an event to the hand's log
func (h *Hand) record(seat int, cards []*deck.Card, format string, a ...interface{}) {
	h.log.Append(playable.CardLogMessage(seat, cards, format, a...))
}

func (h *Hand) validSeat(seat int) bool {
	return seat >= 0 && seat < h.rules.NumPlayers
}
