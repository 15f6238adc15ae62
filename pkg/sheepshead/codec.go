package sheepshead

import (
	"fmt"

	"deepsheep/pkg/deck"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"google.golang.org/protobuf/encoding/protowire"
)

// hand fields
const (
	handRulesField        protowire.Number = 1
	handSeedField         protowire.Number = 2
	handSeatsField        protowire.Number = 3
	handPickingRoundField protowire.Number = 4
	handTricksField       protowire.Number = 5
	handIDField           protowire.Number = 6
)

// rules fields
const (
	rulesPlayersField  protowire.Number = 1
	rulesPartnerField  protowire.Number = 2
	rulesNoPickerField protowire.Number = 3
	rulesTrumpField    protowire.Number = 4
)

// card fields
const (
	cardSuitField    protowire.Number = 1
	cardRankField    protowire.Number = 2
	cardUnknownField protowire.Number = 3
)

const seatCardsField protowire.Number = 1

// picking round fields
const (
	prLeaderField      protowire.Number = 1
	prDecisionsField   protowire.Number = 2
	prLonerField       protowire.Number = 3
	prPartnerCardField protowire.Number = 4
	prUnknownField     protowire.Number = 5
	prDiscardsField    protowire.Number = 6
	prBlindsField      protowire.Number = 7
)

// trick fields
const (
	trickLeaderField protowire.Number = 1
	trickLaidField   protowire.Number = 2
)

// Serialize encodes the hand as a protobuf wire document
// The event log is not part of the document.
func (h *Hand) Serialize() ([]byte, error) {
	var b []byte

	b = protowire.AppendTag(b, handIDField, protowire.BytesType)
	b = protowire.AppendBytes(b, h.id[:])

	b = protowire.AppendTag(b, handRulesField, protowire.BytesType)
	b = protowire.AppendBytes(b, appendRules(nil, h.rules))

	b = protowire.AppendTag(b, handSeedField, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(h.seed))

	for _, seat := range h.seats {
		var sb []byte
		for _, c := range seat {
			sb = appendCardField(sb, seatCardsField, c)
		}

		b = protowire.AppendTag(b, handSeatsField, protowire.BytesType)
		b = protowire.AppendBytes(b, sb)
	}

	if pr := h.pickingRound; pr != nil {
		b = protowire.AppendTag(b, handPickingRoundField, protowire.BytesType)
		b = protowire.AppendBytes(b, appendPickingRound(nil, pr))
	}

	for _, t := range h.tricks {
		var tb []byte
		tb = protowire.AppendTag(tb, trickLeaderField, protowire.VarintType)
		tb = protowire.AppendVarint(tb, uint64(t.Leader))
		for _, c := range t.Laid {
			tb = appendCardField(tb, trickLaidField, c)
		}

		b = protowire.AppendTag(b, handTricksField, protowire.BytesType)
		b = protowire.AppendBytes(b, tb)
	}

	return b, nil
}

func appendRules(b []byte, r Rules) []byte {
	b = protowire.AppendTag(b, rulesPlayersField, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(r.NumPlayers))
	b = protowire.AppendTag(b, rulesPartnerField, protowire.BytesType)
	b = protowire.AppendString(b, string(r.PartnerMethod))
	b = protowire.AppendTag(b, rulesNoPickerField, protowire.BytesType)
	b = protowire.AppendString(b, string(r.NoPickerResult))
	b = protowire.AppendTag(b, rulesTrumpField, protowire.BytesType)
	b = protowire.AppendString(b, string(r.TrumpSuit))
	return b
}

func appendCardField(b []byte, num protowire.Number, c *deck.Card) []byte {
	var cb []byte
	cb = protowire.AppendTag(cb, cardSuitField, protowire.BytesType)
	cb = protowire.AppendString(cb, string(c.Suit))
	cb = protowire.AppendTag(cb, cardRankField, protowire.VarintType)
	cb = protowire.AppendVarint(cb, uint64(c.Rank))
	if c.Unknown {
		cb = protowire.AppendTag(cb, cardUnknownField, protowire.VarintType)
		cb = protowire.AppendVarint(cb, protowire.EncodeBool(true))
	}

	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, cb)
}

func appendPickingRound(b []byte, pr *PickingRound) []byte {
	b = protowire.AppendTag(b, prLeaderField, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(pr.Leader))

	if len(pr.Decisions) > 0 {
		var packed []byte
		for _, d := range pr.Decisions {
			packed = protowire.AppendVarint(packed, uint64(d))
		}

		b = protowire.AppendTag(b, prDecisionsField, protowire.BytesType)
		b = protowire.AppendBytes(b, packed)
	}

	b = protowire.AppendTag(b, prLonerField, protowire.VarintType)
	b = protowire.AppendVarint(b, uint64(pr.Loner))

	if pr.PartnerCard != nil {
		b = appendCardField(b, prPartnerCardField, pr.PartnerCard)
	}

	b = protowire.AppendTag(b, prUnknownField, protowire.VarintType)
	b = protowire.AppendVarint(b, protowire.EncodeBool(pr.UnknownDecisionMade))

	for _, c := range pr.Discards {
		b = appendCardField(b, prDiscardsField, c)
	}

	for _, c := range pr.Blinds {
		b = appendCardField(b, prBlindsField, c)
	}

	return b
}

// field is a single decoded wire field
type field struct {
	num    protowire.Number
	typ    protowire.Type
	varint uint64
	bytes  []byte
}

// readFields calls fn for every field in b
// Only varint and length-delimited values are decoded. Fields of any other wire type
// are passed to fn without a value, so a known field rejects them with expect.
func readFields(b []byte, fn func(f field) error) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]

		f := field{num: num, typ: typ}
		switch typ {
		case protowire.VarintType:
			f.varint, n = protowire.ConsumeVarint(b)
		case protowire.BytesType:
			f.bytes, n = protowire.ConsumeBytes(b)
		default:
			n = protowire.ConsumeFieldValue(num, typ, b)
		}

		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]

		if err := fn(f); err != nil {
			return err
		}
	}

	return nil
}

func (f field) expect(typ protowire.Type) error {
	if f.typ != typ {
		return fmt.Errorf("field %d: unexpected wire type %d", f.num, f.typ)
	}

	return nil
}

// Deserialize decodes a hand written by Serialize
// Errors wrap ErrMalformedHand.
func Deserialize(logger logrus.FieldLogger, b []byte) (*Hand, error) {
	var (
		id      uuid.UUID
		hasID   bool
		rules   Rules
		seed    int64
		seats   []deck.Hand
		pr      *PickingRound
		tricks  []*Trick
		decoded bool
	)

	err := readFields(b, func(f field) error {
		switch f.num {
		case handIDField:
			if err := f.expect(protowire.BytesType); err != nil {
				return err
			}

			u, err := uuid.FromBytes(f.bytes)
			if err != nil {
				return fmt.Errorf("hand id: %w", err)
			}
			id, hasID = u, true
		case handRulesField:
			if err := f.expect(protowire.BytesType); err != nil {
				return err
			}

			r, err := decodeRules(f.bytes)
			if err != nil {
				return err
			}
			rules, decoded = r, true
		case handSeedField:
			if err := f.expect(protowire.VarintType); err != nil {
				return err
			}
			seed = int64(f.varint)
		case handSeatsField:
			if err := f.expect(protowire.BytesType); err != nil {
				return err
			}

			seat := deck.Hand{}
			if err := readCards(f.bytes, seatCardsField, func(c *deck.Card) { seat = append(seat, c) }); err != nil {
				return fmt.Errorf("seat %d: %w", len(seats), err)
			}
			seats = append(seats, seat)
		case handPickingRoundField:
			if err := f.expect(protowire.BytesType); err != nil {
				return err
			}

			p, err := decodePickingRound(f.bytes)
			if err != nil {
				return fmt.Errorf("picking round: %w", err)
			}
			pr = p
		case handTricksField:
			if err := f.expect(protowire.BytesType); err != nil {
				return err
			}

			t, err := decodeTrick(f.bytes)
			if err != nil {
				return fmt.Errorf("trick %d: %w", len(tricks), err)
			}
			tricks = append(tricks, t)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedHand, err)
	}

	if !decoded {
		return nil, fmt.Errorf("%w: missing rules", ErrMalformedHand)
	}

	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedHand, err)
	}

	if seed <= 0 {
		return nil, fmt.Errorf("%w: %v", ErrMalformedHand, ErrInvalidSeed)
	}

	if !hasID {
		id = uuid.New()
	}

	h := newHand(logger, id, rules, seed)
	h.seats = seats
	h.pickingRound = pr
	h.tricks = tricks

	if err := h.validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedHand, err)
	}

	return h, nil
}

func decodeRules(b []byte) (Rules, error) {
	var r Rules
	err := readFields(b, func(f field) error {
		switch f.num {
		case rulesPlayersField:
			if err := f.expect(protowire.VarintType); err != nil {
				return err
			}
			r.NumPlayers = int(f.varint)
		case rulesPartnerField:
			if err := f.expect(protowire.BytesType); err != nil {
				return err
			}
			r.PartnerMethod = PartnerMethod(f.bytes)
		case rulesNoPickerField:
			if err := f.expect(protowire.BytesType); err != nil {
				return err
			}
			r.NoPickerResult = NoPickerResult(f.bytes)
		case rulesTrumpField:
			if err := f.expect(protowire.BytesType); err != nil {
				return err
			}
			r.TrumpSuit = deck.Suit(f.bytes)
		}

		return nil
	})

	return r, err
}

func decodeCard(b []byte) (*deck.Card, error) {
	c := &deck.Card{}
	err := readFields(b, func(f field) error {
		switch f.num {
		case cardSuitField:
			if err := f.expect(protowire.BytesType); err != nil {
				return err
			}
			c.Suit = deck.Suit(f.bytes)
		case cardRankField:
			if err := f.expect(protowire.VarintType); err != nil {
				return err
			}
			c.Rank = int(f.varint)
		case cardUnknownField:
			if err := f.expect(protowire.VarintType); err != nil {
				return err
			}
			c.Unknown = protowire.DecodeBool(f.varint)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if !validCard(c) {
		return nil, fmt.Errorf("invalid card: %d %q", c.Rank, c.Suit)
	}

	return c, nil
}

func validCard(c *deck.Card) bool {
	if c.Rank < deck.LowRank || c.Rank > deck.Ace {
		return false
	}

	for _, s := range deck.Suits {
		if c.Suit == s {
			return true
		}
	}

	return false
}

// readCards decodes every card stored under num
func readCards(b []byte, num protowire.Number, fn func(c *deck.Card)) error {
	return readFields(b, func(f field) error {
		if f.num != num {
			return nil
		}

		if err := f.expect(protowire.BytesType); err != nil {
			return err
		}

		c, err := decodeCard(f.bytes)
		if err != nil {
			return err
		}

		fn(c)
		return nil
	})
}

func decodePickingRound(b []byte) (*PickingRound, error) {
	pr := &PickingRound{
		Decisions: []PickDecision{},
		Discards:  deck.Hand{},
		Blinds:    deck.Hand{},
	}

	err := readFields(b, func(f field) error {
		switch f.num {
		case prLeaderField:
			if err := f.expect(protowire.VarintType); err != nil {
				return err
			}
			pr.Leader = int(f.varint)
		case prDecisionsField:
			if f.typ == protowire.VarintType {
				pr.Decisions = append(pr.Decisions, PickDecision(f.varint))
				return nil
			}

			if err := f.expect(protowire.BytesType); err != nil {
				return err
			}

			packed := f.bytes
			for len(packed) > 0 {
				v, n := protowire.ConsumeVarint(packed)
				if n < 0 {
					return protowire.ParseError(n)
				}

				pr.Decisions = append(pr.Decisions, PickDecision(v))
				packed = packed[n:]
			}
		case prLonerField:
			if err := f.expect(protowire.VarintType); err != nil {
				return err
			}
			pr.Loner = LonerDecision(f.varint)
		case prPartnerCardField:
			if err := f.expect(protowire.BytesType); err != nil {
				return err
			}

			c, err := decodeCard(f.bytes)
			if err != nil {
				return fmt.Errorf("partner card: %w", err)
			}
			pr.PartnerCard = c
		case prUnknownField:
			if err := f.expect(protowire.VarintType); err != nil {
				return err
			}
			pr.UnknownDecisionMade = protowire.DecodeBool(f.varint)
		case prDiscardsField, prBlindsField:
			if err := f.expect(protowire.BytesType); err != nil {
				return err
			}

			c, err := decodeCard(f.bytes)
			if err != nil {
				return err
			}

			if f.num == prDiscardsField {
				pr.Discards = append(pr.Discards, c)
			} else {
				pr.Blinds = append(pr.Blinds, c)
			}
		}

		return nil
	})

	return pr, err
}

func decodeTrick(b []byte) (*Trick, error) {
	t := &Trick{Laid: []*deck.Card{}}
	err := readFields(b, func(f field) error {
		switch f.num {
		case trickLeaderField:
			if err := f.expect(protowire.VarintType); err != nil {
				return err
			}
			t.Leader = int(f.varint)
		case trickLaidField:
			if err := f.expect(protowire.BytesType); err != nil {
				return err
			}

			c, err := decodeCard(f.bytes)
			if err != nil {
				return err
			}
			t.Laid = append(t.Laid, c)
		}

		return nil
	})

	return t, err
}

// validate checks the structural invariants of a decoded hand
func (h *Hand) validate() error {
	n := h.rules.NumPlayers

	if len(h.seats) == 0 {
		if h.pickingRound != nil || len(h.tricks) > 0 {
			return fmt.Errorf("hand has not been dealt but has play")
		}

		return nil
	}

	if len(h.seats) != n {
		return fmt.Errorf("expected %d seats, found %d", n, len(h.seats))
	}

	pr := h.pickingRound
	if pr == nil {
		return fmt.Errorf("dealt hand has no picking round")
	}

	if !h.validSeat(pr.Leader) {
		return fmt.Errorf("invalid picking round leader %d", pr.Leader)
	}

	if len(pr.Decisions) > n {
		return fmt.Errorf("%d pick decisions for %d players", len(pr.Decisions), n)
	}

	for i, d := range pr.Decisions {
		switch {
		case d == Pass:
		case d == Pick && i == len(pr.Decisions)-1:
		default:
			return fmt.Errorf("invalid pick decision %d at %d", d, i)
		}
	}

	if pr.Loner < LonerUndecided || pr.Loner > CallPartner {
		return fmt.Errorf("invalid loner decision %d", pr.Loner)
	}

	if !pr.hasPicker() && (pr.Loner != LonerUndecided || pr.PartnerCard != nil || len(pr.Discards) > 0) {
		return fmt.Errorf("picker decisions without a picker")
	}

	if len(h.tricks) > h.rules.CardsPerPlayer() {
		return fmt.Errorf("%d tricks", len(h.tricks))
	}

	for i, t := range h.tricks {
		if !h.validSeat(t.Leader) {
			return fmt.Errorf("invalid leader %d for trick %d", t.Leader, i)
		}

		if len(t.Laid) > n {
			return fmt.Errorf("%d cards laid in trick %d", len(t.Laid), i)
		}

		if i < len(h.tricks)-1 && !t.IsFinished(n) {
			return fmt.Errorf("trick %d is not finished", i)
		}
	}

	seen := make(map[string]bool, deck.Size)
	all := make([]*deck.Card, 0, deck.Size)
	for _, seat := range h.seats {
		all = append(all, seat...)
	}
	all = append(all, pr.Discards...)
	all = append(all, pr.Blinds...)
	for _, t := range h.tricks {
		all = append(all, t.Laid...)
	}

	for _, c := range all {
		key := deck.CardToString(&deck.Card{Rank: c.Rank, Suit: c.Suit})
		if seen[key] {
			return fmt.Errorf("duplicate card %s", key)
		}
		seen[key] = true
	}

	if len(all) != deck.Size {
		return fmt.Errorf("expected %d cards, found %d", deck.Size, len(all))
	}

	if err := h.validatePickingRound(); err != nil {
		return err
	}

	if err := h.validateTricks(); err != nil {
		return err
	}

	return h.validateHeldCounts()
}

// validatePickingRound checks the picker's decisions agree with the rules and each other
func (h *Hand) validatePickingRound() error {
	pr := h.pickingRound
	blind := h.rules.CardsInBlind()
	hasPicker := pr.hasPicker()

	if pr.allPassed(h.rules.NumPlayers) && h.rules.NoPickerResult == ForcedPick {
		return fmt.Errorf("every seat passed with a forced pick")
	}

	if pr.Loner == CallPartner && !h.rules.PartnerIsAllowed() {
		return fmt.Errorf("partner called without a partner")
	}

	if pr.PartnerCard != nil && (pr.Loner != CallPartner || !h.rules.PartnerByCalledAce()) {
		return fmt.Errorf("unexpected partner card %s", deck.CardToString(pr.PartnerCard))
	}

	if pr.UnknownDecisionMade && pr.Loner == LonerUndecided {
		return fmt.Errorf("unknown decided before the loner decision")
	}

	if len(pr.Discards) > 0 {
		if len(pr.Discards) != blind {
			return fmt.Errorf("expected %d discards, found %d", blind, len(pr.Discards))
		}

		if pr.Loner == LonerUndecided || !pr.UnknownDecisionMade {
			return fmt.Errorf("discards before the picker's decisions")
		}
	}

	if hasPicker && len(pr.Blinds) > 0 {
		return fmt.Errorf("picker did not take the blind")
	}

	if !hasPicker && len(pr.Blinds) != blind {
		return fmt.Errorf("expected %d blind cards, found %d", blind, len(pr.Blinds))
	}

	return nil
}

// validateTricks checks tricks start after the picking round and are led by the previous winner
func (h *Hand) validateTricks() error {
	if len(h.tricks) == 0 {
		return nil
	}

	pr := h.pickingRound
	if !h.pickingRoundIsFinished() || (!pr.hasPicker() && h.rules.NoPickerResult == Doubler) {
		return fmt.Errorf("tricks before the picking round finished")
	}

	n := h.rules.NumPlayers
	leader := pr.Leader
	for i, t := range h.tricks {
		if t.Leader != leader {
			return fmt.Errorf("trick %d led by %d, expected %d", i, t.Leader, leader)
		}

		if t.IsFinished(n) {
			leader = h.mustTrickWinner(t)
		}
	}

	return nil
}

// validateHeldCounts checks every seat holds what it was dealt, plus the blind for the
// picker, less its discards and the cards it has laid
func (h *Hand) validateHeldCounts() error {
	n := h.rules.NumPlayers
	pr := h.pickingRound
	picker, hasPicker := pr.picker(n)

	expected := make([]int, n)
	for seat := range expected {
		expected[seat] = h.rules.CardsPerPlayer()
	}

	if hasPicker {
		expected[picker] += h.rules.CardsInBlind() - len(pr.Discards)
	}

	unknown := 0
	for _, t := range h.tricks {
		for i, c := range t.Laid {
			seat := t.SeatOf(i, n)
			expected[seat]--
			if c.Unknown {
				unknown++
				if seat != picker {
					return fmt.Errorf("unknown card laid by seat %d", seat)
				}
			}
		}
	}

	for seat, held := range h.seats {
		if len(held) != expected[seat] {
			return fmt.Errorf("seat %d holds %d cards, expected %d", seat, len(held), expected[seat])
		}

		for _, c := range held {
			if !c.Unknown {
				continue
			}

			unknown++
			if seat != picker {
				return fmt.Errorf("unknown card held by seat %d", seat)
			}
		}
	}

	for _, c := range pr.Discards {
		if c.Unknown {
			unknown++
		}
	}

	if unknown > 0 && (!hasPicker || !pr.UnknownDecisionMade) {
		return fmt.Errorf("unknown card without an unknown decision")
	}

	if unknown > 1 {
		return fmt.Errorf("%d unknown cards", unknown)
	}

	return nil
}
