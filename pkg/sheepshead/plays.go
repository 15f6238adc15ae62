package sheepshead

import (
	"fmt"
	"sort"

	"deepsheep/pkg/deck"
)

// PickDecision is a seat's decision in the picking round
type PickDecision int

// pick decisions
const (
	PickUnasked PickDecision = iota
	Pick
	Pass
)

func (p PickDecision) String() string {
	switch p {
	case Pick:
		return "pick"
	case Pass:
		return "pass"
	}

	return "unasked"
}

// LonerDecision is the picker's decision to go alone or call a partner
type LonerDecision int

// loner decisions
const (
	LonerUndecided LonerDecision = iota
	GoAlone
	CallPartner
)

func (l LonerDecision) String() string {
	switch l {
	case GoAlone:
		return "alone"
	case CallPartner:
		return "partner"
	}

	return "undecided"
}

// Play is a single decision a player can make
// Exactly one of the variants below is a Play, one per phase
type Play interface {
	// Phase returns the phase the play belongs to
	Phase() Phase
	String() string

	isPlay()
}

// PickPlay picks up the blind or passes
type PickPlay struct {
	Decision PickDecision
}

// LonerPlay decides between going alone or calling a partner
type LonerPlay struct {
	Decision LonerDecision
}

// PartnerPlay calls the partner card
type PartnerPlay struct {
	Card *deck.Card
}

// UnknownPlay disguises a held card under the called suit
type UnknownPlay struct {
	Card *deck.Card
	Suit deck.Suit
}

// DiscardPlay buries cards from the picker's hand
type DiscardPlay struct {
	Cards []*deck.Card
}

// TrickPlay lays a card on the current trick
type TrickPlay struct {
	Card *deck.Card
}

// Phase returns PhasePick
func (PickPlay) Phase() Phase { return PhasePick }

// Phase returns PhaseLoner
func (LonerPlay) Phase() Phase { return PhaseLoner }

// Phase returns PhasePartner
func (PartnerPlay) Phase() Phase { return PhasePartner }

// Phase returns PhaseUnknown
func (UnknownPlay) Phase() Phase { return PhaseUnknown }

// Phase returns PhaseDiscard
func (DiscardPlay) Phase() Phase { return PhaseDiscard }

// Phase returns PhaseTrick
func (TrickPlay) Phase() Phase { return PhaseTrick }

func (PickPlay) isPlay()    {}
func (LonerPlay) isPlay()   {}
func (PartnerPlay) isPlay() {}
func (UnknownPlay) isPlay() {}
func (DiscardPlay) isPlay() {}
func (TrickPlay) isPlay()   {}

func (p PickPlay) String() string {
	return p.Decision.String()
}

func (p LonerPlay) String() string {
	return p.Decision.String()
}

func (p PartnerPlay) String() string {
	return fmt.Sprintf("call %s", p.Card)
}

func (p UnknownPlay) String() string {
	return fmt.Sprintf("%s as %s unknown", p.Card, p.Suit)
}

func (p DiscardPlay) String() string {
	return fmt.Sprintf("discard %s", deck.CardsToString(p.Cards))
}

func (p TrickPlay) String() string {
	return fmt.Sprintf("lay %s", p.Card)
}

// PlaysEqual returns true if both plays are the same variant with the same payload
// Discards are compared without regard to order
func PlaysEqual(a, b Play) bool {
	switch pa := a.(type) {
	case PickPlay:
		pb, ok := b.(PickPlay)
		return ok && pa.Decision == pb.Decision
	case LonerPlay:
		pb, ok := b.(LonerPlay)
		return ok && pa.Decision == pb.Decision
	case PartnerPlay:
		pb, ok := b.(PartnerPlay)
		return ok && cardsEqual(pa.Card, pb.Card)
	case UnknownPlay:
		pb, ok := b.(UnknownPlay)
		return ok && pa.Suit == pb.Suit && cardsEqual(pa.Card, pb.Card)
	case DiscardPlay:
		pb, ok := b.(DiscardPlay)
		return ok && sameCards(pa.Cards, pb.Cards)
	case TrickPlay:
		pb, ok := b.(TrickPlay)
		return ok && cardsEqual(pa.Card, pb.Card)
	}

	return false
}

func cardsEqual(a, b *deck.Card) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.Equal(b)
}

func sameCards(a, b []*deck.Card) bool {
	if len(a) != len(b) {
		return false
	}

	key := func(cards []*deck.Card) []string {
		keys := make([]string, len(cards))
		for i, c := range cards {
			if c == nil {
				return nil
			}
			keys[i] = fmt.Sprintf("%d%s", c.Rank, c.Suit)
		}

		sort.Strings(keys)
		return keys
	}

	ka, kb := key(a), key(b)
	if ka == nil || kb == nil {
		return false
	}

	for i := range ka {
		if ka[i] != kb[i] {
			return false
		}
	}

	return true
}
