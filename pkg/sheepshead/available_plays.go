package sheepshead

import (
	"fmt"

	"deepsheep/pkg/deck"
)

// AvailablePlays returns every legal play for the player
// Only the seat the hand is waiting on has plays; every other seat gets none.
func (h *Hand) AvailablePlays(player int) []Play {
	phase, seat := h.readyPlayer()
	if seat < 0 || seat != player {
		return nil
	}

	switch phase {
	case PhasePick:
		return h.permittedPickPlays()
	case PhaseLoner:
		return h.permittedLonerPlays(seat)
	case PhasePartner:
		cards := h.permittedPartnerCards(seat)
		plays := make([]Play, len(cards))
		for i, card := range cards {
			plays[i] = PartnerPlay{Card: card}
		}
		return plays
	case PhaseUnknown:
		return h.permittedUnknownPlays(seat)
	case PhaseDiscard:
		discards := h.permittedDiscards(seat)
		plays := make([]Play, len(discards))
		for i, cards := range discards {
			plays[i] = DiscardPlay{Cards: cards}
		}
		return plays
	case PhaseTrick:
		cards := h.permittedTrickCards(seat)
		plays := make([]Play, len(cards))
		for i, card := range cards {
			plays[i] = TrickPlay{Card: card}
		}
		return plays
	}

	panic(fmt.Sprintf("unhandled phase: %s", phase))
}

func (h *Hand) permittedPickPlays() []Play {
	pr := h.pickingRound
	// everyone before the last seat passed, so the last seat must pick
	if h.rules.NoPickerResult == ForcedPick && len(pr.Decisions) == h.rules.NumPlayers-1 {
		return []Play{PickPlay{Decision: Pick}}
	}

	return []Play{PickPlay{Decision: Pick}, PickPlay{Decision: Pass}}
}

func (h *Hand) permittedLonerPlays(picker int) []Play {
	if h.rules.PartnerByJackOfDiamonds() && h.seats[picker].HasCard(&deck.Card{Rank: deck.Jack, Suit: deck.Diamonds}) {
		return []Play{LonerPlay{Decision: GoAlone}}
	}

	return []Play{LonerPlay{Decision: GoAlone}, LonerPlay{Decision: CallPartner}}
}

// permittedPartnerCards returns the cards the picker may call
// The first tier with a candidate wins: aces of fail suits the picker holds
// without the ace, then aces of any off suit the picker lacks, then tens,
// kings, nines and eights the picker lacks.
func (h *Hand) permittedPartnerCards(picker int) []*deck.Card {
	held := h.seats[picker]
	offSuits := h.rules.OffSuits()

	failSuits := make(map[deck.Suit]bool)
	for _, c := range held {
		if !h.IsTrump(c) {
			failSuits[c.Suit] = true
		}
	}

	lacks := func(rank int, suit deck.Suit) bool {
		for _, c := range held {
			if c.Rank == rank && c.Suit == suit && !h.IsTrump(c) {
				return false
			}
		}

		return true
	}

	var suits []deck.Suit
	for _, suit := range offSuits {
		if failSuits[suit] && lacks(deck.Ace, suit) {
			suits = append(suits, suit)
		}
	}

	if len(suits) > 0 {
		return partnerCards(deck.Ace, suits)
	}

	for _, rank := range []int{deck.Ace, 10, deck.King, 9, 8} {
		for _, suit := range offSuits {
			if lacks(rank, suit) {
				suits = append(suits, suit)
			}
		}

		if len(suits) > 0 {
			return partnerCards(rank, suits)
		}
	}

	panic(fmt.Sprintf("unable to determine permitted partner calls for %s", held))
}

func partnerCards(rank int, suits []deck.Suit) []*deck.Card {
	cards := make([]*deck.Card, len(suits))
	for i, suit := range suits {
		cards[i] = &deck.Card{Rank: rank, Suit: suit}
	}

	return cards
}

// unknownIsRequired returns true if the picker called an ace without holding a fail card of its suit
func (h *Hand) unknownIsRequired(picker int) bool {
	pc := h.pickingRound.PartnerCard
	if pc == nil || pc.Rank != deck.Ace {
		return false
	}

	for _, c := range h.seats[picker] {
		if !h.IsTrump(c) && c.Suit == pc.Suit {
			return false
		}
	}

	return true
}

func (h *Hand) permittedUnknownPlays(picker int) []Play {
	suit := h.partnerSuit()
	held := h.seats[picker]
	plays := make([]Play, len(held))
	for i, c := range held {
		plays[i] = UnknownPlay{Card: c.Clone(), Suit: suit}
	}

	return plays
}

// permittedDiscards enumerates every set of blind-sized discards
// With a called partner, at least one card of the called suit must be kept.
func (h *Hand) permittedDiscards(picker int) [][]*deck.Card {
	held := h.seats[picker]
	k := h.rules.CardsInBlind()

	constrained := h.rules.PartnerByCalledAce() && h.pickingRound.Loner == CallPartner
	partnerSuit := h.partnerSuit()
	heldPartnerSuit := 0
	if constrained {
		for _, c := range held {
			if h.SuitOf(c) == partnerSuit {
				heldPartnerSuit++
			}
		}

		// nothing to keep
		constrained = heldPartnerSuit > 0
	}

	discards := make([][]*deck.Card, 0)
	combinations(len(held), k, func(indexes []int) {
		cards := make([]*deck.Card, k)
		count := 0
		for i, idx := range indexes {
			cards[i] = held[idx]
			if constrained && h.SuitOf(held[idx]) == partnerSuit {
				count++
			}
		}

		if constrained && count >= heldPartnerSuit {
			return
		}

		discards = append(discards, cards)
	})

	return discards
}

// combinations calls fn with every k-sized set of indexes below n, in lexicographic order
func combinations(n, k int, fn func([]int)) {
	if k > n || k < 0 {
		return
	}

	indexes := make([]int, k)
	for i := range indexes {
		indexes[i] = i
	}

	for {
		fn(indexes)

		i := k - 1
		for i >= 0 && indexes[i] == n-k+i {
			i--
		}

		if i < 0 {
			return
		}

		indexes[i]++
		for j := i + 1; j < k; j++ {
			indexes[j] = indexes[j-1] + 1
		}
	}
}

// partnerCardLaid returns true if the partner card has appeared in any trick
func (h *Hand) partnerCardLaid() bool {
	pc := h.pickingRound.PartnerCard
	for _, t := range h.tricks {
		if t.Contains(pc) {
			return true
		}
	}

	return false
}

// permittedTrickCards returns the cards the seat may lay on the latest trick
func (h *Hand) permittedTrickCards(seat int) []*deck.Card {
	trick := h.LatestTrick()
	held := h.seats[seat]

	permitted := held.Clone()
	if len(permitted) <= 1 {
		return permitted
	}

	leading := len(trick.Laid) == 0
	var led deck.Suit
	if !leading {
		led = h.SuitOf(trick.Laid[0])
		if following := h.filter(permitted, func(c *deck.Card) bool { return h.SuitOf(c) == led }); len(following) > 0 {
			permitted = following
		}
	}

	pr := h.pickingRound
	if !h.rules.PartnerByCalledAce() || pr.Loner != CallPartner || pr.PartnerCard == nil {
		return permitted
	}

	partnerCard := pr.PartnerCard
	partnerSuit := h.partnerSuit()

	// the picker may not fail off the called suit before the partner card is out
	if picker, _ := h.Picker(); seat == picker && !leading && led != partnerSuit && !h.partnerCardLaid() {
		inSuit := h.filter(held, func(c *deck.Card) bool { return h.SuitOf(c) == partnerSuit })
		if len(inSuit) < 2 {
			kept := h.filter(permitted, func(c *deck.Card) bool { return h.SuitOf(c) != partnerSuit })
			if len(kept) > 0 {
				permitted = kept
			}
		}
	}

	if card := held.Find(partnerCard); card != nil {
		if !leading {
			// the partner must answer the called suit with the partner card
			if led == partnerSuit {
				return []*deck.Card{card}
			}
		} else {
			// and may only lead the called suit with the partner card
			permitted = h.filter(permitted, func(c *deck.Card) bool {
				return h.SuitOf(c) != partnerSuit || c.Equal(partnerCard)
			})
		}
	}

	return permitted
}

func (h *Hand) filter(cards deck.Hand, keep func(c *deck.Card) bool) deck.Hand {
	kept := make(deck.Hand, 0, len(cards))
	for _, c := range cards {
		if keep(c) {
			kept = append(kept, c)
		}
	}

	return kept
}
