package sheepshead

import (
	"math/rand"
	"testing"

	"deepsheep/pkg/deck"

	"github.com/stretchr/testify/assert"
)

func allRules() []Rules {
	var rules []Rules
	for _, n := range []int{3, 4, 5} {
		for _, method := range []PartnerMethod{PartnerByCalledAce, PartnerByJackOfDiamonds, NoPartner} {
			for _, result := range []NoPickerResult{Leasters, Doubler, ForcedPick} {
				for _, trump := range []deck.Suit{deck.Diamonds, deck.Clubs} {
					rules = append(rules, Rules{
						NumPlayers:     n,
						PartnerMethod:  method,
						NoPickerResult: result,
						TrumpSuit:      trump,
					})
				}
			}
		}
	}

	return rules
}

// randomPlayOut plays random legal moves and checks the invariants that hold at every step
func randomPlayOut(t *testing.T, rules Rules, seed int64, checkRoundTrip bool) *Hand {
	t.Helper()

	h, err := NewHand(testLogger(), rules, seed)
	if !assert.NoError(t, err) {
		t.FailNow()
	}

	r := rand.New(rand.NewSource(seed))
	for i := 0; !h.IsFinished(); i++ {
		if i > 200 {
			t.Fatalf("seed %d: hand did not finish", seed)
		}

		if checkRoundTrip {
			assert.Equal(t, describe(h), describe(roundTrip(t, h)), "seed %d", seed)
		}

		if h.IsArbitrable() {
			assert.False(t, h.IsPlayable())
			mustArbitrate(t, h)
			continue
		}

		// at most one seat can act
		ready := -1
		for seat := 0; seat < rules.NumPlayers; seat++ {
			if plays := h.AvailablePlays(seat); len(plays) > 0 {
				assert.Equal(t, -1, ready, "seed %d: seats %d and %d both have plays", seed, ready, seat)
				ready = seat
			}
		}

		if !assert.Equal(t, h.CurrentPlayer(), ready, "seed %d", seed) {
			t.FailNow()
		}

		plays := h.AvailablePlays(ready)
		mustPlay(t, h, ready, plays[r.Intn(len(plays))])
	}

	if checkRoundTrip {
		assert.Equal(t, describe(h), describe(roundTrip(t, h)), "seed %d", seed)
	}

	return h
}

func TestHand_RandomPlayOuts(t *testing.T) {
	for _, rules := range allRules() {
		for seed := int64(1); seed <= 5; seed++ {
			h := randomPlayOut(t, rules, seed, seed == 1)
			assert.False(t, h.IsArbitrable())
			assert.False(t, h.IsPlayable())

			// point conservation
			pr := h.PickingRound()
			points := pr.Discards.Points() + pr.Blinds.Points()
			for _, trick := range h.Tricks() {
				points += trick.Points()
			}
			for seat := 0; seat < rules.NumPlayers; seat++ {
				points += h.HeldCards(seat).Points()
			}
			assert.Equal(t, TotalPoints, points, "%+v seed %d", rules, seed)

			// zero sum
			rewards, err := h.Rewards()
			assert.NoError(t, err)
			sum := 0
			for _, r := range rewards {
				sum += r
			}
			assert.Equal(t, 0, sum, "%+v seed %d: %v", rules, seed, rewards)
		}
	}
}

func TestHand_ForcedPartnerRetention(t *testing.T) {
	// whenever the picker holds a single card of the called suit, no discard includes it
	for seed := int64(1); seed <= 100; seed++ {
		h, err := NewHand(testLogger(), DefaultRules(), seed)
		assert.NoError(t, err)
		mustArbitrate(t, h)
		mustPlay(t, h, 0, pick)
		mustPlay(t, h, 0, callPartner)
		mustPlay(t, h, 0, firstPlay(t, h, 0))
		if h.Phase() == PhaseUnknown {
			mustPlay(t, h, 0, firstPlay(t, h, 0))
		}

		var inSuit []*deck.Card
		for _, c := range h.HeldCards(0) {
			if h.SuitOf(c) == h.partnerSuit() {
				inSuit = append(inSuit, c)
			}
		}

		if len(inSuit) != 1 {
			continue
		}

		for _, p := range h.AvailablePlays(0) {
			assert.False(t, deck.Hand(p.(DiscardPlay).Cards).HasCard(inSuit[0]), "seed %d", seed)
		}
	}
}
