package sheepshead

import (
	"testing"

	"deepsheep/pkg/deck"

	"github.com/stretchr/testify/assert"
)

func TestNewHand(t *testing.T) {
	h, err := NewHand(nil, DefaultRules(), 0)
	assert.NoError(t, err)
	assert.True(t, h.Seed() > 0)
	assert.True(t, h.IsUninitialized())
	assert.True(t, h.IsArbitrable())
	assert.False(t, h.IsPlayable())
	assert.False(t, h.IsFinished())
	assert.Equal(t, PhaseUninitialized, h.Phase())
	assert.Equal(t, -1, h.CurrentPlayer())
	assert.Nil(t, h.PickingRound())
	assert.Empty(t, h.Tricks())

	h, err = NewHand(nil, DefaultRules(), -1)
	assert.Nil(t, h)
	assert.Equal(t, ErrInvalidSeed, err)

	h, err = NewHand(nil, rulesWith(func(r *Rules) { r.NumPlayers = 6 }), 1)
	assert.Nil(t, h)
	assert.EqualError(t, err, "unsupported numPlayers: 6")

	h, err = NewHand(nil, rulesWith(func(r *Rules) { r.TrumpSuit = deck.Hearts }), 1)
	assert.Nil(t, h)
	assert.EqualError(t, err, "unsupported trumpSuit: hearts")
}

func TestHand_Arbitrate_deal(t *testing.T) {
	for _, n := range []int{3, 4, 5} {
		for _, method := range []PartnerMethod{PartnerByCalledAce, PartnerByJackOfDiamonds, NoPartner} {
			for _, trump := range []deck.Suit{deck.Diamonds, deck.Clubs} {
				rules := rulesWith(func(r *Rules) {
					r.NumPlayers = n
					r.PartnerMethod = method
					r.TrumpSuit = trump
				})

				h := dealtHand(t, rules)
				seen := make(map[string]bool)
				for seat := 0; seat < n; seat++ {
					held := h.HeldCards(seat)
					assert.Equal(t, rules.CardsPerPlayer(), len(held))
					for _, c := range held {
						assert.False(t, c.Unknown)
						seen[deck.CardToString(c)] = true
					}
				}

				assert.Equal(t, rules.CardsInBlind(), len(h.PickingRound().Blinds))
				for _, c := range h.PickingRound().Blinds {
					seen[deck.CardToString(c)] = true
				}

				assert.Equal(t, deck.Size, len(seen), "%d players", n)
				assert.Equal(t, PhasePick, h.Phase())
				assert.Equal(t, 0, h.CurrentPlayer())
				assert.False(t, h.IsArbitrable())
				assert.Equal(t, ErrNotArbitrable, h.Arbitrate())
			}
		}
	}
}

func TestHand_Arbitrate_sameSeedSameDeal(t *testing.T) {
	a := dealtHand(t, DefaultRules())
	b := dealtHand(t, DefaultRules())

	for seat := 0; seat < 5; seat++ {
		assert.Equal(t, a.HeldCards(seat).String(), b.HeldCards(seat).String())
	}
	assert.Equal(t, a.PickingRound().Blinds.String(), b.PickingRound().Blinds.String())
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestHand_PickPassAvailable(t *testing.T) {
	h := dealtHand(t, DefaultRules())
	leader := h.PickingRound().Leader

	for seat := 0; seat < h.NumberOfPlayers(); seat++ {
		plays := h.AvailablePlays(seat)
		if seat != leader {
			assert.Empty(t, plays)
			continue
		}

		if assert.Equal(t, 2, len(plays)) {
			assert.Equal(t, pick, plays[0])
			assert.Equal(t, pass, plays[1])
		}
	}
}

func TestHand_MakePlay_rejections(t *testing.T) {
	h := dealtHand(t, DefaultRules())

	err := h.MakePlay(1, pass)
	assert.ErrorIs(t, err, ErrNotPlayersTurn)
	assert.Equal(t, PlayerError{Player: 1, Err: ErrNotPlayersTurn}, err)

	assert.ErrorIs(t, h.MakePlay(0, goAlone), ErrWrongPhase)
	assert.Equal(t, PlayerError{Player: 0, Err: ErrIllegalPlay}, h.MakePlay(0, nil))
	assert.ErrorIs(t, h.MakePlay(0, PickPlay{Decision: PickUnasked}), ErrIllegalPlay)
	assert.ErrorIs(t, h.MakePlay(7, pass), ErrNotPlayersTurn)

	// nothing changed
	assert.Empty(t, h.PickingRound().Decisions)
	assert.Equal(t, 0, h.CurrentPlayer())
}

func allPass(t *testing.T, h *Hand) {
	t.Helper()

	for seat := 0; seat < h.NumberOfPlayers(); seat++ {
		assert.Equal(t, 2, len(h.AvailablePlays(seat)))
		mustPlay(t, h, seat, pass)
	}
}

func TestHand_AllPassLeasters(t *testing.T) {
	h := dealtHand(t, rulesWith(func(r *Rules) { r.NoPickerResult = Leasters }))
	allPass(t, h)

	assert.True(t, h.PickingRoundIsFinished())
	assert.False(t, h.IsPlayable())
	assert.False(t, h.IsFinished())
	assert.True(t, h.IsArbitrable())
	assert.Equal(t, PhaseArbitration, h.Phase())

	_, ok := h.Picker()
	assert.False(t, ok)

	mustArbitrate(t, h)
	assert.Equal(t, 0, h.LatestTrick().Leader)
	assert.Equal(t, PhaseTrick, h.Phase())
}

func TestHand_AllPassDoubler(t *testing.T) {
	h := dealtHand(t, rulesWith(func(r *Rules) { r.NoPickerResult = Doubler }))
	allPass(t, h)

	assert.True(t, h.PickingRoundIsFinished())
	assert.False(t, h.IsPlayable())
	assert.True(t, h.IsFinished())
	assert.False(t, h.IsArbitrable())
	assert.Equal(t, PhaseFinished, h.Phase())
	assert.ErrorIs(t, h.MakePlay(0, pass), ErrHandIsFinished)

	rewards, err := h.Rewards()
	assert.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0, 0, 0}, rewards)
}

func TestHand_ForcedPick(t *testing.T) {
	h := dealtHand(t, rulesWith(func(r *Rules) { r.NoPickerResult = ForcedPick }))
	last := PreviousSeat(h.PickingRound().Leader, 5)

	for seat := 0; seat != last; seat = NextSeat(seat, 5) {
		assert.Equal(t, 2, len(h.AvailablePlays(seat)))
		mustPlay(t, h, seat, pass)
	}

	assert.Equal(t, []Play{pick}, h.AvailablePlays(last))
	assert.ErrorIs(t, h.MakePlay(last, pass), ErrIllegalPlay)
	mustPlay(t, h, last, pick)

	picker, ok := h.Picker()
	assert.True(t, ok)
	assert.Equal(t, last, picker)
	assert.Equal(t, PhaseLoner, h.Phase())
	assert.Equal(t, Pick, h.PickDecisionBy(last))
	assert.Equal(t, Pass, h.PickDecisionBy(0))
}

func TestHand_Pick(t *testing.T) {
	h := dealtHand(t, DefaultRules())
	blinds := h.PickingRound().Blinds.Clone()

	mustPlay(t, h, 0, pass)
	assert.Equal(t, 1, h.CurrentPlayer())
	assert.Equal(t, PickUnasked, h.PickDecisionBy(2))
	mustPlay(t, h, 1, pick)

	assert.Equal(t, 8, len(h.HeldCards(1)))
	for _, c := range blinds {
		assert.True(t, h.HeldCards(1).HasCard(c))
	}
	assert.Empty(t, h.PickingRound().Blinds)
	assert.Equal(t, 1, h.CurrentPlayer())
	assert.Equal(t, PhaseLoner, h.Phase())

	// the other seats are never asked
	for _, seat := range []int{0, 2, 3, 4} {
		assert.Empty(t, h.AvailablePlays(seat))
	}
}

func TestHand_TrickProgression(t *testing.T) {
	h := dealtHand(t, DefaultRules())
	mustPlay(t, h, 0, pick)
	mustPlay(t, h, 0, goAlone)
	mustPlay(t, h, 0, firstPlay(t, h, 0))

	assert.True(t, h.PickingRoundIsFinished())
	assert.True(t, h.IsArbitrable())
	assert.False(t, h.IsPlayable())
	assert.Nil(t, h.LatestTrick())

	mustArbitrate(t, h)
	assert.False(t, h.IsArbitrable())
	assert.True(t, h.IsPlayable())
	assert.Equal(t, PhaseTrick, h.Phase())
	assert.Equal(t, ErrNotArbitrable, h.Arbitrate())

	for seat := 0; seat < 5; seat++ {
		assert.Equal(t, seat, h.CurrentPlayer())
		assert.NotEmpty(t, h.AvailablePlays(seat))
		mustPlay(t, h, seat, firstPlay(t, h, seat))
		assert.Equal(t, 5, len(h.HeldCards(seat)))
	}

	assert.Equal(t, 5, len(h.LatestTrick().Laid))
	assert.True(t, h.IsArbitrable())
	assert.False(t, h.IsPlayable())

	winner, err := h.TrickWinner(h.LatestTrick())
	assert.NoError(t, err)

	mustArbitrate(t, h)
	assert.Equal(t, 2, len(h.Tricks()))
	assert.Equal(t, winner, h.CurrentPlayer())
}

func TestHand_PlayToEnd(t *testing.T) {
	h := dealtHand(t, DefaultRules())
	playToEnd(t, h)

	assert.Equal(t, PhaseFinished, h.Phase())
	assert.Equal(t, 6, len(h.Tricks()))
	assert.False(t, h.IsArbitrable())
	assert.False(t, h.IsPlayable())
	assert.Equal(t, ErrNotArbitrable, h.Arbitrate())
	for seat := 0; seat < 5; seat++ {
		assert.Empty(t, h.HeldCards(seat))
		assert.Empty(t, h.AvailablePlays(seat))
	}
	assert.NotEmpty(t, h.Log())
}

func TestHand_LogSince(t *testing.T) {
	h := dealtHand(t, DefaultRules())
	n := len(h.Log())
	assert.Equal(t, 1, n)
	assert.Equal(t, "the hand has been dealt", h.Log()[0].Message)
	assert.Nil(t, h.LogSince(n))

	mustPlay(t, h, 0, pass)
	mustPlay(t, h, 1, pick)

	events := h.LogSince(n)
	if assert.Len(t, events, 2) {
		assert.Equal(t, "seat [0]: passes", events[0].String())
		assert.Equal(t, "seat [1]: picks", events[1].String())
	}
}
