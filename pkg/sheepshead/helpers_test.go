package sheepshead

import (
	"io"
	"testing"

	"deepsheep/pkg/deck"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

const testSeed = 42

func testLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func rulesWith(fn func(r *Rules)) Rules {
	r := DefaultRules()
	if fn != nil {
		fn(&r)
	}

	return r
}

// dealtHand returns a hand that has been dealt and is waiting on the first pick decision
func dealtHand(t *testing.T, rules Rules) *Hand {
	t.Helper()

	h, err := NewHand(testLogger(), rules, testSeed)
	if !assert.NoError(t, err) {
		t.FailNow()
	}

	assert.NoError(t, h.Arbitrate())
	return h
}

// mockHeld replaces the seat's cards; duplicates of cards elsewhere in the hand are fine
func mockHeld(h *Hand, seat int, cards string) {
	h.seats[seat] = deck.CardsFromString(cards)
}

func mockBlinds(h *Hand, cards string) {
	h.pickingRound.Blinds = deck.CardsFromString(cards)
}

// mockLaid replaces the cards laid on a trick
// Any index in unknown marks the laid card at that position as unknown.
func mockLaid(h *Hand, trick int, cards string, unknown ...int) {
	laid := deck.CardsFromString(cards)
	for _, i := range unknown {
		laid[i].Unknown = true
	}

	h.tricks[trick].Laid = laid
}

func mustPlay(t *testing.T, h *Hand, seat int, play Play) {
	t.Helper()

	if !assert.NoError(t, h.MakePlay(seat, play), "%s by seat %d", play, seat) {
		t.FailNow()
	}
}

func mustArbitrate(t *testing.T, h *Hand) {
	t.Helper()

	if !assert.NoError(t, h.Arbitrate()) {
		t.FailNow()
	}
}

// partnerPlayFor returns the available partner play calling the ace of suit
func partnerPlayFor(t *testing.T, h *Hand, seat int, suit deck.Suit) Play {
	t.Helper()

	for _, p := range h.AvailablePlays(seat) {
		if pp, ok := p.(PartnerPlay); ok && pp.Card.Suit == suit {
			return p
		}
	}

	t.Fatalf("no partner play for %s", suit)
	return nil
}

// trickCards returns the cards of the available trick plays
func trickCards(plays []Play) []*deck.Card {
	cards := make([]*deck.Card, 0, len(plays))
	for _, p := range plays {
		cards = append(cards, p.(TrickPlay).Card)
	}

	return cards
}

func firstPlay(t *testing.T, h *Hand, seat int) Play {
	t.Helper()

	plays := h.AvailablePlays(seat)
	if !assert.NotEmpty(t, plays) {
		t.FailNow()
	}

	return plays[0]
}

var (
	pick        = PickPlay{Decision: Pick}
	pass        = PickPlay{Decision: Pass}
	goAlone     = LonerPlay{Decision: GoAlone}
	callPartner = LonerPlay{Decision: CallPartner}
)

// playToEnd drives the hand with the first available play until it finishes
func playToEnd(t *testing.T, h *Hand) {
	t.Helper()

	for i := 0; !h.IsFinished(); i++ {
		if i > 200 {
			t.Fatal("hand did not finish")
		}

		if h.IsArbitrable() {
			mustArbitrate(t, h)
			continue
		}

		seat := h.CurrentPlayer()
		mustPlay(t, h, seat, firstPlay(t, h, seat))
	}
}
