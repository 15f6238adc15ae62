package actor

import (
	"context"
	"errors"
	"io"
	"testing"

	"deepsheep/internal/rng"
	"deepsheep/pkg/sheepshead"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

var cbg = context.Background()

func testLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// first always takes the first play and counts how often it was asked
type first struct {
	calls int
}

func (f *first) Act(_ context.Context, _ *sheepshead.Hand, _ int, plays []sheepshead.Play) (sheepshead.Play, error) {
	f.calls++
	return plays[0], nil
}

type failing struct{}

func (failing) Act(context.Context, *sheepshead.Hand, int, []sheepshead.Play) (sheepshead.Play, error) {
	return nil, errors.New("no thanks")
}

// cheat plays something that is never legal
type cheat struct{}

func (cheat) Act(context.Context, *sheepshead.Hand, int, []sheepshead.Play) (sheepshead.Play, error) {
	return sheepshead.TrickPlay{}, nil
}

func newHand(t *testing.T, seed int64) *sheepshead.Hand {
	t.Helper()

	h, err := sheepshead.NewHand(testLogger(), sheepshead.DefaultRules(), seed)
	if !assert.NoError(t, err) {
		t.FailNow()
	}

	return h
}

func TestPlayToEnd(t *testing.T) {
	h := newHand(t, 1)
	f := &first{}
	actors := []Actor{f, f, f, f, f}

	assert.NoError(t, PlayToEnd(cbg, h, actors))
	assert.True(t, h.IsFinished())
	assert.Greater(t, f.calls, 30)

	rewards, err := h.Rewards()
	assert.NoError(t, err)
	assert.Len(t, rewards, 5)
}

func TestPlayToEnd_errors(t *testing.T) {
	h := newHand(t, 1)
	assert.Equal(t, ErrWrongNumberOfActors, PlayToEnd(cbg, h, RandomActors(rng.NewSeeded(1), 4)))

	err := PlayToEnd(cbg, h, []Actor{failing{}, failing{}, failing{}, failing{}, failing{}})
	assert.EqualError(t, err, "seat 0 could not act: no thanks")

	err = PlayToEnd(cbg, h, []Actor{cheat{}, cheat{}, cheat{}, cheat{}, cheat{}})
	assert.ErrorIs(t, err, sheepshead.ErrWrongPhase)

	ctx, cancel := context.WithCancel(cbg)
	cancel()
	assert.Equal(t, context.Canceled, PlayToEnd(ctx, h, RandomActors(rng.NewSeeded(1), 5)))
}

func TestRandom_sameSeedSameHand(t *testing.T) {
	h1 := newHand(t, 99)
	h2 := newHand(t, 99)

	assert.NoError(t, PlayToEnd(cbg, h1, RandomActors(rng.NewSeeded(3), 5)))
	assert.NoError(t, PlayToEnd(cbg, h2, RandomActors(rng.NewSeeded(3), 5)))
	assert.Equal(t, h1.State(), h2.State())
}

func TestMonkey(t *testing.T) {
	rules := sheepshead.DefaultRules()
	for _, n := range []int{3, 4, 5} {
		rules.NumPlayers = n
		for seed := int64(1); seed <= 20; seed++ {
			h, err := Monkey(cbg, testLogger(), rules, seed)
			assert.NoError(t, err)
			assert.True(t, h.IsFinished())
		}
	}

	_, err := Monkey(cbg, testLogger(), sheepshead.Rules{}, 1)
	assert.Error(t, err)
}
