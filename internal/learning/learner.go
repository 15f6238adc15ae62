package learning

import (
	"context"
	"errors"

	"deepsheep/internal/rng"
	"deepsheep/pkg/actor"
	"deepsheep/pkg/sheepshead"

	"github.com/sirupsen/logrus"
)

// QLearner picks or passes using a QFunction, and plays randomly otherwise
type QLearner struct {
	Q         *QFunction
	Epsilon   float64
	Generator rng.Float64Generator
}

// Act implements actor.Actor
// With probability Epsilon a random pick decision is made, otherwise the best valued one.
func (l *QLearner) Act(ctx context.Context, h *sheepshead.Hand, seat int, plays []sheepshead.Play) (sheepshead.Play, error) {
	if _, ok := plays[0].(sheepshead.PickPlay); !ok || len(plays) == 1 {
		return actor.Random{Generator: l.Generator}.Act(ctx, h, seat, plays)
	}

	if l.Generator.Float64() < l.Epsilon {
		return plays[l.Generator.Intn(len(plays))], nil
	}

	best := plays[0]
	bestValue, err := l.Q.Evaluate(h, seat, best)
	if err != nil {
		return nil, err
	}

	for _, p := range plays[1:] {
		v, err := l.Q.Evaluate(h, seat, p)
		if err != nil {
			return nil, err
		}

		if v > bestValue {
			best, bestValue = p, v
		}
	}

	return best, nil
}

// TrainOptions controls a training run
type TrainOptions struct {
	Rules       sheepshead.Rules
	Seed        int64
	Iterations  int
	Epsilon     float64
	ReportEvery int
}

// Train plays Iterations hands, hand i dealt with Seed+i
// The first seat asked to pick is the learner, the rest play randomly.
func Train(ctx context.Context, logger logrus.FieldLogger, q *QFunction, opts TrainOptions) error {
	if opts.Seed <= 0 {
		return sheepshead.ErrInvalidSeed
	}

	g := rng.NewSeeded(opts.Seed)
	learner := &QLearner{Q: q, Epsilon: opts.Epsilon, Generator: g}

	for i := 0; i < opts.Iterations; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		h, err := sheepshead.NewHand(logger, opts.Rules, opts.Seed+int64(i))
		if err != nil {
			return err
		}

		if err := h.Arbitrate(); err != nil {
			return err
		}

		start, err := Snapshot(logger, h)
		if err != nil {
			return err
		}

		actors := actor.RandomActors(g, opts.Rules.NumPlayers)
		seat := h.CurrentPlayer()
		if seat < 0 {
			return errors.New("no seat is ready to pick")
		}
		actors[seat] = learner

		if err := actor.PlayToEnd(ctx, h, actors); err != nil {
			return err
		}

		if err := q.Learn(&Experience{Start: start, End: h}); err != nil {
			return err
		}

		if opts.ReportEvery > 0 && i%opts.ReportEvery == 0 {
			logger.WithFields(logrus.Fields{
				"iteration": i,
				"values":    q.Values(),
			}).Info("q-function values")
		}
	}

	return nil
}
