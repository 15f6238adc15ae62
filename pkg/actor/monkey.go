package actor

import (
	"context"
	"fmt"

	"deepsheep/internal/rng"
	"deepsheep/pkg/sheepshead"

	"github.com/sirupsen/logrus"
)

// Monkey plays a whole hand with random actors and checks that the rewards sum to zero
func Monkey(ctx context.Context, logger logrus.FieldLogger, rules sheepshead.Rules, seed int64) (*sheepshead.Hand, error) {
	h, err := sheepshead.NewHand(logger, rules, seed)
	if err != nil {
		return nil, err
	}

	if err := PlayToEnd(ctx, h, RandomActors(rng.NewSeeded(h.Seed()), rules.NumPlayers)); err != nil {
		return nil, err
	}

	rewards, err := h.Rewards()
	if err != nil {
		return nil, err
	}

	total := 0
	for _, r := range rewards {
		total += r
	}

	if total != 0 {
		panic(fmt.Sprintf("rewards %v for hand %s do not sum to zero", rewards, h.ID()))
	}

	logger.WithFields(logrus.Fields{
		"seed":    h.Seed(),
		"rewards": rewards,
	}).Debug("monkey finished hand")

	return h, nil
}
