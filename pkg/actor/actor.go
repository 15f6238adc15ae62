package actor

import (
	"context"
	"errors"
	"fmt"

	"deepsheep/internal/rng"
	"deepsheep/pkg/sheepshead"
)

// ErrWrongNumberOfActors is returned when there isn't one actor per seat
var ErrWrongNumberOfActors = errors.New("need one actor per seat")

// ErrStalled is returned if the hand is neither arbitrable nor waiting on a seat
var ErrStalled = errors.New("hand is stalled")

// Actor chooses a play for a seat
type Actor interface {
	// Act returns one of plays. plays is never empty.
	Act(ctx context.Context, h *sheepshead.Hand, seat int, plays []sheepshead.Play) (sheepshead.Play, error)
}

// Random chooses among the available plays uniformly
type Random struct {
	Generator rng.Generator
}

// Act returns a random play
func (r Random) Act(_ context.Context, _ *sheepshead.Hand, _ int, plays []sheepshead.Play) (sheepshead.Play, error) {
	return plays[r.Generator.Intn(len(plays))], nil
}

// RandomActors returns n random actors sharing a generator
func RandomActors(g rng.Generator, n int) []Actor {
	actors := make([]Actor, n)
	for i := range actors {
		actors[i] = Random{Generator: g}
	}

	return actors
}

// PlayToEnd arbitrates and asks each seat's actor for plays until the hand is finished
func PlayToEnd(ctx context.Context, h *sheepshead.Hand, actors []Actor) error {
	if len(actors) != h.NumberOfPlayers() {
		return ErrWrongNumberOfActors
	}

	for !h.IsFinished() {
		if err := ctx.Err(); err != nil {
			return err
		}

		if h.IsArbitrable() {
			if err := h.Arbitrate(); err != nil {
				return err
			}

			continue
		}

		seat := h.CurrentPlayer()
		if seat < 0 {
			return ErrStalled
		}

		plays := h.AvailablePlays(seat)
		play, err := actors[seat].Act(ctx, h, seat, plays)
		if err != nil {
			return fmt.Errorf("seat %d could not act: %w", seat, err)
		}

		if err := h.MakePlay(seat, play); err != nil {
			return err
		}
	}

	return nil
}
