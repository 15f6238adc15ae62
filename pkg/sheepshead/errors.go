package sheepshead

import (
	"errors"
	"fmt"
)

// ErrNotPlayersTurn is returned when the player is not the one the hand is waiting on
var ErrNotPlayersTurn = errors.New("not player's turn")

// ErrWrongPhase is returned when the play does not belong to the current phase
var ErrWrongPhase = errors.New("play does not match the current phase")

// ErrIllegalPlay is returned when the play is not one of the available plays
var ErrIllegalPlay = errors.New("play is not permitted")

// ErrHandIsFinished is returned when a play is attempted on a finished hand
var ErrHandIsFinished = errors.New("hand is finished")

// ErrHandNotFinished is returned when the reward is requested before the hand is over
var ErrHandNotFinished = errors.New("hand is not finished")

// ErrNotArbitrable is returned by Arbitrate() when the hand is waiting on a player
var ErrNotArbitrable = errors.New("hand does not need arbitration")

// ErrTrickNotFinished is returned when the winner of an incomplete trick is requested
var ErrTrickNotFinished = errors.New("trick is not finished")

// ErrMalformedHand is returned when serialized bytes do not decode to a valid hand
var ErrMalformedHand = errors.New("malformed hand")

// ErrNoSuchSeat is returned when a seat position does not exist
var ErrNoSuchSeat = errors.New("seat does not exist")

// ErrInvalidSeed is returned when a negative seed is provided
var ErrInvalidSeed = errors.New("seed cannot be negative")

// PlayerError is returned when a player's play is rejected
type PlayerError struct {
	Player int
	Err    error
}

func (p PlayerError) Error() string {
	return fmt.Sprintf("seat %d: %s", p.Player, p.Err)
}

func (p PlayerError) Unwrap() error {
	return p.Err
}

// RulesError is returned when a rule variation is not supported
type RulesError struct {
	Field string
	Value interface{}
}

func (r RulesError) Error() string {
	return fmt.Sprintf("unsupported %s: %v", r.Field, r.Value)
}
