package learning

import (
	"errors"
	"fmt"
	"strings"

	"deepsheep/pkg/sheepshead"
)

const (
	// maxTrump is the highest trump count the projection distinguishes
	maxTrump = 6
	// NumValues is the number of state-action values
	NumValues = 2 * (maxTrump + 1)
)

// DefaultLearnRate is used when a QFunction is created with a rate of 0
const DefaultLearnRate = 0.05

// ErrNotPickPlay is returned when a play other than a pick decision is evaluated
var ErrNotPickPlay = errors.New("only pick decisions can be evaluated")

// QFunction estimates the reward of a pick decision from how many trump the seat holds
type QFunction struct {
	values    [NumValues]float64
	learnRate float64
}

// NewQFunction returns a QFunction with every value at 0
func NewQFunction(learnRate float64) *QFunction {
	if learnRate <= 0 {
		learnRate = DefaultLearnRate
	}

	return &QFunction{learnRate: learnRate}
}

// project maps the seat's hand and a pick decision to a value index
func project(h *sheepshead.Hand, seat int, play sheepshead.Play) (int, error) {
	p, ok := play.(sheepshead.PickPlay)
	if !ok {
		return 0, ErrNotPickPlay
	}

	trump := 0
	for _, c := range h.HeldCards(seat) {
		if h.IsTrump(c) {
			trump++
		}
	}

	if trump > maxTrump {
		trump = maxTrump
	}

	if p.Decision == sheepshead.Pick {
		return trump + maxTrump + 1, nil
	}

	return trump, nil
}

// Evaluate returns the estimated reward of the seat making the play
func (q *QFunction) Evaluate(h *sheepshead.Hand, seat int, play sheepshead.Play) (float64, error) {
	i, err := project(h, seat, play)
	if err != nil {
		return 0, err
	}

	return q.values[i], nil
}

// Learn moves the value of the experience's decision toward the reward it earned
func (q *QFunction) Learn(e *Experience) error {
	seat, play := e.Action()
	i, err := project(e.Start, seat, play)
	if err != nil {
		return err
	}

	reward, err := e.End.Reward(seat)
	if err != nil {
		return err
	}

	q.values[i] += q.learnRate * (float64(reward) - q.values[i])
	return nil
}

// Values returns a copy of the pass values followed by the pick values
func (q *QFunction) Values() []float64 {
	values := make([]float64, NumValues)
	copy(values, q.values[:])
	return values
}

func (q *QFunction) String() string {
	var sb strings.Builder
	sb.WriteString("pass:")
	for _, v := range q.values[:maxTrump+1] {
		fmt.Fprintf(&sb, " %.4f", v)
	}

	sb.WriteString("\npick:")
	for _, v := range q.values[maxTrump+1:] {
		fmt.Fprintf(&sb, " %.4f", v)
	}

	return sb.String()
}
