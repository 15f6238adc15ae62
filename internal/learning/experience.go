package learning

import (
	"deepsheep/pkg/sheepshead"

	"github.com/sirupsen/logrus"
)

// Experience is a hand as it was when the first decision was made, and the hand once finished
type Experience struct {
	Start *sheepshead.Hand
	End   *sheepshead.Hand
}

// Snapshot returns an independent copy of the hand
func Snapshot(logger logrus.FieldLogger, h *sheepshead.Hand) (*sheepshead.Hand, error) {
	b, err := h.Serialize()
	if err != nil {
		return nil, err
	}

	return sheepshead.Deserialize(logger, b)
}

// Action returns the seat that was to act at the start and the pick decision it made
func (e *Experience) Action() (int, sheepshead.Play) {
	seat := e.Start.CurrentPlayer()
	return seat, sheepshead.PickPlay{Decision: e.End.PickDecisionBy(seat)}
}
