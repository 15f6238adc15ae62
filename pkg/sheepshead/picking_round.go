package sheepshead

import (
	"deepsheep/pkg/deck"
)

// PickingRound records the decisions made before trick play
type PickingRound struct {
	// Leader is the seat asked first
	Leader int `json:"leader"`
	// Decisions are in asking order, starting with Leader
	Decisions           []PickDecision `json:"decisions"`
	Loner               LonerDecision  `json:"loner"`
	PartnerCard         *deck.Card     `json:"partnerCard,omitempty"`
	UnknownDecisionMade bool           `json:"unknownDecisionMade"`
	Discards            deck.Hand      `json:"discards"`
	Blinds              deck.Hand      `json:"blinds"`
}

// hasPicker returns true if a seat picked
// A pick always ends the asking, so only the last decision can be a pick
func (p *PickingRound) hasPicker() bool {
	n := len(p.Decisions)
	return n > 0 && p.Decisions[n-1] == Pick
}

// picker returns the picker's seat
func (p *PickingRound) picker(numPlayers int) (int, bool) {
	if !p.hasPicker() {
		return -1, false
	}

	return SeatAfter(p.Leader, len(p.Decisions)-1, numPlayers), true
}

// allPassed returns true if every seat passed
func (p *PickingRound) allPassed(numPlayers int) bool {
	if len(p.Decisions) != numPlayers {
		return false
	}

	for _, d := range p.Decisions {
		if d != Pass {
			return false
		}
	}

	return true
}

// PickDecisionBy returns the decision made by seat, or PickUnasked
func (p *PickingRound) PickDecisionBy(seat, numPlayers int) PickDecision {
	for i, d := range p.Decisions {
		if SeatAfter(p.Leader, i, numPlayers) == seat {
			return d
		}
	}

	return PickUnasked
}
