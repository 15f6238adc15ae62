package sheepshead

import (
	"fmt"
	"strings"

	"deepsheep/pkg/deck"
)

// HandState is a full view of the hand, suitable for debugging and snapshots
// It reveals every seat's cards and must not be shown to players.
type HandState struct {
	Rules        Rules         `json:"rules"`
	Seed         int64         `json:"seed"`
	Phase        Phase         `json:"phase"`
	CurrentTurn  int           `json:"currentTurn"`
	Seats        []*SeatState  `json:"seats"`
	PickingRound *PickingRound `json:"pickingRound"`
	Tricks       []*Trick      `json:"tricks"`
	Picker       int           `json:"picker"`
	Partner      int           `json:"partner"`
	IsFinished   bool          `json:"isFinished"`
	Rewards      []int         `json:"rewards,omitempty"`
}

// SeatState is the state of an individual seat
type SeatState struct {
	Seat       int          `json:"seat"`
	Hand       []*deck.Card `json:"hand"`
	TricksWon  int          `json:"tricksWon"`
	PointsWon  int          `json:"pointsWon"`
	PickChoice string       `json:"pickChoice"`
}

// State returns the hand's state
func (h *Hand) State() *HandState {
	points, won := h.trickPointsBySeat()

	seats := make([]*SeatState, len(h.seats))
	for i, held := range h.seats {
		seats[i] = &SeatState{
			Seat:       i,
			Hand:       held.Sorted(),
			TricksWon:  won[i],
			PointsWon:  points[i],
			PickChoice: h.PickDecisionBy(i).String(),
		}
	}

	picker, _ := h.Picker()
	partner, _ := h.Partner()

	state := &HandState{
		Rules:        h.rules,
		Seed:         h.seed,
		Phase:        h.Phase(),
		CurrentTurn:  h.CurrentPlayer(),
		Seats:        seats,
		PickingRound: h.pickingRound,
		Tricks:       h.tricks,
		Picker:       picker,
		Partner:      partner,
		IsFinished:   h.IsFinished(),
	}

	if state.IsFinished {
		// a finished hand always has rewards
		state.Rewards, _ = h.Rewards()
	}

	return state
}

func (h *Hand) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "hand %s (%d players, %s, %s, %s trump) seed=%d phase=%s\n",
		h.id, h.rules.NumPlayers, h.rules.PartnerMethod, h.rules.NoPickerResult, h.rules.TrumpSuit, h.seed, h.Phase())

	for i, held := range h.seats {
		fmt.Fprintf(&sb, "  seat %d [%s]: %s\n", i, h.PickDecisionBy(i), held.Sorted())
	}

	if pr := h.pickingRound; pr != nil {
		fmt.Fprintf(&sb, "  blinds: %s discards: %s loner: %s", pr.Blinds, pr.Discards, pr.Loner)
		if pr.PartnerCard != nil {
			fmt.Fprintf(&sb, " partner card: %s", pr.PartnerCard)
		}
		sb.WriteString("\n")
	}

	n := h.rules.NumPlayers
	for i, t := range h.tricks {
		fmt.Fprintf(&sb, "  trick %d led by %d: %s", i+1, t.Leader, deck.Hand(t.Laid))
		if t.IsFinished(n) {
			fmt.Fprintf(&sb, " won by %d", h.mustTrickWinner(t))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
