package sheepshead

import (
	"fmt"
)

// TotalPoints is the point value of the whole deck
const TotalPoints = 120

// Reward returns the player's score for the finished hand
func (h *Hand) Reward(player int) (int, error) {
	if !h.IsFinished() {
		return 0, ErrHandNotFinished
	}

	if !h.validSeat(player) {
		return 0, PlayerError{Player: player, Err: ErrNoSuchSeat}
	}

	if _, ok := h.Picker(); !ok {
		if h.rules.NoPickerResult == Leasters {
			return h.leastersReward(player), nil
		}

		return 0, nil
	}

	return h.pickerReward(player), nil
}

// Rewards returns every seat's reward, by position
func (h *Hand) Rewards() ([]int, error) {
	rewards := make([]int, h.rules.NumPlayers)
	for i := range rewards {
		r, err := h.Reward(i)
		if err != nil {
			return nil, err
		}

		rewards[i] = r
	}

	return rewards, nil
}

// trickPointsBySeat returns the points won by each seat and how many tricks each seat won
func (h *Hand) trickPointsBySeat() ([]int, []int) {
	n := h.rules.NumPlayers
	points := make([]int, n)
	won := make([]int, n)
	for _, t := range h.tricks {
		if !t.IsFinished(n) {
			continue
		}

		winner := h.mustTrickWinner(t)
		points[winner] += t.Points()
		won[winner]++
	}

	return points, won
}

// magnitude returns the base score of the picking team
func magnitude(pickerPoints, pickerTricks, otherTricks int) int {
	if pickerTricks == 0 {
		return -3
	}

	if otherTricks == 0 {
		return 3
	}

	switch {
	case pickerPoints < 31:
		return -2
	case pickerPoints < 61:
		return -1
	case pickerPoints < 91:
		return 1
	}

	return 2
}

func (h *Hand) pickerReward(player int) int {
	n := h.rules.NumPlayers
	picker, _ := h.Picker()
	partner, hasPartner := h.Partner()

	points, won := h.trickPointsBySeat()

	pickerPoints := h.pickingRound.Discards.Points()
	otherPoints := 0
	pickerTricks, otherTricks := 0, 0
	for seat := range points {
		if seat == picker || (hasPartner && seat == partner) {
			pickerPoints += points[seat]
			pickerTricks += won[seat]
		} else {
			otherPoints += points[seat]
			otherTricks += won[seat]
		}
	}

	if pickerPoints+otherPoints != TotalPoints {
		panic(fmt.Sprintf("expected %d points, found %d (picker %d, others %d)", TotalPoints, pickerPoints+otherPoints, pickerPoints, otherPoints))
	}

	m := magnitude(pickerPoints, pickerTricks, otherTricks)

	switch {
	case player == picker && !hasPartner:
		return m * (n - 1)
	case player == picker:
		return m * (n - 2) * 2 / 3
	case hasPartner && player == partner:
		return m * (n - 2) / 3
	}

	return -m
}

// leastersReward pays the trick winner with the fewest points
func (h *Hand) leastersReward(player int) int {
	n := h.rules.NumPlayers
	points, won := h.trickPointsBySeat()

	winner := -1
	for seat := range points {
		if won[seat] == 0 {
			continue
		}

		if winner < 0 || points[seat] < points[winner] {
			winner = seat
		}
	}

	if winner < 0 {
		return 0
	}

	if player == winner {
		return n - 1
	}

	return -1
}
