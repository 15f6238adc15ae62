package main

import (
	"fmt"
	"strconv"
	"strings"

	"deepsheep/pkg/archive"
	"deepsheep/pkg/deck"
	"deepsheep/pkg/playable"
	"deepsheep/pkg/sheepshead"

	"github.com/pterm/pterm"
)

// seatRows returns a row for each seat
// Only the cards of reveal are shown, unless reveal is -1.
func seatRows(h *sheepshead.Hand, names []string, reveal int) pterm.TableData {
	state := h.State()
	picker, _ := h.Picker()
	partner, _ := h.Partner()

	data := pterm.TableData{{"Seat", "Name", "Pick", "Role", "Cards", "Tricks", "Points"}}
	for _, s := range state.Seats {
		role := ""
		switch {
		case s.Seat == picker:
			role = "picker"
		case s.Seat == partner && h.PickingRound().UnknownDecisionMade:
			role = "partner"
		}

		cards := fmt.Sprintf("%d cards", len(s.Hand))
		if reveal < 0 || reveal == s.Seat {
			cards = deck.CardsToString(s.Hand)
		}

		data = append(data, []string{
			strconv.Itoa(s.Seat),
			names[s.Seat],
			s.PickChoice,
			role,
			cards,
			strconv.Itoa(s.TricksWon),
			strconv.Itoa(s.PointsWon),
		})
	}

	return data
}

// trickRows returns a row for each trick
func trickRows(h *sheepshead.Hand, names []string) pterm.TableData {
	data := pterm.TableData{{"Trick", "Led by", "Cards", "Won by", "Points"}}
	for i, t := range h.Tricks() {
		winner := ""
		if w, err := h.TrickWinner(t); err == nil {
			winner = names[w]
		}

		data = append(data, []string{
			strconv.Itoa(i + 1),
			names[t.Leader],
			deck.CardsToString(t.Laid),
			winner,
			strconv.Itoa(t.Points()),
		})
	}

	return data
}

// recentRows returns a row for each archived hand
func recentRows(records []*archive.Record) pterm.TableData {
	data := pterm.TableData{{"ID", "Created", "Seed", "Players", "Picker", "Rewards"}}
	for _, r := range records {
		picker := "none"
		if r.Picker >= 0 {
			picker = strconv.Itoa(r.Picker)
		}

		rewards := make([]string, len(r.Rewards))
		for i, reward := range r.Rewards {
			rewards[i] = strconv.FormatInt(reward, 10)
		}

		data = append(data, []string{
			r.ID.String(),
			r.Created.Format("2006-01-02 15:04:05"),
			strconv.FormatInt(r.Seed, 10),
			strconv.Itoa(r.Rules.NumPlayers),
			picker,
			strings.Join(rewards, ","),
		})
	}

	return data
}

// eventLine describes a log event using seat names
func eventLine(m *playable.LogMessage, names []string) string {
	who := make([]string, 0, len(m.Seats))
	for _, seat := range m.Seats {
		who = append(who, names[seat])
	}

	line := m.Message
	if len(who) > 0 {
		line = fmt.Sprintf("%s %s", strings.Join(who, ", "), line)
	}

	if len(m.Cards) > 0 {
		line = fmt.Sprintf("%s %s", line, deck.CardsToString(m.Cards))
	}

	return line
}

func renderEvents(events []*playable.LogMessage, names []string) {
	for _, m := range events {
		pterm.Info.Println(eventLine(m, names))
	}
}

func renderHand(h *sheepshead.Hand, names []string, reveal int) {
	if err := pterm.DefaultTable.WithHasHeader().WithData(seatRows(h, names, reveal)).Render(); err != nil {
		pterm.Error.Println(err)
	}
}

func renderTricks(h *sheepshead.Hand, names []string) {
	if len(h.Tricks()) == 0 {
		return
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(trickRows(h, names)).Render(); err != nil {
		pterm.Error.Println(err)
	}
}

func renderRewards(h *sheepshead.Hand, names []string) {
	rewards, err := h.Rewards()
	if err != nil {
		pterm.Error.Println(err)
		return
	}

	for seat, r := range rewards {
		switch {
		case r > 0:
			pterm.Success.Printfln("%s wins %d", names[seat], r)
		case r < 0:
			pterm.Warning.Printfln("%s loses %d", names[seat], -r)
		default:
			pterm.Info.Printfln("%s breaks even", names[seat])
		}
	}
}
