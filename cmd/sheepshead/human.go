package main

import (
	"context"
	"fmt"

	"deepsheep/pkg/sheepshead"

	"github.com/pterm/pterm"
)

// human asks at the terminal which play to make
type human struct {
	names []string
	seat  int

	// seen is how many of the hand's log events have been shown
	seen int
}

// catchUp renders the events since the last time it was called
func (p *human) catchUp(h *sheepshead.Hand) {
	events := h.LogSince(p.seen)
	p.seen += len(events)
	renderEvents(events, p.names)
}

func (p *human) Act(_ context.Context, h *sheepshead.Hand, seat int, plays []sheepshead.Play) (sheepshead.Play, error) {
	p.catchUp(h)
	renderHand(h, p.names, p.seat)
	if t := h.LatestTrick(); t != nil && h.Phase() == sheepshead.PhaseTrick {
		renderTricks(h, p.names)
	}

	if len(plays) == 1 {
		pterm.Info.Printfln("Only one play: %s", plays[0])
		return plays[0], nil
	}

	options := make([]string, len(plays))
	for i, play := range plays {
		options[i] = fmt.Sprintf("%d. %s", i+1, play)
	}

	choice, err := pterm.DefaultInteractiveSelect.
		WithDefaultText(fmt.Sprintf("%s, choose a %s play", p.names[seat], h.Phase())).
		WithOptions(options).
		WithMaxHeight(10).
		Show()
	if err != nil {
		return nil, err
	}

	for i, option := range options {
		if option == choice {
			return plays[i], nil
		}
	}

	return nil, fmt.Errorf("unknown choice %q", choice)
}
