package util

import (
	"fmt"

	"deepsheep/internal/rng"
)

var adjectives = []string{
	"Fast", "Slow", "Quick", "Speedy", "Trotting", "Weaving", "Waiving", "Gracious", "Healthy", "Happy", "Funny",
	"Red", "Blue", "Green", "Orange", "Purple", "Fuzzy", "Smiling", "Tall", "Grand", "Ultimate", "Prime",
}

var animals = []string{
	"Sheep", "Ram", "Ewe", "Lamb", "Goat", "Dog", "Cat", "Badger", "Otter", "Muskrat", "Fox",
	"Heron", "Crane", "Deer", "Walleye", "Muskie", "Cow", "Bear", "Wolf", "Eagle",
}

// SeatNames returns n distinct display names for the seats at a table
func SeatNames(g rng.Generator, n int) []string {
	names := make([]string, 0, n)
	seen := make(map[string]bool)
	for len(names) < n {
		name := fmt.Sprintf("%s %s", adjectives[g.Intn(len(adjectives))], animals[g.Intn(len(animals))])
		if seen[name] {
			continue
		}

		seen[name] = true
		names = append(names, name)
	}

	return names
}
