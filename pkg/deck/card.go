package deck

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Suit represents a card suit
type Suit string

// suit constants
const (
	NoSuit   Suit = ""
	Hearts   Suit = "hearts"
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Spades   Suit = "spades"

	// Trump is the synthetic suit queens, jacks and the trump suit fold into
	Trump Suit = "trump"
)

// Suits are the four printed suits
var Suits = []Suit{Clubs, Spades, Hearts, Diamonds}

// Card is an individual playing card
// Rank and Suit are the printed identity. Unknown marks a card the picker
// disguised as the called suit.
type Card struct {
	Rank    int  `json:"rank"`
	Suit    Suit `json:"suit"`
	Unknown bool `json:"unknown,omitempty"`
}

// face cards
const (
	Jack  = 11
	Queen = 12
	King  = 13
	Ace   = 14

	// UnknownRank is the rank a disguised card reports
	UnknownRank = 0

	// LowRank is the lowest rank in a sheepshead deck
	LowRank = 7
)

func (c *Card) String() string {
	var rank string
	switch c.Rank {
	case Jack:
		rank = "J"
	case Queen:
		rank = "Q"
	case King:
		rank = "K"
	case Ace:
		rank = "A"
	default:
		rank = strconv.Itoa(c.Rank)
	}

	var suit string
	switch c.Suit {
	case Clubs:
		suit = "♣"
	case Diamonds:
		suit = "♢"
	case Hearts:
		suit = "♡"
	case Spades:
		suit = "♠"
	default:
		panic("unknown suit")
	}

	if c.Unknown {
		return fmt.Sprintf("?%s%s", rank, suit)
	}

	return fmt.Sprintf("%s%s", rank, suit)
}

// Equal returns true if the cards are equal (matches suit and rank)
// The unknown flag is not part of a card's identity
func (c *Card) Equal(card *Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank
}

// Points returns the point value of the card by its printed rank
func (c *Card) Points() int {
	switch c.Rank {
	case Ace:
		return 11
	case 10:
		return 10
	case King:
		return 4
	case Queen:
		return 3
	case Jack:
		return 2
	}

	return 0
}

// Clone returns a copy of the card
func (c *Card) Clone() *Card {
	cp := *c
	return &cp
}

// SuitRank is the tie-break order between queens and jacks
func SuitRank(s Suit) int {
	switch s {
	case Clubs:
		return 4
	case Spades:
		return 3
	case Hearts:
		return 2
	case Diamonds:
		return 1
	}

	return 0
}

var cardRx = regexp.MustCompile(`(?i)^(\?)?([7-9]|1[0-4])([cdhs])\z`)

// CardFromString returns a Card from the string.
// The string must be in the format of <rank><suit> where rank >= 7 and <= 14 and suit in [cdhs]
// A leading "?" marks the card unknown
func CardFromString(s string) *Card {
	if s == "" {
		return nil
	}

	card, err := ParseCard(s)
	if err != nil {
		panic(err)
	}

	return card
}

// ParseCard is like CardFromString, but returns an error instead of panicking
func ParseCard(s string) (*Card, error) {
	match := cardRx.FindStringSubmatch(strings.TrimSpace(s))
	if match == nil {
		return nil, fmt.Errorf("could not parse card: %s", s)
	}

	rank, err := strconv.Atoi(match[2])
	if err != nil {
		return nil, fmt.Errorf("could not parse card `%s`: %w", s, err)
	}

	suit, err := SuitFromLetter(match[3])
	if err != nil {
		return nil, err
	}

	return &Card{
		Rank:    rank,
		Suit:    suit,
		Unknown: match[1] == "?",
	}, nil
}

// SuitFromLetter converts c, d, h or s to a suit
func SuitFromLetter(s string) (Suit, error) {
	switch strings.ToLower(s) {
	case "c":
		return Clubs, nil
	case "d":
		return Diamonds, nil
	case "h":
		return Hearts, nil
	case "s":
		return Spades, nil
	}

	return NoSuit, fmt.Errorf("unknown suit: %s", s)
}

// CardsFromString will returns a slice of cards
func CardsFromString(s string) []*Card {
	if s == "" {
		return []*Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]*Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}

// CardToString converts a card (Ace of Clubs) to a string (14c)
func CardToString(card *Card) string {
	if card == nil {
		return ""
	}

	var suit string
	switch card.Suit {
	case Clubs:
		suit = "c"
	case Hearts:
		suit = "h"
	case Diamonds:
		suit = "d"
	case Spades:
		suit = "s"
	}

	unknown := ""
	if card.Unknown {
		unknown = "?"
	}

	return fmt.Sprintf("%s%d%s", unknown, card.Rank, suit)
}

// CardsToString will convert a slice of cards to a string in the format of 7c,8h,14s,...
func CardsToString(cards []*Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}
