package sheepshead

import (
	"deepsheep/pkg/deck"
)

// PartnerMethod determines how the picker's partner is chosen
type PartnerMethod string

// partner methods
const (
	PartnerByCalledAce      PartnerMethod = "called-ace"
	PartnerByJackOfDiamonds PartnerMethod = "jack-of-diamonds"
	NoPartner               PartnerMethod = "none"
)

// NoPickerResult determines what happens when every player passes
type NoPickerResult string

// no-picker results
const (
	Leasters   NoPickerResult = "leasters"
	Doubler    NoPickerResult = "doubler"
	ForcedPick NoPickerResult = "forced-pick"
)

// Rules is the rule variation a hand is played under
// Rules are immutable once a hand is created
type Rules struct {
	NumPlayers     int            `yaml:"numPlayers" json:"numPlayers" envconfig:"num_players"`
	PartnerMethod  PartnerMethod  `yaml:"partnerMethod" json:"partnerMethod" envconfig:"partner_method"`
	NoPickerResult NoPickerResult `yaml:"noPickerResult" json:"noPickerResult" envconfig:"no_picker_result"`
	TrumpSuit      deck.Suit      `yaml:"trumpSuit" json:"trumpSuit" envconfig:"trump_suit"`
}

// DefaultRules returns five-handed, called-ace, leasters, diamonds-trump rules
func DefaultRules() Rules {
	return Rules{
		NumPlayers:     5,
		PartnerMethod:  PartnerByCalledAce,
		NoPickerResult: Leasters,
		TrumpSuit:      deck.Diamonds,
	}
}

// Validate returns a RulesError if the rules are not playable
func (r Rules) Validate() error {
	if r.NumPlayers < 3 || r.NumPlayers > 5 {
		return RulesError{Field: "numPlayers", Value: r.NumPlayers}
	}

	switch r.PartnerMethod {
	case PartnerByCalledAce, PartnerByJackOfDiamonds, NoPartner:
	default:
		return RulesError{Field: "partnerMethod", Value: r.PartnerMethod}
	}

	switch r.NoPickerResult {
	case Leasters, Doubler, ForcedPick:
	default:
		return RulesError{Field: "noPickerResult", Value: r.NoPickerResult}
	}

	if r.TrumpSuit != deck.Diamonds && r.TrumpSuit != deck.Clubs {
		return RulesError{Field: "trumpSuit", Value: r.TrumpSuit}
	}

	return nil
}

// CardsPerPlayer returns how many cards are dealt to each seat
func (r Rules) CardsPerPlayer() int {
	switch r.NumPlayers {
	case 3:
		return 10
	case 4:
		return 7
	case 5:
		return 6
	}

	return 0
}

// CardsInBlind returns how many cards are dealt to the blind
func (r Rules) CardsInBlind() int {
	switch r.NumPlayers {
	case 3:
		return 2
	case 4:
		return 4
	case 5:
		return 2
	}

	return 0
}

// PartnerIsAllowed returns true if the picker may play with a partner
// Three and four handed games are always played alone
func (r Rules) PartnerIsAllowed() bool {
	return r.NumPlayers == 5 && r.PartnerMethod != NoPartner
}

// PartnerByCalledAce returns true if the partner is called by a card
func (r Rules) PartnerByCalledAce() bool {
	return r.PartnerIsAllowed() && r.PartnerMethod == PartnerByCalledAce
}

// PartnerByJackOfDiamonds returns true if the jack of diamonds is the partner
func (r Rules) PartnerByJackOfDiamonds() bool {
	return r.PartnerIsAllowed() && r.PartnerMethod == PartnerByJackOfDiamonds
}

// CrackIsAllowed always returns false, cracking is not implemented
func (r Rules) CrackIsAllowed() bool {
	return false
}

// RecrackIsAllowed always returns false, recracking is not implemented
func (r Rules) RecrackIsAllowed() bool {
	return false
}

// OffSuits returns the non-trump suits in the order partners are called
func (r Rules) OffSuits() []deck.Suit {
	if r.TrumpSuit == deck.Clubs {
		return []deck.Suit{deck.Diamonds, deck.Spades, deck.Hearts}
	}

	return []deck.Suit{deck.Clubs, deck.Spades, deck.Hearts}
}
