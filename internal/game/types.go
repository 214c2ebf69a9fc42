package game

import (
	"encoding/json"
	"fmt"
)

// Suit is one of the four card suits. SuitNone marks the Joker and the
// absence of a lead or trump suit.
type Suit int8

const (
	SuitNone Suit = iota
	Diamonds
	Spades
	Hearts
	Clubs
)

// Suits lists the real suits in bid-value order.
var Suits = []Suit{Diamonds, Spades, Hearts, Clubs}

var suitCodes = map[Suit]string{
	Diamonds: "D",
	Spades:   "S",
	Hearts:   "H",
	Clubs:    "C",
}

// Valid reports whether s is one of D, S, H, C.
func (s Suit) Valid() bool {
	return s >= Diamonds && s <= Clubs
}

// Value is the bid ordinal of the suit: D=0, S=1, H=2, C=3.
func (s Suit) Value() int {
	if !s.Valid() {
		return 0
	}
	return int(s - Diamonds)
}

func (s Suit) String() string {
	if code, ok := suitCodes[s]; ok {
		return code
	}
	return "-"
}

// ParseSuit maps a suit code ("D", "S", "H", "C") to a Suit.
func ParseSuit(code string) (Suit, error) {
	for s, c := range suitCodes {
		if c == code {
			return s, nil
		}
	}
	return SuitNone, fmt.Errorf("%w: unknown suit %q", ErrInvalidCard, code)
}

// Rank orders the standard ranks from Six (lowest) to Ace (highest).
// Joker sits outside that order and is never compared by rank.
type Rank int8

const (
	RankNone Rank = iota
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
	Joker
)

// Ranks lists the standard ranks in deck order, highest first.
var Ranks = []Rank{Ace, King, Queen, Jack, Ten, Nine, Eight, Seven, Six}

var rankCodes = map[Rank]string{
	Six:   "6",
	Seven: "7",
	Eight: "8",
	Nine:  "9",
	Ten:   "10",
	Jack:  "J",
	Queen: "Q",
	King:  "K",
	Ace:   "A",
	Joker: "Joker",
}

// Standard reports whether r is one of 6..A.
func (r Rank) Standard() bool {
	return r >= Six && r <= Ace
}

func (r Rank) String() string {
	if code, ok := rankCodes[r]; ok {
		return code
	}
	return "?"
}

// ParseRank maps a rank code ("6".."10", "J", "Q", "K", "A", "Joker") to a Rank.
func ParseRank(code string) (Rank, error) {
	for r, c := range rankCodes {
		if c == code {
			return r, nil
		}
	}
	return RankNone, fmt.Errorf("%w: unknown rank %q", ErrInvalidCard, code)
}

// Card is either a standard card (standard rank, real suit) or the Joker
// (rank Joker, SuitNone). The zero Card is invalid.
type Card struct {
	Rank Rank
	Suit Suit
}

// JokerCard is the single Joker in the deck.
var JokerCard = Card{Rank: Joker, Suit: SuitNone}

// NewCard builds a standard card and rejects any other combination.
func NewCard(rank Rank, suit Suit) (Card, error) {
	if !rank.Standard() || !suit.Valid() {
		return Card{}, fmt.Errorf("%w: %s%s", ErrInvalidCard, rank, suit)
	}
	return Card{Rank: rank, Suit: suit}, nil
}

// MustCard is NewCard for literals known to be valid.
func MustCard(rank Rank, suit Suit) Card {
	c, err := NewCard(rank, suit)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Card) IsJoker() bool {
	return c.Rank == Joker
}

// Valid reports whether c is the Joker or a well-formed standard card.
func (c Card) Valid() bool {
	if c.IsJoker() {
		return c.Suit == SuitNone
	}
	return c.Rank.Standard() && c.Suit.Valid()
}

func (c Card) String() string {
	if c.IsJoker() {
		return "Joker"
	}
	return c.Rank.String() + c.Suit.String()
}

type cardJSON struct {
	Rank string  `json:"rank"`
	Suit *string `json:"suit"`
}

func (c Card) MarshalJSON() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: cannot encode %v", ErrInvalidCard, c)
	}
	out := cardJSON{Rank: c.Rank.String()}
	if !c.IsJoker() {
		s := c.Suit.String()
		out.Suit = &s
	}
	return json.Marshal(out)
}

func (c *Card) UnmarshalJSON(data []byte) error {
	var in cardJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	rank, err := ParseRank(in.Rank)
	if err != nil {
		return err
	}
	if rank == Joker {
		if in.Suit != nil {
			return fmt.Errorf("%w: joker cannot carry a suit", ErrInvalidCard)
		}
		*c = JokerCard
		return nil
	}
	if in.Suit == nil {
		return fmt.Errorf("%w: %s needs a suit", ErrInvalidCard, rank)
	}
	suit, err := ParseSuit(*in.Suit)
	if err != nil {
		return err
	}
	*c = Card{Rank: rank, Suit: suit}
	return nil
}

// Play is a single card put into a trick.
type Play struct {
	PlayerID string `json:"playerId"`
	Card     Card   `json:"card"`
}

// Trick is the ordered list of plays of one round of the table.
type Trick []Play

// Bid is the three cards a player commits at the start of a deal and the
// number of tricks they predict.
type Bid struct {
	Cards []Card `json:"cards"`
	Value int    `json:"value"`
}
