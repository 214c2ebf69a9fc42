package game

import (
	"fmt"
	"math/rand"
)

const (
	// Players is the only table size the game supports.
	Players = 3
	// HandSize is the number of cards dealt to each player.
	HandSize = 12
	// BidSize is the number of cards in a bid.
	BidSize = 3
	// DeckSize is 9 ranks x 4 suits plus the Joker.
	DeckSize = 37
)

// Deck is an ordered pile of cards. Dealing takes cards from the end.
type Deck struct {
	cards []Card
}

// NewDeck builds the full 37-card deck in its fixed order: suits D, S, H, C,
// each from Ace down to Six, followed by the Joker.
func NewDeck() *Deck {
	cards := make([]Card, 0, DeckSize)
	for _, s := range Suits {
		for _, r := range Ranks {
			cards = append(cards, Card{Rank: r, Suit: s})
		}
	}
	cards = append(cards, JokerCard)
	return &Deck{cards: cards}
}

// Cards returns a copy of the remaining cards.
func (d *Deck) Cards() []Card {
	return append([]Card(nil), d.cards...)
}

func (d *Deck) Len() int {
	return len(d.cards)
}

// Shuffle permutes the deck in place with Fisher-Yates.
func (d *Deck) Shuffle(r *rand.Rand) {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

func (d *Deck) pop() Card {
	c := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return c
}

// Deal hands out HandSize cards to each of the players one at a time and
// returns the hands plus the single remaining turn-up card.
func (d *Deck) Deal(playerCount int) ([][]Card, Card, error) {
	if playerCount != Players {
		return nil, Card{}, fmt.Errorf("%w: got %d", ErrInvalidConfiguration, playerCount)
	}
	if d.Len() != DeckSize {
		return nil, Card{}, fmt.Errorf("%w: deck holds %d cards", ErrInvalidConfiguration, d.Len())
	}

	hands := make([][]Card, playerCount)
	for i := range hands {
		hands[i] = make([]Card, 0, HandSize)
	}
	for i := 0; i < HandSize; i++ {
		for p := 0; p < playerCount; p++ {
			hands[p] = append(hands[p], d.pop())
		}
	}
	return hands, d.pop(), nil
}

// BidValue sums the suit values of the given cards.
func BidValue(cards []Card) (int, error) {
	sum := 0
	for _, c := range cards {
		if c.IsJoker() {
			return 0, ErrJokerNotBiddable
		}
		sum += c.Suit.Value()
	}
	return sum, nil
}

// IsValidBid reports whether cards is exactly three standard cards.
func IsValidBid(cards []Card) bool {
	if len(cards) != BidSize {
		return false
	}
	for _, c := range cards {
		if c.IsJoker() || !c.Valid() {
			return false
		}
	}
	return true
}

// NewBid validates cards and computes the bid value.
func NewBid(cards []Card) (Bid, error) {
	if !IsValidBid(cards) {
		return Bid{}, ErrInvalidBid
	}
	value, err := BidValue(cards)
	if err != nil {
		return Bid{}, err
	}
	return Bid{Cards: append([]Card(nil), cards...), Value: value}, nil
}
