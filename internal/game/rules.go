package game

// TrumpSuit derives the trump suit from the turn-up card. A turned-up 9 or
// Joker means the deal is played without trump.
func TrumpSuit(turnUp Card) Suit {
	if turnUp.IsJoker() || turnUp.Rank == Nine {
		return SuitNone
	}
	return turnUp.Suit
}

// ContainsCard reports whether hand holds c.
func ContainsCard(hand []Card, c Card) bool {
	for _, h := range hand {
		if h == c {
			return true
		}
	}
	return false
}

// RemoveCards returns hand without any card listed in toRemove.
func RemoveCards(hand []Card, toRemove ...Card) []Card {
	out := make([]Card, 0, len(hand))
	for _, c := range hand {
		if ContainsCard(toRemove, c) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// IsValidPlay checks that card is in hand and follows the lead suit when the
// hand is able to.
func IsValidPlay(hand []Card, card Card, lead Suit) bool {
	if !ContainsCard(hand, card) {
		return false
	}
	if lead == SuitNone {
		return true
	}
	for _, c := range hand {
		if c.Suit == lead {
			return card.Suit == lead
		}
	}
	return true
}

// IsWinningCard reports whether candidate takes the trick from the card
// currently winning it. trump is SuitNone in a no-trump deal.
func IsWinningCard(candidate, current Card, trump Suit) bool {
	// The Joker is only live when there is a trump suit.
	if candidate.IsJoker() {
		return trump != SuitNone
	}
	if current.IsJoker() {
		return false
	}

	if trump != SuitNone {
		if candidate.Suit == trump && current.Suit != trump {
			return true
		}
		if candidate.Suit != trump && current.Suit == trump {
			return false
		}
	}

	if candidate.Suit == current.Suit {
		return candidate.Rank > current.Rank
	}

	// Off-suit, no trump decision: the established leader stands.
	return false
}

// TrickWinner returns the id of the player who takes the trick.
func TrickWinner(trick Trick, turnUp Card) string {
	if len(trick) == 0 {
		return ""
	}
	trump := TrumpSuit(turnUp)

	winner := trick[0]
	for _, p := range trick[1:] {
		if IsWinningCard(p.Card, winner.Card, trump) {
			winner = p
		}
	}
	return winner.PlayerID
}

// ExactBidBonus is the bonus each exact bidder earns, keyed by how many
// players bid exactly in the round.
func ExactBidBonus(exactCount int) int {
	switch exactCount {
	case 3:
		return 10
	case 2:
		return 20
	case 1:
		return 30
	default:
		return 0
	}
}
