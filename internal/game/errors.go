package game

import "errors"

var (
	ErrInvalidCard          = errors.New("invalid card")
	ErrInvalidConfiguration = errors.New("this game is designed for exactly 3 players")
	ErrJokerNotBiddable     = errors.New("joker cannot be used for bidding")
	ErrInvalidBid           = errors.New("invalid bid")
	ErrInvalidPlay          = errors.New("invalid card play")
)
