package shared

import "ninety-nine/internal/game"

// Phase is the stage of a room's deal cycle.
type Phase string

const (
	PhaseWaiting Phase = "WAITING"
	PhaseBidding Phase = "BIDDING"
	PhasePlaying Phase = "PLAYING"
	PhaseScoring Phase = "SCORING"
)

// PlayerView is what every member of a room may see about a player.
type PlayerView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	HandSize  int       `json:"handSize"`
	Bid       *game.Bid `json:"bid"`
	TricksWon int       `json:"tricksWon"`
	Score     int       `json:"score"`
}

// GameState is the public projection of a room, pushed to all members.
type GameState struct {
	RoomID       string       `json:"roomId"`
	Players      []PlayerView `json:"players"`
	TurnUpCard   *game.Card   `json:"turnUpCard"`
	CurrentTrick []game.Play  `json:"currentTrick"`
	Phase        Phase        `json:"phase"`
	CurrentTurn  string       `json:"currentTurn"`
	DealNumber   int          `json:"dealNumber"`
	// Version increases with every change to the room. A client that sees
	// a lower version than one it already holds can drop the message.
	Version int `json:"version"`
}

// PlayerState is the public state plus the receiving player's own hand.
type PlayerState struct {
	GameState
	Hand []game.Card `json:"hand"`
}

// RoomSummary is the discovery listing entry for a room.
type RoomSummary struct {
	RoomID      string `json:"roomId"`
	PlayerCount int    `json:"playerCount"`
	Phase       Phase  `json:"phase"`
}
