package http

// RoomCreatedResponse is returned by POST /api/rooms.
type RoomCreatedResponse struct {
	RoomID string `json:"roomId"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// SuitInfo describes one suit and what it is worth as a bid card.
type SuitInfo struct {
	Code     string `json:"code"`
	BidValue int    `json:"bidValue"`
}

// RulesResponse is the static rule metadata clients render help from.
type RulesResponse struct {
	Players    int        `json:"players"`
	HandSize   int        `json:"handSize"`
	BidSize    int        `json:"bidSize"`
	DeckSize   int        `json:"deckSize"`
	Suits      []SuitInfo `json:"suits"`
	RankOrder  []string   `json:"rankOrder"`
	ExactBonus []int      `json:"exactBonus"`
}
