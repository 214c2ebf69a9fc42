package ws

import (
	"encoding/json"
	"errors"

	"ninety-nine/internal/game"
	"ninety-nine/internal/room"
)

// Client commands.
const (
	ActionCreateRoom = "create-room"
	ActionJoinRoom   = "join-room"
	ActionLeaveRoom  = "leave-room"
	ActionSubmitBid  = "submit-bid"
	ActionPlayCard   = "play-card"
	ActionNextDeal   = "next-deal"
	ActionListRooms  = "list-rooms"
)

// Server messages that are not room events.
const (
	ActionAck     = "ack"
	ActionSession = "session"
)

// Request is a command sent by a client. RequestID is echoed in the ack.
type Request struct {
	Action    string          `json:"action"`
	RequestID string          `json:"requestId,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// Ack answers exactly one Request.
type Ack struct {
	Action    string      `json:"action"`
	RequestID string      `json:"requestId,omitempty"`
	Success   bool        `json:"success"`
	Error     string      `json:"error,omitempty"`
	Code      string      `json:"code,omitempty"`
	Data      interface{} `json:"data,omitempty"`
}

// Event is a server push.
type Event struct {
	Action string      `json:"action"`
	Data   interface{} `json:"data"`
}

type JoinRoomData struct {
	RoomID     string `json:"roomId"`
	PlayerName string `json:"playerName"`
}

type SubmitBidData struct {
	Cards []game.Card `json:"cards"`
}

type PlayCardData struct {
	Card game.Card `json:"card"`
}

type SessionData struct {
	PlayerID string `json:"playerId"`
}

type RoomCreatedData struct {
	RoomID string `json:"roomId"`
}

var errBadRequest = errors.New("bad request")

// ErrorCode maps a command error to the stable code sent to clients.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, room.ErrRoomNotFound):
		return "ROOM_NOT_FOUND"
	case errors.Is(err, room.ErrRoomFull):
		return "ROOM_FULL"
	case errors.Is(err, room.ErrAlreadyInRoom):
		return "ALREADY_IN_ROOM"
	case errors.Is(err, room.ErrNotInRoom):
		return "NOT_IN_ROOM"
	case errors.Is(err, room.ErrWrongPhase):
		return "WRONG_PHASE"
	case errors.Is(err, room.ErrNotYourTurn):
		return "NOT_YOUR_TURN"
	case errors.Is(err, game.ErrInvalidBid), errors.Is(err, game.ErrJokerNotBiddable):
		return "INVALID_BID"
	case errors.Is(err, game.ErrInvalidPlay):
		return "INVALID_PLAY"
	default:
		return "BAD_REQUEST"
	}
}
