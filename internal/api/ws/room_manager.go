package ws

import (
	"ninety-nine/internal/game"
	"ninety-nine/internal/room"
	"ninety-nine/internal/shared"
)

// RoomManager is the part of the room registry the hub drives.
type RoomManager interface {
	CreateRoom() string
	JoinRoom(roomID, playerID, name string) (*room.Room, error)
	LeaveRoom(playerID string)
	SubmitBid(playerID string, cards []game.Card) error
	PlayCard(playerID string, card game.Card) error
	NextDeal(playerID string) error
	ListRooms() []shared.RoomSummary
}
