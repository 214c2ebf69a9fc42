package http

import (
	"net/http"

	"ninety-nine/internal/game"
	"ninety-nine/internal/room"
	"ninety-nine/internal/shared"

	"github.com/gin-gonic/gin"
)

// Rooms is the slice of the room registry the REST API reads from.
type Rooms interface {
	CreateRoom() string
	ListRooms() []shared.RoomSummary
	Get(roomID string) (*room.Room, bool)
}

// @Summary Server banner
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func IndexHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Ninety-Nine Game Server"})
}

// @Summary List rooms
// @Description Summaries of every open room, ordered by room id
// @Tags Room
// @Produce json
// @Success 200 {array} shared.RoomSummary
// @Router /api/rooms [get]
func ListRoomsHandler(rm Rooms) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, rm.ListRooms())
	}
}

// @Summary Create room
// @Description Creates an empty room. Players join it over the websocket.
// @Tags Room
// @Produce json
// @Success 201 {object} RoomCreatedResponse
// @Router /api/rooms [post]
func CreateRoomHandler(rm Rooms) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusCreated, RoomCreatedResponse{RoomID: rm.CreateRoom()})
	}
}

// @Summary Get room
// @Description Public state of a room. Hands are never included.
// @Tags Room
// @Produce json
// @Param roomId path string true "Room ID"
// @Success 200 {object} shared.GameState
// @Failure 404 {object} ErrorResponse
// @Router /api/rooms/{roomId} [get]
func GetRoomHandler(rm Rooms) gin.HandlerFunc {
	return func(c *gin.Context) {
		r, ok := rm.Get(c.Param("roomId"))
		if !ok {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: room.ErrRoomNotFound.Error()})
			return
		}
		c.JSON(http.StatusOK, r.GameState())
	}
}

// @Summary Game rules
// @Tags Config
// @Produce json
// @Success 200 {object} RulesResponse
// @Router /api/rules [get]
func RulesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, rules())
}

func rules() RulesResponse {
	out := RulesResponse{
		Players:  game.Players,
		HandSize: game.HandSize,
		BidSize:  game.BidSize,
		DeckSize: game.DeckSize,
	}
	for _, s := range game.Suits {
		out.Suits = append(out.Suits, SuitInfo{Code: s.String(), BidValue: s.Value()})
	}
	for _, r := range game.Ranks {
		out.RankOrder = append(out.RankOrder, r.String())
	}
	for n := 0; n <= game.Players; n++ {
		out.ExactBonus = append(out.ExactBonus, game.ExactBidBonus(n))
	}
	return out
}
