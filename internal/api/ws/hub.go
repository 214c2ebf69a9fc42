package ws

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"ninety-nine/internal/game"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 8 << 10
)

type client struct {
	id   string
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) send(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteJSON(v)
}

// Hub owns every live connection. Each connection is one player session
// identified by a server-assigned id.
type Hub struct {
	mu          sync.RWMutex
	clients     map[string]*client
	roomManager RoomManager
	upgrader    websocket.Upgrader
	log         *logrus.Entry
}

// NewHub builds a hub that accepts upgrades from the given origins. An empty
// list or "*" accepts any origin.
func NewHub(roomManager RoomManager, allowedOrigins []string) *Hub {
	h := &Hub{
		clients:     make(map[string]*client),
		roomManager: roomManager,
		log:         logrus.WithField("component", "ws"),
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     originChecker(allowedOrigins),
	}
	return h
}

func originChecker(allowed []string) func(r *http.Request) bool {
	set := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		if o == "*" {
			return func(*http.Request) bool { return true }
		}
		set[o] = struct{}{}
	}
	if len(set) == 0 {
		return func(*http.Request) bool { return true }
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		_, ok := set[origin]
		return ok
	}
}

// HandleWS upgrades the request and serves the session until the socket
// closes. Closing leaves whatever room the session was in.
func (h *Hub) HandleWS(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Warnf("upgrade failed: %v", err)
		return
	}

	cl := &client{id: uuid.NewString(), conn: conn}
	h.mu.Lock()
	h.clients[cl.id] = cl
	h.mu.Unlock()

	log := h.log.WithField("player", cl.id)
	log.Info("connected")

	done := make(chan struct{})
	defer func() {
		close(done)
		h.mu.Lock()
		delete(h.clients, cl.id)
		h.mu.Unlock()
		h.roomManager.LeaveRoom(cl.id)
		_ = conn.Close()
		log.Info("disconnected")
	}()

	go h.keepAlive(cl, done)

	if err := cl.send(Event{Action: ActionSession, Data: SessionData{PlayerID: cl.id}}); err != nil {
		return
	}

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warnf("read: %v", err)
			}
			return
		}

		var ack Ack
		var req Request
		if err := json.Unmarshal(raw, &req); err != nil {
			ack = failure(req, fmt.Errorf("%w: malformed message: %v", errBadRequest, err))
		} else {
			ack = h.dispatch(cl.id, req)
		}
		if err := cl.send(ack); err != nil {
			log.Debugf("ack write failed: %v", err)
			return
		}
	}
}

func (h *Hub) keepAlive(cl *client, done <-chan struct{}) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if err := cl.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}

// dispatch runs one command and builds its ack. State pushes caused by the
// command are sent by the room manager before dispatch returns.
func (h *Hub) dispatch(playerID string, req Request) Ack {
	log := h.log.WithFields(logrus.Fields{"player": playerID, "action": req.Action})

	var (
		data interface{}
		err  error
	)
	switch req.Action {
	case ActionCreateRoom:
		data = RoomCreatedData{RoomID: h.roomManager.CreateRoom()}

	case ActionJoinRoom:
		var in JoinRoomData
		if err = decode(req.Data, &in); err != nil {
			break
		}
		r, joinErr := h.roomManager.JoinRoom(in.RoomID, playerID, in.PlayerName)
		if joinErr != nil {
			err = joinErr
			break
		}
		data, err = r.PlayerState(playerID)

	case ActionLeaveRoom:
		h.roomManager.LeaveRoom(playerID)

	case ActionSubmitBid:
		var in SubmitBidData
		if err = decode(req.Data, &in); err != nil {
			if errors.Is(err, game.ErrInvalidCard) {
				err = fmt.Errorf("%w: %v", game.ErrInvalidBid, err)
			}
			break
		}
		err = h.roomManager.SubmitBid(playerID, in.Cards)

	case ActionPlayCard:
		var in PlayCardData
		if err = decode(req.Data, &in); err != nil {
			if errors.Is(err, game.ErrInvalidCard) {
				err = fmt.Errorf("%w: %v", game.ErrInvalidPlay, err)
			}
			break
		}
		err = h.roomManager.PlayCard(playerID, in.Card)

	case ActionNextDeal:
		err = h.roomManager.NextDeal(playerID)

	case ActionListRooms:
		data = h.roomManager.ListRooms()

	default:
		err = fmt.Errorf("%w: unknown action %q", errBadRequest, req.Action)
	}

	if err != nil {
		log.Debugf("failed: %v", err)
		return failure(req, err)
	}
	return Ack{Action: ActionAck, RequestID: req.RequestID, Success: true, Data: data}
}

func decode(raw json.RawMessage, v interface{}) error {
	if len(raw) == 0 {
		return fmt.Errorf("%w: missing data", errBadRequest)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		if errors.Is(err, game.ErrInvalidCard) {
			return err
		}
		return fmt.Errorf("%w: %v", errBadRequest, err)
	}
	return nil
}

func failure(req Request, err error) Ack {
	return Ack{
		Action:    ActionAck,
		RequestID: req.RequestID,
		Success:   false,
		Error:     err.Error(),
		Code:      ErrorCode(err),
	}
}

// Broadcast sends an event to every listed member that is still connected.
func (h *Hub) Broadcast(roomID string, members []string, event string, data interface{}) {
	if h == nil {
		return
	}
	msg := Event{Action: event, Data: data}
	for _, id := range members {
		h.write(id, msg)
	}
	h.log.WithFields(logrus.Fields{"room": roomID, "event": event}).Debugf("broadcast to %d", len(members))
}

// SendTo sends an event to a single session.
func (h *Hub) SendTo(playerID, event string, data interface{}) {
	if h == nil {
		return
	}
	h.write(playerID, Event{Action: event, Data: data})
}

func (h *Hub) write(playerID string, msg Event) {
	h.mu.RLock()
	cl, ok := h.clients[playerID]
	h.mu.RUnlock()
	if !ok {
		return
	}
	if err := cl.send(msg); err != nil {
		// The read loop notices the broken socket and cleans up.
		h.log.WithField("player", playerID).Debugf("send %s: %v", msg.Action, err)
	}
}

// Connected reports how many sessions are open.
func (h *Hub) Connected() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
