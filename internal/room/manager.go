package room

import (
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"ninety-nine/internal/config"
	"ninety-nine/internal/game"
	"ninety-nine/internal/shared"

	"github.com/sirupsen/logrus"
)

type Store interface {
	GetRoom(id string) (*Room, bool)
	SaveRoom(r *Room)
	DeleteRoom(id string)
	Rooms() []*Room
}

// Manager is the room directory. It owns the player to room index, routes
// commands to the owning room and pushes state after every change.
type Manager struct {
	mu          sync.RWMutex
	store       Store
	cfg         config.Config
	hub         Broadcaster
	playerRooms map[string]string
	rand        *rand.Rand
	log         *logrus.Entry
}

func NewManager(s Store, cfg config.Config, hub Broadcaster) *Manager {
	seed := cfg.ShuffleSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if hub == nil {
		hub = nopBroadcaster{}
	}
	return &Manager{
		store:       s,
		cfg:         cfg,
		hub:         hub,
		playerRooms: make(map[string]string),
		rand:        rand.New(rand.NewSource(seed)),
		log:         logrus.WithField("component", "rooms"),
	}
}

func (m *Manager) SetHub(hub Broadcaster) {
	if hub == nil {
		hub = nopBroadcaster{}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hub = hub
}

func (m *Manager) broadcaster() Broadcaster {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.hub
}

// CreateRoom registers an empty room under a fresh code and returns the code.
func (m *Manager) CreateRoom() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	code := m.randCode(m.cfg.RoomCodeLength)
	for {
		if _, taken := m.store.GetRoom(code); !taken {
			break
		}
		code = m.randCode(m.cfg.RoomCodeLength)
	}

	r := New(code,
		WithRand(rand.New(rand.NewSource(m.rand.Int63()))),
		WithLogger(m.log),
	)
	m.store.SaveRoom(r)
	m.log.WithField("room", code).Info("room created")
	return code
}

func (m *Manager) JoinRoom(roomID, playerID, name string) (*Room, error) {
	r, err := m.join(normalizeCode(roomID), playerID, name)
	if err != nil {
		m.log.WithFields(logrus.Fields{"room": roomID, "player": playerID}).Debugf("join rejected: %v", err)
		return nil, err
	}
	m.emit(r)
	return r, nil
}

func (m *Manager) join(roomID, playerID, name string) (*Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, seated := m.playerRooms[playerID]; seated {
		return nil, ErrAlreadyInRoom
	}
	r, ok := m.store.GetRoom(roomID)
	if !ok {
		return nil, ErrRoomNotFound
	}
	if err := r.AddPlayer(playerID, name); err != nil {
		return nil, err
	}
	m.playerRooms[playerID] = roomID
	return r, nil
}

// LeaveRoom removes the player from their room, deleting the room once it is
// empty. Unknown players are ignored.
func (m *Manager) LeaveRoom(playerID string) {
	r, remaining := m.leave(playerID)
	if r != nil && remaining > 0 {
		m.emit(r)
	}
}

func (m *Manager) leave(playerID string) (*Room, int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	roomID, ok := m.playerRooms[playerID]
	if !ok {
		return nil, 0
	}
	delete(m.playerRooms, playerID)

	r, ok := m.store.GetRoom(roomID)
	if !ok {
		return nil, 0
	}
	remaining := r.RemovePlayer(playerID)
	if remaining == 0 {
		m.store.DeleteRoom(roomID)
		m.log.WithField("room", roomID).Info("room deleted")
	}
	return r, remaining
}

func (m *Manager) SubmitBid(playerID string, cards []game.Card) error {
	return m.apply(playerID, "submit-bid", func(r *Room) error {
		return r.SubmitBid(playerID, cards)
	})
}

func (m *Manager) PlayCard(playerID string, card game.Card) error {
	return m.apply(playerID, "play-card", func(r *Room) error {
		return r.PlayCard(playerID, card)
	})
}

func (m *Manager) NextDeal(playerID string) error {
	return m.apply(playerID, "next-deal", func(r *Room) error {
		return r.NextDeal(playerID)
	})
}

func (m *Manager) apply(playerID, action string, fn func(*Room) error) error {
	r, err := m.RoomOf(playerID)
	if err != nil {
		return err
	}
	if err := fn(r); err != nil {
		m.log.WithFields(logrus.Fields{
			"room":   r.ID,
			"player": playerID,
			"action": action,
		}).Debugf("rejected: %v", err)
		return err
	}
	m.emit(r)
	return nil
}

func (m *Manager) Get(roomID string) (*Room, bool) {
	return m.store.GetRoom(normalizeCode(roomID))
}

// RoomOf returns the room the player is seated in.
func (m *Manager) RoomOf(playerID string) (*Room, error) {
	m.mu.RLock()
	roomID, ok := m.playerRooms[playerID]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNotInRoom
	}
	r, ok := m.store.GetRoom(roomID)
	if !ok {
		return nil, ErrNotInRoom
	}
	return r, nil
}

func (m *Manager) ListRooms() []shared.RoomSummary {
	rooms := m.store.Rooms()
	out := make([]shared.RoomSummary, 0, len(rooms))
	for _, r := range rooms {
		out = append(out, r.Summary())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RoomID < out[j].RoomID })
	return out
}

// emit pushes the public state to the whole room and each member's private
// state to that member alone. Pushes for one room never interleave, and each
// reads the state current when it starts, so the last push a member gets
// always carries the latest version.
func (m *Manager) emit(r *Room) {
	r.emitMu.Lock()
	defer r.emitMu.Unlock()

	hub := m.broadcaster()
	pub, private := r.Snapshot()
	members := make([]string, len(pub.Players))
	for i, p := range pub.Players {
		members[i] = p.ID
	}
	hub.Broadcast(r.ID, members, EventGameState, pub)
	for i, id := range members {
		hub.SendTo(id, EventPlayerState, private[i])
	}
}

const letters = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

func (m *Manager) randCode(n int) string {
	if n <= 0 {
		n = 6
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[m.rand.Intn(len(letters))]
	}
	return string(b)
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
