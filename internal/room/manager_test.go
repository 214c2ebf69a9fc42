package room

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"testing"

	"ninety-nine/internal/config"
	"ninety-nine/internal/game"
	"ninety-nine/internal/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapStore struct {
	mu    sync.Mutex
	rooms map[string]*Room
}

func newMapStore() *mapStore {
	return &mapStore{rooms: map[string]*Room{}}
}

func (s *mapStore) GetRoom(id string) (*Room, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rooms[id]
	return r, ok
}

func (s *mapStore) SaveRoom(r *Room) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms[r.ID] = r
}

func (s *mapStore) DeleteRoom(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rooms, id)
}

func (s *mapStore) Rooms() []*Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Room, 0, len(s.rooms))
	for _, r := range s.rooms {
		out = append(out, r)
	}
	return out
}

type sent struct {
	to    string
	event string
	data  interface{}
}

// mockBroadcaster records every event the manager emits.
type mockBroadcaster struct {
	mu         sync.Mutex
	broadcasts []sent
	direct     []sent
}

func (b *mockBroadcaster) Broadcast(roomID string, members []string, event string, data interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.broadcasts = append(b.broadcasts, sent{to: roomID, event: event, data: data})
}

func (b *mockBroadcaster) SendTo(playerID, event string, data interface{}) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.direct = append(b.direct, sent{to: playerID, event: event, data: data})
}

func (b *mockBroadcaster) reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.broadcasts = nil
	b.direct = nil
}

func (b *mockBroadcaster) lastPrivate(playerID string) (shared.PlayerState, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := len(b.direct) - 1; i >= 0; i-- {
		if b.direct[i].to == playerID && b.direct[i].event == EventPlayerState {
			return b.direct[i].data.(shared.PlayerState), true
		}
	}
	return shared.PlayerState{}, false
}

func newTestManager() (*Manager, *mockBroadcaster) {
	hub := &mockBroadcaster{}
	m := NewManager(newMapStore(), config.Config{RoomCodeLength: 6, ShuffleSeed: 42}, hub)
	return m, hub
}

func TestCreateRoom(t *testing.T) {
	m, _ := newTestManager()
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		id := m.CreateRoom()
		assert.Len(t, id, 6)
		assert.False(t, seen[id], "room codes are unique")
		seen[id] = true

		r, ok := m.Get(id)
		require.True(t, ok)
		assert.Equal(t, shared.PhaseWaiting, r.Summary().Phase)
	}
	assert.Len(t, m.ListRooms(), 50)
}

func TestJoinRoom(t *testing.T) {
	m, hub := newTestManager()
	id := m.CreateRoom()

	_, err := m.JoinRoom("NOPE00", "p1", "Ann")
	assert.ErrorIs(t, err, ErrRoomNotFound)

	r, err := m.JoinRoom(id, "p1", "Ann")
	require.NoError(t, err)
	assert.Equal(t, id, r.ID)

	got, err := m.RoomOf("p1")
	require.NoError(t, err)
	assert.Same(t, r, got)

	_, err = m.JoinRoom(id, "p1", "Ann")
	assert.ErrorIs(t, err, ErrAlreadyInRoom)

	require.Len(t, hub.broadcasts, 1)
	assert.Equal(t, EventGameState, hub.broadcasts[0].event)
	ps, ok := hub.lastPrivate("p1")
	require.True(t, ok)
	assert.Equal(t, id, ps.RoomID)
}

func TestJoinRoomIsCaseInsensitive(t *testing.T) {
	m, _ := newTestManager()
	id := m.CreateRoom()
	_, err := m.JoinRoom(" "+strings.ToLower(id)+" ", "p1", "Ann")
	assert.NoError(t, err)
}

func TestJoinFullRoom(t *testing.T) {
	m, hub := newTestManager()
	id := m.CreateRoom()
	for i := 1; i <= 3; i++ {
		_, err := m.JoinRoom(id, fmt.Sprintf("p%d", i), "x")
		require.NoError(t, err)
	}

	hub.reset()
	_, err := m.JoinRoom(id, "p4", "late")
	assert.ErrorIs(t, err, ErrRoomFull)
	_, err = m.RoomOf("p4")
	assert.ErrorIs(t, err, ErrNotInRoom)
	assert.Empty(t, hub.broadcasts, "rejected commands emit nothing")

	// The third join started the deal.
	r, _ := m.Get(id)
	assert.Equal(t, shared.PhaseBidding, r.Summary().Phase)
}

func TestCommandsRouteToOwningRoom(t *testing.T) {
	m, hub := newTestManager()
	id := m.CreateRoom()
	for i := 1; i <= 3; i++ {
		_, err := m.JoinRoom(id, fmt.Sprintf("p%d", i), "x")
		require.NoError(t, err)
	}

	assert.ErrorIs(t, m.SubmitBid("stranger", nil), ErrNotInRoom)
	assert.ErrorIs(t, m.PlayCard("stranger", game.JokerCard), ErrNotInRoom)
	assert.ErrorIs(t, m.NextDeal("stranger"), ErrNotInRoom)

	ps, ok := hub.lastPrivate("p1")
	require.True(t, ok)
	require.Len(t, ps.Hand, game.HandSize)

	var bid []game.Card
	for _, c := range ps.Hand {
		if !c.IsJoker() && len(bid) < game.BidSize {
			bid = append(bid, c)
		}
	}
	hub.reset()
	assert.ErrorIs(t, m.SubmitBid("p2", bid), ErrNotYourTurn)
	require.NoError(t, m.SubmitBid("p1", bid))

	assert.Len(t, hub.broadcasts, 1)
	assert.Len(t, hub.direct, 3)
	st := hub.broadcasts[0].data.(shared.GameState)
	assert.Equal(t, "p2", st.CurrentTurn)
	assert.Equal(t, id, hub.broadcasts[0].to)
}

func TestLeaveRoom(t *testing.T) {
	m, hub := newTestManager()
	id := m.CreateRoom()
	for i := 1; i <= 3; i++ {
		_, err := m.JoinRoom(id, fmt.Sprintf("p%d", i), "x")
		require.NoError(t, err)
	}

	hub.reset()
	m.LeaveRoom("p2")
	_, err := m.RoomOf("p2")
	assert.ErrorIs(t, err, ErrNotInRoom)

	summaries := m.ListRooms()
	require.Len(t, summaries, 1)
	assert.Equal(t, shared.RoomSummary{RoomID: id, PlayerCount: 2, Phase: shared.PhaseWaiting}, summaries[0])
	require.Len(t, hub.broadcasts, 1, "remaining members are told")

	m.LeaveRoom("unknown")
	m.LeaveRoom("p1")
	m.LeaveRoom("p3")
	_, ok := m.Get(id)
	assert.False(t, ok, "empty rooms are deleted")
	assert.Empty(t, m.ListRooms())
}

func TestListRoomsSorted(t *testing.T) {
	m, _ := newTestManager()
	for i := 0; i < 5; i++ {
		m.CreateRoom()
	}
	rooms := m.ListRooms()
	for i := 1; i < len(rooms); i++ {
		assert.Less(t, rooms[i-1].RoomID, rooms[i].RoomID)
	}
}

func TestConcurrentRooms(t *testing.T) {
	m, _ := newTestManager()
	const rooms = 8

	var wg sync.WaitGroup
	for i := 0; i < rooms; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := m.CreateRoom()
			for p := 0; p < 3; p++ {
				_, err := m.JoinRoom(id, fmt.Sprintf("r%d-p%d", i, p), "x")
				assert.NoError(t, err)
			}
		}(i)
	}
	wg.Wait()

	summaries := m.ListRooms()
	require.Len(t, summaries, rooms)
	for _, s := range summaries {
		assert.Equal(t, 3, s.PlayerCount)
		assert.Equal(t, shared.PhaseBidding, s.Phase)
	}

	// Everyone leaves at once; every room must disappear.
	for i := 0; i < rooms; i++ {
		for p := 0; p < 3; p++ {
			wg.Add(1)
			go func(id string) {
				defer wg.Done()
				m.LeaveRoom(id)
			}(fmt.Sprintf("r%d-p%d", i, p))
		}
	}
	wg.Wait()
	assert.Empty(t, m.ListRooms())
}

func TestNilBroadcaster(t *testing.T) {
	m := NewManager(newMapStore(), config.Config{}, nil)
	id := m.CreateRoom()
	assert.Len(t, id, 6)
	_, err := m.JoinRoom(id, "p1", "Ann")
	assert.NoError(t, err)
}

// playWhenDue plays the deal for one seat, racing the other seats' goroutines.
func playWhenDue(t *testing.T, m *Manager, r *Room, playerID string) {
	for {
		ps, err := r.PlayerState(playerID)
		if !assert.NoError(t, err) {
			return
		}
		if ps.Phase == shared.PhaseScoring {
			return
		}
		if ps.CurrentTurn != playerID {
			runtime.Gosched()
			continue
		}
		if ps.Phase == shared.PhaseBidding {
			var bid []game.Card
			for _, c := range ps.Hand {
				if !c.IsJoker() && len(bid) < game.BidSize {
					bid = append(bid, c)
				}
			}
			assert.NoError(t, m.SubmitBid(playerID, bid))
			continue
		}
		lead := game.SuitNone
		if len(ps.CurrentTrick) > 0 {
			lead = ps.CurrentTrick[0].Card.Suit
		}
		for _, c := range ps.Hand {
			if game.IsValidPlay(ps.Hand, c, lead) {
				assert.NoError(t, m.PlayCard(playerID, c))
				break
			}
		}
	}
}

func TestEmitNeverEndsOnStaleState(t *testing.T) {
	m, hub := newTestManager()
	id := m.CreateRoom()
	for i := 1; i <= 3; i++ {
		_, err := m.JoinRoom(id, fmt.Sprintf("p%d", i), "x")
		require.NoError(t, err)
	}
	r, ok := m.Get(id)
	require.True(t, ok)

	var wg sync.WaitGroup
	for _, pid := range r.PlayerIDs() {
		wg.Add(1)
		go func(pid string) {
			defer wg.Done()
			playWhenDue(t, m, r, pid)
		}(pid)
	}
	wg.Wait()

	final := r.GameState()
	require.Equal(t, shared.PhaseScoring, final.Phase)

	hub.mu.Lock()
	defer hub.mu.Unlock()
	last := 0
	for _, b := range hub.broadcasts {
		st := b.data.(shared.GameState)
		assert.GreaterOrEqual(t, st.Version, last, "pushes arrive in version order")
		last = st.Version
	}
	assert.Equal(t, final, hub.broadcasts[len(hub.broadcasts)-1].data.(shared.GameState))

	lastPrivate := map[string]int{}
	for _, d := range hub.direct {
		ps := d.data.(shared.PlayerState)
		assert.GreaterOrEqual(t, ps.Version, lastPrivate[d.to])
		lastPrivate[d.to] = ps.Version
	}
	for _, pid := range r.PlayerIDs() {
		assert.Equal(t, final.Version, lastPrivate[pid])
	}
}
