package room

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"ninety-nine/internal/game"
	"ninety-nine/internal/shared"

	"github.com/sirupsen/logrus"
)

var (
	ErrRoomNotFound  = errors.New("room not found")
	ErrRoomFull      = errors.New("room is full")
	ErrWrongPhase    = errors.New("wrong phase")
	ErrNotYourTurn   = errors.New("not your turn")
	ErrNotInRoom     = errors.New("not in a room")
	ErrAlreadyInRoom = errors.New("already in a room")
)

type Player struct {
	ID     string
	Name   string
	Hand   []game.Card
	Bid    *game.Bid
	Tricks []game.Trick
	Score  int
}

// Room is a single Ninety-Nine table. All exported methods are safe for
// concurrent use; each runs to completion under the room lock.
type Room struct {
	ID        string
	CreatedAt time.Time

	// emitMu serialises state pushes. State changes only take mu, so they never
	// wait on a push in flight.
	emitMu sync.Mutex

	mu          sync.Mutex
	version     int
	players     []*Player
	phase       shared.Phase
	currentTurn string
	turnUp      *game.Card
	trick       game.Trick
	leadSuit    game.Suit
	dealNumber  int
	rng         *rand.Rand
	log         *logrus.Entry
}

type Option func(*Room)

// WithRand sets the random source used to shuffle each deal.
func WithRand(r *rand.Rand) Option {
	return func(rm *Room) { rm.rng = r }
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(rm *Room) { rm.log = l.WithField("room", rm.ID) }
}

func New(id string, opts ...Option) *Room {
	r := &Room{
		ID:        id,
		CreatedAt: time.Now(),
		phase:     shared.PhaseWaiting,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.rng == nil {
		r.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if r.log == nil {
		r.log = logrus.WithField("room", id)
	}
	return r
}

func (r *Room) player(id string) (*Player, int) {
	for i, p := range r.players {
		if p.ID == id {
			return p, i
		}
	}
	return nil, -1
}

// nextAfter returns the player seated after id in join order.
func (r *Room) nextAfter(id string) string {
	_, idx := r.player(id)
	return r.players[(idx+1)%len(r.players)].ID
}

func (r *Room) AddPlayer(id, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.players) >= game.Players {
		return ErrRoomFull
	}
	if p, _ := r.player(id); p != nil {
		return ErrAlreadyInRoom
	}

	r.players = append(r.players, &Player{ID: id, Name: name})
	r.version++
	r.log.WithField("player", id).Infof("%s joined (%d/%d)", name, len(r.players), game.Players)

	if len(r.players) == game.Players {
		return r.startNewDeal()
	}
	return nil
}

// RemovePlayer drops a player and returns how many remain. A room that is
// no longer full abandons its deal and waits for a new third player.
func (r *Room) RemovePlayer(id string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, idx := r.player(id)
	if idx < 0 {
		return len(r.players)
	}
	r.players = append(r.players[:idx], r.players[idx+1:]...)
	r.version++
	if len(r.players) < game.Players {
		r.phase = shared.PhaseWaiting
	}
	r.log.WithField("player", id).Infof("player left (%d/%d)", len(r.players), game.Players)
	return len(r.players)
}

func (r *Room) startNewDeal() error {
	deck := game.NewDeck()
	deck.Shuffle(r.rng)
	hands, turnUp, err := deck.Deal(len(r.players))
	if err != nil {
		return err
	}

	r.dealNumber++
	r.turnUp = &turnUp
	for i, p := range r.players {
		p.Hand = hands[i]
		p.Bid = nil
		p.Tricks = nil
	}
	r.trick = nil
	r.leadSuit = game.SuitNone
	r.phase = shared.PhaseBidding
	r.currentTurn = r.players[0].ID

	r.log.WithFields(logrus.Fields{
		"deal":   r.dealNumber,
		"turnUp": turnUp.String(),
		"trump":  game.TrumpSuit(turnUp).String(),
	}).Info("new deal")
	return nil
}

// NextDeal starts the following deal once the previous one has been scored.
func (r *Room) NextDeal(playerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p, _ := r.player(playerID); p == nil {
		return ErrNotInRoom
	}
	if r.phase != shared.PhaseScoring || len(r.players) != game.Players {
		return fmt.Errorf("%w: next deal needs %s, room is %s", ErrWrongPhase, shared.PhaseScoring, r.phase)
	}
	if err := r.startNewDeal(); err != nil {
		return err
	}
	r.version++
	return nil
}

func (r *Room) SubmitBid(playerID string, cards []game.Card) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.phase != shared.PhaseBidding {
		return fmt.Errorf("%w: not in bidding phase", ErrWrongPhase)
	}
	if playerID != r.currentTurn {
		return ErrNotYourTurn
	}
	bid, err := game.NewBid(cards)
	if err != nil {
		return err
	}

	p, _ := r.player(playerID)
	p.Bid = &bid
	r.version++

	allBid := true
	for _, other := range r.players {
		if other.Bid == nil {
			allBid = false
			break
		}
	}
	if allBid {
		r.phase = shared.PhasePlaying
		for _, other := range r.players {
			other.Hand = game.RemoveCards(other.Hand, other.Bid.Cards...)
		}
	}
	r.currentTurn = r.nextAfter(playerID)

	r.log.WithFields(logrus.Fields{"player": playerID, "bid": bid.Value}).Debug("bid submitted")
	return nil
}

func (r *Room) PlayCard(playerID string, card game.Card) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.phase != shared.PhasePlaying {
		return fmt.Errorf("%w: not in playing phase", ErrWrongPhase)
	}
	if playerID != r.currentTurn {
		return ErrNotYourTurn
	}
	p, _ := r.player(playerID)
	if !game.IsValidPlay(p.Hand, card, r.leadSuit) {
		return fmt.Errorf("%w: %s", game.ErrInvalidPlay, card)
	}

	p.Hand = game.RemoveCards(p.Hand, card)
	r.trick = append(r.trick, game.Play{PlayerID: playerID, Card: card})
	r.version++

	if len(r.trick) < game.Players {
		r.currentTurn = r.nextAfter(playerID)
		if len(r.trick) == 1 {
			r.leadSuit = card.Suit
		}
		return nil
	}

	winnerID := game.TrickWinner(r.trick, *r.turnUp)
	winner, _ := r.player(winnerID)
	winner.Tricks = append(winner.Tricks, r.trick)
	r.trick = nil
	r.leadSuit = game.SuitNone
	r.currentTurn = winnerID
	r.log.WithField("player", winnerID).Debug("trick won")

	for _, other := range r.players {
		if len(other.Hand) > 0 {
			return nil
		}
	}
	r.scoreRound()
	return nil
}

func (r *Room) scoreRound() {
	var exact []*Player
	for _, p := range r.players {
		won := len(p.Tricks)
		if p.Bid != nil && won == p.Bid.Value {
			exact = append(exact, p)
		}
		p.Score += won
	}

	bonus := game.ExactBidBonus(len(exact))
	for _, p := range exact {
		p.Score += bonus
	}
	r.phase = shared.PhaseScoring

	r.log.WithFields(logrus.Fields{
		"deal":  r.dealNumber,
		"exact": len(exact),
		"bonus": bonus,
	}).Info("round scored")
}

func (r *Room) gameState() shared.GameState {
	st := shared.GameState{
		RoomID:       r.ID,
		Players:      make([]shared.PlayerView, 0, len(r.players)),
		CurrentTrick: append([]game.Play{}, r.trick...),
		Phase:        r.phase,
		CurrentTurn:  r.currentTurn,
		DealNumber:   r.dealNumber,
		Version:      r.version,
	}
	if r.turnUp != nil {
		c := *r.turnUp
		st.TurnUpCard = &c
	}
	for _, p := range r.players {
		v := shared.PlayerView{
			ID:        p.ID,
			Name:      p.Name,
			HandSize:  len(p.Hand),
			TricksWon: len(p.Tricks),
			Score:     p.Score,
		}
		if p.Bid != nil {
			b := game.Bid{Cards: append([]game.Card(nil), p.Bid.Cards...), Value: p.Bid.Value}
			v.Bid = &b
		}
		st.Players = append(st.Players, v)
	}
	return st
}

// GameState returns the public view of the room.
func (r *Room) GameState() shared.GameState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.gameState()
}

// PlayerState returns the public view plus the given player's hand.
func (r *Room) PlayerState(playerID string) (shared.PlayerState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, _ := r.player(playerID)
	if p == nil {
		return shared.PlayerState{}, ErrNotInRoom
	}
	return shared.PlayerState{
		GameState: r.gameState(),
		Hand:      append([]game.Card{}, p.Hand...),
	}, nil
}

// Snapshot returns the public state and every member's private state, all
// taken at the same version. private is in the same order as pub.Players.
func (r *Room) Snapshot() (pub shared.GameState, private []shared.PlayerState) {
	r.mu.Lock()
	defer r.mu.Unlock()

	pub = r.gameState()
	private = make([]shared.PlayerState, len(r.players))
	for i, p := range r.players {
		private[i] = shared.PlayerState{
			GameState: r.gameState(),
			Hand:      append([]game.Card{}, p.Hand...),
		}
	}
	return pub, private
}

func (r *Room) Summary() shared.RoomSummary {
	r.mu.Lock()
	defer r.mu.Unlock()
	return shared.RoomSummary{RoomID: r.ID, PlayerCount: len(r.players), Phase: r.phase}
}

// PlayerIDs lists the members in join order.
func (r *Room) PlayerIDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, len(r.players))
	for i, p := range r.players {
		ids[i] = p.ID
	}
	return ids
}

func (r *Room) PlayerCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.players)
}
