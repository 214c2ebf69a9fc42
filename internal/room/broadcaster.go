package room

// Event names pushed to room members after a successful mutation.
const (
	EventGameState   = "game-state"
	EventPlayerState = "player-state"
)

// Broadcaster delivers events to connected players. Broadcast goes to every
// member of a room, SendTo to a single player.
type Broadcaster interface {
	Broadcast(roomID string, members []string, event string, data interface{})
	SendTo(playerID string, event string, data interface{})
}

type nopBroadcaster struct{}

func (nopBroadcaster) Broadcast(string, []string, string, interface{}) {}
func (nopBroadcaster) SendTo(string, string, interface{})              {}
