package model

import (
	"encoding/json"
	"sync"

	"github.com/benbeisheim/chess-rules-backend/internal/ws"
	"github.com/gofiber/fiber/v2/log"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// ErrDuplicateConnection is returned when a client id already has a live connection.
var ErrDuplicateConnection = errors.New("connection already exists")

// Connection is an observer receiving every snapshot of a game.
type Connection interface {
	WriteJSON(v interface{}) error
	Close() error
}

// The connections for a specific game
type GameConnections struct {
	connections map[string]Connection // clientID -> connection
	mu          sync.RWMutex
}

func NewGameConnections() *GameConnections {
	return &GameConnections{
		connections: make(map[string]Connection),
	}
}

// Game owns the current snapshot of one game. Inputs are serialized by mu and
// applied in arrival order; each resulting snapshot is pushed to observers before
// the next input is accepted.
type Game struct {
	ID          string
	mu          sync.Mutex
	state       GameState
	connections *GameConnections
}

func NewGame(id string) *Game {
	return &Game{
		ID:          id,
		state:       NewGameState(),
		connections: NewGameConnections(),
	}
}

func (g *Game) GetState() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.state
}

func (g *Game) SelectSquare(position Position) GameState {
	return g.apply(func(s GameState) GameState { return s.SelectSquare(position) })
}

func (g *Game) PromotePawn(pieceType PieceType) GameState {
	return g.apply(func(s GameState) GameState { return s.PromotePawn(pieceType) })
}

// ResetGame discards the whole game, history included.
func (g *Game) ResetGame() GameState {
	return g.apply(func(GameState) GameState { return NewGameState() })
}

func (g *Game) apply(transition func(GameState) GameState) GameState {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.state = transition(g.state)
	if err := g.broadcastState(); err != nil {
		log.Warnf("game %s: broadcast: %v", g.ID, err)
	}
	return g.state
}

// RegisterConnection adds an observer and sends it the current snapshot.
func (g *Game) RegisterConnection(clientID string, conn Connection) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.connections.mu.Lock()
	if _, exists := g.connections.connections[clientID]; exists {
		g.connections.mu.Unlock()
		return errors.Wrapf(ErrDuplicateConnection, "client %s", clientID)
	}
	g.connections.connections[clientID] = conn
	g.connections.mu.Unlock()

	log.Debugf("game %s: registered connection for client %s", g.ID, clientID)
	msg, err := stateMessage(g.state)
	if err != nil {
		return err
	}
	if err := conn.WriteJSON(msg); err != nil {
		g.dropConnection(clientID)
		return errors.Wrap(err, "send initial state")
	}
	return nil
}

func (g *Game) UnregisterConnection(clientID string) {
	g.dropConnection(clientID)
}

func (g *Game) dropConnection(clientID string) {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()

	if _, exists := g.connections.connections[clientID]; exists {
		log.Debugf("game %s: unregistering connection for client %s", g.ID, clientID)
		delete(g.connections.connections, clientID)
	}
}

// ConnectionCount returns the number of registered observers.
func (g *Game) ConnectionCount() int {
	g.connections.mu.RLock()
	defer g.connections.mu.RUnlock()
	return len(g.connections.connections)
}

// CloseConnections closes and forgets every observer.
func (g *Game) CloseConnections() error {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()

	var result error
	for clientID, conn := range g.connections.connections {
		if err := conn.Close(); err != nil {
			result = multierror.Append(result, errors.Wrapf(err, "close client %s", clientID))
		}
		delete(g.connections.connections, clientID)
	}
	return result
}

// broadcastState writes the current snapshot to every observer. Observers whose
// write fails are dropped. Caller holds g.mu.
func (g *Game) broadcastState() error {
	g.connections.mu.RLock()
	activeConnections := make(map[string]Connection, len(g.connections.connections))
	for clientID, conn := range g.connections.connections {
		activeConnections[clientID] = conn
	}
	g.connections.mu.RUnlock()

	msg, err := stateMessage(g.state)
	if err != nil {
		return err
	}
	var result error
	for clientID, conn := range activeConnections {
		if err := conn.WriteJSON(msg); err != nil {
			result = multierror.Append(result, errors.Wrapf(err, "client %s", clientID))
			g.dropConnection(clientID)
		}
	}
	return result
}

func stateMessage(state GameState) (ws.Message, error) {
	payload, err := json.Marshal(state)
	if err != nil {
		return ws.Message{}, errors.Wrap(err, "marshal game state")
	}
	return ws.Message{
		Type:    ws.MessageTypeGameState,
		Payload: json.RawMessage(payload),
	}, nil
}
