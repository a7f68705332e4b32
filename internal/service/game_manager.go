// service/game_manager.go
package service

import (
	"sync"

	"github.com/benbeisheim/chess-rules-backend/internal/model"
	"github.com/gofiber/fiber/v2/log"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// GameManager is the registry of live games. It only guards the map; each game
// serializes its own inputs.
type GameManager struct {
	games map[string]*model.Game
	mu    sync.RWMutex
}

func NewGameManager() *GameManager {
	return &GameManager{
		games: make(map[string]*model.Game),
	}
}

func (gm *GameManager) CreateGame(gameID string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; exists {
		return errors.Wrapf(ErrGameExists, "game %s", gameID)
	}

	gm.games[gameID] = model.NewGame(gameID)
	log.Infof("created game %s", gameID)
	return nil
}

func (gm *GameManager) GetGame(gameID string) (*model.Game, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	game, exists := gm.games[gameID]
	if !exists {
		return nil, errors.Wrapf(ErrGameNotFound, "game %s", gameID)
	}

	return game, nil
}

// RemoveGame forgets a game and closes its observers.
func (gm *GameManager) RemoveGame(gameID string) error {
	gm.mu.Lock()
	game, exists := gm.games[gameID]
	if exists {
		delete(gm.games, gameID)
	}
	gm.mu.Unlock()

	if !exists {
		return errors.Wrapf(ErrGameNotFound, "game %s", gameID)
	}
	log.Infof("removed game %s", gameID)
	return game.CloseConnections()
}

func (gm *GameManager) GameCount() int {
	gm.mu.RLock()
	defer gm.mu.RUnlock()
	return len(gm.games)
}

func (gm *GameManager) GetGameState(gameID string) (model.GameState, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return model.GameState{}, err
	}
	return game.GetState(), nil
}

func (gm *GameManager) SelectSquare(gameID string, position model.Position) (model.GameState, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return model.GameState{}, err
	}
	return game.SelectSquare(position), nil
}

func (gm *GameManager) PromotePawn(gameID string, pieceType model.PieceType) (model.GameState, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return model.GameState{}, err
	}
	return game.PromotePawn(pieceType), nil
}

func (gm *GameManager) ResetGame(gameID string) (model.GameState, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return model.GameState{}, err
	}
	return game.ResetGame(), nil
}

func (gm *GameManager) RegisterConnection(gameID string, clientID string, conn model.Connection) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}
	return game.RegisterConnection(clientID, conn)
}

func (gm *GameManager) UnregisterConnection(gameID string, clientID string) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return
	}
	game.UnregisterConnection(clientID)
}

// Close closes the observers of every game.
func (gm *GameManager) Close() error {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	var result error
	for gameID, game := range gm.games {
		if err := game.CloseConnections(); err != nil {
			result = multierror.Append(result, errors.Wrapf(err, "game %s", gameID))
		}
	}
	return result
}
