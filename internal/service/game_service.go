package service

import (
	"github.com/benbeisheim/chess-rules-backend/internal/model"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{
		gameManager: gameManager,
	}
}

func (gs *GameService) CreateGame() (string, error) {
	gameID := uuid.New().String()

	if err := gs.gameManager.CreateGame(gameID); err != nil {
		return "", errors.Wrap(err, "failed to create game")
	}

	return gameID, nil
}

func (gs *GameService) DeleteGame(gameID string) error {
	return gs.gameManager.RemoveGame(gameID)
}

func (gs *GameService) GetGameState(gameID string) (model.GameState, error) {
	return gs.gameManager.GetGameState(gameID)
}

// History returns the notation of every move played so far.
func (gs *GameService) History(gameID string) ([]string, error) {
	state, err := gs.gameManager.GetGameState(gameID)
	if err != nil {
		return nil, err
	}
	moves := make([]string, 0, len(state.MoveHistory))
	for _, move := range state.MoveHistory {
		moves = append(moves, model.MoveToNotation(move))
	}
	return moves, nil
}

func (gs *GameService) SelectSquare(gameID string, position model.Position) (model.GameState, error) {
	if !position.InBounds() {
		return model.GameState{}, errors.Wrapf(ErrInvalidPosition, "row %d col %d", position.Row, position.Col)
	}
	return gs.gameManager.SelectSquare(gameID, position)
}

func (gs *GameService) PromotePawn(gameID string, pieceType model.PieceType) (model.GameState, error) {
	if !pieceType.IsPromotionChoice() {
		return model.GameState{}, errors.Wrapf(ErrInvalidPieceType, "%q", pieceType)
	}
	return gs.gameManager.PromotePawn(gameID, pieceType)
}

func (gs *GameService) ResetGame(gameID string) (model.GameState, error) {
	return gs.gameManager.ResetGame(gameID)
}

func (gs *GameService) RegisterConnection(gameID string, clientID string, conn model.Connection) error {
	return gs.gameManager.RegisterConnection(gameID, clientID, conn)
}

func (gs *GameService) UnregisterConnection(gameID string, clientID string) {
	gs.gameManager.UnregisterConnection(gameID, clientID)
}
