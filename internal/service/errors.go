package service

import (
	"github.com/benbeisheim/chess-rules-backend/internal/model"
	"github.com/pkg/errors"
)

var (
	ErrGameNotFound     = errors.New("game not found")
	ErrGameExists       = errors.New("game already exists")
	ErrInvalidPosition  = errors.New("position out of bounds")
	ErrInvalidPieceType = errors.New("invalid promotion piece")

	ErrDuplicateConnection = model.ErrDuplicateConnection
)

// IsInvalidInput reports whether err was caused by a malformed request.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidPosition) || errors.Is(err, ErrInvalidPieceType)
}
