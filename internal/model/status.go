package model

type GameStatus string

const (
	StatusPlaying   GameStatus = "playing"
	StatusCheck     GameStatus = "check"
	StatusCheckmate GameStatus = "checkmate"
	StatusStalemate GameStatus = "stalemate"
	StatusDraw      GameStatus = "draw"
)

// IsTerminal reports whether the game has ended and no more moves are accepted.
func (s GameStatus) IsTerminal() bool {
	return s == StatusCheckmate || s == StatusStalemate || s == StatusDraw
}

// DetermineGameStatus classifies the position for the side about to move.
// Mate and stalemate take precedence over the insufficient material draw.
func DetermineGameStatus(board *Board, sideToMove Color, enPassantTarget *Position) GameStatus {
	inCheck := IsInCheck(board, sideToMove)
	hasLegal := HasLegalMoves(board, sideToMove, enPassantTarget)

	switch {
	case inCheck && !hasLegal:
		return StatusCheckmate
	case !hasLegal:
		return StatusStalemate
	case IsInsufficientMaterial(board):
		return StatusDraw
	case inCheck:
		return StatusCheck
	default:
		return StatusPlaying
	}
}

// IsInsufficientMaterial recognises bare kings, a lone minor piece against a bare
// king, and a bishop apiece. The last case does not look at which square color
// the bishops travel on.
func IsInsufficientMaterial(board *Board) bool {
	pieces := board.Pieces()

	switch len(pieces) {
	case 2:
		return true
	case 3:
		for _, p := range pieces {
			if p.Type == Bishop || p.Type == Knight {
				return true
			}
		}
	case 4:
		bishops := []Piece{}
		for _, p := range pieces {
			if p.Type == Bishop {
				bishops = append(bishops, p)
			}
		}
		return len(bishops) == 2 && bishops[0].Color != bishops[1].Color
	}
	return false
}
