// Package testutil provides board builders and assertions shared by tests.
package testutil

import (
	"testing"

	"github.com/benbeisheim/chess-rules-backend/internal/model"
	"github.com/google/go-cmp/cmp"
)

var diagramPieces = map[rune]model.PieceType{
	'k': model.King,
	'q': model.Queen,
	'r': model.Rook,
	'b': model.Bishop,
	'n': model.Knight,
	'p': model.Pawn,
}

// BoardFromDiagram builds a board from eight rows of eight characters, row 0
// (black's back rank) first. Uppercase letters are white, lowercase black and
// '.' is empty. Every piece starts with HasMoved false.
func BoardFromDiagram(t *testing.T, rows ...string) *model.Board {
	t.Helper()
	if len(rows) != model.BoardSize {
		t.Fatalf("diagram has %d rows, want %d", len(rows), model.BoardSize)
	}
	board := &model.Board{}
	for row, line := range rows {
		if len(line) != model.BoardSize {
			t.Fatalf("diagram row %d is %q, want %d squares", row, line, model.BoardSize)
		}
		for col, ch := range line {
			if ch == '.' {
				continue
			}
			color := model.Black
			if ch >= 'A' && ch <= 'Z' {
				color = model.White
				ch += 'a' - 'A'
			}
			pieceType, ok := diagramPieces[ch]
			if !ok {
				t.Fatalf("diagram row %d: unknown piece %q", row, ch)
			}
			board[row][col] = &model.Piece{Type: pieceType, Color: color}
		}
	}
	return board
}

// StateFromDiagram returns a snapshot of the diagram with toMove to play.
func StateFromDiagram(t *testing.T, toMove model.Color, rows ...string) model.GameState {
	t.Helper()
	state := model.NewGameState()
	state.Board = BoardFromDiagram(t, rows...)
	state.CurrentTurn = toMove
	return state
}

// Sq converts a square name like "e4" to a position.
func Sq(t *testing.T, name string) model.Position {
	t.Helper()
	if len(name) != 2 || name[0] < 'a' || name[0] > 'h' || name[1] < '1' || name[1] > '8' {
		t.Fatalf("bad square %q", name)
	}
	return model.Position{Row: int('8' - name[1]), Col: int(name[0] - 'a')}
}

// Play clicks from then to on state and returns the result.
func Play(t *testing.T, state model.GameState, from, to string) model.GameState {
	t.Helper()
	return state.SelectSquare(Sq(t, from)).SelectSquare(Sq(t, to))
}

// AssertEqual compares got and want using cmp.Diff and reports differences.
func AssertEqual(t *testing.T, got, want interface{}, msg string) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("%s: mismatch (-want +got):\n%s", msg, diff)
	}
}
