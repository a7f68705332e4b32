package model_test

import (
	"testing"

	"github.com/benbeisheim/chess-rules-backend/internal/model"
	"github.com/benbeisheim/chess-rules-backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFoolsMate(t *testing.T) {
	state := model.NewGameState()
	state = testutil.Play(t, state, "f2", "f3")
	state = testutil.Play(t, state, "e7", "e5")
	state = testutil.Play(t, state, "g2", "g4")
	assert.Equal(t, model.StatusPlaying, state.GameStatus)
	state = testutil.Play(t, state, "d8", "h4")

	require.Len(t, state.MoveHistory, 4)
	assert.Equal(t, model.StatusCheckmate, state.GameStatus)
	assert.Equal(t, model.White, state.CurrentTurn)
	assert.False(t, model.HasLegalMoves(state.Board, model.White, nil))
	assert.True(t, model.IsInCheck(state.Board, model.White))

	winner, ok := state.Winner()
	assert.True(t, ok)
	assert.Equal(t, model.Black, winner)
}

func TestDetermineGameStatus(t *testing.T) {
	tests := []struct {
		name    string
		diagram []string
		toMove  model.Color
		want    model.GameStatus
	}{
		{
			name:    "stalemate",
			diagram: []string{"k.......", "..Q.....", "........", "........", "........", "........", "........", "....K..."},
			toMove:  model.Black,
			want:    model.StatusStalemate,
		},
		{
			name:    "check",
			diagram: []string{"....k...", "........", "........", "........", "........", "........", "....R...", "K......."},
			toMove:  model.Black,
			want:    model.StatusCheck,
		},
		{
			name:    "back rank mate",
			diagram: []string{"R.....k.", ".....ppp", "........", "........", "........", "........", "........", "K......."},
			toMove:  model.Black,
			want:    model.StatusCheckmate,
		},
		{
			name:    "bare kings, white to move",
			diagram: []string{"....k...", "........", "........", "........", "........", "........", "........", "....K..."},
			toMove:  model.White,
			want:    model.StatusDraw,
		},
		{
			name:    "bare kings, black to move",
			diagram: []string{"....k...", "........", "........", "........", "........", "........", "........", "....K..."},
			toMove:  model.Black,
			want:    model.StatusDraw,
		},
		{
			name:    "king and knight in check is still a draw",
			diagram: []string{"....k...", "......N.", "........", "........", "........", "........", "........", "....K..."},
			toMove:  model.Black,
			want:    model.StatusDraw,
		},
		{
			name:    "queen mate supported by the king",
			diagram: []string{"k.......", ".Q......", "..K.....", "........", "........", "........", "........", "........"},
			toMove:  model.Black,
			want:    model.StatusCheckmate,
		},
		{
			name:    "initial position",
			diagram: []string{"rnbqkbnr", "pppppppp", "........", "........", "........", "........", "PPPPPPPP", "RNBQKBNR"},
			toMove:  model.White,
			want:    model.StatusPlaying,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := testutil.BoardFromDiagram(t, tt.diagram...)
			assert.Equal(t, tt.want, model.DetermineGameStatus(board, tt.toMove, nil))
		})
	}
}

func TestIsInsufficientMaterial(t *testing.T) {
	tests := []struct {
		name    string
		diagram []string
		want    bool
	}{
		{"K vs K", []string{"....k...", "........", "........", "........", "........", "........", "........", "....K..."}, true},
		{"K+B vs K", []string{"....k...", "........", "........", "........", "........", "........", "........", "....KB.."}, true},
		{"K+N vs K", []string{"....k...", "........", "........", "........", "........", "........", "........", "....KN.."}, true},
		{"K vs K+n", []string{"....k.n.", "........", "........", "........", "........", "........", "........", "....K..."}, true},
		{"K+B vs K+b", []string{"....kb..", "........", "........", "........", "........", "........", "........", "..B.K..."}, true},
		{"K+B vs K+b on the same square color", []string{"....k.b.", "........", "........", "........", "........", "........", "........", "..B.K..."}, true},
		{"K+R vs K", []string{"....k...", "........", "........", "........", "........", "........", "........", "....KR.."}, false},
		{"K+Q vs K", []string{"....k...", "........", "........", "........", "........", "........", "........", "....KQ.."}, false},
		{"K+P vs K", []string{"....k...", "........", "........", "........", "........", "........", "....P...", "....K..."}, false},
		{"K+B+B vs K", []string{"....k...", "........", "........", "........", "........", "........", "........", "..B.KB.."}, false},
		{"K+N+N vs K", []string{"....k...", "........", "........", "........", "........", "........", "........", ".N..K.N."}, false},
		{"K+N vs K+b", []string{"....kb..", "........", "........", "........", "........", "........", "........", "....K.N."}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := testutil.BoardFromDiagram(t, tt.diagram...)
			assert.Equal(t, tt.want, model.IsInsufficientMaterial(board))
		})
	}
	assert.False(t, model.IsInsufficientMaterial(model.NewBoard()))
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, model.StatusCheckmate.IsTerminal())
	assert.True(t, model.StatusStalemate.IsTerminal())
	assert.True(t, model.StatusDraw.IsTerminal())
	assert.False(t, model.StatusCheck.IsTerminal())
	assert.False(t, model.StatusPlaying.IsTerminal())
}
