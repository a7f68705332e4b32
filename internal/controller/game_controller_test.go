package controller

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/benbeisheim/chess-rules-backend/internal/config"
	"github.com/benbeisheim/chess-rules-backend/internal/model"
	"github.com/benbeisheim/chess-rules-backend/internal/service"
	"github.com/benbeisheim/chess-rules-backend/internal/ws"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*fiber.App, *service.GameService) {
	t.Helper()
	gameService := service.NewGameService(service.NewGameManager())
	app := fiber.New()
	RegisterRoutes(app, config.Default(), NewGameController(gameService), NewWebSocketController(gameService))
	return app, gameService
}

func doRequest(t *testing.T, app *fiber.App, method, path, body string) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func createGame(t *testing.T, app *fiber.App) string {
	t.Helper()
	status, body := doRequest(t, app, http.MethodPost, "/api/game/create", "")
	require.Equal(t, http.StatusOK, status)
	var created struct {
		GameID string `json:"game_id"`
	}
	require.NoError(t, json.Unmarshal(body, &created))
	require.NotEmpty(t, created.GameID)
	return created.GameID
}

func decodeState(t *testing.T, body []byte) model.GameState {
	t.Helper()
	var state model.GameState
	require.NoError(t, json.Unmarshal(body, &state))
	return state
}

func TestGameRoutes(t *testing.T) {
	app, _ := newTestApp(t)
	gameID := createGame(t, app)
	base := "/api/game/" + gameID

	status, body := doRequest(t, app, http.MethodGet, base, "")
	require.Equal(t, http.StatusOK, status)
	state := decodeState(t, body)
	assert.Equal(t, model.White, state.CurrentTurn)
	assert.Equal(t, model.StatusPlaying, state.GameStatus)

	status, body = doRequest(t, app, http.MethodPost, base+"/select", `{"row":6,"col":4}`)
	require.Equal(t, http.StatusOK, status)
	state = decodeState(t, body)
	require.NotNil(t, state.SelectedPosition)
	assert.Len(t, state.ValidMoves, 2)

	status, body = doRequest(t, app, http.MethodPost, base+"/select", `{"row":4,"col":4}`)
	require.Equal(t, http.StatusOK, status)
	state = decodeState(t, body)
	assert.Equal(t, model.Black, state.CurrentTurn)
	require.NotNil(t, state.EnPassantTarget)
	assert.Equal(t, model.Position{Row: 5, Col: 4}, *state.EnPassantTarget)

	status, body = doRequest(t, app, http.MethodGet, base+"/history", "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"moves":["e4"]}`, string(body))

	status, body = doRequest(t, app, http.MethodPost, base+"/reset", "")
	require.Equal(t, http.StatusOK, status)
	state = decodeState(t, body)
	assert.Equal(t, model.White, state.CurrentTurn)
	assert.Empty(t, state.MoveHistory)

	status, _ = doRequest(t, app, http.MethodDelete, base, "")
	assert.Equal(t, http.StatusNoContent, status)
	status, _ = doRequest(t, app, http.MethodGet, base, "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestErrorStatuses(t *testing.T) {
	app, _ := newTestApp(t)
	base := "/api/game/" + createGame(t, app)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		want   int
	}{
		{"unknown game", http.MethodGet, "/api/game/missing", "", http.StatusNotFound},
		{"unknown game history", http.MethodGet, "/api/game/missing/history", "", http.StatusNotFound},
		{"delete unknown game", http.MethodDelete, "/api/game/missing", "", http.StatusNotFound},
		{"select on unknown game", http.MethodPost, "/api/game/missing/select", `{"row":6,"col":4}`, http.StatusNotFound},
		{"off-board square", http.MethodPost, base + "/select", `{"row":9,"col":4}`, http.StatusBadRequest},
		{"malformed position", http.MethodPost, base + "/select", `{"row":`, http.StatusBadRequest},
		{"king is not a promotion choice", http.MethodPost, base + "/promote", `{"pieceType":"king"}`, http.StatusBadRequest},
		{"malformed promotion", http.MethodPost, base + "/promote", `[`, http.StatusBadRequest},
		{"promotion with nothing pending", http.MethodPost, base + "/promote", `{"pieceType":"queen"}`, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := doRequest(t, app, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.want, status, string(body))
			if tt.want >= http.StatusBadRequest {
				var payload map[string]string
				require.NoError(t, json.Unmarshal(body, &payload))
				assert.NotEmpty(t, payload["error"])
			}
		})
	}
}

func TestWebSocketRouteRequiresUpgrade(t *testing.T) {
	app, _ := newTestApp(t)
	gameID := createGame(t, app)

	status, _ := doRequest(t, app, http.MethodGet, "/ws/game/"+gameID, "")
	assert.Equal(t, http.StatusUpgradeRequired, status)
}

func TestHandleMessage(t *testing.T) {
	gameService := service.NewGameService(service.NewGameManager())
	wsc := NewWebSocketController(gameService)
	gameID, err := gameService.CreateGame()
	require.NoError(t, err)

	send := func(msgType ws.MessageType, payload string) error {
		msg := ws.Message{Type: msgType}
		if payload != "" {
			msg.Payload = json.RawMessage(payload)
		}
		return wsc.handleMessage(gameID, msg)
	}

	require.NoError(t, send(ws.MessageTypeSelect, `{"row":6,"col":4}`))
	require.NoError(t, send(ws.MessageTypeSelect, `{"row":4,"col":4}`))
	state, err := gameService.GetGameState(gameID)
	require.NoError(t, err)
	assert.Len(t, state.MoveHistory, 1)

	assert.Error(t, send(ws.MessageTypeSelect, `{"row":-1,"col":4}`))
	assert.Error(t, send(ws.MessageTypeSelect, `"e2"`))
	assert.Error(t, send(ws.MessageTypePromote, `{"pieceType":"pawn"}`))
	assert.NoError(t, send(ws.MessageTypePromote, `{"pieceType":"rook"}`))
	assert.Error(t, send("resign", ""))

	require.NoError(t, send(ws.MessageTypeReset, ""))
	state, err = gameService.GetGameState(gameID)
	require.NoError(t, err)
	assert.Empty(t, state.MoveHistory)

	assert.Error(t, wsc.handleMessage("missing", ws.Message{Type: ws.MessageTypeReset}))
}
