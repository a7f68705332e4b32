package controller

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/benbeisheim/chess-rules-backend/internal/middleware"
	"github.com/benbeisheim/chess-rules-backend/internal/model"
	"github.com/benbeisheim/chess-rules-backend/internal/service"
	"github.com/benbeisheim/chess-rules-backend/internal/ws"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/websocket/v2"
	"github.com/pkg/errors"
)

type WebSocketController struct {
	gameService *service.GameService
}

func NewWebSocketController(gameService *service.GameService) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
	}
}

// safeConn serializes writes to a socket shared by its read loop and game broadcasts.
type safeConn struct {
	*websocket.Conn
	mu sync.Mutex
}

func (s *safeConn) WriteJSON(v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Conn.WriteJSON(v)
}

func (s *safeConn) WriteMessage(messageType int, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Conn.WriteMessage(messageType, data)
}

// HandleConnection is called when a new WebSocket connection is established
func (wsc *WebSocketController) HandleConnection(conn *websocket.Conn) {
	gameID := conn.Params("gameId")
	clientID := conn.Locals(middleware.ClientIDKey).(string)
	c := &safeConn{Conn: conn}

	// Register this connection with the game; it receives every snapshot from now on
	if err := wsc.gameService.RegisterConnection(gameID, clientID, c); err != nil {
		log.Warnf("failed to register connection: %v", err)
		if errors.Is(err, service.ErrDuplicateConnection) {
			c.WriteMessage(
				websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, "Connection already exists"),
			)
		} else {
			wsc.sendError(c, err.Error())
		}
		c.Close()
		return
	}
	defer wsc.gameService.UnregisterConnection(gameID, clientID)

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			log.Debugf("read error: %v", err)
			break
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			log.Warnf("parse error: %v", err)
			wsc.sendError(c, "malformed message")
			continue
		}

		// Successful inputs answer through the game's broadcast
		if err := wsc.handleMessage(gameID, msg); err != nil {
			log.Warnf("handle error: %v", err)
			wsc.sendError(c, err.Error())
		}
	}
}

// Handle different types of incoming messages
func (wsc *WebSocketController) handleMessage(gameID string, msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeSelect:
		var position model.Position
		if err := json.Unmarshal(msg.Payload, &position); err != nil {
			return errors.Wrap(err, "select payload")
		}
		_, err := wsc.gameService.SelectSquare(gameID, position)
		return err

	case ws.MessageTypePromote:
		var req model.PromotionRequest
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			return errors.Wrap(err, "promote payload")
		}
		_, err := wsc.gameService.PromotePawn(gameID, req.PieceType)
		return err

	case ws.MessageTypeReset:
		_, err := wsc.gameService.ResetGame(gameID)
		return err

	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}

// Helper method to send error messages
func (wsc *WebSocketController) sendError(c *safeConn, errorMsg string) {
	if err := c.WriteJSON(ws.NewErrorMessage(errorMsg)); err != nil {
		log.Debugf("send error: %v", err)
	}
}
