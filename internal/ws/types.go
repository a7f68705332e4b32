package ws

import (
	"encoding/json"
)

// MessageType represents the different kinds of messages our system can handle
type MessageType string

const (
	MessageTypeSelect    MessageType = "select"
	MessageTypePromote   MessageType = "promote"
	MessageTypeReset     MessageType = "reset"
	MessageTypeGameState MessageType = "gameState"
	MessageTypeError     MessageType = "error"
)

// Message represents a WebSocket message in our system
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

// NewErrorMessage frames msg as an error message.
func NewErrorMessage(msg string) Message {
	payload, _ := json.Marshal(ErrorPayload{Message: msg})
	return Message{
		Type:    MessageTypeError,
		Payload: json.RawMessage(payload),
	}
}
