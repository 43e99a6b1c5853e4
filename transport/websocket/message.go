package websocket

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/gomoku-backend/internal/entity"
)

const (
	actionConnect    = "connect"
	actionTablesList = "tables:list"
	actionJoin       = "table:join"
	actionLeave      = "table:leave"
	actionReady      = "table:ready"
	actionMove       = "table:move"
	actionReset      = "table:reset"
	actionUpdate     = "table:update"
	actionUnknown    = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type RequestPayload struct {
	Player *entity.Player `json:"player,omitempty"`
	Table  int            `json:"table,omitempty"`
	Row    *int           `json:"row,omitempty"`
	Col    *int           `json:"col,omitempty"`
}

type ResponsePayload struct {
	Player *entity.Player `json:"player,omitempty"`
	Table  *entity.Table  `json:"table,omitempty"`
	Tables []entity.Table `json:"tables,omitempty"`
	Error  string         `json:"error,omitempty"`
}

func encodeMessage(action string, payload ResponsePayload) ([]byte, error) {
	rawPayload, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	data, err := json.Marshal(Message{Action: action, Payload: rawPayload})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal message: %w", err)
	}

	return data, nil
}

func decodePayload(msg *Message) (RequestPayload, error) {
	var payload RequestPayload

	if len(msg.Payload) == 0 {
		return payload, nil
	}

	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return payload, fmt.Errorf("%w: %w", errMalformedMessage, err)
	}

	return payload, nil
}
