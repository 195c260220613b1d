package models

import (
	"encoding/json"
	"time"
)

type Environment struct {
	ID           int64           `json:"environment_id"`
	ClassID      int64           `json:"class_id"`
	Name         string          `json:"environment_name"`
	Description  string          `json:"environment_description"`
	Settings     json.RawMessage `json:"settings"`
	ActiveStatus bool            `json:"active_status"`
}

type EnvironmentUpdate struct {
	ClassID      *int64          `json:"class_id"`
	Name         *string         `json:"environment_name"`
	Description  *string         `json:"environment_description"`
	Settings     json.RawMessage `json:"settings"`
	ActiveStatus *bool           `json:"active_status"`
}

// MessageType tells a user query from an environment response.
type MessageType string

const (
	MessageQuery    MessageType = "query"
	MessageResponse MessageType = "response"
)

func (m MessageType) Valid() bool {
	return m == MessageQuery || m == MessageResponse
}

// HistoryEntry is one message exchanged in an environment.
type HistoryEntry struct {
	ID            int64       `json:"history_id"`
	EnvironmentID int64       `json:"environment_id"`
	UserID        int64       `json:"user_id"`
	Timestamp     time.Time   `json:"timestamp"`
	Message       string      `json:"message"`
	MessageType   MessageType `json:"message_type"`
}
