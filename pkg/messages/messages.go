package messages

import "encoding/json"

const (
	// MessageBufferSize represents the maximum size of a message read from a spectator
	MessageBufferSize = 1024
)

// Message types
const (
	// MessageTypeSnapshot carries a serialized snapshot
	MessageTypeSnapshot = "snap"
	// MessageTypeEvent carries a JSON EventSummary
	MessageTypeEvent = "evt"
)

// Message represents a generic message for serialization/deserialization
type Message struct {
	Type     string          `json:"type"`
	Sequence uint64          `json:"sequence"`
	Payload  json.RawMessage `json:"payload"`
}

// EventSummary is the JSON form of a game event sent to spectators.
type EventSummary struct {
	Action       string `json:"action"`
	Locked       bool   `json:"locked"`
	LinesCleared int    `json:"linesCleared"`
	LevelBefore  int    `json:"levelBefore"`
	LevelAfter   int    `json:"levelAfter"`
	Status       string `json:"status"`
}
