package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	EventOrderPlaced = "OrderPlaced"

	TopicOrderPlaced = "burger.order.placed"

	Version = 1
)

type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	TraceID       string          `json:"trace_id,omitempty"`
	RequestID     string          `json:"request_id,omitempty"`
	CorrelationID string          `json:"correlation_id,omitempty"` // order number
	Payload       json.RawMessage `json:"payload"`
}

type OrderPlacedPayload struct {
	SessionID   string   `json:"session_id"`
	UserEmail   string   `json:"user_email,omitempty"`
	OrderNumber int      `json:"order_number"`
	OrderName   string   `json:"order_name"`
	Ingredients []string `json:"ingredients"`
	TotalPrice  int      `json:"total_price"`
}

// NewEnvelope wraps payload; it fails only if payload cannot be encoded.
func NewEnvelope(eventType, producer, traceID, correlationID string, payload any) (Envelope, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, err
	}
	return Envelope{
		EventID:       uuid.NewString(),
		EventType:     eventType,
		EventVersion:  Version,
		OccurredAt:    time.Now().UTC(),
		Producer:      producer,
		TraceID:       traceID,
		CorrelationID: correlationID,
		Payload:       b,
	}, nil
}

// PartitionKey keeps all events of one session on one partition.
func PartitionKey(sessionID string) []byte { return []byte(sessionID) }
