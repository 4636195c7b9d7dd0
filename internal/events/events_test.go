package events

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnvelope(t *testing.T) {
	p := OrderPlacedPayload{SessionID: "s1", OrderNumber: 1001, Ingredients: []string{"a", "b", "a"}, TotalPrice: 25}

	env, err := NewEnvelope(EventOrderPlaced, "burger-bff", "req-1", "1001", p)
	require.NoError(t, err)

	_, err = uuid.Parse(env.EventID)
	assert.NoError(t, err)
	assert.Equal(t, Version, env.EventVersion)
	assert.Equal(t, "1001", env.CorrelationID)
	assert.False(t, env.OccurredAt.IsZero())

	var got OrderPlacedPayload
	require.NoError(t, json.Unmarshal(env.Payload, &got))
	assert.Equal(t, p, got)
}

func TestNewEnvelopeRejectsUnencodablePayload(t *testing.T) {
	_, err := NewEnvelope(EventOrderPlaced, "x", "", "", map[string]any{"ch": make(chan int)})
	assert.Error(t, err)
}
