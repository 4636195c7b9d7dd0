package orderlog

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/slavinskiyboris/stellar-burgers/internal/events"
	kafkax "github.com/slavinskiyboris/stellar-burgers/internal/kafka"
	"github.com/slavinskiyboris/stellar-burgers/internal/redisx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	entries []Entry
	err     error
}

func (m *memStore) Insert(_ context.Context, e Entry) error {
	if m.err != nil {
		return m.err
	}
	m.entries = append(m.entries, e)
	return nil
}

func newService(t *testing.T, st Store) *Service {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redisx.New(mr.Addr())
	t.Cleanup(func() { _ = rdb.Close() })
	return &Service{Repo: st, Redis: rdb, ServiceName: "orderlog"}
}

func placedMessage(t *testing.T) (kafkago.Message, events.Envelope) {
	t.Helper()
	env, err := events.NewEnvelope(events.EventOrderPlaced, "burger-bff", "", "4242", events.OrderPlacedPayload{
		SessionID: "sid-1", UserEmail: "ann@example.com", OrderNumber: 4242,
		OrderName: "Space burger", Ingredients: []string{"a", "b", "a"}, TotalPrice: 25,
	})
	require.NoError(t, err)
	return kafkago.Message{Value: kafkax.MustMarshal(env)}, env
}

func TestHandleOrderPlacedDedups(t *testing.T) {
	st := &memStore{}
	svc := newService(t, st)
	m, env := placedMessage(t)
	ctx := context.Background()

	require.NoError(t, svc.HandleOrderPlaced(ctx, m))
	require.NoError(t, svc.HandleOrderPlaced(ctx, m))

	require.Len(t, st.entries, 1)
	e := st.entries[0]
	assert.Equal(t, env.EventID, e.EventID)
	assert.Equal(t, 4242, e.OrderNumber)
	assert.Equal(t, "sid-1", e.SessionID)
	assert.Equal(t, []string{"a", "b", "a"}, e.Ingredients)
	assert.Equal(t, 25, e.TotalPrice)
	assert.True(t, e.PlacedAt.Equal(env.OccurredAt))
}

func TestHandleOrderPlacedRetriesAfterInsertFailure(t *testing.T) {
	st := &memStore{err: errors.New("pg down")}
	svc := newService(t, st)
	m, _ := placedMessage(t)
	ctx := context.Background()

	require.Error(t, svc.HandleOrderPlaced(ctx, m))

	st.err = nil
	require.NoError(t, svc.HandleOrderPlaced(ctx, m))
	assert.Len(t, st.entries, 1)
}

func TestHandleOrderPlacedIgnoresOtherMessages(t *testing.T) {
	st := &memStore{}
	svc := newService(t, st)
	ctx := context.Background()

	require.NoError(t, svc.HandleOrderPlaced(ctx, kafkago.Message{Value: []byte("not json")}))

	env, err := events.NewEnvelope("SomethingElse", "x", "", "", map[string]int{})
	require.NoError(t, err)
	require.NoError(t, svc.HandleOrderPlaced(ctx, kafkago.Message{Value: kafkax.MustMarshal(env)}))

	assert.Empty(t, st.entries)
}
