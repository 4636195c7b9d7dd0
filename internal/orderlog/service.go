package orderlog

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/slavinskiyboris/stellar-burgers/internal/events"
	kafkax "github.com/slavinskiyboris/stellar-burgers/internal/kafka"
	"github.com/slavinskiyboris/stellar-burgers/internal/redisx"
)

type Store interface {
	Insert(ctx context.Context, e Entry) error
}

// Service appends placed orders to the log, once per event.
type Service struct {
	Repo        Store
	Redis       *redis.Client
	ServiceName string
}

// HandleOrderPlaced is installed as the consumer handler.
func (s *Service) HandleOrderPlaced(ctx context.Context, m kafkago.Message) error {
	var env events.Envelope
	if err := json.Unmarshal(m.Value, &env); err != nil {
		// a message that never decodes must not block the partition
		log.Printf("orderlog: drop undecodable message at offset %d: %v", m.Offset, err)
		return nil
	}
	if env.EventType != events.EventOrderPlaced {
		return nil
	}

	dkey := fmt.Sprintf(redisx.KeyDedup, s.ServiceName, env.EventID)
	fresh, err := redisx.Claim(ctx, s.Redis, dkey, redisx.TTLDedup)
	if err != nil {
		return fmt.Errorf("dedup %s: %w", env.EventID, err)
	}
	if !fresh {
		return nil
	}

	p, err := kafkax.UnwrapPayload[events.OrderPlacedPayload](env.Payload)
	if err != nil {
		log.Printf("orderlog: event %s: %v", env.EventID, err)
		return nil
	}

	err = s.Repo.Insert(ctx, Entry{
		EventID:     env.EventID,
		OrderNumber: p.OrderNumber,
		OrderName:   p.OrderName,
		SessionID:   p.SessionID,
		UserEmail:   p.UserEmail,
		Ingredients: p.Ingredients,
		TotalPrice:  p.TotalPrice,
		PlacedAt:    env.OccurredAt,
	})
	if err != nil {
		// release the claim so the retry is not taken for a duplicate
		_ = s.Redis.Del(ctx, dkey).Err()
		return fmt.Errorf("insert order %d: %w", p.OrderNumber, err)
	}
	log.Printf("orderlog: order %d logged for session %s", p.OrderNumber, p.SessionID)
	return nil
}
