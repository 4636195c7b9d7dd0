package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/slavinskiyboris/stellar-burgers/internal/config"
	"github.com/slavinskiyboris/stellar-burgers/internal/events"
	kafkax "github.com/slavinskiyboris/stellar-burgers/internal/kafka"
	"github.com/slavinskiyboris/stellar-burgers/internal/orderlog"
	"github.com/slavinskiyboris/stellar-burgers/internal/postgres"
	"github.com/slavinskiyboris/stellar-burgers/internal/redisx"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// DB
	db, err := postgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer db.Close()
	if err := postgres.EnsureSchema(ctx, db); err != nil {
		log.Fatalf("db schema: %v", err)
	}

	// Redis
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	svc := &orderlog.Service{
		Repo:        &orderlog.Repo{DB: db},
		Redis:       rdb,
		ServiceName: cfg.ServiceName + "-orderlog",
	}

	cons := kafkax.NewConsumer(cfg.KafkaBrokers, cfg.OrderLogGroup, events.TopicOrderPlaced, cfg.OrderLogWorkers)
	done := make(chan struct{})
	go func() {
		defer close(done)
		log.Printf("orderlog consumer started: group=%s topic=%s workers=%d", cfg.OrderLogGroup, events.TopicOrderPlaced, cfg.OrderLogWorkers)
		if err := cons.Start(ctx, svc.HandleOrderPlaced); err != nil {
			log.Printf("consumer exit: %v", err)
			cancel()
		}
	}()

	// graceful shutdown
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sig:
	case <-ctx.Done():
	}
	log.Println("shutting down consumer...")
	cancel()
	<-done
}
