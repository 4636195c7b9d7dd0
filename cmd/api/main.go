package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/slavinskiyboris/stellar-burgers/internal/api"
	"github.com/slavinskiyboris/stellar-burgers/internal/config"
	"github.com/slavinskiyboris/stellar-burgers/internal/events"
	"github.com/slavinskiyboris/stellar-burgers/internal/httpx"
	kafkax "github.com/slavinskiyboris/stellar-burgers/internal/kafka"
	"github.com/slavinskiyboris/stellar-burgers/internal/orderlog"
	"github.com/slavinskiyboris/stellar-burgers/internal/postgres"
	"github.com/slavinskiyboris/stellar-burgers/internal/redisx"
	"github.com/slavinskiyboris/stellar-burgers/internal/session"
	"github.com/slavinskiyboris/stellar-burgers/internal/store"
	"github.com/slavinskiyboris/stellar-burgers/internal/telemetry"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownTracing, err := telemetry.Setup(cfg.ServiceName, cfg.TraceStdout)
	if err != nil {
		log.Fatalf("tracing: %v", err)
	}

	// DB
	db, err := postgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer db.Close()
	if err := postgres.EnsureSchema(ctx, db); err != nil {
		log.Fatalf("db schema: %v", err)
	}

	// Redis
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	// Kafka producer
	prod := kafkax.NewProducer(cfg.KafkaBrokers, events.TopicOrderPlaced, 1024)
	prod.Start(ctx)

	// Sessions: access tokens in redis, refresh tokens in postgres
	tokens := session.NewManager(
		session.NewCookieJar(rdb, cfg.AccessTokenTTL),
		&session.RefreshRepo{DB: db},
	)
	remote := api.NewClient(cfg.APIBaseURL, telemetry.NewHTTPClient(cfg.APITimeout))
	sessions := httpx.NewRegistry(func(sid string) *store.Store {
		t := tokens.For(sid)
		return store.New(remote.Session(t), t)
	})

	router := httpx.NewRouter(telemetry.Middleware(cfg.ServiceName))
	h := &httpx.Handler{
		Sessions: sessions,
		Producer: prod,
		History:  &orderlog.Repo{DB: db},
		Service:  cfg.ServiceName,
	}
	router.Group(func(r chi.Router) {
		r.Use(sessions.Middleware(cfg.SessionCookie))
		h.Register(r)
	})

	go func() {
		t := time.NewTicker(cfg.SessionIdle / 4)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				if n := sessions.Sweep(cfg.SessionIdle); n > 0 {
					log.Printf("dropped %d idle sessions", n)
				}
			}
		}
	}()

	// HTTP server
	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	// graceful shutdown
	go func() {
		log.Printf("HTTP listening at %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	// wait signal
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Println("shutting down...")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)
	prod.Close() // flush queued events
	prod.WaitClosed()
	cancel()
	_ = shutdownTracing(ctx2)
}
