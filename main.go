// main.go

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	cfg := LoadConfig()

	client, err := mongo.NewClient(options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal(err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	err = client.Connect(ctx)
	cancel()
	if err != nil {
		log.Fatal(err)
	}
	store := newMongoStore(client.Database("robotics_parts"))

	var payments PaymentIntenter
	if cfg.Features.PaymentRoutes {
		payments = newStripePayments(cfg.StripeSecretKey)
	}

	server := NewServer(store, payments, cfg.TokenSecret, cfg.Features)
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: server.Router(),
	}

	go func() {
		log.Printf("Robotics Parts Store listening on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	sigCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-sigCtx.Done()

	// drain in-flight requests, then release the store handle
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
	if err := store.Close(shutdownCtx); err != nil {
		log.Printf("mongo disconnect: %v", err)
	}
}
