package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"notekeep-be/internal/config"
	"notekeep-be/pkg/events"
	"notekeep-be/pkg/nats"

	"github.com/fatih/color"
)

// Follows the entity change feed on NATS and prints every event. Handy
// for checking that mutations reach external consumers.
func main() {
	cfg := config.Load()
	if cfg.App.NatsURL == "" {
		log.Fatal("NATS_URL is not set")
	}

	sub, err := nats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Fatalf("Failed to connect to NATS: %v", err)
	}
	defer sub.Close()

	err = sub.Subscribe("notekeep.>", "notekeep-tail", func(ctx context.Context, event events.Event) error {
		payload := event.Payload()
		switch payload["action"] {
		case events.ActionDeleted:
			color.Red("%s  %v", event.EventType(), payload)
		default:
			color.Green("%s  %v", event.EventType(), payload)
		}
		return nil
	})
	if err != nil {
		log.Fatalf("Failed to subscribe: %v", err)
	}

	color.Cyan("Tailing notekeep.> (ctrl-c to stop)")
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
}
