// Command fitclient-demo exercises the request client end to end. With -demo
// it runs fully offline against canned fixtures; otherwise it talks to the
// configured origins. It is a smoke harness, not a product CLI.
package main

import (
	"context"
	"fmt"
	"log"

	"go.uber.org/zap"

	"github.com/vitalsync/fitclient/internal/client/api"
	"github.com/vitalsync/fitclient/internal/client/auth"
	"github.com/vitalsync/fitclient/internal/client/config"
	"github.com/vitalsync/fitclient/internal/client/demo"
	"github.com/vitalsync/fitclient/internal/client/models"
	"github.com/vitalsync/fitclient/internal/client/services"
	"github.com/vitalsync/fitclient/internal/client/tokenstore"
	"github.com/vitalsync/fitclient/internal/logging"
)

func main() {
	cfg := config.LoadConfig()

	zl, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer zl.Sync()
	logger := logging.NewZapLogger(zl)

	var store tokenstore.Store
	if cfg.TokenFile != "" {
		store, err = tokenstore.NewFileStore(cfg.TokenFile)
		if err != nil {
			log.Fatalf("opening token store: %v", err)
		}
	} else {
		store = tokenstore.NewMemoryStore()
	}

	var interceptor api.Interceptor
	if cfg.DemoMode {
		interceptor = demo.New(demo.DefaultDelay)
	}

	client := api.New(api.Options{
		BaseURL:        cfg.BaseURL,
		AIFallbackURL:  cfg.AIFallbackURL,
		Store:          store,
		Refresher:      auth.NewHTTPRefresher(cfg.BaseURL, store, logger),
		Demo:           interceptor,
		Logger:         logger,
		CacheTTL:       cfg.CacheTTL,
		RequestTimeout: cfg.RequestTimeout,
	})

	ctx := context.Background()

	workouts := services.NewWorkoutService(client)
	plans, err := workouts.Plans(ctx)
	if err != nil {
		log.Fatalf("listing plans: %v", err)
	}
	for _, p := range plans {
		fmt.Printf("plan %s: %s (%d days/week)\n", p.ID, p.Name, p.DaysPerWeek)
	}

	sessions, err := workouts.Sessions(ctx)
	if err != nil {
		log.Fatalf("listing sessions: %v", err)
	}
	fmt.Printf("%d sessions on record\n", len(sessions))

	ai := services.NewAIService(client)
	reply, err := ai.SendMessage(ctx, models.ChatRequest{Message: "How did my training go this week?"})
	if err != nil {
		log.Fatalf("chat: %v", err)
	}
	fmt.Printf("coach [%s]: %s\n", reply.ConversationID, reply.Reply)
}
