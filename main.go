package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/danielhkuo/songvote/auth"
	"github.com/danielhkuo/songvote/cliparse"
	"github.com/danielhkuo/songvote/db"
	"github.com/danielhkuo/songvote/game"
	"github.com/danielhkuo/songvote/handlers"
	"github.com/danielhkuo/songvote/middleware"
	"github.com/danielhkuo/songvote/roster"
	"github.com/danielhkuo/songvote/router"
)

func main() {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	src := roster.Source{
		SongsFile:    cfg.SongsFile,
		PlayersFile:  cfg.PlayersFile,
		DatabaseType: cfg.DatabaseType,
		DatabaseURL:  cfg.DatabaseURL,
	}

	if cfg.SeedDatabase {
		if err := seedDatabase(ctx, src); err != nil {
			slog.Error("database seeding failed", "error", err)
			os.Exit(1)
		}
	}

	// Load songs and players
	event, err := roster.Load(ctx, src, db.Open)
	if err != nil {
		slog.Error("roster load failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Roster loaded", "songs", len(event.Songs), "players", len(event.Players))

	engine, err := game.New(event.Songs, event.Players, cfg.Rules)
	if err != nil {
		slog.Error("invalid rules", "error", err)
		os.Exit(1)
	}
	if engine.GameOver() {
		slog.Warn("No players loaded, event starts finished")
	}

	eventID := auth.NewEventID()
	presenterKey, err := auth.GeneratePresenterKey(eventID, cfg.PresenterKeySalt)
	if err != nil {
		slog.Error("presenter key generation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Event ready",
		"event_id", eventID,
		"presenter_key", presenterKey,
		"points", cfg.Rules.Points.String(),
		"end", cfg.Rules.End,
		"finalize", cfg.Rules.Finalize,
		"revote", cfg.Rules.Revote,
	)

	// Create router
	mux := router.NewRouter(handlers.NewEventHandler(engine, eventID, cfg))

	// Create server
	server := &http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("Listening", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		// Wait for Ctrl-C or a failed listener
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		slog.Error("Server closed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server closed")
}

// seedDatabase copies the roster files into the roster database
func seedDatabase(ctx context.Context, src roster.Source) error {
	files := src
	files.DatabaseURL = ""
	event, err := roster.Load(ctx, files, db.Open)
	if err != nil {
		return err
	}

	conn, err := db.Open(src.DatabaseType, src.DatabaseURL)
	if err != nil {
		return err
	}
	defer conn.Close()

	if err := db.CreateSchema(conn); err != nil {
		return err
	}
	if err := db.SeedRoster(ctx, conn, src.DatabaseType, event.Songs, event.Players); err != nil {
		return err
	}
	slog.Info("Database seeded", "songs", len(event.Songs), "players", len(event.Players))
	return nil
}
