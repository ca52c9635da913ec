package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/kanado/internal/api"
	"github.com/abhisek/kanado/internal/catalog"
	"github.com/abhisek/kanado/internal/config"
	"github.com/abhisek/kanado/internal/lessons"
	"github.com/abhisek/kanado/internal/review"
	"github.com/abhisek/kanado/internal/session"
	"github.com/abhisek/kanado/internal/stats"
	"github.com/abhisek/kanado/internal/store"
)

// shutdownTimeout bounds how long in-flight requests may drain.
const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func runServe(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	st, err := openStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	reviewSvc := review.NewService(st.ReviewRepo())
	lessonSvc := lessons.NewService(st.LessonBatchRepo(), st.SymbolRepo(), st.NoteRepo())
	agg := stats.NewAggregator(st.SymbolRepo(), st.ReviewRepo(), st.LessonBatchRepo())
	sessions := session.NewManager(reviewSvc, lessonSvc)

	srv := api.NewServer(log, reviewSvc, lessonSvc, agg, sessions)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(cfg.ListenAddr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case sig := <-stop:
		log.Info("shutting down", slog.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(ctx)
}

// openStore opens the database, seeds the symbol catalog, and applies
// pending data migrations.
func openStore(ctx context.Context, cfg *config.Config) (*store.Store, error) {
	if err := store.EnsureDir(cfg.DBPath); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	if err := st.Seed(ctx, catalog.Symbols(), catalog.Batches()); err != nil {
		st.Close()
		return nil, fmt.Errorf("seed catalog: %w", err)
	}
	if err := st.MigrateData(ctx); err != nil {
		st.Close()
		return nil, fmt.Errorf("apply data migrations: %w", err)
	}
	return st, nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	if cfg.IsDev() {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
