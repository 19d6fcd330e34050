// Command reset zeroes every link's click counter and the global totals.
// Recorded events and rollup buckets are left in place.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"linkhub/internal/config"
	"linkhub/internal/model"
	"linkhub/internal/repository"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// resetStore is the part of the MySQL repository the reset needs
type resetStore interface {
	ResetLinkClicks(ctx context.Context, at time.Time) (int64, error)
	ResetTotals(ctx context.Context, at time.Time) error
	ListLinks(ctx context.Context) ([]model.Link, error)
}

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the YAML config file")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	mysqlRepo := repository.NewMySQLRepository(&cfg.Database.MySQL)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	err = reset(ctx, mysqlRepo, time.Now())
	cancel()
	mysqlRepo.Close()
	if err != nil {
		log.Fatal().Err(err).Msg("Reset failed")
	}
}

// reset zeroes counters and totals, then logs the resulting link state.
// Listing failures after a successful reset are only logged.
func reset(ctx context.Context, store resetStore, now time.Time) error {
	links, err := store.ResetLinkClicks(ctx, now)
	if err != nil {
		return fmt.Errorf("reset link clicks: %w", err)
	}
	log.Info().Int64("links", links).Msg("Link clicks reset")

	if err := store.ResetTotals(ctx, now); err != nil {
		return fmt.Errorf("reset analytics totals: %w", err)
	}
	log.Info().Msg("Analytics totals reset")

	current, err := store.ListLinks(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to list links after reset")
		return nil
	}
	for _, link := range current {
		log.Info().
			Str("id", link.ID).
			Str("title", link.Title).
			Str("type", string(link.Type)).
			Int64("clicks", link.ClickCount).
			Msg("Link")
	}
	return nil
}
