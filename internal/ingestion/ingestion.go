package ingestion

import (
	"context"
	"database/sql"
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/finpulse/internal/logger"
	"github.com/guttosm/finpulse/internal/storage"
)

const maxSymbolParallel = 4

// repoCtor is an indirection for creating the repository; tests can override this.
var repoCtor = func(db *sql.DB) storage.FinancialRepository {
	return storage.NewFinancialRepository(db)
}

// Run executes one ingestion pass: for each ticker it fetches the daily
// series from the provider and upserts the records keyed by
// (symbol, date).
//
// Behavior:
//   - Each symbol's batch is committed in its own transaction, so a
//     late failure only loses that symbol's progress.
//   - A failing symbol is logged and does not stop the others; the run
//     still returns an error at the end listing what failed.
//   - Symbols are fetched concurrently with a small parallelism bound
//     (clamped to 1..4, defaulting to min(4, NumCPU)).
//
// Parameters:
//   - ctx: context for cancellation.
//   - db: open *sql.DB (PostgreSQL).
//   - client: provider client for the daily-series endpoint.
//   - tickers: symbols to ingest.
//   - parallel: concurrent symbol fetches (0 = auto).
//
// Returns:
//   - error: non-nil if the context was cancelled or any symbol failed.
func Run(ctx context.Context, db *sql.DB, client ProviderClient, tickers []string, parallel int) error {
	if len(tickers) == 0 {
		return fmt.Errorf("no tickers configured")
	}

	repo := repoCtor(db)

	maxParallel := maxSymbolParallel
	if parallel > 0 {
		if parallel > maxSymbolParallel {
			parallel = maxSymbolParallel
		}
		maxParallel = parallel
	} else if c := runtime.NumCPU(); c < maxParallel {
		maxParallel = c
	}

	logger.L().Info().Int("symbols", len(tickers)).Int("max_parallel", maxParallel).Msg("ingestion start")

	// failures are collected instead of aborting the run: one bad
	// symbol must not cost the others their batch.
	var mu sync.Mutex
	var failed []string
	var firstErr error
	recordFailure := func(symbol string, err error) {
		mu.Lock()
		defer mu.Unlock()
		failed = append(failed, symbol)
		if firstErr == nil {
			firstErr = err
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, maxParallel)

	for i, ticker := range tickers {
		idx := i
		symbol := ticker
		sem <- struct{}{}

		g.Go(func() error {
			defer func() { <-sem }()

			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			start := time.Now()
			logger.L().Info().Int("idx", idx+1).Int("total", len(tickers)).Str("symbol", symbol).Msg("symbol start")

			records, err := client.FetchDailySeries(gctx, symbol)
			if err != nil {
				logger.L().Error().Str("symbol", symbol).Err(err).Msg("fetch failed")
				recordFailure(symbol, err)
				return nil
			}

			if err := repo.UpsertRecordsBatch(gctx, records); err != nil {
				logger.L().Error().Str("symbol", symbol).Err(err).Msg("upsert failed")
				recordFailure(symbol, err)
				return nil
			}

			logger.L().Info().
				Int("idx", idx+1).
				Int("total", len(tickers)).
				Str("symbol", symbol).
				Int("rows", len(records)).
				Dur("elapsed", time.Since(start)).
				Msg("symbol done")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	if len(failed) > 0 {
		return fmt.Errorf("ingestion failed for %s: %w", strings.Join(failed, ", "), firstErr)
	}

	return nil
}
