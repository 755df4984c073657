//go:build integration
// +build integration

package storage

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	_ "github.com/lib/pq"
	goose "github.com/pressly/goose/v3"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/guttosm/finpulse/internal/domain/models"
)

func startPG(t *testing.T) (dsn string, terminate func()) {
	t.Helper()
	ctx := context.Background()
	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       "finpulse",
			"POSTGRES_USER":     "postgres",
			"POSTGRES_PASSWORD": "postgres",
		},
		WaitingFor: wait.ForSQL("5432/tcp", "postgres", func(h string, p nat.Port) string {
			return fmt.Sprintf("host=%s port=%s user=postgres password=postgres dbname=finpulse sslmode=disable", h, p.Port())
		}).WithStartupTimeout(60 * time.Second),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	if err != nil {
		t.Fatalf("container: %v", err)
	}
	h, err := c.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	mp, err := c.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}
	dsn = fmt.Sprintf("postgres://postgres:postgres@%s:%s/finpulse?sslmode=disable", h, mp.Port())
	terminate = func() { _ = c.Terminate(context.Background()) }
	return dsn, terminate
}

func openAndMigrate(t *testing.T, dsn string) *sql.DB {
	t.Helper()
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Fatalf("ping: %v", err)
	}
	if err := goose.SetDialect("postgres"); err != nil {
		t.Fatalf("dialect: %v", err)
	}
	path := filepath.Join("..", "..", "db", "migrations")
	if err := goose.Up(db, path); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestRepository_UpsertIdempotence(t *testing.T) {
	dsn, term := startPG(t)
	defer term()
	db := openAndMigrate(t, dsn)
	defer db.Close()

	repo := NewFinancialRepository(db)
	ctx := context.Background()
	d := time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC)

	first := []models.FinancialRecord{{Symbol: "IBM", Date: d, OpenPrice: 100.5, ClosePrice: 101.25, Volume: 2000}}
	if err := repo.UpsertRecordsBatch(ctx, first); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	// Same key, different values: must overwrite, not duplicate.
	second := []models.FinancialRecord{{Symbol: "IBM", Date: d, OpenPrice: 110.0, ClosePrice: 111.5, Volume: 3000}}
	if err := repo.UpsertRecordsBatch(ctx, second); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	count, err := repo.CountRecords(ctx, models.RecordFilter{Symbol: "IBM"})
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one row after re-ingestion, got %d", count)
	}

	records, err := repo.ListRecords(ctx, models.RecordFilter{Symbol: "IBM"}, 5, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 1 || records[0].OpenPrice != 110.0 || records[0].ClosePrice != 111.5 || records[0].Volume != 3000 {
		t.Fatalf("expected latest values, got %+v", records)
	}
}

func TestRepository_FilterAndStatistics(t *testing.T) {
	dsn, term := startPG(t)
	defer term()
	db := openAndMigrate(t, dsn)
	defer db.Close()

	repo := NewFinancialRepository(db)
	ctx := context.Background()
	base := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	seed := []models.FinancialRecord{
		{Symbol: "IBM", Date: base, OpenPrice: 10, ClosePrice: 12, Volume: 1000},
		{Symbol: "IBM", Date: base.AddDate(0, 0, 1), OpenPrice: 20, ClosePrice: 22, Volume: 2000},
		{Symbol: "AAPL", Date: base, OpenPrice: 50, ClosePrice: 55, Volume: 9000},
	}
	if err := repo.UpsertRecordsBatch(ctx, seed); err != nil {
		t.Fatalf("seed: %v", err)
	}

	// Exclusive bounds: a window of (base-1, base+2) covers both IBM days.
	start := base.AddDate(0, 0, -1)
	end := base.AddDate(0, 0, 2)
	filter := models.RecordFilter{Symbol: "IBM", StartDate: &start, EndDate: &end}

	count, err := repo.CountRecords(ctx, filter)
	if err != nil || count != 2 {
		t.Fatalf("count=%d err=%v", count, err)
	}

	stats, err := repo.GetStatistics(ctx, filter)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats == nil || stats.AvgOpenPrice != 15 || stats.AvgClosePrice != 17 || stats.AvgVolume != 1500 {
		t.Fatalf("unexpected stats: %+v", stats)
	}

	// Bound exclusivity: start == record date must exclude that day.
	exactStart := base
	filter.StartDate = &exactStart
	count, err = repo.CountRecords(ctx, filter)
	if err != nil || count != 1 {
		t.Fatalf("exclusive start: count=%d err=%v", count, err)
	}

	// No rows for an unknown symbol: statistics must be nil, nil.
	stats, err = repo.GetStatistics(ctx, models.RecordFilter{Symbol: "MSFT"})
	if err != nil || stats != nil {
		t.Fatalf("expected nil stats for unmatched filter, got %+v err=%v", stats, err)
	}
}
