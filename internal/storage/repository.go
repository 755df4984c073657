package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/guttosm/finpulse/internal/domain/models"
)

// FinancialRepository defines the contract for financial_data DB operations.
type FinancialRepository interface {
	UpsertRecordsBatch(ctx context.Context, records []models.FinancialRecord) error
	CountRecords(ctx context.Context, filter models.RecordFilter) (int, error)
	ListRecords(ctx context.Context, filter models.RecordFilter, limit, offset int) ([]models.FinancialRecord, error)
	GetStatistics(ctx context.Context, filter models.RecordFilter) (*models.Statistics, error)
}

type financialRepository struct {
	db *sql.DB
}

func NewFinancialRepository(db *sql.DB) FinancialRepository {
	return &financialRepository{db: db}
}

// buildFilter translates a RecordFilter into a WHERE clause with
// positional placeholders and the matching argument list.
//
// Bounds are exclusive on both sides: date > start_date, date < end_date.
func buildFilter(filter models.RecordFilter) (string, []interface{}) {
	conditions := "TRUE"
	var args []interface{}

	if filter.Symbol != "" {
		args = append(args, filter.Symbol)
		conditions += fmt.Sprintf(" AND symbol = $%d", len(args))
	}
	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		conditions += fmt.Sprintf(" AND date > $%d", len(args))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		conditions += fmt.Sprintf(" AND date < $%d", len(args))
	}

	return conditions, args
}

// UpsertRecordsBatch inserts the given records in a single transaction.
// On a (symbol, date) conflict the non-key columns are overwritten with
// the incoming values, which makes re-ingestion of the same day
// idempotent: the last writer for a key wins and no duplicate row is
// ever created.
func (r *financialRepository) UpsertRecordsBatch(ctx context.Context, records []models.FinancialRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO financial_data (symbol, date, open_price, close_price, volume)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT ON CONSTRAINT unique_symbol_date
		DO UPDATE SET open_price = EXCLUDED.open_price,
					  close_price = EXCLUDED.close_price,
					  volume = EXCLUDED.volume
	`)
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	for _, rec := range records {
		if _, err := stmt.ExecContext(ctx, rec.Symbol, rec.Date, rec.OpenPrice, rec.ClosePrice, rec.Volume); err != nil {
			_ = stmt.Close()
			_ = tx.Rollback()
			return err
		}
	}

	if err := stmt.Close(); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

// CountRecords returns the total number of rows matching the filter,
// independent of any pagination window.
func (r *financialRepository) CountRecords(ctx context.Context, filter models.RecordFilter) (int, error) {
	conditions, args := buildFilter(filter)

	var count int
	query := fmt.Sprintf(`SELECT COUNT(*) FROM financial_data WHERE %s`, conditions)
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// ListRecords fetches one page of matching rows. Ordering is stable
// (symbol, date, id) so identical requests always return the same slice.
func (r *financialRepository) ListRecords(ctx context.Context, filter models.RecordFilter, limit, offset int) ([]models.FinancialRecord, error) {
	conditions, args := buildFilter(filter)

	args = append(args, limit)
	limitPlaceholder := len(args)
	args = append(args, offset)
	offsetPlaceholder := len(args)

	query := fmt.Sprintf(`
		SELECT id, symbol, date, open_price, close_price, volume
		FROM financial_data
		WHERE %s
		ORDER BY symbol, date, id
		LIMIT $%d OFFSET $%d
	`, conditions, limitPlaceholder, offsetPlaceholder)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var records []models.FinancialRecord
	for rows.Next() {
		var rec models.FinancialRecord
		if err := rows.Scan(&rec.ID, &rec.Symbol, &rec.Date, &rec.OpenPrice, &rec.ClosePrice, &rec.Volume); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// GetStatistics computes the mean open price, close price, and volume
// over all rows matching the filter.
//
// Returns (nil, nil) when no rows match: AVG over an empty set yields
// SQL NULL for all three columns.
func (r *financialRepository) GetStatistics(ctx context.Context, filter models.RecordFilter) (*models.Statistics, error) {
	conditions, args := buildFilter(filter)

	query := fmt.Sprintf(`
		SELECT AVG(open_price) AS avg_open, AVG(close_price) AS avg_close, AVG(volume) AS avg_volume
		FROM financial_data
		WHERE %s
	`, conditions)

	var avgOpen, avgClose, avgVolume sql.NullFloat64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&avgOpen, &avgClose, &avgVolume); err != nil {
		return nil, err
	}

	if !avgOpen.Valid && !avgClose.Valid && !avgVolume.Valid {
		return nil, nil
	}

	return &models.Statistics{
		Symbol:        filter.Symbol,
		AvgOpenPrice:  avgOpen.Float64,
		AvgClosePrice: avgClose.Float64,
		AvgVolume:     avgVolume.Float64,
	}, nil
}
