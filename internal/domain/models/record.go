package models

import "time"

// FinancialRecord is one trading day for one ticker symbol.
// It maps 1:1 to a row of the financial_data table.
//
// Fields:
//   - ID: surrogate database identifier, not semantically meaningful.
//   - Symbol: uppercase ticker (e.g., "IBM").
//   - Date: the trading day, date-only, UTC midnight.
//   - OpenPrice / ClosePrice: daily open and close, non-negative.
//   - Volume: number of shares traded, non-negative.
//
// At most one record exists per (Symbol, Date); ingestion overwrites
// the non-key fields on conflict.
type FinancialRecord struct {
	ID         int64
	Symbol     string
	Date       time.Time
	OpenPrice  float64
	ClosePrice float64
	Volume     float64
}

// RecordFilter is the conjunctive filter shared by the financial-data
// and statistics queries.
//
// Semantics:
//   - Symbol: exact match when non-empty (already uppercased by the caller).
//   - StartDate: records strictly AFTER this date when non-nil.
//   - EndDate: records strictly BEFORE this date when non-nil.
//
// Both date bounds are exclusive.
type RecordFilter struct {
	Symbol    string
	StartDate *time.Time
	EndDate   *time.Time
}
