package dto

import (
	"strconv"
	"time"

	"github.com/guttosm/finpulse/internal/domain/models"
)

// dateLayout is the ISO-8601 calendar-date format used across the API.
const dateLayout = "2006-01-02"

// FinancialRecordDTO is the wire form of a single financial record.
//
// Prices and volume are rendered as decimal strings to avoid
// floating-point serialization ambiguity on the wire; the date is
// ISO-8601 without a time component.
type FinancialRecordDTO struct {
	Symbol     string `json:"symbol" example:"IBM"`
	Date       string `json:"date" example:"2024-02-14"`
	OpenPrice  string `json:"open_price" example:"153.08"`
	ClosePrice string `json:"close_price" example:"154.52"`
	Volume     string `json:"volume" example:"3202047"`
}

// Pagination describes the page window of a financial-data response.
//
// Count is the total number of rows matching the filter before
// pagination; Pages == ceil(Count / Limit).
type Pagination struct {
	Count int `json:"count" example:"20"`
	Page  int `json:"page" example:"1"`
	Limit int `json:"limit" example:"5"`
	Pages int `json:"pages" example:"4"`
}

// Info carries the error slot present in every response envelope.
// An empty string means success.
type Info struct {
	Error string `json:"error" example:""`
}

// FinancialDataResponse is the envelope returned by GET /api/financial_data.
type FinancialDataResponse struct {
	Data       []FinancialRecordDTO `json:"data"`
	Pagination Pagination           `json:"pagination"`
	Info       Info                 `json:"info"`
}

// NewFinancialDataResponse maps domain records plus pagination metadata
// into the response envelope.
func NewFinancialDataResponse(records []models.FinancialRecord, pagination Pagination) FinancialDataResponse {
	data := make([]FinancialRecordDTO, 0, len(records))
	for _, rec := range records {
		data = append(data, FinancialRecordDTO{
			Symbol:     rec.Symbol,
			Date:       rec.Date.Format(dateLayout),
			OpenPrice:  formatDecimal(rec.OpenPrice),
			ClosePrice: formatDecimal(rec.ClosePrice),
			Volume:     formatDecimal(rec.Volume),
		})
	}
	return FinancialDataResponse{Data: data, Pagination: pagination, Info: Info{Error: ""}}
}

// formatDecimal renders a float with the shortest exact decimal
// representation ("100.5", not "100.500000").
func formatDecimal(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatDate renders a calendar date in the API's ISO-8601 layout.
func FormatDate(d time.Time) string {
	return d.Format(dateLayout)
}
