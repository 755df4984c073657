package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/finpulse/internal/domain/models"
	"github.com/guttosm/finpulse/internal/service"
)

type mockFinancialService struct {
	records []models.FinancialRecord
	info    models.PageInfo
	err     error
	filter  models.RecordFilter
	page    int
	limit   int
}

func (m *mockFinancialService) ListFinancialData(_ context.Context, filter models.RecordFilter, page, limit int) ([]models.FinancialRecord, models.PageInfo, error) {
	m.filter = filter
	m.page = page
	m.limit = limit
	return m.records, m.info, m.err
}

type mockStatisticsService struct {
	stats  *models.Statistics
	err    error
	filter models.RecordFilter
}

func (m *mockStatisticsService) GetStatistics(_ context.Context, filter models.RecordFilter) (*models.Statistics, error) {
	m.filter = filter
	return m.stats, m.err
}

var (
	_ service.FinancialDataService = (*mockFinancialService)(nil)
	_ service.StatisticsService    = (*mockStatisticsService)(nil)
)

func setupRouterWithMocks(fin service.FinancialDataService, stats service.StatisticsService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(fin, stats)
	r := gin.New()
	api := r.Group("/api")
	api.GET("/financial_data", h.GetFinancialData)
	api.GET("/statistics", h.GetStatistics)
	return r
}

type envelope struct {
	Data       json.RawMessage `json:"data"`
	Pagination struct {
		Count int `json:"count"`
		Page  int `json:"page"`
		Limit int `json:"limit"`
		Pages int `json:"pages"`
	} `json:"pagination"`
	Info struct {
		Error string `json:"error"`
	} `json:"info"`
}

func TestGetFinancialData_TableDriven(t *testing.T) {
	day := time.Date(2024, 2, 14, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		svc    *mockFinancialService
		query  string
		status int
		assert func(t *testing.T, svc *mockFinancialService, body []byte)
	}{
		{
			name:   "defaults",
			svc:    &mockFinancialService{info: models.PageInfo{Count: 0, Page: 1, Limit: 5, Pages: 0}},
			query:  "/api/financial_data",
			status: http.StatusOK,
			assert: func(t *testing.T, svc *mockFinancialService, body []byte) {
				if svc.page != 1 || svc.limit != 5 {
					t.Fatalf("defaults not applied: page=%d limit=%d", svc.page, svc.limit)
				}
				var out envelope
				if err := json.Unmarshal(body, &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if string(out.Data) != "[]" {
					t.Fatalf("expected empty data array, got %s", out.Data)
				}
				if out.Info.Error != "" {
					t.Fatalf("expected empty info.error, got %q", out.Info.Error)
				}
			},
		},
		{
			name: "success with records",
			svc: &mockFinancialService{
				records: []models.FinancialRecord{
					{ID: 1, Symbol: "IBM", Date: day, OpenPrice: 100.5, ClosePrice: 101.25, Volume: 2000},
				},
				info: models.PageInfo{Count: 1, Page: 1, Limit: 5, Pages: 1},
			},
			query:  "/api/financial_data?symbol=ibm&start_date=2024-02-13&end_date=2024-02-15",
			status: http.StatusOK,
			assert: func(t *testing.T, svc *mockFinancialService, body []byte) {
				if svc.filter.Symbol != "IBM" {
					t.Fatalf("symbol not uppercased: %q", svc.filter.Symbol)
				}
				if svc.filter.StartDate == nil || svc.filter.EndDate == nil {
					t.Fatalf("dates not parsed: %+v", svc.filter)
				}
				var out struct {
					Data []map[string]string `json:"data"`
					Pagination struct {
						Count int `json:"count"`
						Pages int `json:"pages"`
					} `json:"pagination"`
				}
				if err := json.Unmarshal(body, &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if len(out.Data) != 1 {
					t.Fatalf("expected 1 record, got %d", len(out.Data))
				}
				rec := out.Data[0]
				if rec["symbol"] != "IBM" || rec["date"] != "2024-02-14" {
					t.Fatalf("unexpected record: %+v", rec)
				}
				// Prices and volume must be decimal strings.
				if rec["open_price"] != "100.5" || rec["close_price"] != "101.25" || rec["volume"] != "2000" {
					t.Fatalf("unexpected string rendering: %+v", rec)
				}
				if out.Pagination.Count != 1 || out.Pagination.Pages != 1 {
					t.Fatalf("unexpected pagination: %+v", out.Pagination)
				}
			},
		},
		{
			name:   "malformed start_date",
			svc:    &mockFinancialService{},
			query:  "/api/financial_data?start_date=2024-13-40",
			status: http.StatusBadRequest,
			assert: func(t *testing.T, _ *mockFinancialService, body []byte) {
				var out envelope
				if err := json.Unmarshal(body, &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if out.Info.Error == "" {
					t.Fatalf("expected parser error text in info.error")
				}
			},
		},
		{
			name:   "malformed end_date",
			svc:    &mockFinancialService{},
			query:  "/api/financial_data?end_date=not-a-date",
			status: http.StatusBadRequest,
		},
		{
			name:   "non-numeric limit",
			svc:    &mockFinancialService{},
			query:  "/api/financial_data?limit=five",
			status: http.StatusBadRequest,
		},
		{
			name:   "zero limit",
			svc:    &mockFinancialService{},
			query:  "/api/financial_data?limit=0",
			status: http.StatusBadRequest,
		},
		{
			name:   "negative page",
			svc:    &mockFinancialService{},
			query:  "/api/financial_data?page=-1",
			status: http.StatusBadRequest,
		},
		{
			name:   "store failure",
			svc:    &mockFinancialService{err: errors.New("db down")},
			query:  "/api/financial_data",
			status: http.StatusInternalServerError,
			assert: func(t *testing.T, _ *mockFinancialService, body []byte) {
				var out envelope
				if err := json.Unmarshal(body, &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if out.Info.Error != "Server error" {
					t.Fatalf("expected generic message, got %q", out.Info.Error)
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouterWithMocks(tc.svc, &mockStatisticsService{})
			req := httptest.NewRequest(http.MethodGet, tc.query, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d body=%s", tc.status, w.Code, w.Body.String())
			}
			if tc.assert != nil {
				tc.assert(t, tc.svc, w.Body.Bytes())
			}
		})
	}
}

type statsBody struct {
	Data struct {
		StartDate     string   `json:"start_date"`
		EndDate       string   `json:"end_date"`
		Symbol        string   `json:"symbol"`
		AvgOpenPrice  *float64 `json:"average_daily_open_price"`
		AvgClosePrice *float64 `json:"average_daily_close_price"`
		AvgVolume     *float64 `json:"average_daily_volume"`
	} `json:"data"`
	Info struct {
		Error string `json:"error"`
	} `json:"info"`
}

func TestGetStatistics_TableDriven(t *testing.T) {
	cases := []struct {
		name   string
		svc    *mockStatisticsService
		query  string
		status int
		assert func(t *testing.T, body []byte)
	}{
		{
			name:   "missing symbol",
			svc:    &mockStatisticsService{},
			query:  "/api/statistics?start_date=2024-01-01&end_date=2024-01-31",
			status: http.StatusBadRequest,
			assert: func(t *testing.T, body []byte) {
				var out statsBody
				if err := json.Unmarshal(body, &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if out.Info.Error != statisticsParamsMessage {
					t.Fatalf("unexpected message: %q", out.Info.Error)
				}
			},
		},
		{
			name:   "missing start_date",
			svc:    &mockStatisticsService{},
			query:  "/api/statistics?symbol=IBM&end_date=2024-01-31",
			status: http.StatusBadRequest,
		},
		{
			name:   "missing end_date",
			svc:    &mockStatisticsService{},
			query:  "/api/statistics?symbol=IBM&start_date=2024-01-01",
			status: http.StatusBadRequest,
		},
		{
			name:   "malformed date",
			svc:    &mockStatisticsService{},
			query:  "/api/statistics?symbol=IBM&start_date=2024-13-40&end_date=2024-01-31",
			status: http.StatusBadRequest,
		},
		{
			name: "success",
			svc: &mockStatisticsService{
				stats: &models.Statistics{Symbol: "IBM", AvgOpenPrice: 15, AvgClosePrice: 17, AvgVolume: 1500},
			},
			query:  "/api/statistics?symbol=ibm&start_date=2024-01-01&end_date=2024-01-31",
			status: http.StatusOK,
			assert: func(t *testing.T, body []byte) {
				var out statsBody
				if err := json.Unmarshal(body, &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if out.Data.Symbol != "IBM" || out.Data.StartDate != "2024-01-01" || out.Data.EndDate != "2024-01-31" {
					t.Fatalf("unexpected data block: %+v", out.Data)
				}
				if out.Data.AvgOpenPrice == nil || *out.Data.AvgOpenPrice != 15 {
					t.Fatalf("unexpected open average: %+v", out.Data.AvgOpenPrice)
				}
				if out.Data.AvgClosePrice == nil || *out.Data.AvgClosePrice != 17 {
					t.Fatalf("unexpected close average: %+v", out.Data.AvgClosePrice)
				}
				if out.Info.Error != "" {
					t.Fatalf("expected empty info.error, got %q", out.Info.Error)
				}
			},
		},
		{
			name:   "no data",
			svc:    &mockStatisticsService{stats: nil},
			query:  "/api/statistics?symbol=MSFT&start_date=2024-01-01&end_date=2024-01-31",
			status: http.StatusOK,
			assert: func(t *testing.T, body []byte) {
				var out statsBody
				if err := json.Unmarshal(body, &out); err != nil {
					t.Fatalf("invalid json: %v", err)
				}
				if out.Info.Error != "No data" {
					t.Fatalf("expected 'No data', got %q", out.Info.Error)
				}
				if out.Data.AvgOpenPrice != nil || out.Data.AvgClosePrice != nil || out.Data.AvgVolume != nil {
					t.Fatalf("expected null averages, got %+v", out.Data)
				}
			},
		},
		{
			name:   "store failure",
			svc:    &mockStatisticsService{err: errors.New("db down")},
			query:  "/api/statistics?symbol=IBM&start_date=2024-01-01&end_date=2024-01-31",
			status: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := setupRouterWithMocks(&mockFinancialService{}, tc.svc)
			req := httptest.NewRequest(http.MethodGet, tc.query, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d body=%s", tc.status, w.Code, w.Body.String())
			}
			if tc.assert != nil {
				tc.assert(t, w.Body.Bytes())
			}
		})
	}
}
