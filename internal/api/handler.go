package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/finpulse/internal/domain/dto"
	"github.com/guttosm/finpulse/internal/domain/models"
	"github.com/guttosm/finpulse/internal/logger"
	"github.com/guttosm/finpulse/internal/service"
)

// dateLayout is the ISO-8601 calendar-date format accepted in query params.
const dateLayout = "2006-01-02"

const statisticsParamsMessage = "Please ensure start_date, end_date, symbols are provided and valid."

// Handler provides the HTTP handlers for the financial-data endpoints.
//
// Responsibilities:
//   - Validate incoming HTTP query parameters
//   - Delegate to the service layer for data access
//   - Translate service results into response envelopes
//   - Map store failures to operator-safe 500 messages
type Handler struct {
	financial  service.FinancialDataService
	statistics service.StatisticsService
}

// NewHandler constructs a new Handler instance.
//
// Parameters:
//   - financial (service.FinancialDataService): paginated record queries.
//   - statistics (service.StatisticsService): average computation.
//
// Returns:
//   - *Handler: a handler ready to be registered with the router.
func NewHandler(financial service.FinancialDataService, statistics service.StatisticsService) *Handler {
	return &Handler{financial: financial, statistics: statistics}
}

// parseDate parses an optional ISO-8601 date query parameter. An empty
// value yields (nil, nil); a malformed one returns the parser's error.
func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// GetFinancialData handles GET /api/financial_data requests.
//
// Query Parameters:
//   - symbol (string, optional): Ticker symbol, case-insensitive.
//   - start_date (string, optional): Exclusive lower bound, YYYY-MM-DD.
//   - end_date (string, optional): Exclusive upper bound, YYYY-MM-DD.
//   - limit (int, optional): Page size, default 5, must be positive.
//   - page (int, optional): 1-indexed page, default 1, must be positive.
//
// Responses:
//   - 200 OK: Envelope with the page slice and pagination metadata.
//   - 400 Bad Request: Malformed date or non-positive/non-numeric limit/page.
//   - 500 Internal Server Error: Store failure, generic message only.
//
// GetFinancialData godoc
// @Summary      Query financial records
// @Description  Returns paginated daily open/close/volume records filtered by symbol and exclusive date bounds
// @Tags         financial_data
// @Produce      json
// @Param        symbol      query     string  false  "Ticker symbol" example(IBM)
// @Param        start_date  query     string  false  "Exclusive lower bound in YYYY-MM-DD" example(2024-01-01)
// @Param        end_date    query     string  false  "Exclusive upper bound in YYYY-MM-DD" example(2024-01-31)
// @Param        limit       query     int     false  "Page size (default 5)" example(5)
// @Param        page        query     int     false  "Page number, 1-indexed (default 1)" example(1)
// @Success      200         {object}  dto.FinancialDataResponse  "Success"
// @Failure      400         {object}  dto.FinancialDataResponse  "Bad Request"
// @Failure      500         {object}  dto.FinancialDataResponse  "Internal Error"
// @Router       /api/financial_data [get]
func (h *Handler) GetFinancialData(c *gin.Context) {
	badRequest := func(msg string) {
		c.JSON(http.StatusBadRequest, dto.FinancialDataResponse{
			Data: []dto.FinancialRecordDTO{},
			Info: dto.Info{Error: msg},
		})
	}

	// ─── Parse filter params ──────────────────────────────────
	filter := models.RecordFilter{
		Symbol: strings.ToUpper(strings.TrimSpace(c.Query("symbol"))),
	}

	startDate, err := parseDate(c.Query("start_date"))
	if err != nil {
		badRequest(err.Error())
		return
	}
	filter.StartDate = startDate

	endDate, err := parseDate(c.Query("end_date"))
	if err != nil {
		badRequest(err.Error())
		return
	}
	filter.EndDate = endDate

	// ─── Parse pagination params ──────────────────────────────
	limit := 5
	if s := c.Query("limit"); s != "" {
		limit, err = strconv.Atoi(s)
		if err != nil {
			badRequest(err.Error())
			return
		}
	}
	if limit <= 0 {
		badRequest("limit must be a positive integer")
		return
	}

	page := 1
	if s := c.Query("page"); s != "" {
		page, err = strconv.Atoi(s)
		if err != nil {
			badRequest(err.Error())
			return
		}
	}
	if page <= 0 {
		badRequest("page must be a positive integer")
		return
	}

	// ─── Query service (with request context) ─────────────────
	records, pageInfo, err := h.financial.ListFinancialData(c.Request.Context(), filter, page, limit)
	if err != nil {
		status, msg := mapStoreError(err)
		logger.L().Error().Err(err).Str("endpoint", "financial_data").Msg("query failed")
		c.JSON(status, dto.FinancialDataResponse{
			Data: []dto.FinancialRecordDTO{},
			Info: dto.Info{Error: msg},
		})
		return
	}

	// ─── Build and return response envelope ───────────────────
	c.JSON(http.StatusOK, dto.NewFinancialDataResponse(records, dto.Pagination{
		Count: pageInfo.Count,
		Page:  pageInfo.Page,
		Limit: pageInfo.Limit,
		Pages: pageInfo.Pages,
	}))
}

// GetStatistics handles GET /api/statistics requests.
//
// Query Parameters (all required):
//   - symbol (string): Ticker symbol, case-insensitive.
//   - start_date (string): Exclusive lower bound, YYYY-MM-DD.
//   - end_date (string): Exclusive upper bound, YYYY-MM-DD.
//
// Responses:
//   - 200 OK: Averages over matching rows; with no matches the three
//     averages are null and info.error is "No data".
//   - 400 Bad Request: Any parameter missing or unparsable.
//   - 500 Internal Server Error: Store failure, generic message only.
//
// GetStatistics godoc
// @Summary      Get average statistics
// @Description  Returns mean open price, close price, and volume for a symbol within an exclusive date range
// @Tags         statistics
// @Produce      json
// @Param        symbol      query     string  true  "Ticker symbol" example(IBM)
// @Param        start_date  query     string  true  "Exclusive lower bound in YYYY-MM-DD" example(2024-01-01)
// @Param        end_date    query     string  true  "Exclusive upper bound in YYYY-MM-DD" example(2024-01-31)
// @Success      200         {object}  dto.StatisticsResponse  "Success"
// @Failure      400         {object}  dto.StatisticsResponse  "Bad Request"
// @Failure      500         {object}  dto.StatisticsResponse  "Internal Error"
// @Router       /api/statistics [get]
func (h *Handler) GetStatistics(c *gin.Context) {
	badRequest := func() {
		c.JSON(http.StatusBadRequest, dto.StatisticsResponse{
			Info: dto.Info{Error: statisticsParamsMessage},
		})
	}

	// ─── Validate required params ─────────────────────────────
	symbol := strings.ToUpper(strings.TrimSpace(c.Query("symbol")))
	if symbol == "" {
		badRequest()
		return
	}

	startDate, err := parseDate(c.Query("start_date"))
	if err != nil || startDate == nil {
		badRequest()
		return
	}
	endDate, err := parseDate(c.Query("end_date"))
	if err != nil || endDate == nil {
		badRequest()
		return
	}

	// ─── Query service (with request context) ─────────────────
	filter := models.RecordFilter{Symbol: symbol, StartDate: startDate, EndDate: endDate}
	stats, err := h.statistics.GetStatistics(c.Request.Context(), filter)
	if err != nil {
		status, msg := mapStoreError(err)
		logger.L().Error().Err(err).Str("endpoint", "statistics").Msg("query failed")
		c.JSON(status, dto.StatisticsResponse{Info: dto.Info{Error: msg}})
		return
	}

	// ─── Build and return response envelope ───────────────────
	c.JSON(http.StatusOK, dto.NewStatisticsResponse(symbol, *startDate, *endDate, stats))
}
