package ingestion

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/guttosm/finpulse/internal/domain/models"
)

// Sentinel errors for the two failure categories of the provider call.
// Callers classify with errors.Is.
var (
	// ErrProvider means the provider returned a non-2xx status or was
	// unreachable even after retries.
	ErrProvider = errors.New("provider request failed")

	// ErrDataFormat means the provider responded 2xx but the payload
	// did not have the expected shape (schema change or invalid symbol).
	ErrDataFormat = errors.New("unexpected provider payload")
)

const (
	timeSeriesKey = "Time Series (Daily)"

	openField   = "1. open"
	closeField  = "4. close"
	volumeField = "6. volume"

	dateLayout = "2006-01-02"

	requestTimeout = 15 * time.Second
)

// Retry knobs are vars so tests can shrink the backoff.
var (
	maxRetries uint64 = 3
	retryBase         = 500 * time.Millisecond
)

// ProviderClient fetches the raw daily series for one ticker symbol and
// converts it into canonical financial records.
type ProviderClient interface {
	FetchDailySeries(ctx context.Context, symbol string) ([]models.FinancialRecord, error)
}

// alphaVantageClient talks to the Alpha Vantage daily-adjusted endpoint:
//
//	GET {base}/query?function=TIME_SERIES_DAILY_ADJUSTED&symbol=X&apikey=K
//
// The HTTP client carries a bounded timeout, and transient failures
// (network errors, 5xx) are retried with exponential backoff.
type alphaVantageClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewAlphaVantageClient constructs a provider client.
//
// Parameters:
//   - baseURL: provider base URL (e.g., "https://www.alphavantage.co").
//   - apiKey: the Alpha Vantage API key.
func NewAlphaVantageClient(baseURL, apiKey string) ProviderClient {
	return &alphaVantageClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: requestTimeout},
	}
}

// dailySeriesPayload matches the provider response envelope. Only the
// time-series mapping is read; metadata keys are ignored.
type dailySeriesPayload struct {
	TimeSeries map[string]map[string]string `json:"Time Series (Daily)"`
}

// FetchDailySeries issues the provider request (with retry on transient
// failure) and maps each day of the returned series to a FinancialRecord.
//
// Errors:
//   - ErrProvider: non-2xx response or exhausted retries.
//   - ErrDataFormat: missing time-series key, missing per-day field, or
//     malformed numeric/date text.
func (c *alphaVantageClient) FetchDailySeries(ctx context.Context, symbol string) ([]models.FinancialRecord, error) {
	endpoint := fmt.Sprintf(
		"%s/query?function=TIME_SERIES_DAILY_ADJUSTED&symbol=%s&apikey=%s",
		c.baseURL, url.QueryEscape(symbol), url.QueryEscape(c.apiKey),
	)

	var body []byte
	backoff := retry.WithMaxRetries(maxRetries, retry.NewExponential(retryBase))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return err
		}

		resp, err := c.client.Do(req)
		if err != nil {
			// Network-level failure: worth another attempt.
			return retry.RetryableError(fmt.Errorf("%w: %v", ErrProvider, err))
		}
		defer func() { _ = resp.Body.Close() }()

		if resp.StatusCode >= http.StatusInternalServerError {
			return retry.RetryableError(fmt.Errorf("%w: status %d", ErrProvider, resp.StatusCode))
		}
		if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
			return fmt.Errorf("%w: status %d", ErrProvider, resp.StatusCode)
		}

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return retry.RetryableError(fmt.Errorf("%w: read body: %v", ErrProvider, err))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return parseDailySeries(symbol, body)
}

// parseDailySeries decodes the provider JSON body and converts the
// per-day field maps into canonical records.
func parseDailySeries(symbol string, body []byte) ([]models.FinancialRecord, error) {
	var payload dailySeriesPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: decode json: %v", ErrDataFormat, err)
	}
	if payload.TimeSeries == nil {
		return nil, fmt.Errorf("%w: missing %q key", ErrDataFormat, timeSeriesKey)
	}

	records := make([]models.FinancialRecord, 0, len(payload.TimeSeries))
	for dateStr, fields := range payload.TimeSeries {
		date, err := time.Parse(dateLayout, dateStr)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid date %q: %v", ErrDataFormat, dateStr, err)
		}

		open, err := extractFloat(fields, openField)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrDataFormat, dateStr, err)
		}
		closePrice, err := extractFloat(fields, closeField)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrDataFormat, dateStr, err)
		}
		volume, err := extractFloat(fields, volumeField)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrDataFormat, dateStr, err)
		}

		records = append(records, models.FinancialRecord{
			Symbol:     symbol,
			Date:       date,
			OpenPrice:  open,
			ClosePrice: closePrice,
			Volume:     volume,
		})
	}

	return records, nil
}

// extractFloat reads one named field from a per-day map and converts it
// from decimal text to float64.
func extractFloat(fields map[string]string, name string) (float64, error) {
	raw, ok := fields[name]
	if !ok {
		return 0, fmt.Errorf("missing field %q", name)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %q: %v", name, err)
	}
	return v, nil
}
