package dto

import (
	"time"

	"github.com/guttosm/finpulse/internal/domain/models"
)

// StatisticsDTO is the data block of the statistics response.
//
// The three averages are pointers so that an empty result set renders
// them as JSON null (NaN is not valid JSON) while info.error carries
// "No data".
type StatisticsDTO struct {
	StartDate     string   `json:"start_date" example:"2024-01-01"`
	EndDate       string   `json:"end_date" example:"2024-01-31"`
	Symbol        string   `json:"symbol" example:"IBM"`
	AvgOpenPrice  *float64 `json:"average_daily_open_price" example:"152.33"`
	AvgClosePrice *float64 `json:"average_daily_close_price" example:"153.72"`
	AvgVolume     *float64 `json:"average_daily_volume" example:"4123056.5"`
}

// StatisticsResponse is the envelope returned by GET /api/statistics.
type StatisticsResponse struct {
	Data StatisticsDTO `json:"data"`
	Info Info          `json:"info"`
}

// NewStatisticsResponse builds the statistics envelope. A nil stats
// means no rows matched: the averages stay null and info.error is set
// to "No data".
func NewStatisticsResponse(symbol string, startDate, endDate time.Time, stats *models.Statistics) StatisticsResponse {
	resp := StatisticsResponse{
		Data: StatisticsDTO{
			StartDate: startDate.Format(dateLayout),
			EndDate:   endDate.Format(dateLayout),
			Symbol:    symbol,
		},
	}
	if stats == nil {
		resp.Info.Error = "No data"
		return resp
	}
	resp.Data.AvgOpenPrice = &stats.AvgOpenPrice
	resp.Data.AvgClosePrice = &stats.AvgClosePrice
	resp.Data.AvgVolume = &stats.AvgVolume
	return resp
}
