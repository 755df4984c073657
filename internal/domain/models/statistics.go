package models

// Statistics holds the arithmetic means computed over the records
// matching a symbol + date-range filter.
//
// Fields:
//   - Symbol: the ticker the averages were computed for.
//   - AvgOpenPrice: mean of the daily open prices.
//   - AvgClosePrice: mean of the daily close prices.
//   - AvgVolume: mean of the daily traded volumes.
//
// A nil *Statistics from the repository means no rows matched.
type Statistics struct {
	Symbol        string
	AvgOpenPrice  float64
	AvgClosePrice float64
	AvgVolume     float64
}
