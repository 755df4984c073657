package models

// PageInfo is the pagination metadata computed for a financial-data
// query: total matching rows, the requested window, and the number of
// pages that window implies (ceil(Count / Limit)).
type PageInfo struct {
	Count int
	Page  int
	Limit int
	Pages int
}
