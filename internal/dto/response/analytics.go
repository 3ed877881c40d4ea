package response

type DashboardStatsResponse struct {
	TotalBookings      int64            `json:"totalBookings"`
	TotalSales         float64          `json:"totalSales"`
	StatusDistribution map[string]int64 `json:"statusDistribution"`
}

// SalesTrendsResponse maps an upper-case month name ("MARCH") to completed revenue.
type SalesTrendsResponse map[string]float64
