package wire

import (
	"homecare-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAnalytics(r chi.Router, analyticsHandler *adaptor.AnalyticsHandler) {
	r.Route("/analytics", func(r chi.Router) {
		r.Get("/summary", analyticsHandler.GetSummary)
		r.Get("/sales-trends", analyticsHandler.GetSalesTrends)
	})
}
