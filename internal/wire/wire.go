// internal/wire/wire.go
package wire

import (
	"context"
	"net/http"
	"time"

	"homecare-booking/internal/adaptor"
	"homecare-booking/internal/data/repository"
	"homecare-booking/internal/usecase"
	"homecare-booking/pkg/middleware"
	"homecare-booking/pkg/mq"
	"homecare-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Pinger reports whether the store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// App holds the wired router
type App struct {
	Router *chi.Mux
}

// Wiring builds services, handlers and routes from the repositories.
func Wiring(repo *repository.Repository, db Pinger, publisher mq.Publisher, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, publisher, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, db, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	db Pinger,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.HTTP.CORSOrigins))
	r.Use(middleware.RateLimit(config.HTTP.RateLimitRPS, config.HTTP.RateLimitBurst, logger))

	r.Route("/api", func(r chi.Router) {
		wireBooking(r, handler.Booking)
		wireAnalytics(r, handler.Analytics)
		wireCaregiver(r, handler.Caregiver)
	})

	r.Get("/health", healthHandler(db, logger))

	return r
}

func healthHandler(db Pinger, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			logger.Warn("Health check failed", zap.Error(err))
			utils.ResponseUnavailable(w, "database unavailable")
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}
}
