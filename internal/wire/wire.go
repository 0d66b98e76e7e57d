package wire

import (
	"net/http"

	"sportello-booking/internal/adaptor"
	"sportello-booking/internal/data/repository"
	"sportello-booking/internal/usecase"
	"sportello-booking/pkg/leadlog"
	"sportello-booking/pkg/middleware"
	"sportello-booking/pkg/payments"
	"sportello-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router *chi.Mux

	service *usecase.Service
}

// Wiring initializes all dependencies
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	deps := usecase.Deps{
		Initiator: payments.NewStripeInitiator(logger),
		Collector: payments.NewStripeCollector(logger),
		Notifier:  leadlog.NewHTTPNotifier(config.LeadLog, logger),
	}

	service := usecase.NewService(repo, deps, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, config, logger)

	return &App{
		Router:  router,
		service: service,
	}
}

// Close stops background work (the flow store sweeper).
func (a *App) Close() {
	a.service.Flow.Close()
}

// setupRouter configures the chi router
func setupRouter(handler *adaptor.Handler, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireFlow(r, handler.Flow)
	wireCatalog(r, handler.Catalog)
	wireBooking(r, handler.Booking, config, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
