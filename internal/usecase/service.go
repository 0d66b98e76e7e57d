package usecase

import (
	"sportello-booking/internal/data/repository"
	"sportello-booking/pkg/leadlog"
	"sportello-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Flow    FlowService
	Catalog CatalogService
	Booking BookingService
}

// Deps are the external collaborators the flow orchestrates: the payment
// provider boundary and the best-effort lead log.
type Deps struct {
	Initiator SessionInitiator
	Collector Collector
	Notifier  leadlog.Notifier
}

func NewService(repo *repository.Repository, deps Deps, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Flow:    NewFlowService(repo.Booking, deps.Initiator, deps.Collector, deps.Notifier, config, log),
		Catalog: NewCatalogService(log),
		Booking: NewBookingService(repo.Booking, log),
	}
}
