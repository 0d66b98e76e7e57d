package usecase

import (
	"sportello-booking/internal/catalog"
	"sportello-booking/internal/dto/response"

	"go.uber.org/zap"
)

type CatalogService interface {
	ListServices(locale string) []response.ServiceResponse
}

type catalogService struct {
	log *zap.Logger
}

func NewCatalogService(log *zap.Logger) CatalogService {
	return &catalogService{
		log: log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) ListServices(locale string) []response.ServiceResponse {
	services := catalog.Services()

	out := make([]response.ServiceResponse, len(services))
	for i, svc := range services {
		options := catalog.OptionsForService(svc.ID)

		optionResponses := make([]response.OptionResponse, len(options))
		for j, opt := range options {
			optionResponses[j] = response.OptionResponse{
				ID:          opt.ID,
				Label:       opt.Label(locale),
				AmountLabel: opt.AmountLabel(),
				AmountPence: opt.AmountPence,
				Currency:    opt.Currency,
			}
		}

		out[i] = response.ServiceResponse{
			ID:      svc.ID,
			Name:    svc.Name(locale),
			Options: optionResponses,
		}
	}

	return out
}
