package usecase

import (
	"context"
	"fmt"

	"sportello-booking/internal/catalog"
	"sportello-booking/internal/data/entity"
	"sportello-booking/internal/data/repository"
	"sportello-booking/internal/dto/response"

	"go.uber.org/zap"
)

type BookingService interface {
	// GetByRef feeds the post-payment confirmation page.
	GetByRef(ctx context.Context, bookingRef string) (*response.BookingResponse, error)

	// ListRecent backs the admin overview.
	ListRecent(ctx context.Context, limit, offset int) ([]response.BookingResponse, error)
}

type bookingService struct {
	repo repository.BookingRepository
	log  *zap.Logger
}

func NewBookingService(repo repository.BookingRepository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) GetByRef(ctx context.Context, bookingRef string) (*response.BookingResponse, error) {
	booking, err := s.repo.FindByRef(ctx, bookingRef)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s not found", bookingRef)
	}

	resp := bookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) ListRecent(ctx context.Context, limit, offset int) ([]response.BookingResponse, error) {
	bookings, err := s.repo.FindRecent(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list recent bookings: %w", err)
	}

	out := make([]response.BookingResponse, len(bookings))
	for i, b := range bookings {
		out[i] = bookingToResponse(b)
	}

	s.log.Info("Recent bookings retrieved", zap.Int("count", len(out)))
	return out, nil
}

func bookingToResponse(booking *entity.Booking) response.BookingResponse {
	resp := response.BookingResponse{
		BookingRef: booking.BookingRef,
		ServiceID:  booking.ServiceID,
		OptionID:   booking.OptionID,
		Name:       booking.Name,
		Email:      booking.Email,
		Locale:     booking.Locale,
		Status:     booking.Status,
		CreatedAt:  booking.CreatedAt,
	}

	if opt, ok := catalog.FindOption(booking.OptionID); ok {
		resp.AmountLabel = opt.AmountLabel()
	}

	return resp
}
