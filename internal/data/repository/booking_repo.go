package repository

import (
	"context"
	"fmt"

	"sportello-booking/internal/data/entity"
	"sportello-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	// Upsert writes the record for a flow that reached session initiation.
	// Resubmitting after "edit details" reuses the same booking ref, so the
	// row is keyed on it and overwritten in place.
	Upsert(ctx context.Context, booking *entity.Booking) error
	FindByRef(ctx context.Context, bookingRef string) (*entity.Booking, error)
	UpdateStatusByRef(ctx context.Context, bookingRef string, status entity.BookingStatus) error
	FindRecent(ctx context.Context, limit, offset int) ([]*entity.Booking, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, booking_ref, service_id, option_id, amount_pence, currency,
	name, email, phone, details, locale, payment_intent_id, status, created_at, updated_at`

func (r *bookingRepository) Upsert(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, booking_ref, service_id, option_id, amount_pence, currency,
			name, email, phone, details, locale, payment_intent_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (booking_ref) DO UPDATE SET
			service_id = EXCLUDED.service_id,
			option_id = EXCLUDED.option_id,
			amount_pence = EXCLUDED.amount_pence,
			currency = EXCLUDED.currency,
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			details = EXCLUDED.details,
			locale = EXCLUDED.locale,
			payment_intent_id = EXCLUDED.payment_intent_id,
			status = EXCLUDED.status,
			updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.BookingRef,
		booking.ServiceID,
		booking.OptionID,
		booking.AmountPence,
		booking.Currency,
		booking.Name,
		booking.Email,
		booking.Phone,
		booking.Details,
		booking.Locale,
		booking.PaymentIntentID,
		booking.Status,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to upsert booking",
			zap.Error(err),
			zap.String("booking_ref", booking.BookingRef),
		)
		return fmt.Errorf("upsert booking %s: %w", booking.BookingRef, err)
	}

	return nil
}

func (r *bookingRepository) FindByRef(ctx context.Context, bookingRef string) (*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE booking_ref = $1
	`

	var booking entity.Booking
	err := r.db.QueryRow(ctx, query, bookingRef).Scan(
		&booking.ID,
		&booking.BookingRef,
		&booking.ServiceID,
		&booking.OptionID,
		&booking.AmountPence,
		&booking.Currency,
		&booking.Name,
		&booking.Email,
		&booking.Phone,
		&booking.Details,
		&booking.Locale,
		&booking.PaymentIntentID,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ref",
			zap.Error(err),
			zap.String("booking_ref", bookingRef),
		)
		return nil, fmt.Errorf("find booking by ref %s: %w", bookingRef, err)
	}

	return &booking, nil
}

func (r *bookingRepository) UpdateStatusByRef(ctx context.Context, bookingRef string, status entity.BookingStatus) error {
	query := `UPDATE bookings SET status = $2, updated_at = NOW() WHERE booking_ref = $1`

	result, err := r.db.Exec(ctx, query, bookingRef, status)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_ref", bookingRef),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update booking %s status to %s: %w", bookingRef, string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", bookingRef)
	}

	return nil
}

func (r *bookingRepository) FindRecent(ctx context.Context, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find recent bookings",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find recent bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		var booking entity.Booking
		err := rows.Scan(
			&booking.ID,
			&booking.BookingRef,
			&booking.ServiceID,
			&booking.OptionID,
			&booking.AmountPence,
			&booking.Currency,
			&booking.Name,
			&booking.Email,
			&booking.Phone,
			&booking.Details,
			&booking.Locale,
			&booking.PaymentIntentID,
			&booking.Status,
			&booking.CreatedAt,
			&booking.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, &booking)
	}

	return bookings, nil
}
