package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/internal/pkg/models"
	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/services/booking"
)

// BookingRepo persists bookings in PostgreSQL. Stops and the charge
// map are stored as JSONB columns.
type BookingRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(cfg *models.Config, db *sqlx.DB) *BookingRepo {
	return &BookingRepo{
		cfg: cfg,
		db:  db,
	}
}

// Create inserts a new booking row
func (r *BookingRepo) Create(ctx context.Context, b *models.Booking) error {
	stops, charges, err := marshalJSONColumns(b)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO bookings (
			id, source, customer_name, customer_mobile,
			service_type, pickup_address, pickup_latitude, pickup_longitude,
			stops, drop_address, drop_latitude, drop_longitude,
			pickup_at, drop_date,
			vehicle_type, tariff_id, rate_per_km,
			distance_km, duration_min, trip_days,
			base_fare, driver_allowance, subtotal,
			tax_regime, charges, offer_id, discount_amount, discount_locked,
			final_amount, advance_amount, remaining_amount, payment_status,
			status, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26,
			$27, $28, $29, $30, $31, $32, $33, $34, $35
		)
	`

	_, err = r.db.ExecContext(ctx, query,
		b.ID, b.Source, b.CustomerName, b.CustomerMobile,
		b.ServiceType, b.PickupAddress, b.PickupLatitude, b.PickupLongitude,
		stops, b.DropAddress, b.DropLatitude, b.DropLongitude,
		b.PickupAt, b.DropDate,
		b.VehicleType, b.TariffID, b.RatePerKm,
		b.DistanceKm, b.DurationMin, b.TripDays,
		b.BaseFare, b.DriverAllowance, b.Subtotal,
		b.TaxRegime, charges, b.OfferID, b.DiscountAmount, b.DiscountLocked,
		b.FinalAmount, b.AdvanceAmount, b.RemainingAmount, b.PaymentStatus,
		b.Status, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert booking: %w", err)
	}
	return nil
}

// Update rewrites the full booking snapshot
func (r *BookingRepo) Update(ctx context.Context, b *models.Booking) error {
	stops, charges, err := marshalJSONColumns(b)
	if err != nil {
		return err
	}

	query := `
		UPDATE bookings SET
			source = $2, customer_name = $3, customer_mobile = $4,
			service_type = $5, pickup_address = $6, pickup_latitude = $7, pickup_longitude = $8,
			stops = $9, drop_address = $10, drop_latitude = $11, drop_longitude = $12,
			pickup_at = $13, drop_date = $14,
			vehicle_type = $15, tariff_id = $16, rate_per_km = $17,
			distance_km = $18, duration_min = $19, trip_days = $20,
			base_fare = $21, driver_allowance = $22, subtotal = $23,
			tax_regime = $24, charges = $25, offer_id = $26, discount_amount = $27, discount_locked = $28,
			final_amount = $29, advance_amount = $30, remaining_amount = $31, payment_status = $32,
			status = $33, updated_at = $34
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query,
		b.ID, b.Source, b.CustomerName, b.CustomerMobile,
		b.ServiceType, b.PickupAddress, b.PickupLatitude, b.PickupLongitude,
		stops, b.DropAddress, b.DropLatitude, b.DropLongitude,
		b.PickupAt, b.DropDate,
		b.VehicleType, b.TariffID, b.RatePerKm,
		b.DistanceKm, b.DurationMin, b.TripDays,
		b.BaseFare, b.DriverAllowance, b.Subtotal,
		b.TaxRegime, charges, b.OfferID, b.DiscountAmount, b.DiscountLocked,
		b.FinalAmount, b.AdvanceAmount, b.RemainingAmount, b.PaymentStatus,
		b.Status, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update booking: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return booking.ErrBookingNotFound
	}
	return nil
}

// GetByID fetches a booking by ID
func (r *BookingRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	query := `
		SELECT
			id, source, customer_name, customer_mobile,
			service_type, pickup_address, pickup_latitude, pickup_longitude,
			stops, drop_address, drop_latitude, drop_longitude,
			pickup_at, drop_date,
			vehicle_type, tariff_id, rate_per_km,
			distance_km, duration_min, trip_days,
			base_fare, driver_allowance, subtotal,
			tax_regime, charges, offer_id, discount_amount, discount_locked,
			final_amount, advance_amount, remaining_amount, payment_status,
			status, created_at, updated_at
		FROM bookings
		WHERE id = $1
	`

	row := r.db.QueryRowxContext(ctx, query, id)
	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, booking.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return b, nil
}

// List fetches bookings newest first, optionally filtered by status
func (r *BookingRepo) List(ctx context.Context, status string, limit, offset int) ([]*models.Booking, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	query := `
		SELECT
			id, source, customer_name, customer_mobile,
			service_type, pickup_address, pickup_latitude, pickup_longitude,
			stops, drop_address, drop_latitude, drop_longitude,
			pickup_at, drop_date,
			vehicle_type, tariff_id, rate_per_km,
			distance_km, duration_min, trip_days,
			base_fare, driver_allowance, subtotal,
			tax_regime, charges, offer_id, discount_amount, discount_locked,
			final_amount, advance_amount, remaining_amount, payment_status,
			status, created_at, updated_at
		FROM bookings
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.QueryxContext(ctx, query, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*models.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*models.Booking, error) {
	var b models.Booking
	var stops, charges []byte

	err := row.Scan(
		&b.ID, &b.Source, &b.CustomerName, &b.CustomerMobile,
		&b.ServiceType, &b.PickupAddress, &b.PickupLatitude, &b.PickupLongitude,
		&stops, &b.DropAddress, &b.DropLatitude, &b.DropLongitude,
		&b.PickupAt, &b.DropDate,
		&b.VehicleType, &b.TariffID, &b.RatePerKm,
		&b.DistanceKm, &b.DurationMin, &b.TripDays,
		&b.BaseFare, &b.DriverAllowance, &b.Subtotal,
		&b.TaxRegime, &charges, &b.OfferID, &b.DiscountAmount, &b.DiscountLocked,
		&b.FinalAmount, &b.AdvanceAmount, &b.RemainingAmount, &b.PaymentStatus,
		&b.Status, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(stops) > 0 {
		if err := json.Unmarshal(stops, &b.Stops); err != nil {
			return nil, fmt.Errorf("failed to decode stops: %w", err)
		}
	}
	if len(charges) > 0 {
		if err := json.Unmarshal(charges, &b.Charges); err != nil {
			return nil, fmt.Errorf("failed to decode charges: %w", err)
		}
	}
	return &b, nil
}

func marshalJSONColumns(b *models.Booking) (stops, charges []byte, err error) {
	stops, err = json.Marshal(b.Stops)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode stops: %w", err)
	}
	charges, err = json.Marshal(b.Charges)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode charges: %w", err)
	}
	return stops, charges, nil
}
