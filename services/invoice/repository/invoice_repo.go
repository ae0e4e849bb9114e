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
	"github.com/spiralgalaxytrs/silver-taxi-revamp-dashboard-sub000/services/invoice"
)

// InvoiceRepo persists invoices in PostgreSQL
type InvoiceRepo struct {
	db *sqlx.DB
}

// NewInvoiceRepository creates a new invoice repository
func NewInvoiceRepository(db *sqlx.DB) *InvoiceRepo {
	return &InvoiceRepo{db: db}
}

// Create inserts a new invoice row
func (r *InvoiceRepo) Create(ctx context.Context, inv *models.Invoice) error {
	charges, err := json.Marshal(inv.Charges)
	if err != nil {
		return fmt.Errorf("failed to encode charges: %w", err)
	}

	query := `
		INSERT INTO invoices (
			id, booking_id, charges, subtotal, discount_amount,
			final_amount, advance_amount, remaining_amount, payment_status, issued_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err = r.db.ExecContext(ctx, query,
		inv.ID, inv.BookingID, charges, inv.Subtotal, inv.DiscountAmount,
		inv.FinalAmount, inv.AdvanceAmount, inv.RemainingAmount, inv.PaymentStatus, inv.IssuedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert invoice: %w", err)
	}
	return nil
}

// GetByID fetches one invoice by ID
func (r *InvoiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Invoice, error) {
	return r.getOne(ctx, "id", id)
}

// GetByBookingID fetches the invoice issued for a booking
func (r *InvoiceRepo) GetByBookingID(ctx context.Context, bookingID uuid.UUID) (*models.Invoice, error) {
	return r.getOne(ctx, "booking_id", bookingID)
}

func (r *InvoiceRepo) getOne(ctx context.Context, column string, id uuid.UUID) (*models.Invoice, error) {
	query := fmt.Sprintf(`
		SELECT id, booking_id, charges, subtotal, discount_amount,
			final_amount, advance_amount, remaining_amount, payment_status, issued_at
		FROM invoices
		WHERE %s = $1
	`, column)

	var inv models.Invoice
	var charges []byte

	row := r.db.QueryRowxContext(ctx, query, id)
	err := row.Scan(
		&inv.ID, &inv.BookingID, &charges, &inv.Subtotal, &inv.DiscountAmount,
		&inv.FinalAmount, &inv.AdvanceAmount, &inv.RemainingAmount, &inv.PaymentStatus, &inv.IssuedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, invoice.ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("failed to get invoice: %w", err)
	}

	if len(charges) > 0 {
		if err := json.Unmarshal(charges, &inv.Charges); err != nil {
			return nil, fmt.Errorf("failed to decode charges: %w", err)
		}
	}
	return &inv, nil
}
