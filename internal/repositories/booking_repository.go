package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"wildventures/internal/domain"
	"wildventures/internal/domain/models"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

const mysqlDuplicateEntry = 1062

const bookingColumns = `
	id, booking_reference, full_name, email, phone, participants,
	destination, tour_package, departure_date, return_date, duration,
	total_price, COALESCE(special_requirements, '') AS special_requirements,
	booking_date, COALESCE(status, 'pending') AS status`

type BookingRepository struct {
	DB *sqlx.DB
}

// Create inserts b as a single statement with status pending and
// booking_date NOW(). A reference collision is a ConflictError and is not
// retried.
func (r BookingRepository) Create(ctx context.Context, b *models.Booking) error {
	res, err := r.DB.ExecContext(ctx, `
		INSERT INTO bookings (
			booking_reference, full_name, email, phone, participants,
			destination, tour_package, departure_date, return_date, duration,
			total_price, special_requirements, booking_date, status
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW(), ?)
	`,
		b.Reference,
		b.FullName,
		b.Email,
		b.Phone,
		b.Participants,
		b.Destination,
		b.TourPackage,
		b.DepartureDate.Format("2006-01-02"),
		b.ReturnDate.Format("2006-01-02"),
		b.Duration,
		b.TotalPrice,
		b.SpecialRequirements,
		string(domain.StatusPending),
	)
	if err != nil {
		var myErr *mysql.MySQLError
		if errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry {
			return domain.ConflictError{Msg: err.Error(), Err: err}
		}
		return domain.InternalError{Err: err}
	}

	if id, err := res.LastInsertId(); err == nil {
		b.ID = id
	}
	b.Status = string(domain.StatusPending)
	return nil
}

func (r BookingRepository) GetByReference(ctx context.Context, ref string) (models.Booking, error) {
	var b models.Booking
	err := r.DB.GetContext(ctx, &b, `SELECT `+bookingColumns+` FROM bookings WHERE booking_reference = ? LIMIT 1`, strings.TrimSpace(ref))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Booking{}, domain.NotFoundError{Resource: "booking", Err: err}
	}
	if err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}
	return b, nil
}

// ListRecent returns the newest bookings first.
func (r BookingRepository) ListRecent(ctx context.Context, limit int) ([]models.Booking, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	out := []models.Booking{}
	err := r.DB.SelectContext(ctx, &out, `SELECT `+bookingColumns+` FROM bookings ORDER BY booking_date DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}
