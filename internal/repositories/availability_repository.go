package repositories

import (
	"context"
	"database/sql"
	"strings"

	"wildventures/internal/domain"
	"wildventures/internal/domain/models"

	"github.com/jmoiron/sqlx"
)

type AvailabilityRepository struct {
	DB *sqlx.DB
}

// MinSpots returns the lowest spots_available for destination over the
// inclusive range [from, to]. found is false when no row falls in range.
// Dates are passed through as given (YYYY-MM-DD).
func (r AvailabilityRepository) MinSpots(ctx context.Context, destination, from, to string) (spots int, found bool, err error) {
	var min sql.NullInt64
	err = r.DB.GetContext(ctx, &min, `
		SELECT MIN(spots_available) AS min_spots
		FROM availability
		WHERE destination = ?
		  AND available_date BETWEEN ? AND ?
	`, strings.TrimSpace(destination), strings.TrimSpace(from), strings.TrimSpace(to))
	if err != nil {
		return 0, false, domain.InternalError{Err: err}
	}
	if !min.Valid {
		return 0, false, nil
	}
	return int(min.Int64), true, nil
}

// ListOpenDates returns today-or-later dates with free spots, ascending.
func (r AvailabilityRepository) ListOpenDates(ctx context.Context, destination string) ([]models.AvailableDate, error) {
	out := []models.AvailableDate{}
	err := r.DB.SelectContext(ctx, &out, `
		SELECT available_date, spots_available
		FROM availability
		WHERE destination = ?
		  AND available_date >= CURDATE()
		  AND spots_available > 0
		ORDER BY available_date
	`, strings.TrimSpace(destination))
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}
