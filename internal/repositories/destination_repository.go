package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"wildventures/internal/domain"
	"wildventures/internal/domain/models"

	"github.com/jmoiron/sqlx"
)

type DestinationRepository struct {
	DB *sqlx.DB
}

// BasePrice looks up destinations.base_price. found is false when no row
// exists or the stored price is zero.
func (r DestinationRepository) BasePrice(ctx context.Context, code string) (price float64, found bool, err error) {
	err = r.DB.GetContext(ctx, &price, `SELECT base_price FROM destinations WHERE code = ? LIMIT 1`, strings.TrimSpace(code))
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, domain.InternalError{Err: err}
	}
	return price, price != 0, nil
}

// List returns every destination ordered by display name.
func (r DestinationRepository) List(ctx context.Context) ([]models.Destination, error) {
	out := []models.Destination{}
	err := r.DB.SelectContext(ctx, &out, `
		SELECT code, name, base_price, COALESCE(description, '') AS description
		FROM destinations
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}
