package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

const seedSkipThreshold = 100

// Seeder fills the availability table with demo capacity for the coming days.
type Seeder struct {
	DB    *sqlx.DB
	Now   func() time.Time
	Spots func() int
}

func (s Seeder) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// spots returns a capacity in [5, 19].
func (s Seeder) spots() int {
	if s.Spots != nil {
		return s.Spots()
	}
	return 5 + rand.Intn(15)
}

// SeedAvailability inserts one row per destination per day for the next days
// days. Existing (destination, date) pairs are left alone. Nothing is
// generated once the table holds seedSkipThreshold rows or more.
func (s Seeder) SeedAvailability(ctx context.Context, days int) (int, error) {
	var existing int
	if err := s.DB.GetContext(ctx, &existing, `SELECT COUNT(*) FROM availability`); err != nil {
		return 0, fmt.Errorf("count availability: %w", err)
	}
	if existing >= seedSkipThreshold {
		logrus.WithField("rows", existing).Info("availability data already exists, skipping generation")
		return 0, nil
	}

	var codes []string
	if err := s.DB.SelectContext(ctx, &codes, `SELECT code FROM destinations ORDER BY id`); err != nil {
		return 0, fmt.Errorf("list destinations: %w", err)
	}

	stmt, err := s.DB.PreparexContext(ctx, `
		INSERT IGNORE INTO availability (destination, available_date, spots_available)
		VALUES (?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("prepare availability insert: %w", err)
	}
	defer stmt.Close()

	start := s.now()
	inserted := 0
	for _, code := range codes {
		for i := 0; i < days; i++ {
			day := start.AddDate(0, 0, i).Format("2006-01-02")
			res, err := stmt.ExecContext(ctx, code, day, s.spots())
			if err != nil {
				return inserted, fmt.Errorf("insert availability %s %s: %w", code, day, err)
			}
			if n, _ := res.RowsAffected(); n > 0 {
				inserted++
			}
		}
	}

	logrus.WithField("rows", inserted).Info("generated availability records")
	return inserted, nil
}
