package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"wildventures/internal/domain"
	"wildventures/internal/domain/models"
	"wildventures/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "mysql"), mock
}

func expectBasePrice(mock sqlmock.Sqlmock, code string, price any) {
	rows := sqlmock.NewRows([]string{"base_price"})
	if price != nil {
		rows.AddRow(price)
	}
	mock.ExpectQuery(`SELECT base_price FROM destinations`).WithArgs(code).WillReturnRows(rows)
}

func expectMinSpots(mock sqlmock.Sqlmock, dest, from, to string, min any) {
	mock.ExpectQuery(`SELECT MIN\(spots_available\)`).
		WithArgs(dest, from, to).
		WillReturnRows(sqlmock.NewRows([]string{"min_spots"}).AddRow(min))
}

func TestPricing_SerengetiLuxuryWithoutRow(t *testing.T) {
	db, mock := newMockDB(t)
	svc := PricingService{Destinations: repositories.DestinationRepository{DB: db}}
	expectBasePrice(mock, "serengeti", nil)

	total, err := svc.TotalPrice(context.Background(), "serengeti", 4, "luxury")
	require.NoError(t, err)
	assert.InDelta(t, 14392.80, total, 1e-6)
}

func TestPricing_DatabasePriceWins(t *testing.T) {
	db, mock := newMockDB(t)
	svc := PricingService{Destinations: repositories.DestinationRepository{DB: db}}
	expectBasePrice(mock, "amazon", 2500.0)

	total, err := svc.TotalPrice(context.Background(), "amazon", 2, "unknown-package")
	require.NoError(t, err)
	assert.InDelta(t, 5000.0, total, 1e-9)
	assert.Equal(t, 1.0, svc.Modifier("unknown-package"))
}

func TestPricing_UnknownDestinationDefault(t *testing.T) {
	db, mock := newMockDB(t)
	svc := PricingService{Destinations: repositories.DestinationRepository{DB: db}}
	expectBasePrice(mock, "atlantis", nil)

	base, err := svc.BasePrice(context.Background(), "atlantis")
	require.NoError(t, err)
	assert.Equal(t, 2000.0, base)
}

func newAvailabilityService(db *sqlx.DB) AvailabilityService {
	return AvailabilityService{
		Availability: repositories.AvailabilityRepository{DB: db},
		Pricing:      PricingService{Destinations: repositories.DestinationRepository{DB: db}},
	}
}

func TestAvailabilityCheck_PartyFits(t *testing.T) {
	db, mock := newMockDB(t)
	svc := newAvailabilityService(db)
	expectMinSpots(mock, "amazon", "2025-06-01", "2025-06-05", 3)
	expectBasePrice(mock, "amazon", 2299.0)

	res, err := svc.Check(context.Background(), "amazon", "2025-06-01", "2025-06-05", 3, "river")
	require.NoError(t, err)
	assert.True(t, res.Available)
	assert.Equal(t, 3, res.SpotsAvailable)
	assert.InDelta(t, 2299*3*1.2, res.TotalPrice, 1e-6)
	assert.Equal(t, "$8,276.40", res.FormattedPrice)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAvailabilityCheck_PartyTooLarge(t *testing.T) {
	db, mock := newMockDB(t)
	svc := newAvailabilityService(db)
	expectMinSpots(mock, "amazon", "2025-06-01", "2025-06-05", 3)

	res, err := svc.Check(context.Background(), "amazon", "2025-06-01", "2025-06-05", 4, "river")
	require.NoError(t, err)
	assert.False(t, res.Available)
	assert.Contains(t, res.Message, "3")
	assert.Equal(t, "Only 3 spots available for the selected dates", res.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAvailability_UnknownRangeAsymmetry(t *testing.T) {
	db, mock := newMockDB(t)
	svc := newAvailabilityService(db)
	expectMinSpots(mock, "galapagos", "2031-01-01", "2031-01-01", nil)
	expectMinSpots(mock, "galapagos", "2031-01-01", "2031-01-01", nil)

	capacity, err := svc.Capacity(context.Background(), "galapagos", "2031-01-01", "2031-01-01")
	require.NoError(t, err)
	assert.Equal(t, DefaultCapacity, capacity)

	res, err := svc.Check(context.Background(), "galapagos", "2031-01-01", "2031-01-01", 1, "standard")
	require.NoError(t, err)
	assert.False(t, res.Available)
	assert.False(t, res.Known)
	assert.Equal(t, "No availability information found for the selected dates", res.Message)
}

func TestAvailability_StorageErrorPropagates(t *testing.T) {
	db, mock := newMockDB(t)
	svc := newAvailabilityService(db)
	mock.ExpectQuery(`SELECT MIN\(spots_available\)`).WillReturnError(errors.New("table missing"))

	_, err := svc.Capacity(context.Background(), "amazon", "2025-06-01", "2025-06-02")
	require.Error(t, err)
	assert.Equal(t, "table missing", err.Error())
}

type capturingNotifier struct {
	got  []models.Booking
	ctxs []context.Context
}

func (c *capturingNotifier) BookingConfirmed(ctx context.Context, b models.Booking) {
	c.got = append(c.got, b)
	c.ctxs = append(c.ctxs, ctx)
}

func newBookingService(db *sqlx.DB, n ConfirmationNotifier) BookingService {
	return BookingService{
		Bookings: repositories.BookingRepository{DB: db},
		Pricing:  PricingService{Destinations: repositories.DestinationRepository{DB: db}},
		Notifier: n,
		Now:      func() time.Time { return time.Date(2030, 6, 1, 9, 0, 0, 0, time.Local) },
		RandIntN: func(int) int { return 234 },
	}
}

func TestGenerateReferenceFormat(t *testing.T) {
	svc := newBookingService(nil, nil)
	assert.Equal(t, "WV203006011234", svc.GenerateReference())

	svc.RandIntN = nil
	ref := svc.GenerateReference()
	assert.Regexp(t, `^WV20300601[1-9][0-9]{3}$`, ref)
}

func TestSubmit_StoresAndNotifies(t *testing.T) {
	db, mock := newMockDB(t)
	n := &capturingNotifier{}
	svc := newBookingService(db, n)

	expectBasePrice(mock, "serengeti", nil)
	mock.ExpectExec(`INSERT INTO bookings`).
		WithArgs("WV203006011234", "Jane Goodall", "jane@example.com", "+1 555 0100", 4,
			"serengeti", "luxury", "2030-06-10", "2030-06-14", 4, sqlmock.AnyArg(), "", "pending").
		WillReturnResult(sqlmock.NewResult(7, 1))

	b, err := svc.Submit(context.Background(), models.BookingForm{
		FullName:      "Jane Goodall",
		Email:         "jane@example.com",
		Phone:         "+1 555 0100",
		Participants:  "4",
		Destination:   "serengeti",
		TourPackage:   "luxury",
		DepartureDate: "2030-06-10",
		ReturnDate:    "2030-06-14",
	})
	require.NoError(t, err)
	assert.Equal(t, "WV203006011234", b.Reference)
	assert.Equal(t, 4, b.Duration)
	assert.InDelta(t, 14392.80, b.TotalPrice, 1e-6)
	assert.Equal(t, "pending", b.Status)
	require.Len(t, n.got, 1)
	assert.Equal(t, b.Reference, n.got[0].Reference)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmit_ValidationFailureTouchesNothing(t *testing.T) {
	db, mock := newMockDB(t)
	n := &capturingNotifier{}
	svc := newBookingService(db, n)

	_, err := svc.Submit(context.Background(), models.BookingForm{Participants: "21"})
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
	var verrs domain.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.Messages(), "Number of participants must be between 1 and 20")
	assert.Empty(t, n.got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmit_ReferenceCollisionFailsWithoutNotify(t *testing.T) {
	db, mock := newMockDB(t)
	n := &capturingNotifier{}
	svc := newBookingService(db, n)

	expectBasePrice(mock, "amazon", 2299.0)
	mock.ExpectExec(`INSERT INTO bookings`).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'WV203006011234'"})

	form := validForm()
	form.Destination = "amazon"
	_, err := svc.Submit(context.Background(), form)
	require.Error(t, err)
	assert.True(t, domain.IsConflict(err))
	assert.Empty(t, n.got)
}

func TestSubmit_NotificationOutlivesRequestContext(t *testing.T) {
	db, mock := newMockDB(t)
	n := &capturingNotifier{}
	svc := newBookingService(db, n)

	expectBasePrice(mock, "amazon", nil)
	mock.ExpectExec(`INSERT INTO bookings`).WillReturnResult(sqlmock.NewResult(3, 1))

	ctx, cancel := context.WithCancel(context.Background())
	_, err := svc.Submit(ctx, models.BookingForm{
		FullName:      "Ada Lovelace",
		Email:         "ada@example.com",
		Phone:         "+44 20 7946 0000",
		Participants:  "2",
		Destination:   "amazon",
		TourPackage:   "river",
		DepartureDate: "2030-07-01",
		ReturnDate:    "2030-07-08",
	})
	require.NoError(t, err)
	cancel()

	require.Len(t, n.ctxs, 1)
	assert.NoError(t, n.ctxs[0].Err())
	assert.NoError(t, mock.ExpectationsWereMet())
}
