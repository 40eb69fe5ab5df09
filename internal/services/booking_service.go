package services

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"wildventures/internal/domain"
	"wildventures/internal/domain/models"
	"wildventures/internal/repositories"
	"wildventures/internal/utils"
)

const ReferencePrefix = "WV"

// ConfirmationNotifier dispatches the confirmation for a stored booking.
// Implementations own their failures; nothing is returned.
type ConfirmationNotifier interface {
	BookingConfirmed(ctx context.Context, b models.Booking)
}

type BookingService struct {
	Bookings  repositories.BookingRepository
	Pricing   PricingService
	Notifier  ConfirmationNotifier
	RequestID string

	Now      func() time.Time
	RandIntN func(n int) int
}

func (s BookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s BookingService) randIntN(n int) int {
	if s.RandIntN != nil {
		return s.RandIntN(n)
	}
	return rand.Intn(n)
}

// GenerateReference returns WV + YYYYMMDD + a number in [1000, 9999]. It is
// not guaranteed unique; collisions surface from the insert.
func (s BookingService) GenerateReference() string {
	return fmt.Sprintf("%s%s%d", ReferencePrefix, utils.CompactDate(s.now()), 1000+s.randIntN(9000))
}

// Submit validates the form, prices it, stores one pending booking and fires
// the confirmation. Validation failures come back as domain.ValidationErrors;
// storage failures as the repository's domain error, unretried.
func (s BookingService) Submit(ctx context.Context, form models.BookingForm) (models.Booking, error) {
	req, verrs := ValidateBooking(form, s.now())
	if len(verrs) > 0 {
		utils.LogEvent(s.RequestID, "booking", "submit", fmt.Sprintf("validation failed errors=%d", len(verrs)))
		return models.Booking{}, verrs
	}

	total, err := s.Pricing.TotalPrice(ctx, req.Destination, req.Participants, req.TourPackage)
	if err != nil {
		return models.Booking{}, err
	}

	booking := models.Booking{
		Reference:           s.GenerateReference(),
		FullName:            req.FullName,
		Email:               req.Email,
		Phone:               req.Phone,
		Participants:        req.Participants,
		Destination:         req.Destination,
		TourPackage:         req.TourPackage,
		DepartureDate:       req.DepartureDate,
		ReturnDate:          req.ReturnDate,
		Duration:            utils.DaysBetween(req.DepartureDate, req.ReturnDate),
		TotalPrice:          total,
		SpecialRequirements: req.SpecialRequirements,
		BookingDate:         s.now(),
	}

	if err := s.Bookings.Create(ctx, &booking); err != nil {
		utils.LogEvent(s.RequestID, "booking", "submit", "insert failed: "+err.Error())
		return models.Booking{}, err
	}
	utils.LogEvent(s.RequestID, "booking", "submit",
		fmt.Sprintf("ref=%s destination=%s participants=%d total=%s", booking.Reference, booking.Destination, booking.Participants, utils.FormatMoney(booking.TotalPrice)))

	if s.Notifier != nil {
		// The booking is stored; a client hanging up must not cancel the email.
		s.Notifier.BookingConfirmed(context.WithoutCancel(ctx), booking)
	}
	return booking, nil
}

// GetByReference loads a stored booking for the confirmation view.
func (s BookingService) GetByReference(ctx context.Context, ref string) (models.Booking, error) {
	if ref == "" {
		return models.Booking{}, domain.ValidationError{Field: "ref", Msg: "booking reference is required"}
	}
	return s.Bookings.GetByReference(ctx, ref)
}

func (s BookingService) ListRecent(ctx context.Context, limit int) ([]models.Booking, error) {
	return s.Bookings.ListRecent(ctx, limit)
}
