package services

import (
	"strconv"
	"strings"
	"time"

	"wildventures/internal/domain"
	"wildventures/internal/domain/models"
	"wildventures/internal/utils"

	"github.com/go-playground/validator/v10"
)

const (
	MinParticipants = 1
	MaxParticipants = 20
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateBooking checks every rule independently and collects all failures
// in a fixed order. today is truncated to local midnight; a departure on
// today is accepted.
func ValidateBooking(form models.BookingForm, today time.Time) (models.BookingRequest, domain.ValidationErrors) {
	var errs domain.ValidationErrors
	add := func(field, msg string) {
		errs = append(errs, domain.ValidationError{Field: field, Msg: msg})
	}

	req := models.BookingRequest{
		FullName:            strings.TrimSpace(form.FullName),
		Email:               strings.TrimSpace(form.Email),
		Phone:               strings.TrimSpace(form.Phone),
		Destination:         strings.TrimSpace(form.Destination),
		TourPackage:         strings.TrimSpace(form.TourPackage),
		SpecialRequirements: strings.TrimSpace(form.SpecialRequirements),
	}
	departureRaw := strings.TrimSpace(form.DepartureDate)
	returnRaw := strings.TrimSpace(form.ReturnDate)

	if req.FullName == "" {
		add("fullName", "Full name is required")
	}
	if req.Email == "" || validate.Var(req.Email, "email") != nil {
		add("email", "Valid email is required")
	}
	if req.Phone == "" {
		add("phone", "Phone number is required")
	}

	participants, err := strconv.Atoi(strings.TrimSpace(form.Participants))
	if err != nil || participants < MinParticipants || participants > MaxParticipants {
		add("participants", "Number of participants must be between 1 and 20")
	} else {
		req.Participants = participants
	}

	if req.Destination == "" {
		add("destination", "Destination is required")
	}
	if req.TourPackage == "" {
		add("tourPackage", "Tour package is required")
	}
	if departureRaw == "" {
		add("departureDate", "Departure date is required")
	}
	if returnRaw == "" {
		add("returnDate", "Return date is required")
	}

	var departureOK, returnOK bool
	if departureRaw != "" {
		if d, err := utils.ParseDate(departureRaw); err != nil {
			add("departureDate", "Departure date is invalid")
		} else {
			req.DepartureDate, departureOK = d, true
		}
	}
	if returnRaw != "" {
		if d, err := utils.ParseDate(returnRaw); err != nil {
			add("returnDate", "Return date is invalid")
		} else {
			req.ReturnDate, returnOK = d, true
		}
	}

	if departureOK && req.DepartureDate.Before(utils.StartOfDay(today)) {
		add("departureDate", "Departure date must be in the future")
	}
	if departureOK && returnOK && !req.ReturnDate.After(req.DepartureDate) {
		add("returnDate", "Return date must be after departure date")
	}

	if len(errs) > 0 {
		return models.BookingRequest{}, errs
	}
	return req, nil
}
