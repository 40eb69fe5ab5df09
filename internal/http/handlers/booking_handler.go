package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"wildventures/internal/domain"
	"wildventures/internal/domain/models"
	"wildventures/internal/http/middleware"
	"wildventures/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	flashBookingErrors = "booking_errors"
	flashFormData      = "form_data"

	msgReferenceOnly = "Your booking has been received. Full details will follow by email."
)

// bookingPayload accepts both the HTML form and JSON bodies.
type bookingPayload struct {
	FullName            Stringish `form:"fullName" json:"fullName"`
	Email               Stringish `form:"email" json:"email"`
	Phone               Stringish `form:"phone" json:"phone"`
	Participants        Stringish `form:"participants" json:"participants"`
	Destination         Stringish `form:"destination" json:"destination"`
	TourPackage         Stringish `form:"tourPackage" json:"tourPackage"`
	DepartureDate       Stringish `form:"departureDate" json:"departureDate"`
	ReturnDate          Stringish `form:"returnDate" json:"returnDate"`
	SpecialRequirements Stringish `form:"specialRequirements" json:"specialRequirements"`
}

func (p bookingPayload) toForm() models.BookingForm {
	return models.BookingForm{
		FullName:            p.FullName.String(),
		Email:               p.Email.String(),
		Phone:               p.Phone.String(),
		Participants:        p.Participants.String(),
		Destination:         p.Destination.String(),
		TourPackage:         p.TourPackage.String(),
		DepartureDate:       p.DepartureDate.String(),
		ReturnDate:          p.ReturnDate.String(),
		SpecialRequirements: p.SpecialRequirements.String(),
	}
}

// SubmitBooking handles the booking form. Browsers are redirected to the
// confirmation view or back to the form with flashed errors; clients asking
// for JSON get the outcome as JSON.
func (h Handlers) SubmitBooking(c *gin.Context) {
	var payload bookingPayload
	if err := c.ShouldBind(&payload); err != nil {
		logrus.WithField("request_id", middleware.GetRequestID(c)).WithError(err).Warn("booking payload not bound, validating as empty")
	}
	form := payload.toForm()

	booking, err := h.bookingService(c).Submit(c.Request.Context(), form)
	if err != nil {
		var verrs domain.ValidationErrors
		messages := []string{}
		if errors.As(err, &verrs) {
			messages = verrs.Messages()
		} else {
			messages = append(messages, "Database error: "+err.Error())
		}
		h.rejectSubmission(c, form, messages)
		return
	}

	// Without a token the confirmation view can only echo the reference.
	token, err := h.Tokens.IssueConfirmation(booking.Reference)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"request_id": middleware.GetRequestID(c),
			"ref":        booking.Reference,
		}).Error("confirmation token not issued, falling back to reference only")
	}
	location := confirmationLocation(h.ConfirmationURL, booking.Reference, token)

	if wantsJSON(c) {
		resp := gin.H{
			"booking_reference": booking.Reference,
			"total_price":       booking.TotalPrice,
			"formatted_price":   utils.FormatUSD(booking.TotalPrice),
			"confirmation_url":  location,
		}
		if token == "" {
			resp["message"] = msgReferenceOnly
		}
		c.JSON(http.StatusCreated, resp)
		return
	}
	c.Redirect(http.StatusSeeOther, location)
}

func (h Handlers) rejectSubmission(c *gin.Context, form models.BookingForm, messages []string) {
	if wantsJSON(c) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": messages})
		return
	}

	if err := stashRejection(sessions.Default(c), form, messages); err != nil {
		logrus.WithError(err).WithField("request_id", middleware.GetRequestID(c)).Error("booking errors not stashed in session")
	}
	c.Redirect(http.StatusSeeOther, h.FormURL)
}

// stashRejection flashes the errors and as much of the form as the session
// cookie can hold: the full form, then the form without special
// requirements, then the errors alone.
func stashRejection(session sessions.Session, form models.BookingForm, messages []string) error {
	short := form
	short.SpecialRequirements = ""
	attempts := []*models.BookingForm{&form, &short, nil}

	var err error
	for _, f := range attempts {
		session.Flashes(flashBookingErrors)
		session.Flashes(flashFormData)

		for _, m := range messages {
			session.AddFlash(m, flashBookingErrors)
		}
		if f != nil {
			raw, mErr := json.Marshal(f)
			if mErr != nil {
				continue
			}
			session.AddFlash(string(raw), flashFormData)
		}
		if err = session.Save(); err == nil {
			return nil
		}
	}
	return err
}

// BookingFormState pops the errors and form data stashed by a rejected
// submission so the form can re-display them.
func (h Handlers) BookingFormState(c *gin.Context) {
	session := sessions.Default(c)

	messages := []string{}
	for _, f := range session.Flashes(flashBookingErrors) {
		if s, ok := f.(string); ok {
			messages = append(messages, s)
		}
	}
	form := models.BookingForm{}
	for _, f := range session.Flashes(flashFormData) {
		if s, ok := f.(string); ok {
			_ = json.Unmarshal([]byte(s), &form)
		}
	}
	if err := session.Save(); err != nil {
		logrus.WithError(err).Warn("session not saved after reading flashes")
	}

	c.JSON(http.StatusOK, gin.H{"errors": messages, "form": form})
}

// BookingConfirmation returns the booking behind a signed confirmation link.
// A link carrying only the reference gets the reference back and nothing
// else from storage.
func (h Handlers) BookingConfirmation(c *gin.Context) {
	ref := strings.TrimSpace(c.Query("ref"))
	if ref != "" && strings.TrimSpace(c.Query("token")) == "" {
		c.JSON(http.StatusOK, gin.H{"booking_reference": ref, "message": msgReferenceOnly})
		return
	}

	booking, ok := h.confirmedBooking(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, bookingView(booking))
}

func (h Handlers) BookingConfirmationPDF(c *gin.Context) {
	booking, ok := h.confirmedBooking(c)
	if !ok {
		return
	}
	h.sendConfirmationPDF(c, booking)
}

func (h Handlers) confirmedBooking(c *gin.Context) (models.Booking, bool) {
	ref := strings.TrimSpace(c.Query("ref"))
	token := strings.TrimSpace(c.Query("token"))
	if ref == "" || token == "" {
		respondError(c, http.StatusBadRequest, "validation_error", "ref and token are required", nil)
		return models.Booking{}, false
	}
	if err := h.Tokens.VerifyConfirmation(ref, token); err != nil {
		respondError(c, http.StatusForbidden, "invalid_token", err.Error(), nil)
		return models.Booking{}, false
	}

	booking, err := h.bookingService(c).GetByReference(c.Request.Context(), ref)
	if err != nil {
		RespondDomainError(c, err)
		return models.Booking{}, false
	}
	return booking, true
}

func (h Handlers) sendConfirmationPDF(c *gin.Context, b models.Booking) {
	pdf, filename, err := h.docsService(c).ConfirmationPDF(b)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "failed to render confirmation", err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func bookingView(b models.Booking) gin.H {
	return gin.H{
		"booking_reference":    b.Reference,
		"full_name":            b.FullName,
		"email":                b.Email,
		"phone":                b.Phone,
		"participants":         b.Participants,
		"destination":          b.Destination,
		"tour_package":         b.TourPackage,
		"departure_date":       utils.FormatDate(b.DepartureDate),
		"return_date":          utils.FormatDate(b.ReturnDate),
		"duration":             b.Duration,
		"total_price":          b.TotalPrice,
		"formatted_price":      utils.FormatUSD(b.TotalPrice),
		"special_requirements": b.SpecialRequirements,
		"status":               b.Status,
		"booking_date":         b.BookingDate,
	}
}

func confirmationLocation(base, ref, token string) string {
	u, err := url.Parse(base)
	if err != nil {
		u = &url.URL{Path: "/booking-confirmation"}
	}
	q := u.Query()
	q.Set("ref", ref)
	if token != "" {
		q.Set("token", token)
	}
	u.RawQuery = q.Encode()
	return u.String()
}
