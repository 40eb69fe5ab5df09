package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"wildventures/internal/domain/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	sent []Message
	err  error
}

func (r *recordingSender) Send(_ context.Context, msg Message) error {
	r.sent = append(r.sent, msg)
	return r.err
}

func sampleBooking() models.Booking {
	dep := time.Date(2030, 6, 1, 0, 0, 0, 0, time.Local)
	return models.Booking{
		Reference:     "WV203005151234",
		FullName:      gofakeit.Name(),
		Email:         gofakeit.Email(),
		Participants:  4,
		Destination:   "barrier-reef",
		TourPackage:   "diving",
		DepartureDate: dep,
		ReturnDate:    dep.AddDate(0, 0, 5),
		TotalPrice:    12314.4,
		BookingDate:   time.Date(2030, 5, 15, 10, 0, 0, 0, time.Local),
	}
}

func TestRenderConfirmation(t *testing.T) {
	b := sampleBooking()
	subject, body, err := RenderConfirmation(b)
	require.NoError(t, err)

	assert.Equal(t, "WildVentures Booking Confirmation - WV203005151234", subject)
	assert.Contains(t, body, "Barrier reef")
	assert.Contains(t, body, "Diving")
	assert.Contains(t, body, "June 1, 2030")
	assert.Contains(t, body, "June 6, 2030")
	assert.Contains(t, body, "$12,314.40")
	assert.Contains(t, body, "2030 WildVentures")
}

func TestBookingConfirmedSendsWithAttachment(t *testing.T) {
	b := sampleBooking()
	rec := &recordingSender{}
	n := Notifier{
		Sender: rec,
		From:   "WildVentures <bookings@wildventures.com>",
		Attach: func(models.Booking) ([]byte, string, error) {
			return []byte("%PDF"), "confirmation.pdf", nil
		},
	}

	n.BookingConfirmed(context.Background(), b)

	require.Len(t, rec.sent, 1)
	msg := rec.sent[0]
	assert.Equal(t, b.Email, msg.To)
	assert.Equal(t, "WildVentures <bookings@wildventures.com>", msg.From)
	require.Len(t, msg.Attachments, 1)
	assert.Equal(t, "confirmation.pdf", msg.Attachments[0].Filename)
}

func TestBookingConfirmedSwallowsFailures(t *testing.T) {
	rec := &recordingSender{err: errors.New("smtp down")}
	n := Notifier{
		Sender: rec,
		Attach: func(models.Booking) ([]byte, string, error) {
			return nil, "", errors.New("pdf failed")
		},
	}

	assert.NotPanics(t, func() { n.BookingConfirmed(context.Background(), sampleBooking()) })
	require.Len(t, rec.sent, 1)
	assert.Empty(t, rec.sent[0].Attachments)
}

func TestLogSenderNeverFails(t *testing.T) {
	assert.NoError(t, LogSender{}.Send(context.Background(), Message{To: "a@b.c"}))
}
