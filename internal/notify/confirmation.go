package notify

import (
	"bytes"
	"context"
	"html/template"

	"wildventures/internal/domain/models"
	"wildventures/internal/utils"

	"github.com/sirupsen/logrus"
)

const confirmationHTML = `<html>
<head>
    <title>Booking Confirmation</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background-color: #2c5e1a; color: white; padding: 15px; text-align: center; }
        .booking-details { background-color: #f9f9f9; padding: 20px; margin: 20px 0; }
        .total-price { font-size: 18px; font-weight: bold; color: #2c5e1a; }
        .footer { text-align: center; margin-top: 30px; font-size: 12px; color: #666; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header"><h1>WildVentures Booking Confirmation</h1></div>
        <p>Dear {{.FullName}},</p>
        <p>Thank you for booking your wildlife adventure with WildVentures. We're excited to have you join us!</p>
        <div class="booking-details">
            <h2>Booking Details</h2>
            <p><strong>Booking Reference:</strong> {{.Reference}}</p>
            <p><strong>Destination:</strong> {{.Destination}}</p>
            <p><strong>Tour Package:</strong> {{.TourPackage}}</p>
            <p><strong>Departure Date:</strong> {{.DepartureDate}}</p>
            <p><strong>Return Date:</strong> {{.ReturnDate}}</p>
            <p><strong>Number of Participants:</strong> {{.Participants}}</p>
            <p class="total-price"><strong>Total Price:</strong> {{.TotalPrice}}</p>
        </div>
        <p>A WildVentures representative will contact you within 24 hours to confirm your booking details and provide further information about your upcoming adventure.</p>
        <p>If you have any questions or need to make changes to your booking, please contact our customer support team at support@wildventures.com or call us at +1 (800) 123-4567.</p>
        <p>We look forward to providing you with an unforgettable wildlife experience!</p>
        <p>Warm regards,<br>The WildVentures Team</p>
        <div class="footer">
            <p>&copy; {{.Year}} WildVentures. All rights reserved.</p>
            <p>123 Wildlife Way, Adventure City, AC 12345</p>
        </div>
    </div>
</body>
</html>`

var confirmationTmpl = template.Must(template.New("confirmation").Parse(confirmationHTML))

type confirmationView struct {
	FullName      string
	Reference     string
	Destination   string
	TourPackage   string
	DepartureDate string
	ReturnDate    string
	Participants  int
	TotalPrice    string
	Year          int
}

// Notifier sends the booking confirmation email.
type Notifier struct {
	Sender Sender
	From   string
	// Attach renders an optional attachment, e.g. the confirmation PDF.
	Attach func(models.Booking) ([]byte, string, error)
}

// RenderConfirmation builds the subject and HTML body for b.
func RenderConfirmation(b models.Booking) (string, string, error) {
	view := confirmationView{
		FullName:      b.FullName,
		Reference:     b.Reference,
		Destination:   utils.TitleFromCode(b.Destination),
		TourPackage:   utils.TitleFromCode(b.TourPackage),
		DepartureDate: utils.LongDate(b.DepartureDate),
		ReturnDate:    utils.LongDate(b.ReturnDate),
		Participants:  b.Participants,
		TotalPrice:    utils.FormatUSD(b.TotalPrice),
		Year:          b.BookingDate.Year(),
	}
	var body bytes.Buffer
	if err := confirmationTmpl.Execute(&body, view); err != nil {
		return "", "", err
	}
	return "WildVentures Booking Confirmation - " + b.Reference, body.String(), nil
}

// BookingConfirmed composes and sends the confirmation. Failures are logged
// and never reach the caller.
func (n Notifier) BookingConfirmed(ctx context.Context, b models.Booking) {
	log := logrus.WithFields(logrus.Fields{"module": "notify", "ref": b.Reference})

	subject, body, err := RenderConfirmation(b)
	if err != nil {
		log.WithError(err).Error("render confirmation failed")
		return
	}

	msg := Message{From: n.From, To: b.Email, Subject: subject, HTML: body}
	if n.Attach != nil {
		if content, name, err := n.Attach(b); err != nil {
			log.WithError(err).Warn("confirmation attachment skipped")
		} else {
			msg.Attachments = append(msg.Attachments, Attachment{Filename: name, Content: content})
		}
	}

	sender := n.Sender
	if sender == nil {
		sender = LogSender{}
	}
	if err := sender.Send(ctx, msg); err != nil {
		log.WithError(err).Warn("confirmation email not sent")
		return
	}
	log.Info("confirmation email dispatched")
}
