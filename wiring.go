package main

import (
	intconfig "wildventures/internal/config"
	"wildventures/internal/http/handlers"
	"wildventures/internal/notify"
	"wildventures/internal/repositories"
	"wildventures/internal/services"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

func buildHandlers(env intconfig.Env, db *sqlx.DB) handlers.Handlers {
	destinations := repositories.DestinationRepository{DB: db}
	pricing := services.PricingService{Destinations: destinations}
	docs := services.DocsService{}
	tokens := services.TokenService{
		Secret:          []byte(env.JWTSecret),
		ConfirmationTTL: env.ConfirmationTokenTTL,
	}

	var sender notify.Sender = notify.LogSender{}
	if env.SMTPHost != "" {
		sender = notify.SMTPSender{Config: notify.SMTPConfig{
			Host:     env.SMTPHost,
			Port:     env.SMTPPort,
			Username: env.SMTPUsername,
			Password: env.SMTPPassword,
		}}
	} else {
		logrus.Warn("SMTP_HOST not set, confirmation emails are logged only")
	}

	return handlers.Handlers{
		DB: db,
		Bookings: services.BookingService{
			Bookings: repositories.BookingRepository{DB: db},
			Pricing:  pricing,
			Notifier: notify.Notifier{Sender: sender, From: env.MailFrom, Attach: docs.ConfirmationPDF},
		},
		Availability: services.AvailabilityService{
			Availability: repositories.AvailabilityRepository{DB: db},
			Pricing:      pricing,
		},
		Destinations: destinations,
		Docs:         docs,
		Tokens:       tokens,
		Admin: services.AdminAuth{
			Username:     env.AdminUsername,
			PasswordHash: env.AdminPasswordHash,
			Tokens:       tokens,
		},
		FormURL:         env.FormURL,
		ConfirmationURL: env.ConfirmationURL,
	}
}
