package handlers

import (
	"wildventures/internal/http/middleware"
	"wildventures/internal/repositories"
	"wildventures/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

// Handlers holds every dependency the HTTP layer needs. It is built once in
// main and passed by value; nothing here is process-global.
type Handlers struct {
	DB           *sqlx.DB
	Bookings     services.BookingService
	Availability services.AvailabilityService
	Destinations repositories.DestinationRepository
	Docs         services.DocsService
	Tokens       services.TokenService
	Admin        services.AdminAuth

	FormURL         string
	ConfirmationURL string
}

func (h Handlers) bookingService(c *gin.Context) services.BookingService {
	svc := h.Bookings
	svc.RequestID = middleware.GetRequestID(c)
	return svc
}

func (h Handlers) availabilityService(c *gin.Context) services.AvailabilityService {
	svc := h.Availability
	svc.RequestID = middleware.GetRequestID(c)
	return svc
}

func (h Handlers) docsService(c *gin.Context) services.DocsService {
	svc := h.Docs
	svc.RequestID = middleware.GetRequestID(c)
	return svc
}
