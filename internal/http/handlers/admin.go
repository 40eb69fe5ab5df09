package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"wildventures/internal/utils"

	"github.com/gin-gonic/gin"
)

type adminLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// POST /api/admin/login
func (h Handlers) AdminLogin(c *gin.Context) {
	var req adminLoginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	token, err := h.Admin.Login(req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "role": "admin"})
}

// GET /api/admin/bookings?limit=
func (h Handlers) AdminListBookings(c *gin.Context) {
	limit, _ := strconv.Atoi(strings.TrimSpace(c.Query("limit")))

	list, err := h.bookingService(c).ListRecent(c.Request.Context(), limit)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	out := make([]gin.H, 0, len(list))
	for _, b := range list {
		out = append(out, bookingView(b))
	}
	c.JSON(http.StatusOK, gin.H{"bookings": out, "count": len(out)})
}

// GET /api/admin/bookings/:ref
func (h Handlers) AdminGetBooking(c *gin.Context) {
	b, err := h.bookingService(c).GetByReference(c.Request.Context(), c.Param("ref"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	view := bookingView(b)
	view["id"] = b.ID
	view["duration_label"] = strconv.Itoa(b.Duration) + " days"
	view["departure_long"] = utils.LongDate(b.DepartureDate)
	c.JSON(http.StatusOK, view)
}

// GET /api/admin/bookings/:ref/confirmation.pdf
func (h Handlers) AdminBookingPDF(c *gin.Context) {
	b, err := h.bookingService(c).GetByReference(c.Request.Context(), c.Param("ref"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	h.sendConfirmationPDF(c, b)
}
