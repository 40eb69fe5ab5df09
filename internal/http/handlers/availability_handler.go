package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"wildventures/internal/http/middleware"
	"wildventures/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ListAvailableDates returns the open departure dates for a destination.
// Storage failures are logged and reported as an empty list.
func (h Handlers) ListAvailableDates(c *gin.Context) {
	destination := strings.TrimSpace(c.Query("destination"))
	if destination == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Destination is required"})
		return
	}

	dates, err := h.availabilityService(c).ListAvailableDates(c.Request.Context(), destination)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"request_id":  middleware.GetRequestID(c),
			"destination": destination,
		}).WithError(err).Error("list available dates failed")
	}

	out := make([]gin.H, 0, len(dates))
	for _, d := range dates {
		out = append(out, gin.H{
			"available_date":  utils.FormatDate(d.Date),
			"spots_available": d.Spots,
		})
	}
	c.JSON(http.StatusOK, gin.H{"dates": out})
}

// CheckAvailability reports whether a party fits the date range and what it
// would cost.
func (h Handlers) CheckAvailability(c *gin.Context) {
	destination := strings.TrimSpace(c.Query("destination"))
	departure := strings.TrimSpace(c.Query("departure_date"))
	ret := strings.TrimSpace(c.Query("return_date"))
	pkg := strings.TrimSpace(c.Query("package"))
	participants, convErr := strconv.Atoi(strings.TrimSpace(c.Query("participants")))

	if destination == "" || departure == "" || ret == "" || convErr != nil || participants < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}

	res, err := h.availabilityService(c).Check(c.Request.Context(), destination, departure, ret, participants, pkg)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error checking availability: " + err.Error()})
		return
	}

	if !res.Available {
		c.JSON(http.StatusOK, gin.H{"available": false, "message": res.Message})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"available":       true,
		"spots_available": res.SpotsAvailable,
		"total_price":     res.TotalPrice,
		"formatted_price": res.FormattedPrice,
	})
}

// Capacity returns the minimum spots over the range, or full capacity when
// nothing is recorded for it.
func (h Handlers) Capacity(c *gin.Context) {
	destination := strings.TrimSpace(c.PostForm("destination"))
	departure := strings.TrimSpace(c.PostForm("departureDate"))
	ret := strings.TrimSpace(c.PostForm("returnDate"))

	if destination == "" || departure == "" || ret == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required parameters"})
		return
	}

	spots, err := h.availabilityService(c).Capacity(c.Request.Context(), destination, departure, ret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"available": spots})
}
