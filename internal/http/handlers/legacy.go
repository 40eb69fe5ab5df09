package handlers

import (
	"net/http"

	"wildventures/internal/http/middleware"
	"wildventures/internal/utils"

	"github.com/gin-gonic/gin"
)

// ProcessBooking serves the old single-script entry point: POST submits the
// form, GET dispatches on ?action=.
func (h Handlers) ProcessBooking(c *gin.Context) {
	if c.Request.Method == http.MethodPost {
		h.SubmitBooking(c)
		return
	}

	switch c.Query("action") {
	case "get_dates":
		h.ListAvailableDates(c)
	case "check_availability":
		h.CheckAvailability(c)
	default:
		utils.LogEvent(middleware.GetRequestID(c), "legacy", "process_booking", "no action matched: "+c.Query("action"))
		c.Status(http.StatusOK)
	}
}
