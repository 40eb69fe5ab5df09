package handlers

import (
	"net/http"

	intconfig "wildventures/internal/config"
	intdb "wildventures/internal/db"

	"github.com/gin-gonic/gin"
)

func (h Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "wildventures backend running"})
}

func (h Handlers) DBCheck(c *gin.Context) {
	if h.DB == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database not connected"})
		return
	}
	if err := intconfig.PingDB(h.DB.DB); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database ping failed: " + err.Error()})
		return
	}
	if !intdb.HasTable(c.Request.Context(), h.DB, "bookings") {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "bookings table missing, run migrations"})
		return
	}
	var count int
	if err := h.DB.GetContext(c.Request.Context(), &count, "SELECT COUNT(*) FROM bookings"); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database query failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "database connection OK", "bookings_in_db": count})
}

// Routes lists the routes registered on r.
func (h Handlers) Routes(r *gin.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		routes := r.Routes()
		out := make([]gin.H, 0, len(routes))
		for _, rt := range routes {
			out = append(out, gin.H{
				"method":  rt.Method,
				"path":    rt.Path,
				"handler": rt.Handler,
			})
		}
		c.JSON(http.StatusOK, gin.H{"routes": out})
	}
}
