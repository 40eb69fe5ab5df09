package api

import (
	stdhttp "net/http"

	intconfig "wildventures/internal/config"
	h "wildventures/internal/http/handlers"
	"wildventures/internal/http/middleware"
	"wildventures/internal/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const sessionName = "wildventures_session"

func NewRouter(env intconfig.Env, hs h.Handlers) *gin.Engine {
	r := gin.New()

	store := cookie.NewStore([]byte(env.SessionSecret))
	store.Options(sessions.Options{Path: "/", MaxAge: 3600, HttpOnly: true, SameSite: stdhttp.SameSiteLaxMode})

	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		gin.Recovery(),
		middleware.CORS(env.CORSAllowedOrigins),
		sessions.Sessions(sessionName, store),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		logrus.WithError(err).Warn("failed to set trusted proxies")
	}

	r.OPTIONS("/*path", func(c *gin.Context) { c.AbortWithStatus(stdhttp.StatusNoContent) })

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", hs.Health)
		api.GET("/db-check", hs.DBCheck)
		api.GET("/routes", hs.Routes(r))
		api.GET("/destinations", hs.ListDestinations)

		bookings := api.Group("/bookings")
		bookings.POST("", hs.SubmitBooking)
		bookings.GET("/form-state", hs.BookingFormState)
		bookings.GET("/confirmation", hs.BookingConfirmation)
		bookings.GET("/confirmation.pdf", hs.BookingConfirmationPDF)

		availability := api.Group("/availability")
		availability.GET("/dates", hs.ListAvailableDates)
		availability.GET("/check", hs.CheckAvailability)
		availability.POST("/capacity", hs.Capacity)

		api.POST("/admin/login", hs.AdminLogin)
		admin := api.Group("/admin", middleware.AuthRequired(hs.Tokens), middleware.RequireRoles(services.RoleAdmin))
		admin.GET("/bookings", hs.AdminListBookings)
		admin.GET("/bookings/:ref", hs.AdminGetBooking)
		admin.GET("/bookings/:ref/confirmation.pdf", hs.AdminBookingPDF)
	}

	// Paths the static site posted to before the /api layout.
	mountLegacy(r, hs)

	return r
}

func mountLegacy(r *gin.Engine, hs h.Handlers) {
	for _, path := range []string{"/process_booking", "/process_booking.php"} {
		r.GET(path, hs.ProcessBooking)
		r.POST(path, hs.ProcessBooking)
	}
	r.POST("/check_availability", hs.Capacity)
	r.POST("/check_availability.php", hs.Capacity)
}
