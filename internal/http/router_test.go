package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	intconfig "wildventures/internal/config"
	h "wildventures/internal/http/handlers"
	"wildventures/internal/repositories"
	"wildventures/internal/services"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	raw, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { raw.Close() })
	db := sqlx.NewDb(raw, "mysql")

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	tokens := services.TokenService{Secret: []byte("router-secret"), ConfirmationTTL: time.Hour}
	pricing := services.PricingService{Destinations: repositories.DestinationRepository{DB: db}}
	hs := h.Handlers{
		DB:       db,
		Bookings: services.BookingService{Bookings: repositories.BookingRepository{DB: db}, Pricing: pricing},
		Availability: services.AvailabilityService{
			Availability: repositories.AvailabilityRepository{DB: db},
			Pricing:      pricing,
		},
		Destinations:    repositories.DestinationRepository{DB: db},
		Tokens:          tokens,
		Admin:           services.AdminAuth{Username: "admin", PasswordHash: string(hash), Tokens: tokens},
		FormURL:         "/#booking",
		ConfirmationURL: "/booking-confirmation",
	}

	env := intconfig.Env{
		SessionSecret:      "router-session-secret",
		CORSAllowedOrigins: []string{"http://localhost:3000"},
	}
	return NewRouter(env, hs), mock
}

func body(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestRouter_HealthAndNoRoute(t *testing.T) {
	r, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", body(t, w)["status"])
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "/api/nope", body(t, w)["path"])
}

func TestRouter_LegacyCapacity(t *testing.T) {
	r, mock := newTestRouter(t)
	mock.ExpectQuery(`SELECT MIN\(spots_available\)`).
		WithArgs("borneo", "2030-09-01", "2030-09-01").
		WillReturnRows(sqlmock.NewRows([]string{"min_spots"}).AddRow(nil))

	form := url.Values{"destination": {"borneo"}, "departureDate": {"2030-09-01"}, "returnDate": {"2030-09-01"}}
	req := httptest.NewRequest(http.MethodPost, "/check_availability.php", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(20), body(t, w)["available"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRouter_AdminGate(t *testing.T) {
	r, mock := newTestRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/admin/bookings", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	login := func(password string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/admin/login",
			strings.NewReader(`{"username":"admin","password":"`+password+`"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusUnauthorized, login("wrong").Code)

	w = login("s3cret")
	require.Equal(t, http.StatusOK, w.Code)
	token, _ := body(t, w)["token"].(string)
	require.NotEmpty(t, token)

	mock.ExpectQuery(`FROM bookings ORDER BY booking_date DESC`).WithArgs(50).
		WillReturnRows(sqlmock.NewRows([]string{"id", "booking_reference"}))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/bookings", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(0), body(t, w)["count"])
	assert.NoError(t, mock.ExpectationsWereMet())
}
