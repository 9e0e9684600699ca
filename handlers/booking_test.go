package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	ledgerRepo "pitchbook/database/repository/ledger"
	"pitchbook/handlers"
	"pitchbook/models"
	"pitchbook/routes"
	"pitchbook/services/booking"
	"pitchbook/utils"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubQuotes satisfies QuoteService for routes the listing tests never
// exercise past validation.
type stubQuotes struct{}

func (stubQuotes) CheckAvailability(context.Context, models.BookingRequest) (*models.QuoteSession, error) {
	return nil, booking.ErrInvalidInput
}

func (stubQuotes) ConfirmQuote(context.Context, string, []models.SessionDay) (*models.Booking, error) {
	return nil, booking.ErrQuoteExpired
}

func (stubQuotes) CancelQuote(context.Context, string) error { return nil }

func newTestRouter(t *testing.T) (*gin.Engine, ledgerRepo.LedgerRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ledger := ledgerRepo.NewMemoryLedgerRepo()
	router := gin.New()
	routes.RegisterBookingRoutes(router, handlers.NewBookingHandler(stubQuotes{}, ledger, utils.GetLogger()))
	return router, ledger
}

func seedUserBooking(t *testing.T, ledger ledgerRepo.LedgerRepository, userID string, days ...models.SessionDay) *models.Booking {
	t.Helper()
	record := &models.Booking{
		ID:              gofakeit.UUID(),
		CustomerName:    gofakeit.Name(),
		Contact:         gofakeit.Email(),
		SessionDays:     models.SortSessionDays(days),
		HoursPerSession: 2,
		Status:          models.StatusConfirmed,
		CreatedAt:       time.Now(),
		UserID:          userID,
	}
	conflicts, err := ledger.CommitIfFree(context.Background(), record)
	require.NoError(t, err)
	require.Empty(t, conflicts)
	return record
}

func bearerToken(t *testing.T, subject, role string) string {
	t.Helper()
	token, err := utils.GenerateToken(subject, gofakeit.Name(), gofakeit.Email(), role, time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func listBookings(t *testing.T, router *gin.Engine, authorization string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBookings(t *testing.T, rec *httptest.ResponseRecorder) []models.Booking {
	t.Helper()
	var body struct {
		Bookings []models.Booking `json:"bookings"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Bookings
}

func TestListBookingsRejectsAnonymous(t *testing.T) {
	router, ledger := newTestRouter(t)
	seeded := seedUserBooking(t, ledger, "user-1", "2025-08-01")

	rec := listBookings(t, router, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.NotContains(t, rec.Body.String(), seeded.Contact)
}

func TestListBookingsScopedToOwner(t *testing.T) {
	router, ledger := newTestRouter(t)
	mine := seedUserBooking(t, ledger, "user-1", "2025-08-01")
	other := seedUserBooking(t, ledger, "user-2", "2025-08-02")

	rec := listBookings(t, router, bearerToken(t, "user-1", ""))
	require.Equal(t, http.StatusOK, rec.Code)

	bookings := decodeBookings(t, rec)
	require.Len(t, bookings, 1)
	assert.Equal(t, mine.ID, bookings[0].ID)
	assert.NotContains(t, rec.Body.String(), other.Contact)
}

func TestListBookingsAdminSeesAll(t *testing.T) {
	router, ledger := newTestRouter(t)
	seedUserBooking(t, ledger, "user-1", "2025-08-01")
	seedUserBooking(t, ledger, "user-2", "2025-08-02")

	rec := listBookings(t, router, bearerToken(t, "admin-1", "admin"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeBookings(t, rec), 2)
}

func TestConfirmBookingRejectsMalformedDay(t *testing.T) {
	router, _ := newTestRouter(t)

	payload := `{"quoteId":"q-1","acceptedDays":["August 1st"]}`
	req := httptest.NewRequest(http.MethodPost, "/api/booking/confirm", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
