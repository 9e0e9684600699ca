package booking

import (
	"context"
	"sync"
	"testing"
	"time"

	ledgerRepo "pitchbook/database/repository/ledger"
	"pitchbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeQuoteCache is an in-memory QuoteCache. Expiry is simulated by
// deleting the key; TTLs are recorded but not enforced.
type fakeQuoteCache struct {
	mu    sync.Mutex
	items map[string][]byte
}

func newFakeQuoteCache() *fakeQuoteCache {
	return &fakeQuoteCache{items: make(map[string][]byte)}
}

func (f *fakeQuoteCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items[key] = append([]byte(nil), value...)
	return nil
}

func (f *fakeQuoteCache) Get(_ context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, ok := f.items[key]
	if !ok {
		return nil, errCacheMiss
	}
	return data, nil
}

func (f *fakeQuoteCache) Del(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.items, key)
	return nil
}

func newTestQuoteService() (*DefaultQuoteService, ledgerRepo.LedgerRepository, *fakeQuoteCache) {
	ledger := ledgerRepo.NewMemoryLedgerRepo()
	cache := newFakeQuoteCache()
	svc := &DefaultQuoteService{
		Checker:     &DefaultAvailabilityChecker{Ledger: ledger},
		Coordinator: &DefaultBookingCoordinator{Ledger: ledger},
		Cache:       cache,
	}
	return svc, ledger, cache
}

func TestConfirmQuoteExpired(t *testing.T) {
	svc, _, _ := newTestQuoteService()

	_, err := svc.ConfirmQuote(context.Background(), "no-such-quote", nil)
	assert.ErrorIs(t, err, ErrQuoteExpired)
}

func TestConfirmQuoteAcceptedDayNotQuoted(t *testing.T) {
	svc, _, _ := newTestQuoteService()
	ctx := context.Background()

	quote, err := svc.CheckAvailability(ctx, newTestRequest("2025-07-01", "2025-07-03"))
	require.NoError(t, err)
	require.Equal(t, models.VerdictAvailable, quote.Verdict)

	_, err = svc.ConfirmQuote(ctx, quote.QuoteID, []models.SessionDay{"2025-07-04"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestConfirmQuoteFullyUnavailable(t *testing.T) {
	svc, ledger, _ := newTestQuoteService()
	ctx := context.Background()

	seedConfirmedBooking(t, ledger, "2025-07-01", "2025-07-02")

	quote, err := svc.CheckAvailability(ctx, newTestRequest("2025-07-01", "2025-07-02"))
	require.NoError(t, err)
	require.Equal(t, models.VerdictUnavailable, quote.Verdict)
	require.Empty(t, quote.FreeDays)

	_, err = svc.ConfirmQuote(ctx, quote.QuoteID, nil)
	assert.ErrorIs(t, err, ErrFullyUnavailable)
}

func TestConfirmQuoteReservesAndDropsQuote(t *testing.T) {
	svc, ledger, _ := newTestQuoteService()
	ctx := context.Background()

	quote, err := svc.CheckAvailability(ctx, newTestRequest("2025-07-01", "2025-07-03"))
	require.NoError(t, err)

	confirmed, err := svc.ConfirmQuote(ctx, quote.QuoteID, nil)
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, confirmed.Status)
	assert.Equal(t, quote.FreeDays, confirmed.SessionDays)

	stored, err := ledger.GetBookingByID(ctx, confirmed.ID)
	require.NoError(t, err)
	assert.Equal(t, confirmed.ID, stored.ID)

	// A consumed quote cannot be confirmed twice.
	_, err = svc.ConfirmQuote(ctx, quote.QuoteID, nil)
	assert.ErrorIs(t, err, ErrQuoteExpired)
}

func TestConfirmQuoteConflictKeepsQuote(t *testing.T) {
	svc, ledger, _ := newTestQuoteService()
	ctx := context.Background()

	quote, err := svc.CheckAvailability(ctx, newTestRequest("2025-07-01", "2025-07-02"))
	require.NoError(t, err)
	require.Len(t, quote.FreeDays, 2)

	// A rival takes one of the quoted days before confirmation.
	seedConfirmedBooking(t, ledger, "2025-07-01")

	_, err = svc.ConfirmQuote(ctx, quote.QuoteID, nil)
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, []models.SessionDay{"2025-07-01"}, conflict.Days)

	// The quote survived the lost race, so a narrowed confirmation works.
	confirmed, err := svc.ConfirmQuote(ctx, quote.QuoteID, []models.SessionDay{"2025-07-02"})
	require.NoError(t, err)
	assert.Equal(t, []models.SessionDay{"2025-07-02"}, confirmed.SessionDays)
}
