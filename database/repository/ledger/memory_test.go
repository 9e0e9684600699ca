package ledgerRepo

import (
	"context"
	"sync"
	"testing"

	"pitchbook/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBooking(days ...models.SessionDay) *models.Booking {
	return &models.Booking{
		ID:           gofakeit.UUID(),
		CustomerName: gofakeit.Name(),
		Contact:      gofakeit.Phone(),
		SessionDays:  models.SortSessionDays(days),
		Status:       models.StatusConfirmed,
	}
}

func TestMemoryCommitIfFree(t *testing.T) {
	repo := NewMemoryLedgerRepo()
	ctx := context.Background()

	first := newBooking("2025-06-01", "2025-06-02")
	conflicts, err := repo.CommitIfFree(ctx, first)
	require.NoError(t, err)
	assert.Empty(t, conflicts)

	// An overlapping commit reports the taken days and changes nothing.
	second := newBooking("2025-06-02", "2025-06-03")
	conflicts, err = repo.CommitIfFree(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, []models.SessionDay{"2025-06-02"}, conflicts)

	_, err = repo.GetBookingByID(ctx, second.ID)
	assert.Error(t, err, "losing booking must not be persisted")

	held, err := repo.ListConfirmedSessions(ctx, "2025-06-01", "2025-06-03")
	require.NoError(t, err)
	assert.Equal(t, []models.SessionDay{"2025-06-01", "2025-06-02"}, held)
}

func TestMemoryCommitNoPartialEffect(t *testing.T) {
	repo := NewMemoryLedgerRepo()
	ctx := context.Background()

	_, err := repo.CommitIfFree(ctx, newBooking("2025-06-02"))
	require.NoError(t, err)

	// A commit spanning a taken day must not claim its free days either.
	conflicts, err := repo.CommitIfFree(ctx, newBooking("2025-06-01", "2025-06-02", "2025-06-03"))
	require.NoError(t, err)
	assert.Equal(t, []models.SessionDay{"2025-06-02"}, conflicts)

	held, err := repo.ListConfirmedSessions(ctx, "2025-06-01", "2025-06-03")
	require.NoError(t, err)
	assert.Equal(t, []models.SessionDay{"2025-06-02"}, held)
}

func TestMemoryCommitConcurrent(t *testing.T) {
	repo := NewMemoryLedgerRepo()
	ctx := context.Background()
	day := models.SessionDay("2025-09-01")

	const attempts = 16
	var wg sync.WaitGroup
	wins := make(chan string, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b := newBooking(day)
			conflicts, err := repo.CommitIfFree(ctx, b)
			if err == nil && len(conflicts) == 0 {
				wins <- b.ID
			}
		}()
	}
	wg.Wait()
	close(wins)

	var winners []string
	for id := range wins {
		winners = append(winners, id)
	}
	require.Len(t, winners, 1, "exactly one commit may claim the day")

	held, err := repo.ListConfirmedSessions(ctx, day, day)
	require.NoError(t, err)
	assert.Equal(t, []models.SessionDay{day}, held)
}

func TestMemoryCancelBooking(t *testing.T) {
	repo := NewMemoryLedgerRepo()
	ctx := context.Background()

	b := newBooking("2025-06-05", "2025-06-06")
	_, err := repo.CommitIfFree(ctx, b)
	require.NoError(t, err)

	require.NoError(t, repo.CancelBooking(ctx, b.ID))

	stored, err := repo.GetBookingByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, stored.Status)

	held, err := repo.ListConfirmedSessions(ctx, "2025-06-05", "2025-06-06")
	require.NoError(t, err)
	assert.Empty(t, held)

	// Cancelling twice fails: the booking is no longer Confirmed.
	assert.Error(t, repo.CancelBooking(ctx, b.ID))
}

func TestMemoryListBookingsScopedToUser(t *testing.T) {
	repo := NewMemoryLedgerRepo()
	ctx := context.Background()

	mine := newBooking("2025-06-01")
	mine.UserID = "user-1"
	_, err := repo.CommitIfFree(ctx, mine)
	require.NoError(t, err)

	other := newBooking("2025-06-02")
	other.UserID = "user-2"
	_, err = repo.CommitIfFree(ctx, other)
	require.NoError(t, err)

	all, err := repo.ListBookings(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	scoped, err := repo.ListBookings(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, scoped, 1)
	assert.Equal(t, mine.ID, scoped[0].ID)
}
