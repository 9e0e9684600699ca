package ledgerRepo

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"pitchbook/models"
)

// MemoryLedgerRepo is an in-process LedgerRepository for single-node runs
// and tests. One mutex guards the whole ledger, so a commit's
// check-and-claim is a single serializable unit with respect to other
// commits.
type MemoryLedgerRepo struct {
	mu       sync.Mutex
	days     map[models.SessionDay]string // occupied day -> owning booking ID
	bookings map[string]models.Booking
}

// NewMemoryLedgerRepo returns an empty in-memory ledger.
func NewMemoryLedgerRepo() *MemoryLedgerRepo {
	return &MemoryLedgerRepo{
		days:     make(map[models.SessionDay]string),
		bookings: make(map[string]models.Booking),
	}
}

func (repo *MemoryLedgerRepo) ListConfirmedSessions(ctx context.Context, from, to models.SessionDay) ([]models.SessionDay, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	repo.mu.Lock()
	defer repo.mu.Unlock()

	var out []models.SessionDay
	for d := range repo.days {
		if d >= from && d <= to {
			out = append(out, d)
		}
	}
	return models.SortSessionDays(out), nil
}

func (repo *MemoryLedgerRepo) CommitIfFree(ctx context.Context, booking *models.Booking) ([]models.SessionDay, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(booking.SessionDays) == 0 {
		return nil, fmt.Errorf("booking %s has no session days", booking.ID)
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	var conflicts []models.SessionDay
	for _, d := range booking.SessionDays {
		if _, held := repo.days[d]; held {
			conflicts = append(conflicts, d)
		}
	}
	if len(conflicts) > 0 {
		return models.SortSessionDays(conflicts), nil
	}

	for _, d := range booking.SessionDays {
		repo.days[d] = booking.ID
	}
	repo.bookings[booking.ID] = *booking
	return nil, nil
}

func (repo *MemoryLedgerRepo) GetBookingByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	repo.mu.Lock()
	defer repo.mu.Unlock()

	booking, ok := repo.bookings[bookingID]
	if !ok {
		return nil, fmt.Errorf("booking not found: %s", bookingID)
	}
	return &booking, nil
}

func (repo *MemoryLedgerRepo) ListBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	repo.mu.Lock()
	defer repo.mu.Unlock()

	var out []models.Booking
	for _, b := range repo.bookings {
		if userID == "" || b.UserID == userID {
			out = append(out, b)
		}
	}
	sortBookingsByCreated(out)
	return out, nil
}

func (repo *MemoryLedgerRepo) CancelBooking(ctx context.Context, bookingID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	repo.mu.Lock()
	defer repo.mu.Unlock()

	booking, ok := repo.bookings[bookingID]
	if !ok || booking.Status != models.StatusConfirmed {
		return fmt.Errorf("no confirmed booking with id %s", bookingID)
	}
	booking.Status = models.StatusCancelled
	repo.bookings[bookingID] = booking
	for _, d := range booking.SessionDays {
		if repo.days[d] == bookingID {
			delete(repo.days, d)
		}
	}
	return nil
}

// sortBookingsByCreated orders newest first, matching the mongo query.
func sortBookingsByCreated(bookings []models.Booking) {
	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})
}
