package ledgerRepo

import (
	"context"
	"fmt"
	"time"

	"pitchbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CommitIfFree atomically claims every session day on the booking and
// inserts the booking record in a single transaction. A day already held
// by a Confirmed booking trips the unique _id index on session_days, the
// transaction aborts without partial effect, and the conflicting days are
// reported back.
func (repo *MongoLedgerRepo) CommitIfFree(ctx context.Context, booking *models.Booking) ([]models.SessionDay, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	days := booking.SessionDays
	if len(days) == 0 {
		return nil, fmt.Errorf("booking %s has no session days", booking.ID)
	}

	docs := make([]interface{}, 0, len(days))
	for _, d := range days {
		docs = append(docs, sessionDayDoc{Date: d, BookingID: booking.ID})
	}

	client := repo.bookingColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return nil, fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) (interface{}, error) {
		if _, err := repo.dayColl.InsertMany(sc, docs); err != nil {
			return nil, err
		}
		if _, err := repo.bookingColl.InsertOne(sc, booking); err != nil {
			return nil, err
		}
		return nil, nil
	}

	if _, err := sess.WithTransaction(ctx, txnFn); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			conflicts, qErr := repo.heldDays(ctx, days)
			if qErr != nil {
				return nil, fmt.Errorf("commit aborted but conflict lookup failed: %w", qErr)
			}
			return conflicts, nil
		}
		return nil, fmt.Errorf("failed to commit booking %s: %w", booking.ID, err)
	}
	return nil, nil
}

// CancelBooking flips the booking to Cancelled and releases its day
// claims in the same transaction, so a cancelled booking never keeps
// blocking the pitch.
func (repo *MongoLedgerRepo) CancelBooking(ctx context.Context, bookingID string) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client := repo.bookingColl.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) (interface{}, error) {
		res, err := repo.bookingColl.UpdateOne(sc,
			bson.M{"id": bookingID, "status": models.StatusConfirmed},
			bson.M{"$set": bson.M{"status": models.StatusCancelled}},
		)
		if err != nil {
			return nil, err
		}
		if res.MatchedCount == 0 {
			return nil, fmt.Errorf("no confirmed booking with id %s", bookingID)
		}
		if _, err := repo.dayColl.DeleteMany(sc, bson.M{"bookingId": bookingID}); err != nil {
			return nil, err
		}
		return nil, nil
	}

	if _, err := sess.WithTransaction(ctx, txnFn); err != nil {
		return fmt.Errorf("failed to cancel booking %s: %w", bookingID, err)
	}
	return nil
}
