package ledgerRepo

import (
	"context"
	"fmt"

	"pitchbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListConfirmedSessions returns the occupied session days within the
// inclusive range, in chronological order.
func (repo *MongoLedgerRepo) ListConfirmedSessions(ctx context.Context, from, to models.SessionDay) ([]models.SessionDay, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	filter := bson.M{"_id": bson.M{"$gte": from, "$lte": to}}
	cursor, err := repo.dayColl.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("error listing confirmed sessions: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []sessionDayDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("error decoding confirmed sessions: %w", err)
	}
	days := make([]models.SessionDay, 0, len(docs))
	for _, doc := range docs {
		days = append(days, doc.Date)
	}
	return days, nil
}

// GetBookingByID retrieves a booking by its ID.
func (repo *MongoLedgerRepo) GetBookingByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	var booking models.Booking
	if err := repo.bookingColl.FindOne(ctx, bson.M{"id": bookingID}).Decode(&booking); err != nil {
		return nil, fmt.Errorf("booking not found: %w", err)
	}
	return &booking, nil
}

// ListBookings returns bookings, newest first, optionally scoped to the
// owning user.
func (repo *MongoLedgerRepo) ListBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	filter := bson.M{}
	if userID != "" {
		filter["userId"] = userID
	}
	cursor, err := repo.bookingColl.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("error listing bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}

// heldDays returns which of the given days already have an occupancy claim.
func (repo *MongoLedgerRepo) heldDays(ctx context.Context, days []models.SessionDay) ([]models.SessionDay, error) {
	ctx, cancel := withTimeout(ctx)
	defer cancel()

	filter := bson.M{"_id": bson.M{"$in": days}}
	cursor, err := repo.dayColl.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("error querying held days: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []sessionDayDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("error decoding held days: %w", err)
	}
	held := make([]models.SessionDay, 0, len(docs))
	for _, doc := range docs {
		held = append(held, doc.Date)
	}
	return held, nil
}
