package ledgerRepo

import (
	"context"
	"time"

	"pitchbook/config"
	"pitchbook/database"
	"pitchbook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

const (
	bookingCollection = "bookings"
	dayCollection     = "session_days"
)

// sessionDayDoc is one occupied session day. The date itself is the
// document key, so the _id index is the conditional-write primitive that
// CommitIfFree relies on: a second claim for the same day is a duplicate
// key error.
type sessionDayDoc struct {
	Date      models.SessionDay `bson:"_id"`
	BookingID string            `bson:"bookingId"`
}

// MongoLedgerRepo implements LedgerRepository backed by MongoDB.
type MongoLedgerRepo struct {
	bookingColl *mongo.Collection
	dayColl     *mongo.Collection
}

// NewMongoLedgerRepo builds the repository on the shared Mongo client.
func NewMongoLedgerRepo() *MongoLedgerRepo {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &MongoLedgerRepo{
		bookingColl: db.Collection(bookingCollection),
		dayColl:     db.Collection(dayCollection),
	}
}

func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, 5*time.Second)
}
