package bookingRepo

import (
	"fmt"
	"time"

	"tutorhq/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ensureIndexes creates indexes for fields frequently used in queries. The
// partial unique index on (tutor_id, start_ts) rejects two confirmed bookings
// starting at the same instant even if the overlap transaction is bypassed.
func (r *MongoBookingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{
			Keys: bson.D{{Key: "tutor_id", Value: 1}, {Key: "start_ts", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetName("uniq_confirmed_start").
				SetPartialFilterExpression(bson.M{"status": models.BookingConfirmed}),
		},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}
