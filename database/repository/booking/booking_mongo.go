package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tutorhq/database"
	"tutorhq/models"
	"tutorhq/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

var (
	// ErrNotFound is returned when no booking matches the query.
	ErrNotFound = errors.New("booking not found")
	// ErrIntervalTaken is returned when the requested interval overlaps an
	// existing confirmed booking for the tutor.
	ErrIntervalTaken = errors.New("booking interval already taken")
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new instance of MongoBookingRepo.
func NewMongoBookingRepo() BookingRepository {
	repo := &MongoBookingRepo{coll: database.DB().Collection("bookings")}
	if err := repo.ensureIndexes(); err != nil {
		utils.GetLogger().Warn("booking repo: failed to ensure indexes", zap.Error(err))
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// overlapFilter matches confirmed bookings for the tutor whose interval
// overlaps [start, end) under half-open semantics.
func overlapFilter(tutorID string, start, end time.Time) bson.M {
	return bson.M{
		"tutor_id": tutorID,
		"status":   models.BookingConfirmed,
		"start_ts": bson.M{"$lt": end},
		"end_ts":   bson.M{"$gt": start},
	}
}

// InsertExclusive inserts the booking inside a transaction that first counts
// overlapping confirmed bookings. The partial unique index on
// (tutor_id, start_ts) backstops exact-duplicate races outside transactions.
func (r *MongoBookingRepo) InsertExclusive(ctx context.Context, booking *models.Booking) error {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		n, err := r.coll.CountDocuments(sc, overlapFilter(booking.TutorID, booking.StartTS, booking.EndTS))
		if err != nil {
			return fmt.Errorf("overlap check failed: %w", err)
		}
		if n > 0 {
			return ErrIntervalTaken
		}
		if _, err := r.coll.InsertOne(sc, booking); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return ErrIntervalTaken
			}
			return fmt.Errorf("insert booking failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if errors.Is(err, ErrIntervalTaken) {
			return ErrIntervalTaken
		}
		return fmt.Errorf("booking transaction failed: %w", err)
	}
	return nil
}

func (r *MongoBookingRepo) ListConfirmedInWindow(tutorID string, from, to time.Time) ([]models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"tutor_id": tutorID,
		"status":   models.BookingConfirmed,
		"start_ts": bson.M{"$gte": from, "$lt": to},
	}
	opts := options.Find().SetSort(bson.D{{Key: "start_ts", Value: 1}})
	return r.find(ctx, filter, opts)
}

func (r *MongoBookingRepo) ListByTutor(tutorID string) ([]models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "start_ts", Value: 1}})
	return r.find(ctx, bson.M{"tutor_id": tutorID}, opts)
}

func (r *MongoBookingRepo) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]models.Booking, error) {
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, fmt.Errorf("error decoding booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return bookings, nil
}

// Cancel flips a confirmed booking to cancelled. Cancelled is terminal, so
// the filter only matches confirmed bookings.
func (r *MongoBookingRepo) Cancel(id, tutorID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "tutor_id": tutorID, "status": models.BookingConfirmed}
	update := bson.M{"$set": bson.M{"status": models.BookingCancelled}}
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to cancel booking %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
