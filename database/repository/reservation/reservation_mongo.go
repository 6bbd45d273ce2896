package reservationRepo

import (
	"context"
	"fmt"
	"time"

	"parklot/config"
	"parklot/database"
	"parklot/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoReservationRepo implements ReservationRepository using MongoDB.
type MongoReservationRepo struct {
	coll *mongo.Collection
}

// NewMongoReservationRepo creates a new instance of ReservationRepository
// backed by the "reservations" collection.
func NewMongoReservationRepo() ReservationRepository {
	coll := database.MongoClient.Database(config.AppConfig.DatabaseName).Collection("reservations")
	repo := &MongoReservationRepo{coll: coll}
	if err := repo.ensureIndexes(); err != nil {
		// Index creation is idempotent; a failure here is a deployment
		// problem, not a request-path one.
		fmt.Printf("warning: failed to ensure reservation indexes: %v\n", err)
	}
	return repo
}

func (r *MongoReservationRepo) Insert(ctx context.Context, rec *models.Reservation) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctxWithTimeout, rec); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateID
		}
		return fmt.Errorf("error inserting reservation: %w", err)
	}
	return nil
}

func (r *MongoReservationRepo) GetByID(ctx context.Context, id string) (*models.Reservation, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var rec models.Reservation
	if err := r.coll.FindOne(ctxWithTimeout, bson.M{"id": id}).Decode(&rec); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching reservation %s: %w", id, err)
	}
	return &rec, nil
}

func (r *MongoReservationRepo) ListForSlot(ctx context.Context, slotID int, from, to time.Time, activeOnly bool) ([]models.Reservation, error) {
	filter := bson.M{
		"slot_id":  slotID,
		"start_at": bson.M{"$lt": to},
		"end_at":   bson.M{"$gt": from},
	}
	if activeOnly {
		filter["status"] = bson.M{"$in": []string{models.StatusConfirmed, models.StatusBlocked}}
	}
	return r.find(ctx, filter)
}

func (r *MongoReservationRepo) ListRange(ctx context.Context, from, to time.Time) ([]models.Reservation, error) {
	filter := bson.M{
		"start_at": bson.M{"$lt": to},
		"end_at":   bson.M{"$gt": from},
	}
	return r.find(ctx, filter)
}

func (r *MongoReservationRepo) find(ctx context.Context, filter bson.M) ([]models.Reservation, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "slot_id", Value: 1}, {Key: "start_at", Value: 1}})
	cursor, err := r.coll.Find(ctxWithTimeout, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing reservations: %w", err)
	}
	defer cursor.Close(ctxWithTimeout)

	var records []models.Reservation
	for cursor.Next(ctxWithTimeout) {
		var rec models.Reservation
		if err := cursor.Decode(&rec); err != nil {
			return nil, fmt.Errorf("error decoding reservation: %w", err)
		}
		records = append(records, rec)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return records, nil
}

// MarkCanceled performs the cancel transition with a conditional update so
// that two concurrent cancels of the same id match exactly once.
func (r *MongoReservationRepo) MarkCanceled(ctx context.Context, id string, canceledAt time.Time) (bool, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": id, "status": models.StatusConfirmed}
	update := bson.M{"$set": bson.M{
		"status":      models.StatusCanceled,
		"canceled_at": canceledAt,
		"updated_at":  canceledAt,
	}}
	res, err := r.coll.UpdateOne(ctxWithTimeout, filter, update)
	if err != nil {
		return false, fmt.Errorf("error canceling reservation %s: %w", id, err)
	}
	return res.MatchedCount == 1, nil
}
