package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"garmentgrid/internal/models"
)

// Bookings persists booking documents in the "bookings" collection.
type Bookings struct {
	col *mongo.Collection
}

func NewBookings(db *mongo.Database) *Bookings {
	return &Bookings{col: db.Collection("bookings")}
}

func (s *Bookings) Insert(ctx context.Context, booking models.Booking) (primitive.ObjectID, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	res, err := s.col.InsertOne(ctx, booking)
	if err != nil {
		return primitive.NilObjectID, err
	}

	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

// FindByID returns (nil, nil) when no booking matches.
func (s *Bookings) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	var booking models.Booking
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (s *Bookings) ListByEmail(ctx context.Context, email string, skip, limit int64) ([]models.Booking, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := s.col.Find(ctx, bson.M{"email": email}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	bookings := make([]models.Booking, 0)
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *Bookings) AllByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	cursor, err := s.col.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	bookings := make([]models.Booking, 0)
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *Bookings) CountByEmail(ctx context.Context, email string) (int64, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	return s.col.CountDocuments(ctx, bson.M{"email": email})
}

func (s *Bookings) CountByEmailAndStatus(ctx context.Context, email string, status models.BookingStatus) (int64, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	return s.col.CountDocuments(ctx, bson.M{"email": email, "status": status})
}

func (s *Bookings) SetStatus(ctx context.Context, id primitive.ObjectID, status models.BookingStatus, at time.Time) (bool, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	res, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{
			"status":    status,
			"updatedAt": at,
		},
	})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (s *Bookings) MarkPaid(ctx context.Context, id primitive.ObjectID, event models.TrackingEvent, at time.Time) (bool, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	res, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{
			"paymentStatus": models.PaymentPaid,
			"status":        models.StatusConfirmed,
			"updatedAt":     at,
		},
		"$push": bson.M{"tracking": event},
	})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (s *Bookings) PushTracking(ctx context.Context, id primitive.ObjectID, event models.TrackingEvent, at time.Time) (bool, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	res, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$push": bson.M{"tracking": event},
		"$set":  bson.M{"updatedAt": at},
	})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (s *Bookings) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}
