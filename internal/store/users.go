package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Users persists profile documents in the "users" collection, keyed by the
// unique email. Profiles are schema-flexible, so documents stay bson.M on
// both reads and writes.
type Users struct {
	col *mongo.Collection
}

func NewUsers(db *mongo.Database) *Users {
	return &Users{col: db.Collection("users")}
}

// FindByEmail returns (nil, nil) when no user matches.
func (s *Users) FindByEmail(ctx context.Context, email string) (bson.M, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	var user bson.M
	err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Users) Insert(ctx context.Context, doc bson.M) (primitive.ObjectID, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	now := time.Now()
	doc["createdAt"] = now
	doc["updatedAt"] = now

	res, err := s.col.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}

	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

// UpdateByEmail applies the given fields with $set and refreshes updatedAt.
// Returns false when no user matched.
func (s *Users) UpdateByEmail(ctx context.Context, email string, fields bson.M) (bool, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	set := bson.M{}
	for key, value := range fields {
		set[key] = value
	}
	set["updatedAt"] = time.Now()

	res, err := s.col.UpdateOne(ctx, bson.M{"email": email}, bson.M{"$set": set})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}
