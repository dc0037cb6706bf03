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

// Products persists catalog documents in the "products" collection.
// Writes accept free-form documents; reads decode into models.Product.
type Products struct {
	col *mongo.Collection
}

func NewProducts(db *mongo.Database) *Products {
	return &Products{col: db.Collection("products")}
}

func (s *Products) Insert(ctx context.Context, doc bson.M) (primitive.ObjectID, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	doc["createdAt"] = time.Now()

	res, err := s.col.InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, err
	}

	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

// FindByID returns (nil, nil) when no product matches.
func (s *Products) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	var product models.Product
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *Products) List(ctx context.Context, skip, limit int64) ([]models.Product, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	findOptions := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := s.col.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := make([]models.Product, 0)
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *Products) Count(ctx context.Context) (int64, error) {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	return s.col.CountDocuments(ctx, bson.M{})
}

// DecrementAvailable subtracts quantity from inventory.available. The update
// matches at most one document; a missing product or an insufficient count is
// not treated as an error.
func (s *Products) DecrementAvailable(ctx context.Context, id primitive.ObjectID, quantity int) error {
	ctx, cancel := opCtx(ctx)
	defer cancel()

	_, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$inc": bson.M{"inventory.available": -quantity},
	})
	return err
}
