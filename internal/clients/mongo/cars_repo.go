package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fleetbook/internal/logger"
	"fleetbook/internal/services/cars"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// CarsRepo implements the cars.Repository interface for MongoDB
type CarsRepo struct {
	collection *mongo.Collection
}

// translateCarNotFound maps the driver ErrNoDocuments to the domain-level ErrCarNotFound.
func translateCarNotFound(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return cars.ErrCarNotFound
	}
	return err
}

// NewCarsRepo creates a new cars repository
func NewCarsRepo(parentCtx context.Context, db *mongo.Database) (*CarsRepo, error) {
	collection := db.Collection("cars")

	indexes := []mongo.IndexModel{
		// Lookups by make, optionally narrowed to a model
		{
			Keys: bson.D{
				{Key: "make", Value: 1},
				{Key: "model", Value: 1},
			},
		},
		// Color-filtered finds in the demo chain
		{
			Keys: bson.D{{Key: "color", Value: 1}},
		},
	}

	ctx, cancel := context.WithTimeout(parentCtx, OpTimeout)
	defer cancel()

	for _, indexModel := range indexes {
		_, err := collection.Indexes().CreateOne(ctx, indexModel)
		if err != nil {
			if mongo.IsDuplicateKeyError(err) {
				logger.L().Debug("index already exists, continuing", "collection", "cars")
			} else {
				logger.L().Error("failed to create index", "collection", "cars", "error", err)
				return nil, fmt.Errorf("failed to create cars collection index: %w", err)
			}
		}
	}

	return &CarsRepo{
		collection: collection,
	}, nil
}

// buildFilter constructs the MongoDB filter from a cars.Filter.
// Zero-valued fields contribute nothing; the zero filter matches all.
func buildFilter(f cars.Filter) bson.M {
	filter := bson.M{}
	if f.Make != "" {
		filter["make"] = f.Make
	}
	if f.Model != "" {
		filter["model"] = f.Model
	}
	if f.Color != "" {
		filter["color"] = f.Color
	}
	return filter
}

// Create inserts a new car into the database
func (r *CarsRepo) Create(ctx context.Context, car *cars.Car) error {
	ctx, cancel := repoCtx(ctx)
	defer cancel()

	_, err := r.collection.InsertOne(ctx, car)
	return err
}

// List retrieves every car, sorted by _id ascending for stable output
func (r *CarsRepo) List(ctx context.Context) ([]*cars.Car, error) {
	return r.Find(ctx, cars.Filter{})
}

// Find retrieves the cars matching the filter
func (r *CarsRepo) Find(ctx context.Context, f cars.Filter) ([]*cars.Car, error) {
	ctx, cancel := repoCtx(ctx)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, buildFilter(f), opts)
	if err != nil {
		return nil, err
	}
	defer func(ctxToClose context.Context) {
		if cerr := cursor.Close(ctxToClose); cerr != nil {
			logger.L().Error("failed to close cursor", "error", cerr)
		}
	}(ctx)

	var carsList []*cars.Car
	if err := cursor.All(ctx, &carsList); err != nil {
		return nil, err
	}

	return carsList, nil
}

// Update applies a partial patch to the first car matching the filter and
// returns the post-update document
func (r *CarsRepo) Update(ctx context.Context, f cars.Filter, patch cars.UpdateCar) (*cars.Car, error) {
	ctx, cancel := repoCtx(ctx)
	defer cancel()

	filter := buildFilter(f)

	update := bson.M{
		"$set": bson.M{
			"updated_at": time.Now().UTC(),
		},
	}

	// Only update fields that are provided
	if patch.Model != nil {
		update["$set"].(bson.M)["model"] = *patch.Model
	}
	if patch.Year != nil {
		update["$set"].(bson.M)["year"] = *patch.Year
	}
	if patch.Color != nil {
		update["$set"].(bson.M)["color"] = *patch.Color
	}
	if patch.Owner != nil {
		update["$set"].(bson.M)["owner"] = patch.Owner
	}

	// Skip the write if only updated_at would be set
	if len(update["$set"].(bson.M)) == 1 {
		var existing cars.Car
		err := r.collection.FindOne(ctx, filter).Decode(&existing)
		if err != nil {
			return nil, translateCarNotFound(err)
		}
		return &existing, nil
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated cars.Car
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err != nil {
		return nil, translateCarNotFound(err)
	}

	return &updated, nil
}

// Delete removes the cars matching the filter and returns how many were deleted
func (r *CarsRepo) Delete(ctx context.Context, f cars.Filter) (int64, error) {
	ctx, cancel := repoCtx(ctx)
	defer cancel()

	result, err := r.collection.DeleteMany(ctx, buildFilter(f))
	if err != nil {
		return 0, err
	}

	return result.DeletedCount, nil
}

// Clear removes every car from the collection
func (r *CarsRepo) Clear(ctx context.Context) (int64, error) {
	return r.Delete(ctx, cars.Filter{})
}
