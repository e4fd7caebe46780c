package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fleetbook/internal/services/users"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// UsersRepo implements the users.Repository interface for MongoDB
type UsersRepo struct {
	collection *mongo.Collection
}

// NewUsersRepo creates a new users repository and ensures the unique
// email index exists.
func NewUsersRepo(parentCtx context.Context, db *mongo.Database) (*UsersRepo, error) {
	collection := db.Collection("users")

	indexModel := mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	}

	ctx, cancel := context.WithTimeout(parentCtx, OpTimeout)
	defer cancel()

	if _, err := collection.Indexes().CreateOne(ctx, indexModel); err != nil {
		if !mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("failed to create users email index: %w", err)
		}
	}

	return &UsersRepo{
		collection: collection,
	}, nil
}

// Create inserts a new user. A duplicate email yields users.ErrDuplicateEmail.
func (r *UsersRepo) Create(ctx context.Context, user *users.User) error {
	ctx, cancel := repoCtx(ctx)
	defer cancel()

	_, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return users.ErrDuplicateEmail
		}
		return err
	}

	return nil
}

// FindByEmail finds a user by email address
func (r *UsersRepo) FindByEmail(ctx context.Context, email string) (*users.User, error) {
	ctx, cancel := repoCtx(ctx)
	defer cancel()

	var user users.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, users.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// List retrieves every user, sorted by _id ascending for stable output
func (r *UsersRepo) List(ctx context.Context) ([]*users.User, error) {
	ctx, cancel := repoCtx(ctx)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer func(ctxToClose context.Context) {
		_ = cursor.Close(ctxToClose)
	}(ctx)

	var usersList []*users.User
	if err := cursor.All(ctx, &usersList); err != nil {
		return nil, err
	}

	return usersList, nil
}

// UpdateMeta applies a partial patch to the meta sub-document of the user
// with the given email and returns the post-update document
func (r *UsersRepo) UpdateMeta(ctx context.Context, email string, patch users.UpdateUserMeta) (*users.User, error) {
	ctx, cancel := repoCtx(ctx)
	defer cancel()

	filter := bson.M{"email": email}

	update := bson.M{
		"$set": bson.M{
			"updated_at": time.Now().UTC(),
		},
	}

	// Only update fields that are provided
	if patch.Age != nil {
		update["$set"].(bson.M)["meta.age"] = *patch.Age
	}
	if patch.Website != nil {
		update["$set"].(bson.M)["meta.website"] = *patch.Website
	}
	if patch.Address != nil {
		update["$set"].(bson.M)["meta.address"] = *patch.Address
	}
	if patch.Country != nil {
		update["$set"].(bson.M)["meta.country"] = *patch.Country
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated users.User
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, users.ErrUserNotFound
		}
		return nil, err
	}

	return &updated, nil
}

// Purge removes every user from the collection
func (r *UsersRepo) Purge(ctx context.Context) (int64, error) {
	ctx, cancel := repoCtx(ctx)
	defer cancel()

	result, err := r.collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}

	return result.DeletedCount, nil
}
