package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"notemark/middleware"
	"notemark/model"
)

type UsersRepo struct {
	MongoCollection *mongo.Collection
}

func GetUsersRepo(store *Store) *UsersRepo {
	return &UsersRepo{
		MongoCollection: store.Database().Collection("users"),
	}
}

func (r *UsersRepo) CreateUser(ctx context.Context, user *model.User) error {
	timer := middleware.TrackDBOperation("insert", "users")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	return err
}

// FindByUsernameOrEmail resolves a login identifier: the username field of
// the login form may hold either a username or an email address.
func (r *UsersRepo) FindByUsernameOrEmail(ctx context.Context, identifier string) (*model.User, error) {
	timer := middleware.TrackDBOperation("find", "users")
	defer timer.ObserveDuration()

	filter := bson.M{
		"$or": []bson.M{
			{"username": identifier},
			{"email": identifier},
		},
	}

	var user model.User
	err := r.MongoCollection.FindOne(ctx, filter).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

func (r *UsersRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *UsersRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UsersRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *UsersRepo) findOne(ctx context.Context, filter bson.M) (*model.User, error) {
	timer := middleware.TrackDBOperation("find", "users")
	defer timer.ObserveDuration()

	var user model.User
	err := r.MongoCollection.FindOne(ctx, filter).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}
