package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"notemark/middleware"
	"notemark/model"
)

var bookmarkSearchFields = []string{"title", "description", "url"}

type BookmarksRepo struct {
	MongoCollection *mongo.Collection
}

func GetBookmarksRepo(store *Store) *BookmarksRepo {
	return &BookmarksRepo{
		MongoCollection: store.Database().Collection("bookmarks"),
	}
}

func (r *BookmarksRepo) CreateBookmark(ctx context.Context, bookmark *model.Bookmark) error {
	timer := middleware.TrackDBOperation("insert", "bookmarks")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.InsertOne(ctx, bookmark)
	return err
}

func (r *BookmarksRepo) FindBookmarks(ctx context.Context, userID, term string, tags []string) ([]*model.Bookmark, error) {
	timer := middleware.TrackDBOperation("find", "bookmarks")
	defer timer.ObserveDuration()

	filter := SearchFilter(userID, term, tags, bookmarkSearchFields)

	cursor, err := r.MongoCollection.Find(ctx, filter, newestFirst())
	if err != nil {
		return nil, fmt.Errorf("failed to list bookmarks: %w", err)
	}
	defer cursor.Close(ctx)

	bookmarks := make([]*model.Bookmark, 0)
	if err = cursor.All(ctx, &bookmarks); err != nil {
		return nil, fmt.Errorf("failed to decode bookmarks: %w", err)
	}
	return bookmarks, nil
}

func (r *BookmarksRepo) GetBookmark(ctx context.Context, bookmarkID, userID string) (*model.Bookmark, error) {
	timer := middleware.TrackDBOperation("find", "bookmarks")
	defer timer.ObserveDuration()

	var bookmark model.Bookmark
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": bookmarkID, "user_id": userID}).Decode(&bookmark)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get bookmark: %w", err)
	}
	return &bookmark, nil
}

func (r *BookmarksRepo) UpdateBookmark(ctx context.Context, bookmarkID, userID string, set bson.M) (*model.Bookmark, error) {
	timer := middleware.TrackDBOperation("update", "bookmarks")
	defer timer.ObserveDuration()

	filter := bson.M{"_id": bookmarkID, "user_id": userID}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return nil, fmt.Errorf("failed to update bookmark: %w", err)
	}
	if result.MatchedCount == 0 {
		return nil, ErrNotFound
	}

	return r.GetBookmark(ctx, bookmarkID, userID)
}

func (r *BookmarksRepo) DeleteBookmark(ctx context.Context, bookmarkID, userID string) error {
	timer := middleware.TrackDBOperation("delete", "bookmarks")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": bookmarkID, "user_id": userID})
	if err != nil {
		return fmt.Errorf("failed to delete bookmark: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
