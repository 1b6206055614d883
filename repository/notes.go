package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"notemark/middleware"
	"notemark/model"
)

// noteSearchFields are the fields the q= parameter matches against.
var noteSearchFields = []string{"title", "content"}

type NotesRepo struct {
	MongoCollection *mongo.Collection
}

func GetNotesRepo(store *Store) *NotesRepo {
	return &NotesRepo{
		MongoCollection: store.Database().Collection("notes"),
	}
}

func (r *NotesRepo) CreateNote(ctx context.Context, note *model.Note) error {
	timer := middleware.TrackDBOperation("insert", "notes")
	defer timer.ObserveDuration()

	_, err := r.MongoCollection.InsertOne(ctx, note)
	return err
}

// FindNotes lists a user's notes, newest first, optionally narrowed by a
// search term and required tags.
func (r *NotesRepo) FindNotes(ctx context.Context, userID, term string, tags []string) ([]*model.Note, error) {
	timer := middleware.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	filter := SearchFilter(userID, term, tags, noteSearchFields)

	cursor, err := r.MongoCollection.Find(ctx, filter, newestFirst())
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer cursor.Close(ctx)

	notes := make([]*model.Note, 0)
	if err = cursor.All(ctx, &notes); err != nil {
		return nil, fmt.Errorf("failed to decode notes: %w", err)
	}
	return notes, nil
}

func (r *NotesRepo) GetNote(ctx context.Context, noteID, userID string) (*model.Note, error) {
	timer := middleware.TrackDBOperation("find", "notes")
	defer timer.ObserveDuration()

	var note model.Note
	err := r.MongoCollection.FindOne(ctx, bson.M{"_id": noteID, "user_id": userID}).Decode(&note)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get note: %w", err)
	}
	return &note, nil
}

// UpdateNote applies the given $set fields to the user's note. The caller
// builds the set document from the allow-listed update request.
func (r *NotesRepo) UpdateNote(ctx context.Context, noteID, userID string, set bson.M) (*model.Note, error) {
	timer := middleware.TrackDBOperation("update", "notes")
	defer timer.ObserveDuration()

	filter := bson.M{"_id": noteID, "user_id": userID}

	result, err := r.MongoCollection.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}
	if result.MatchedCount == 0 {
		return nil, ErrNotFound
	}

	return r.GetNote(ctx, noteID, userID)
}

func (r *NotesRepo) DeleteNote(ctx context.Context, noteID, userID string) error {
	timer := middleware.TrackDBOperation("delete", "notes")
	defer timer.ObserveDuration()

	result, err := r.MongoCollection.DeleteOne(ctx, bson.M{"_id": noteID, "user_id": userID})
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
