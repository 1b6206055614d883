package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"notemark/dto"
	"notemark/model"
)

type NotesRepo interface {
	CreateNote(ctx context.Context, note *model.Note) error
	FindNotes(ctx context.Context, userID, term string, tags []string) ([]*model.Note, error)
	GetNote(ctx context.Context, noteID, userID string) (*model.Note, error)
	UpdateNote(ctx context.Context, noteID, userID string, set bson.M) (*model.Note, error)
	DeleteNote(ctx context.Context, noteID, userID string) error
}

type NoteService struct {
	Repo NotesRepo
}

// ListNotes returns the user's notes newest first, optionally filtered by
// a search term and a comma-separated tags parameter.
func (svc *NoteService) ListNotes(ctx context.Context, userID, term, tagsParam string) ([]*model.Note, error) {
	return svc.Repo.FindNotes(ctx, userID, term, ParseTagsParam(tagsParam))
}

func (svc *NoteService) GetNote(ctx context.Context, noteID, userID string) (*model.Note, error) {
	return svc.Repo.GetNote(ctx, noteID, userID)
}

func (svc *NoteService) CreateNote(ctx context.Context, userID string, req *dto.CreateNoteRequest) (*model.Note, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, validationErr("Title and content are required")
	}
	if titleTooLong(title) {
		return nil, validationErr("Title exceeds maximum length")
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, validationErr("Title and content are required")
	}

	now := time.Now()
	note := &model.Note{
		ID:         uuid.NewString(),
		UserID:     userID,
		Title:      title,
		Content:    req.Content,
		Tags:       normalizeTags(req.Tags),
		IsFavorite: false,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := svc.Repo.CreateNote(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

// UpdateNote applies a partial update. Only fields present in the request
// change; everything else is untouched. Last write wins on concurrent
// updates.
func (svc *NoteService) UpdateNote(ctx context.Context, noteID, userID string, req *dto.UpdateNoteRequest) (*model.Note, error) {
	set := bson.M{"updated_at": time.Now()}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, validationErr("Title cannot be empty")
		}
		if titleTooLong(title) {
			return nil, validationErr("Title exceeds maximum length")
		}
		set["title"] = title
	}
	if req.Content != nil {
		if strings.TrimSpace(*req.Content) == "" {
			return nil, validationErr("Content cannot be empty")
		}
		set["content"] = *req.Content
	}
	if req.Tags != nil {
		set["tags"] = normalizeTags(*req.Tags)
	}
	if req.IsFavorite != nil {
		set["is_favorite"] = *req.IsFavorite
	}

	return svc.Repo.UpdateNote(ctx, noteID, userID, set)
}

func (svc *NoteService) DeleteNote(ctx context.Context, noteID, userID string) error {
	return svc.Repo.DeleteNote(ctx, noteID, userID)
}
