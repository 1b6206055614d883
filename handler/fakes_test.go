package handler

import (
	"context"
	"sort"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"notemark/model"
	"notemark/repository"
)

// In-memory repositories used by the handler tests. They implement the
// usecase interfaces with the same semantics the Mongo filters have:
// owner scoping, case-insensitive substring search, all requested tags
// present, newest first.

type memNotesRepo struct {
	notes map[string]*model.Note
}

func newMemNotesRepo() *memNotesRepo {
	return &memNotesRepo{notes: make(map[string]*model.Note)}
}

func (r *memNotesRepo) CreateNote(_ context.Context, note *model.Note) error {
	stored := *note
	r.notes[note.ID] = &stored
	return nil
}

func (r *memNotesRepo) FindNotes(_ context.Context, userID, term string, tags []string) ([]*model.Note, error) {
	results := make([]*model.Note, 0)
	for _, note := range r.notes {
		if note.UserID != userID {
			continue
		}
		if term != "" && !matchesTerm(term, note.Title, note.Content) {
			continue
		}
		if !hasAllTags(note.Tags, tags) {
			continue
		}
		results = append(results, note)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].CreatedAt.After(results[j].CreatedAt)
	})
	return results, nil
}

func (r *memNotesRepo) GetNote(_ context.Context, noteID, userID string) (*model.Note, error) {
	note, ok := r.notes[noteID]
	if !ok || note.UserID != userID {
		return nil, repository.ErrNotFound
	}
	return note, nil
}

func (r *memNotesRepo) UpdateNote(ctx context.Context, noteID, userID string, set bson.M) (*model.Note, error) {
	note, err := r.GetNote(ctx, noteID, userID)
	if err != nil {
		return nil, err
	}
	if title, ok := set["title"].(string); ok {
		note.Title = title
	}
	if content, ok := set["content"].(string); ok {
		note.Content = content
	}
	if tags, ok := set["tags"].([]string); ok {
		note.Tags = tags
	}
	if favorite, ok := set["is_favorite"].(bool); ok {
		note.IsFavorite = favorite
	}
	if updatedAt, ok := set["updated_at"].(time.Time); ok {
		note.UpdatedAt = updatedAt
	}
	return note, nil
}

func (r *memNotesRepo) DeleteNote(ctx context.Context, noteID, userID string) error {
	if _, err := r.GetNote(ctx, noteID, userID); err != nil {
		return err
	}
	delete(r.notes, noteID)
	return nil
}

type memBookmarksRepo struct {
	bookmarks map[string]*model.Bookmark
}

func newMemBookmarksRepo() *memBookmarksRepo {
	return &memBookmarksRepo{bookmarks: make(map[string]*model.Bookmark)}
}

func (r *memBookmarksRepo) CreateBookmark(_ context.Context, bookmark *model.Bookmark) error {
	stored := *bookmark
	r.bookmarks[bookmark.ID] = &stored
	return nil
}

func (r *memBookmarksRepo) FindBookmarks(_ context.Context, userID, term string, tags []string) ([]*model.Bookmark, error) {
	results := make([]*model.Bookmark, 0)
	for _, bookmark := range r.bookmarks {
		if bookmark.UserID != userID {
			continue
		}
		if term != "" && !matchesTerm(term, bookmark.Title, bookmark.Description, bookmark.URL) {
			continue
		}
		if !hasAllTags(bookmark.Tags, tags) {
			continue
		}
		results = append(results, bookmark)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].CreatedAt.After(results[j].CreatedAt)
	})
	return results, nil
}

func (r *memBookmarksRepo) GetBookmark(_ context.Context, bookmarkID, userID string) (*model.Bookmark, error) {
	bookmark, ok := r.bookmarks[bookmarkID]
	if !ok || bookmark.UserID != userID {
		return nil, repository.ErrNotFound
	}
	return bookmark, nil
}

func (r *memBookmarksRepo) UpdateBookmark(ctx context.Context, bookmarkID, userID string, set bson.M) (*model.Bookmark, error) {
	bookmark, err := r.GetBookmark(ctx, bookmarkID, userID)
	if err != nil {
		return nil, err
	}
	if title, ok := set["title"].(string); ok {
		bookmark.Title = title
	}
	if pageURL, ok := set["url"].(string); ok {
		bookmark.URL = pageURL
	}
	if description, ok := set["description"].(string); ok {
		bookmark.Description = description
	}
	if tags, ok := set["tags"].([]string); ok {
		bookmark.Tags = tags
	}
	if favorite, ok := set["is_favorite"].(bool); ok {
		bookmark.IsFavorite = favorite
	}
	if updatedAt, ok := set["updated_at"].(time.Time); ok {
		bookmark.UpdatedAt = updatedAt
	}
	return bookmark, nil
}

func (r *memBookmarksRepo) DeleteBookmark(ctx context.Context, bookmarkID, userID string) error {
	if _, err := r.GetBookmark(ctx, bookmarkID, userID); err != nil {
		return err
	}
	delete(r.bookmarks, bookmarkID)
	return nil
}

type memUsersRepo struct {
	users map[string]*model.User
}

func newMemUsersRepo() *memUsersRepo {
	return &memUsersRepo{users: make(map[string]*model.User)}
}

func (r *memUsersRepo) CreateUser(_ context.Context, user *model.User) error {
	for _, existing := range r.users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *memUsersRepo) FindByUsernameOrEmail(_ context.Context, identifier string) (*model.User, error) {
	for _, user := range r.users {
		if user.Username == identifier || user.Email == identifier {
			return user, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memUsersRepo) FindByUsername(_ context.Context, username string) (*model.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			return user, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memUsersRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memUsersRepo) FindByID(_ context.Context, id string) (*model.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return user, nil
}

type stubFetcher struct {
	title *string
	err   error
}

func (f *stubFetcher) FetchTitle(context.Context, string) (*string, error) {
	return f.title, f.err
}

func matchesTerm(term string, fields ...string) bool {
	lower := strings.ToLower(term)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), lower) {
			return true
		}
	}
	return false
}

func hasAllTags(have, want []string) bool {
	for _, tag := range want {
		found := false
		for _, existing := range have {
			if existing == tag {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
