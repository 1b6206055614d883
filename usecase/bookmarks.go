package usecase

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"notemark/dto"
	"notemark/model"
)

type BookmarksRepo interface {
	CreateBookmark(ctx context.Context, bookmark *model.Bookmark) error
	FindBookmarks(ctx context.Context, userID, term string, tags []string) ([]*model.Bookmark, error)
	GetBookmark(ctx context.Context, bookmarkID, userID string) (*model.Bookmark, error)
	UpdateBookmark(ctx context.Context, bookmarkID, userID string, set bson.M) (*model.Bookmark, error)
	DeleteBookmark(ctx context.Context, bookmarkID, userID string) error
}

// TitleFetcher resolves a page title for bookmarks created without one.
type TitleFetcher interface {
	FetchTitle(ctx context.Context, pageURL string) (*string, error)
}

type BookmarkService struct {
	Repo    BookmarksRepo
	Fetcher TitleFetcher
}

// ValidateURL requires an absolute URL with a scheme and host, the same
// bar `new URL(...)` sets for the web client.
func ValidateURL(raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return validationErr("Invalid URL format")
	}
	return nil
}

func (svc *BookmarkService) ListBookmarks(ctx context.Context, userID, term, tagsParam string) ([]*model.Bookmark, error) {
	return svc.Repo.FindBookmarks(ctx, userID, term, ParseTagsParam(tagsParam))
}

func (svc *BookmarkService) GetBookmark(ctx context.Context, bookmarkID, userID string) (*model.Bookmark, error) {
	return svc.Repo.GetBookmark(ctx, bookmarkID, userID)
}

func (svc *BookmarkService) CreateBookmark(ctx context.Context, userID string, req *dto.CreateBookmarkRequest) (*model.Bookmark, error) {
	if strings.TrimSpace(req.URL) == "" {
		return nil, validationErr("URL is required")
	}
	if err := ValidateURL(req.URL); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(req.Title)
	if titleTooLong(title) {
		return nil, validationErr("Title exceeds maximum length")
	}
	if title == "" {
		// Best effort: a failed fetch just leaves the title unset. Fetched
		// titles are clamped so a bloated page cannot overrun the limit.
		if fetched, err := svc.Fetcher.FetchTitle(ctx, req.URL); err == nil && fetched != nil {
			title = clampTitle(*fetched)
		}
	}
	if title == "" {
		title = req.URL
	}

	now := time.Now()
	bookmark := &model.Bookmark{
		ID:          uuid.NewString(),
		UserID:      userID,
		Title:       title,
		URL:         req.URL,
		Description: strings.TrimSpace(req.Description),
		Tags:        normalizeTags(req.Tags),
		IsFavorite:  false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := svc.Repo.CreateBookmark(ctx, bookmark); err != nil {
		return nil, err
	}
	return bookmark, nil
}

func (svc *BookmarkService) UpdateBookmark(ctx context.Context, bookmarkID, userID string, req *dto.UpdateBookmarkRequest) (*model.Bookmark, error) {
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
	if req.URL != nil {
		if err := ValidateURL(*req.URL); err != nil {
			return nil, err
		}
		set["url"] = *req.URL
	}
	if req.Description != nil {
		set["description"] = strings.TrimSpace(*req.Description)
	}
	if req.Tags != nil {
		set["tags"] = normalizeTags(*req.Tags)
	}
	if req.IsFavorite != nil {
		set["is_favorite"] = *req.IsFavorite
	}

	return svc.Repo.UpdateBookmark(ctx, bookmarkID, userID, set)
}

func (svc *BookmarkService) DeleteBookmark(ctx context.Context, bookmarkID, userID string) error {
	return svc.Repo.DeleteBookmark(ctx, bookmarkID, userID)
}
