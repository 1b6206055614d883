package dto

type CreateBookmarkRequest struct {
	Title       string   `json:"title"`
	URL         string   `json:"url"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

type UpdateBookmarkRequest struct {
	Title       *string   `json:"title"`
	URL         *string   `json:"url"`
	Description *string   `json:"description"`
	Tags        *[]string `json:"tags"`
	IsFavorite  *bool     `json:"is_favorite"`
}

type FetchTitleRequest struct {
	URL string `json:"url" binding:"required"`
}

// Title is a pointer so that "no title element found" serializes as null
// rather than an empty string.
type FetchTitleResponse struct {
	Title *string `json:"title"`
}
