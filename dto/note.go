package dto

// Field-level validation (required title/content, length caps) lives in
// the usecase so its messages reach the client verbatim.
type CreateNoteRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

// UpdateNoteRequest carries a partial update. Only non-nil fields are
// applied; anything outside this allow-list is dropped at binding time.
type UpdateNoteRequest struct {
	Title      *string   `json:"title"`
	Content    *string   `json:"content"`
	Tags       *[]string `json:"tags"`
	IsFavorite *bool     `json:"is_favorite"`
}
