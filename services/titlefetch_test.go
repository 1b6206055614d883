package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
)

func newTestFetcher() *TitleFetcher {
	return NewTitleFetcher(5*time.Second, nil, zap.NewNop())
}

func TestFetchTitle(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		wantTitle *string
		wantErr   error
	}{
		{
			name:      "simple title",
			status:    http.StatusOK,
			body:      `<html><head><title>Example Page</title></head></html>`,
			wantTitle: strPtr("Example Page"),
		},
		{
			name:      "title with attributes and whitespace",
			status:    http.StatusOK,
			body:      `<TITLE data-reactid="1">  Spaced Out  </TITLE>`,
			wantTitle: strPtr("Spaced Out"),
		},
		{
			name:      "no title element",
			status:    http.StatusOK,
			body:      `<html><body>nothing here</body></html>`,
			wantTitle: nil,
		},
		{
			name:    "non-success status",
			status:  http.StatusNotFound,
			body:    `<title>Not Found</title>`,
			wantErr: ErrFetchFailed,
		},
		{
			name:    "server error status",
			status:  http.StatusInternalServerError,
			body:    ``,
			wantErr: ErrFetchFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if ua := r.UserAgent(); ua != browserUserAgent {
					t.Errorf("unexpected User-Agent %q", ua)
				}
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			title, err := newTestFetcher().FetchTitle(context.Background(), server.URL)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("FetchTitle() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}

			switch {
			case tt.wantTitle == nil && title != nil:
				t.Errorf("FetchTitle() = %q, want nil", *title)
			case tt.wantTitle != nil && title == nil:
				t.Errorf("FetchTitle() = nil, want %q", *tt.wantTitle)
			case tt.wantTitle != nil && *title != *tt.wantTitle:
				t.Errorf("FetchTitle() = %q, want %q", *title, *tt.wantTitle)
			}
		})
	}
}

func TestFetchTitleTransportError(t *testing.T) {
	fetcher := newTestFetcher()

	// Connect to a closed server.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	if _, err := fetcher.FetchTitle(context.Background(), url); err == nil {
		t.Error("expected transport error")
	}
}

func strPtr(s string) *string {
	return &s
}
