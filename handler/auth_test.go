package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"notemark/config"
	"notemark/dto"
	"notemark/middleware"
	"notemark/services"
	"notemark/usecase"
)

func newAuthRouter() (*gin.Engine, *memUsersRepo) {
	gin.SetMode(gin.TestMode)

	repo := newMemUsersRepo()
	tokens := services.NewTokenService(config.JWTConfig{Secret: "test-secret", TTL: time.Hour})
	h := NewAuthHandler(&usecase.UserService{Repo: repo, Tokens: tokens}, zap.NewNop())

	router := gin.New()
	auth := router.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.GET("/me", middleware.AuthMiddleware(tokens), h.Me)
	}
	return router, repo
}

func TestRegisterLoginMeFlow(t *testing.T) {
	router, _ := newAuthRouter()

	w := doJSON(router, http.MethodPost, "/auth/register",
		`{"username":"alice","email":"alice@example.com","password":"s3cret!1"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("register status = %d, want 201: %s", w.Code, w.Body.String())
	}

	var registered dto.AuthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &registered); err != nil {
		t.Fatal(err)
	}
	if registered.Token == "" {
		t.Fatal("register returned no token")
	}
	if registered.User.Username != "alice" || registered.User.Email != "alice@example.com" {
		t.Errorf("register user = %+v", registered.User)
	}

	w = doJSON(router, http.MethodPost, "/auth/login", `{"username":"alice","password":"s3cret!1"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d, want 200: %s", w.Code, w.Body.String())
	}
	var logged dto.AuthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &logged); err != nil {
		t.Fatal(err)
	}
	if logged.Message != "Login successful" || logged.Token == "" {
		t.Errorf("login response = %+v", logged)
	}

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+logged.Token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("me status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var me dto.UserResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &me); err != nil {
		t.Fatal(err)
	}
	if me.ID != registered.User.ID || me.Username != "alice" {
		t.Errorf("me = %+v, want registered user", me)
	}
}

func TestRegisterRejections(t *testing.T) {
	router, _ := newAuthRouter()

	if w := doJSON(router, http.MethodPost, "/auth/register",
		`{"username":"alice","email":"alice@example.com","password":"s3cret!1"}`); w.Code != http.StatusCreated {
		t.Fatalf("seed register failed: %d", w.Code)
	}

	tests := []struct {
		name string
		body string
		want string
	}{
		{"missing fields", `{"username":"bob"}`, ""},
		{"short password", `{"username":"bob","email":"bob@example.com","password":"abc"}`, ""},
		{"bad email", `{"username":"bob","email":"nope","password":"s3cret!1"}`, ""},
		{"duplicate username", `{"username":"alice","email":"new@example.com","password":"s3cret!1"}`, "Username already exists"},
		{"duplicate email", `{"username":"bob","email":"alice@example.com","password":"s3cret!1"}`, "Email already exists"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(router, http.MethodPost, "/auth/register", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", w.Code)
			}
			if tt.want != "" {
				var resp map[string]string
				if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
					t.Fatal(err)
				}
				if resp["message"] != tt.want {
					t.Errorf("message = %q, want %q", resp["message"], tt.want)
				}
			}
		})
	}
}

func TestLoginRejections(t *testing.T) {
	router, _ := newAuthRouter()

	if w := doJSON(router, http.MethodPost, "/auth/register",
		`{"username":"alice","email":"alice@example.com","password":"s3cret!1"}`); w.Code != http.StatusCreated {
		t.Fatalf("seed register failed: %d", w.Code)
	}

	tests := []struct {
		name string
		body string
		code int
	}{
		{"missing password", `{"username":"alice"}`, http.StatusBadRequest},
		{"unknown user", `{"username":"mallory","password":"s3cret!1"}`, http.StatusUnauthorized},
		{"wrong password", `{"username":"alice","password":"wrong"}`, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if w := doJSON(router, http.MethodPost, "/auth/login", tt.body); w.Code != tt.code {
				t.Errorf("status = %d, want %d", w.Code, tt.code)
			}
		})
	}
}

func TestLoginByEmail(t *testing.T) {
	router, _ := newAuthRouter()

	if w := doJSON(router, http.MethodPost, "/auth/register",
		`{"username":"alice","email":"alice@example.com","password":"s3cret!1"}`); w.Code != http.StatusCreated {
		t.Fatalf("seed register failed: %d", w.Code)
	}

	w := doJSON(router, http.MethodPost, "/auth/login", `{"username":"alice@example.com","password":"s3cret!1"}`)
	if w.Code != http.StatusOK {
		t.Errorf("login by email status = %d, want 200: %s", w.Code, w.Body.String())
	}
}

func TestMeUnauthenticated(t *testing.T) {
	router, _ := newAuthRouter()

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("no-header status = %d, want 401", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("bad-token status = %d, want 401", w.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["message"] != "Invalid token" {
		t.Errorf("message = %q, want %q", resp["message"], "Invalid token")
	}
}
