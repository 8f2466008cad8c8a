package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/akarimov/imagefeed/internal/domain"
	"github.com/akarimov/imagefeed/internal/transport/http/handler"
	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeAuthUsecase implements the unexported authUsecaser interface via method matching.
type fakeAuthUsecase struct {
	login    func(ctx context.Context, email, password string) (string, *domain.User, error)
	register func(ctx context.Context, email, password string) (string, *domain.User, error)
}

func (f *fakeAuthUsecase) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return f.login(ctx, email, password)
}

func (f *fakeAuthUsecase) Register(ctx context.Context, email, password string) (string, *domain.User, error) {
	return f.register(ctx, email, password)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

func newAuthEngine(uc *fakeAuthUsecase) *gin.Engine {
	h := handler.NewAuthHandler(uc, testLogger())

	r := gin.New()
	r.POST("/api/v0/users", h.Register)
	r.POST("/api/v0/users/auth/login", h.Login)
	r.GET("/api/v0/users/auth/verification", h.Verification)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func body(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	return m
}

// ---- Login ----

func TestLogin_MissingEmail(t *testing.T) {
	uc := &fakeAuthUsecase{
		login: func(_ context.Context, email, password string) (string, *domain.User, error) {
			if email != "" {
				t.Errorf("email = %q, want empty", email)
			}
			return "", nil, domain.ErrEmailInvalid
		},
	}
	w := postJSON(t, newAuthEngine(uc), "/api/v0/users/auth/login", `{"password":"1234"}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	b := body(t, w)
	if b["message"] != "Email is required or malformed." {
		t.Errorf("message = %q", b["message"])
	}
	if b["auth"] != false {
		t.Errorf("auth = %v, want false", b["auth"])
	}
}

func TestLogin_MissingPassword(t *testing.T) {
	uc := &fakeAuthUsecase{
		login: func(_ context.Context, _, _ string) (string, *domain.User, error) {
			return "", nil, domain.ErrPasswordRequired
		},
	}
	w := postJSON(t, newAuthEngine(uc), "/api/v0/users/auth/login", `{"email":"fred@gmail.com"}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	if got := body(t, w)["message"]; got != "Password is required." {
		t.Errorf("message = %q", got)
	}
}

func TestLogin_UnknownUser(t *testing.T) {
	uc := &fakeAuthUsecase{
		login: func(_ context.Context, _, _ string) (string, *domain.User, error) {
			return "", nil, domain.ErrUserNotFound
		},
	}
	w := postJSON(t, newAuthEngine(uc), "/api/v0/users/auth/login",
		`{"email":"ghostrider@test.com","password":"1234"}`)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
	// Trailing ".." is contract.
	if got := body(t, w)["message"]; got != "User was not found.." {
		t.Errorf("message = %q", got)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	uc := &fakeAuthUsecase{
		login: func(_ context.Context, _, _ string) (string, *domain.User, error) {
			return "", nil, domain.ErrPasswordMismatch
		},
	}
	w := postJSON(t, newAuthEngine(uc), "/api/v0/users/auth/login",
		`{"email":"fred@gmail.com","password":"wrong password"}`)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
	if got := body(t, w)["message"]; got != "Password was invalid." {
		t.Errorf("message = %q", got)
	}
}

func TestLogin_Success(t *testing.T) {
	uc := &fakeAuthUsecase{
		login: func(_ context.Context, email, password string) (string, *domain.User, error) {
			if email != "fred@gmail.com" || password != "1234" {
				t.Errorf("credentials = %q/%q", email, password)
			}
			return "signed.jwt.token", &domain.User{Email: email}, nil
		},
	}
	w := postJSON(t, newAuthEngine(uc), "/api/v0/users/auth/login",
		`{"email":"fred@gmail.com","password":"1234"}`)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	b := body(t, w)
	if b["auth"] != true {
		t.Errorf("auth = %v, want true", b["auth"])
	}
	if b["token"] != "signed.jwt.token" {
		t.Errorf("token = %v", b["token"])
	}
	user, ok := b["user"].(map[string]any)
	if !ok || user["email"] != "fred@gmail.com" {
		t.Errorf("user = %v", b["user"])
	}
}

func TestLogin_StoreFailure_Generic500(t *testing.T) {
	uc := &fakeAuthUsecase{
		login: func(_ context.Context, _, _ string) (string, *domain.User, error) {
			return "", nil, errors.New("connection refused")
		},
	}
	w := postJSON(t, newAuthEngine(uc), "/api/v0/users/auth/login",
		`{"email":"fred@gmail.com","password":"1234"}`)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
	// Must not collide with the auth guard's fixed 500 body.
	if got := body(t, w)["message"]; got == "Failed to authenticate." {
		t.Error("store failure reused the authentication-failure message")
	}
}

// ---- Register ----

func TestRegister_MissingEmail(t *testing.T) {
	uc := &fakeAuthUsecase{
		register: func(_ context.Context, _, _ string) (string, *domain.User, error) {
			return "", nil, domain.ErrEmailInvalid
		},
	}
	w := postJSON(t, newAuthEngine(uc), "/api/v0/users", `{"password":"my1P455w0rd15Gr347"}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	// Registration wording differs from login wording.
	if got := body(t, w)["message"]; got != "Email is missing or malformed." {
		t.Errorf("message = %q", got)
	}
}

func TestRegister_ExistingUser(t *testing.T) {
	uc := &fakeAuthUsecase{
		register: func(_ context.Context, _, _ string) (string, *domain.User, error) {
			return "", nil, domain.ErrUserAlreadyExists
		},
	}
	w := postJSON(t, newAuthEngine(uc), "/api/v0/users",
		`{"email":"hello@gmail.com","password":"my1P455w0rd15Gr347"}`)

	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", w.Code)
	}
	if got := body(t, w)["message"]; got != "User already exists." {
		t.Errorf("message = %q", got)
	}
}

func TestRegister_Success(t *testing.T) {
	uc := &fakeAuthUsecase{
		register: func(_ context.Context, email, _ string) (string, *domain.User, error) {
			return "signed.jwt.token", &domain.User{Email: email}, nil
		},
	}
	w := postJSON(t, newAuthEngine(uc), "/api/v0/users",
		`{"email":"test@example.com","password":"my1P455w0rd15Gr347"}`)

	if w.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", w.Code)
	}
	b := body(t, w)
	if b["token"] != "signed.jwt.token" {
		t.Errorf("token = %v", b["token"])
	}
	user, ok := b["user"].(map[string]any)
	if !ok || user["email"] != "test@example.com" {
		t.Errorf("user = %v", b["user"])
	}
}

// ---- Verification ----

func TestVerification_RespondsAuthenticated(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v0/users/auth/verification", nil)
	newAuthEngine(&fakeAuthUsecase{}).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
	b := body(t, w)
	if b["message"] != "Authenticated." {
		t.Errorf("message = %q", b["message"])
	}
	if b["auth"] != true {
		t.Errorf("auth = %v, want true", b["auth"])
	}
}
