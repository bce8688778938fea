package auth

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/uxchapter/skillboard/config"
	"github.com/uxchapter/skillboard/internal/user"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// stubAuthRepo lets tests script the store's behavior per method.
type stubAuthRepo struct {
	getUserByEmail func(email string) (*user.User, error)
	getUserByID    func(id uint) (*user.User, error)
	createUser     func(u *user.User) error
}

func (s *stubAuthRepo) CreateUser(u *user.User) error {
	if s.createUser != nil {
		return s.createUser(u)
	}
	return nil
}

func (s *stubAuthRepo) GetUserByEmail(email string) (*user.User, error) {
	return s.getUserByEmail(email)
}

func (s *stubAuthRepo) GetUserByID(id uint) (*user.User, error) {
	if s.getUserByID != nil {
		return s.getUserByID(id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubAuthRepo) SaveRefreshToken(token *user.RefreshToken) error { return nil }

func (s *stubAuthRepo) GetRefreshToken(t string) (*user.RefreshToken, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *stubAuthRepo) InvalidateRefreshToken(t string) error { return nil }

func (s *stubAuthRepo) InvalidateAllRefreshTokensForUser(userID uint) error { return nil }

func registerWith(t *testing.T, repo AuthRepository) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	controller := NewAuthController(repo, &config.Config{})
	router := gin.New()
	router.POST("/api/auth/register", controller.Register)

	body, err := json.Marshal(gin.H{
		"first_name": "Ana",
		"last_name":  "Pérez",
		"email":      "ana@example.com",
		"password":   "password123",
	})
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRegisterDuplicateEmail(t *testing.T) {
	t.Parallel()

	repo := &stubAuthRepo{
		getUserByEmail: func(email string) (*user.User, error) {
			return &user.User{Email: email}, nil
		},
	}
	w := registerWith(t, repo)
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409; body = %s", w.Code, w.Body.String())
	}
}

func TestRegisterStoreErrorIsNotAConflict(t *testing.T) {
	t.Parallel()

	repo := &stubAuthRepo{
		getUserByEmail: func(email string) (*user.User, error) {
			return nil, errors.New("connection refused")
		},
	}
	w := registerWith(t, repo)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500; body = %s", w.Code, w.Body.String())
	}
}

func TestRegisterCreatesUser(t *testing.T) {
	t.Parallel()

	var created *user.User
	repo := &stubAuthRepo{
		getUserByEmail: func(email string) (*user.User, error) {
			return nil, gorm.ErrRecordNotFound
		},
		createUser: func(u *user.User) error {
			created = u
			return nil
		},
	}
	w := registerWith(t, repo)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body = %s", w.Code, w.Body.String())
	}
	if created == nil {
		t.Fatal("user was not created")
	}
	if created.Role != user.RoleDesigner {
		t.Fatalf("default role = %q, want %q", created.Role, user.RoleDesigner)
	}
	if created.Password == "password123" {
		t.Fatal("password stored in plaintext")
	}
}
