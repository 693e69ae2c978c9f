package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dental-clinic-portal/internal/delivery/dto"
	"dental-clinic-portal/internal/usecase"
	"dental-clinic-portal/pkg/validator"
)

// stubAuthUsecase fakes the auth layer with canned data.
type stubAuthUsecase struct {
	users map[string]*dto.UserResponse
}

func newStubAuthUsecase() *stubAuthUsecase {
	return &stubAuthUsecase{users: make(map[string]*dto.UserResponse)}
}

func (s *stubAuthUsecase) Register(_ context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	if _, exists := s.users[req.Username]; exists {
		return nil, usecase.ErrUsernameTaken
	}
	user := &dto.UserResponse{ID: uint(len(s.users) + 1), Username: req.Username, Role: req.Role}
	s.users[req.Username] = user
	return user, nil
}

func (s *stubAuthUsecase) Login(_ context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	if _, exists := s.users[req.Username]; !exists {
		return nil, usecase.ErrInvalidCredentials
	}
	return &dto.TokenResponse{AccessToken: "stub-token", TokenType: "bearer", ExpiresIn: 3600}, nil
}

func (s *stubAuthUsecase) Logout(_ context.Context, _, _ string) error {
	return nil
}

func (s *stubAuthUsecase) GetCurrentUser(_ context.Context, username string) (*dto.UserResponse, error) {
	user, ok := s.users[username]
	if !ok {
		return nil, usecase.ErrUserNotFound
	}
	return user, nil
}

func (s *stubAuthUsecase) GetUser(_ context.Context, id uint) (*dto.UserResponse, error) {
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, usecase.ErrUserNotFound
}

func (s *stubAuthUsecase) UpdateUser(_ context.Context, id uint, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	for name, u := range s.users {
		if u.ID == id {
			delete(s.users, name)
			updated := &dto.UserResponse{ID: id, Username: req.Username, Role: req.Role}
			s.users[req.Username] = updated
			return updated, nil
		}
	}
	return nil, usecase.ErrUserNotFound
}

func (s *stubAuthUsecase) DeleteUser(_ context.Context, id uint) error {
	for name, u := range s.users {
		if u.ID == id {
			delete(s.users, name)
			return nil
		}
	}
	return usecase.ErrUserNotFound
}

func newAuthHandlerFixture() (*AuthHandler, *stubAuthUsecase) {
	uc := newStubAuthUsecase()
	return NewAuthHandler(uc, validator.NewValidator()), uc
}

func TestAuthHandler_Register(t *testing.T) {
	h, _ := newAuthHandlerFixture()

	body := `{"username":"alice","password":"supersecret","role":"patient"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Success bool             `json:"success"`
		Data    dto.UserResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || resp.Data.Username != "alice" {
		t.Fatalf("unexpected response: %s", rec.Body.String())
	}
}

func TestAuthHandler_Register_ValidationFailure(t *testing.T) {
	h, _ := newAuthHandlerFixture()

	// Password below the minimum and an unknown role.
	body := `{"username":"al","password":"short","role":"superuser"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	h, uc := newAuthHandlerFixture()
	uc.users["bob"] = &dto.UserResponse{ID: 1, Username: "bob", Role: "patient"}

	body := `{"username":"bob","password":"supersecret","role":"patient"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAuthHandler_Register_MalformedBody(t *testing.T) {
	h, _ := newAuthHandlerFixture()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestAuthHandler_Login(t *testing.T) {
	h, uc := newAuthHandlerFixture()
	uc.users["carol"] = &dto.UserResponse{ID: 1, Username: "carol", Role: "admin"}

	body := `{"username":"carol","password":"supersecret"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/token", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data dto.TokenResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Data.AccessToken == "" || resp.Data.TokenType != "bearer" {
		t.Fatalf("unexpected token payload: %s", rec.Body.String())
	}
}

func TestAuthHandler_Login_BadCredentials(t *testing.T) {
	h, _ := newAuthHandlerFixture()

	body := `{"username":"ghost","password":"whatever"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/token", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
