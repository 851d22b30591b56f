package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/edutech/exam-backend/internal/config"
	"github.com/edutech/exam-backend/internal/model"
	"github.com/edutech/exam-backend/internal/session"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// memStore is an in-memory session.Store for tests.
type memStore struct {
	sessions map[string]session.Data
	nextID   int
}

func newMemStore() *memStore {
	return &memStore{sessions: make(map[string]session.Data)}
}

func (m *memStore) Create(_ context.Context, data session.Data) (string, error) {
	m.nextID++
	id := fmt.Sprintf("sess-%d", m.nextID)
	m.sessions[id] = data
	return id, nil
}

func (m *memStore) Get(_ context.Context, id string) (*session.Data, error) {
	data, ok := m.sessions[id]
	if !ok {
		return nil, session.ErrNotFound
	}
	return &data, nil
}

func (m *memStore) Delete(_ context.Context, id string) error {
	delete(m.sessions, id)
	return nil
}

func newTestAuthService() (*AuthService, *memStore) {
	store := newMemStore()
	cfg := &config.Config{BcryptCost: bcrypt.MinCost}
	return NewAuthService(cfg, store), store
}

func TestPasswordHashRoundTrip(t *testing.T) {
	svc, _ := newTestAuthService()

	hash, err := svc.HashPassword("secret123")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "secret123" {
		t.Fatal("password stored in plaintext")
	}

	if err := svc.CheckPassword(hash, "secret123"); err != nil {
		t.Errorf("CheckPassword with correct password: %v", err)
	}
	if err := svc.CheckPassword(hash, "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestSessionLifecycle(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	user := &model.User{ID: uuid.New(), Username: "alice", Role: model.RoleStudent}

	sid, err := svc.CreateSession(ctx, user)
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	data, err := svc.GetSession(ctx, sid)
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if data.UserID != user.ID || data.Username != "alice" || data.Role != model.RoleStudent {
		t.Errorf("session data mismatch: %+v", data)
	}

	if err := svc.DestroySession(ctx, sid); err != nil {
		t.Fatalf("DestroySession: %v", err)
	}
	if _, err := svc.GetSession(ctx, sid); !errors.Is(err, session.ErrNotFound) {
		t.Errorf("expected ErrNotFound after destroy, got %v", err)
	}
}

func TestGetSessionUnknownID(t *testing.T) {
	svc, _ := newTestAuthService()

	if _, err := svc.GetSession(context.Background(), "no-such-session"); !errors.Is(err, session.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
