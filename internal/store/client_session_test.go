package store

import (
	"context"
	"errors"
	"testing"

	"github.com/dreamclick/dreamclick/models"
)

func newMemorySessionStore(t *testing.T) SessionStore {
	t.Helper()

	s, err := NewSessionStore(":memory:")
	if err != nil {
		t.Fatalf("failed to open in-memory session store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	return s
}

func TestSessionStore_SaveAndLoad(t *testing.T) {
	s := newMemorySessionStore(t)
	ctx := context.Background()

	profile := models.User{
		UserID: 7,
		Email:  "john@example.com",
		Name:   "John",
		Role:   models.RoleContentCreator,
	}

	if err := s.SaveToken(ctx, "signed.jwt.token"); err != nil {
		t.Fatalf("save token: %v", err)
	}
	if err := s.SaveProfile(ctx, profile); err != nil {
		t.Fatalf("save profile: %v", err)
	}

	session, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if session.Token != "signed.jwt.token" {
		t.Errorf("expected stored token, got %q", session.Token)
	}
	if session.Profile == nil {
		t.Fatal("expected profile to be restored")
	}
	if session.Profile.Email != profile.Email || session.Profile.Role != profile.Role {
		t.Errorf("profile round trip mismatch: %+v", session.Profile)
	}
	if session.SavedAt.IsZero() {
		t.Error("expected SavedAt to be set")
	}
}

func TestSessionStore_LoadEmpty(t *testing.T) {
	s := newMemorySessionStore(t)

	_, err := s.Load(context.Background())
	if !errors.Is(err, ErrNoLocalSession) {
		t.Fatalf("expected ErrNoLocalSession, got %v", err)
	}
}

func TestSessionStore_TokenWithoutProfile(t *testing.T) {
	s := newMemorySessionStore(t)
	ctx := context.Background()

	if err := s.SaveToken(ctx, "lonely.token"); err != nil {
		t.Fatalf("save token: %v", err)
	}

	session, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("expected degraded session, got error: %v", err)
	}

	if session.Token != "lonely.token" {
		t.Errorf("expected stored token, got %q", session.Token)
	}
	if session.Profile != nil {
		t.Errorf("expected nil profile, got %+v", session.Profile)
	}
	if session.Role() != "" {
		t.Errorf("expected role checks to fail closed, got %q", session.Role())
	}
}

func TestSessionStore_ProfileWithoutToken(t *testing.T) {
	s := newMemorySessionStore(t)
	ctx := context.Background()

	if err := s.SaveProfile(ctx, models.User{UserID: 1, Email: "orphan@example.com"}); err != nil {
		t.Fatalf("save profile: %v", err)
	}

	// Without a token there is no session, whatever else is stored.
	_, err := s.Load(ctx)
	if !errors.Is(err, ErrNoLocalSession) {
		t.Fatalf("expected ErrNoLocalSession, got %v", err)
	}
}

func TestSessionStore_OverwriteToken(t *testing.T) {
	s := newMemorySessionStore(t)
	ctx := context.Background()

	if err := s.SaveToken(ctx, "first"); err != nil {
		t.Fatalf("save token: %v", err)
	}
	if err := s.SaveToken(ctx, "second"); err != nil {
		t.Fatalf("overwrite token: %v", err)
	}

	session, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if session.Token != "second" {
		t.Errorf("expected the latest token, got %q", session.Token)
	}
}

func TestSessionStore_Clear(t *testing.T) {
	s := newMemorySessionStore(t)
	ctx := context.Background()

	if err := s.SaveToken(ctx, "token"); err != nil {
		t.Fatalf("save token: %v", err)
	}
	if err := s.SaveProfile(ctx, models.User{UserID: 1}); err != nil {
		t.Fatalf("save profile: %v", err)
	}

	if err := s.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}

	_, err := s.Load(ctx)
	if !errors.Is(err, ErrNoLocalSession) {
		t.Fatalf("expected ErrNoLocalSession after clear, got %v", err)
	}

	// Clearing an already-empty store is a no-op.
	if err = s.Clear(ctx); err != nil {
		t.Fatalf("second clear: %v", err)
	}
}
