// SPDX-License-Identifier: MIT
// Copyright 2026 DreamClick Authors

package workers

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/dreamclick/dreamclick/internal/logger"
	"github.com/dreamclick/dreamclick/internal/utils"
	"github.com/dreamclick/dreamclick/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount int
}

func (m *mockWorker) Run() {
	m.runCount++
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := NewWorkers(w1, w2, w3)
	ws.Run()

	for i, w := range []*mockWorker{w1, w2, w3} {
		assert.Equal(t, 1, w.runCount, "worker[%d]", i)
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	// Should not panic on empty workers list
	NewWorkers().Run()
}

// ─────────────────────────────────────────────
// SessionWatcher
// ─────────────────────────────────────────────

// stubAuthService implements service.ClientAuthService for watcher tests.
// Only Session and Logout matter here.
type stubAuthService struct {
	mu      sync.Mutex
	session models.Session
	logouts int
}

func (s *stubAuthService) Session() models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

func (s *stubAuthService) Logout(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = models.Session{}
	s.logouts++
	return nil
}

func (s *stubAuthService) logoutCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.logouts
}

func (s *stubAuthService) Signup(context.Context, models.SignupRequest) (models.Session, error) {
	return models.Session{}, nil
}

func (s *stubAuthService) Login(context.Context, models.LoginRequest) (models.Session, error) {
	return models.Session{}, nil
}

func (s *stubAuthService) RestoreSession(context.Context) (models.Session, error) {
	return s.Session(), nil
}

func (s *stubAuthService) RefreshProfile(context.Context) (models.User, error) {
	return models.User{}, nil
}

func (s *stubAuthService) HandleAuthError(context.Context, error) bool {
	return false
}

func expiringToken(t *testing.T, ttl time.Duration) string {
	t.Helper()
	token, err := utils.GenerateJWTToken("dreamclick", 1, ttl, "watcher-test-key")
	require.NoError(t, err)
	return token.SignedString
}

func TestSessionWatcher_LogsOutExpiredSession(t *testing.T) {
	auth := &stubAuthService{session: models.Session{Token: expiringToken(t, -time.Minute)}}

	expired := make(chan struct{}, 1)
	watcher := NewSessionWatcher(auth, 10*time.Millisecond, func() {
		expired <- struct{}{}
	}, logger.Nop())

	watcher.Run()
	defer watcher.Stop()

	select {
	case <-expired:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher never reported the expired session")
	}

	assert.Equal(t, 1, auth.logoutCount())
	assert.False(t, auth.Session().HasToken())
}

func TestSessionWatcher_LeavesLiveSessionAlone(t *testing.T) {
	auth := &stubAuthService{session: models.Session{Token: expiringToken(t, time.Hour)}}

	watcher := NewSessionWatcher(auth, 10*time.Millisecond, func() {
		t.Error("onExpired fired for a live session")
	}, logger.Nop())

	watcher.Run()
	time.Sleep(100 * time.Millisecond)
	watcher.Stop()

	assert.Zero(t, auth.logoutCount())
	assert.True(t, auth.Session().HasToken())
}

func TestSessionWatcher_IgnoresSignedOutState(t *testing.T) {
	auth := &stubAuthService{}

	watcher := NewSessionWatcher(auth, 10*time.Millisecond, nil, logger.Nop())
	watcher.Run()
	time.Sleep(50 * time.Millisecond)
	watcher.Stop()

	assert.Zero(t, auth.logoutCount())
}

func TestSessionWatcher_StopIsIdempotent(t *testing.T) {
	watcher := NewSessionWatcher(&stubAuthService{}, time.Minute, nil, logger.Nop())
	watcher.Run()

	watcher.Stop()
	watcher.Stop()
}
