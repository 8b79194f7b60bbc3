package workers

import (
	"context"
	"sync"
	"time"

	"github.com/dreamclick/dreamclick/internal/logger"
	"github.com/dreamclick/dreamclick/internal/service"
	"github.com/dreamclick/dreamclick/internal/utils"
)

const defaultCheckInterval = 30 * time.Second

// SessionWatcher periodically inspects the current session's token expiry
// claim and hard-logs-out once it passes. It is the client's substitute for
// a server push: without it an idle client would only discover the expiry on
// its next request.
//
// The check reads the expiry without verifying the signature; a token the
// watcher still considers alive can be rejected by the server at any time,
// which the services handle as a hard logout of their own.
type SessionWatcher struct {
	authService service.ClientAuthService
	interval    time.Duration

	// onExpired runs after the session has been cleared, so the UI can
	// navigate to the login screen.
	onExpired func()

	logger *logger.Logger

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// NewSessionWatcher creates a watcher ticking every interval. A
// non-positive interval falls back to 30 seconds. onExpired may be nil.
func NewSessionWatcher(authService service.ClientAuthService, interval time.Duration, onExpired func(), logger *logger.Logger) *SessionWatcher {
	if interval <= 0 {
		interval = defaultCheckInterval
	}

	return &SessionWatcher{
		authService: authService,
		interval:    interval,
		onExpired:   onExpired,
		logger:      logger,
		stop:        make(chan struct{}),
		done:        make(chan struct{}),
	}
}

// Run implements [Worker]. It spawns the watch goroutine and returns.
func (w *SessionWatcher) Run() {
	go w.watch()
}

// Stop signals the watch goroutine to exit and blocks until it has
// terminated. Safe to call more than once.
func (w *SessionWatcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stop)
	})
	<-w.done
}

func (w *SessionWatcher) watch() {
	defer close(w.done)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Debug().Dur("interval", w.interval).Msg("session watcher started")

	for {
		select {
		case <-w.stop:
			w.logger.Debug().Msg("session watcher stopped")
			return
		case <-ticker.C:
			w.check()
		}
	}
}

func (w *SessionWatcher) check() {
	session := w.authService.Session()
	if !session.HasToken() {
		return
	}

	expiresAt, err := utils.DecodeTokenExpiry(session.Token)
	if err == nil && expiresAt.After(time.Now()) {
		return
	}

	w.logger.Info().Time("expired_at", expiresAt).Msg("session token expired, logging out")

	if err = w.authService.Logout(context.Background()); err != nil {
		w.logger.Err(err).Msg("session watcher logout failed")
	}

	if w.onExpired != nil {
		w.onExpired()
	}
}
