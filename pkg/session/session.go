// Package session holds the current admin identity and bearer token,
// persists them, and clears them automatically when the token expires.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/example/martadmin/pkg/store"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

// Store is safe for concurrent use; gateway handlers and the expiry timer
// callback share it.
type Store struct {
	kv     store.KV
	logger *zap.Logger

	mu    sync.Mutex
	admin json.RawMessage
	token string
	timer *time.Timer

	now func() time.Time
}

func New(kv store.KV, logger *zap.Logger) *Store {
	return &Store{
		kv:     kv,
		logger: logger,
		now:    time.Now,
	}
}

// Login stores the admin object and token in memory and in durable storage,
// then arms the expiry timer from the token's exp claim. A token that is
// malformed or already expired clears the session and fails the login.
func (s *Store) Login(ctx context.Context, admin json.RawMessage, token string) error {
	exp, err := tokenExpiry(token)
	if err != nil {
		s.clear(ctx)
		return fmt.Errorf("rejecting login token: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.kv.Set(ctx, store.KeyAdminData, string(admin)); err != nil {
		return fmt.Errorf("failed to persist admin data: %w", err)
	}
	if err := s.kv.Set(ctx, store.KeyAdminToken, token); err != nil {
		return fmt.Errorf("failed to persist admin token: %w", err)
	}
	s.admin = admin
	s.token = token
	s.armLocked(exp)
	return nil
}

// Restore reads persisted state on startup. Malformed or expired tokens are
// treated as "was never logged in": state is cleared silently, no error.
func (s *Store) Restore(ctx context.Context) error {
	adminData, errAdmin := s.kv.Get(ctx, store.KeyAdminData)
	token, errToken := s.kv.Get(ctx, store.KeyAdminToken)
	if errAdmin != nil || errToken != nil || adminData == "" || token == "" {
		s.clear(ctx)
		return nil
	}

	exp, err := tokenExpiry(token)
	if err != nil {
		s.logger.Info("discarding persisted session", zap.Error(err))
		s.clear(ctx)
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.admin = json.RawMessage(adminData)
	s.token = token
	s.armLocked(exp)
	return nil
}

// Logout clears in-memory and persisted state. The pending expiry timer is
// cancelled.
func (s *Store) Logout(ctx context.Context) {
	s.clear(ctx)
}

// IsLoggedIn is true iff both admin and token are present.
func (s *Store) IsLoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.admin) > 0 && s.token != ""
}

// Token implements api.TokenSource.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Admin returns the opaque admin object, or nil when logged out.
func (s *Store) Admin() json.RawMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.admin
}

// armLocked schedules the one-shot expiry for exp, replacing any earlier
// timer. A token already past its exp clears the session immediately.
func (s *Store) armLocked(exp time.Time) {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	remaining := exp.Sub(s.now())
	if remaining <= 0 {
		s.clearLocked(context.Background())
		return
	}
	s.timer = time.AfterFunc(remaining, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.logger.Info("session token expired, logging out")
		s.clearLocked(context.Background())
	})
}

func (s *Store) clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearLocked(ctx)
}

func (s *Store) clearLocked(ctx context.Context) {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.admin = nil
	s.token = ""
	if err := s.kv.Delete(ctx, store.KeyAdminData, store.KeyAdminToken); err != nil {
		s.logger.Warn("failed to clear persisted session", zap.Error(err))
	}
}

// tokenExpiry decodes the exp claim without verifying the signature; the
// token is opaque to this app beyond its expiry time.
func tokenExpiry(token string) (time.Time, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, fmt.Errorf("malformed token: %w", err)
	}
	expVal, ok := claims["exp"]
	if !ok {
		return time.Time{}, fmt.Errorf("token has no exp claim")
	}
	expFloat, ok := expVal.(float64)
	if !ok {
		return time.Time{}, fmt.Errorf("token exp claim is not numeric")
	}
	return time.Unix(int64(expFloat), 0), nil
}
