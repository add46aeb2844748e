// Package session holds the authenticated identity across restarts. The
// store is the single writer of the session record; everything else reads
// it through Current or the TokenSource hook on the API client.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/qazimatch/qazimatch/pkg/client"
)

// Session is the authenticated identity plus its credential.
type Session struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	Name        string `json:"name,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	CreatedAt   string `json:"createdAt,omitempty"`
	Token       string `json:"token"`
}

// valid rejects records that do not have the full required shape; anything
// else found in storage is treated as no session.
func (s *Session) valid() bool {
	if s == nil || s.ID == "" || s.Email == "" || s.Token == "" {
		return false
	}
	return s.Role == client.RoleEmployee || s.Role == client.RoleEmployer
}

// HomePath is where a fresh login lands: employers on their postings,
// employees on the board.
func (s *Session) HomePath() string {
	if s.Role == client.RoleEmployer {
		return "/jobs/my"
	}
	return "/jobs"
}

// Expired reports whether the session token's exp claim has passed. Tokens
// without a readable exp claim are treated as live; the server is the
// authority either way.
func (s *Session) Expired() bool {
	exp, ok := tokenExpiry(s.Token)
	if !ok {
		return false
	}
	return time.Now().After(exp)
}

// tokenExpiry pulls exp out of a JWT without verifying the signature.
// Expiry is a client-side convenience; the server verifies for real.
func tokenExpiry(token string) (time.Time, bool) {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil || claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

// ErrNoSession is returned by operations that need a logged-in user.
var ErrNoSession = errors.New("no logged in user")

// Store persists the session in a JSON file and keeps an in-memory copy.
type Store struct {
	mu   sync.Mutex
	path string
	api  *client.Client
	cur  *Session
}

// NewStore reads the session file once at startup. A corrupt or
// non-conforming value is discarded and the file cleared.
func NewStore(path string, api *client.Client) *Store {
	s := &Store{path: path, api: api}
	s.load()
	api.SetTokenSource(s)
	return s
}

func (s *Store) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil || !sess.valid() {
		os.Remove(s.path)
		return
	}
	s.cur = &sess
}

// Current returns the session, or nil when logged out.
func (s *Store) Current() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cur == nil {
		return nil
	}
	copied := *s.cur
	return &copied
}

// Token implements client.TokenSource.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cur == nil {
		return ""
	}
	return s.cur.Token
}

// Login authenticates, persists the session, and returns it. The caller
// routes by s.HomePath().
func (s *Store) Login(ctx context.Context, email, password string) (*Session, error) {
	resp, err := s.api.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	sess := &Session{
		ID:          resp.User.ID,
		Email:       resp.User.Email,
		Role:        resp.User.Role,
		Name:        resp.User.Name,
		PhoneNumber: resp.User.PhoneNumber,
		Token:       resp.Token,
	}
	if !resp.User.CreatedAt.IsZero() {
		sess.CreatedAt = resp.User.CreatedAt.Format(time.RFC3339)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.persist(sess); err != nil {
		return nil, err
	}
	s.cur = sess
	copied := *sess
	return &copied, nil
}

// Logout tells the server and clears local state. The remote call failing
// never blocks the local logout.
func (s *Store) Logout(ctx context.Context) {
	_ = s.api.Logout(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cur = nil
	os.Remove(s.path)
}

// Refresh re-reads the profile and merges it into the session, preserving
// the current token.
func (s *Store) Refresh(ctx context.Context) (*Session, error) {
	s.mu.Lock()
	if s.cur == nil {
		s.mu.Unlock()
		return nil, ErrNoSession
	}
	token := s.cur.Token
	s.mu.Unlock()

	user, err := s.api.Profile(ctx)
	if err != nil {
		return nil, err
	}

	sess := &Session{
		ID:          user.ID,
		Email:       user.Email,
		Role:        user.Role,
		Name:        user.Name,
		PhoneNumber: user.PhoneNumber,
		Token:       token,
	}
	if !user.CreatedAt.IsZero() {
		sess.CreatedAt = user.CreatedAt.Format(time.RFC3339)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.persist(sess); err != nil {
		return nil, err
	}
	s.cur = sess
	copied := *sess
	return &copied, nil
}

func (s *Store) persist(sess *Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create session dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}
