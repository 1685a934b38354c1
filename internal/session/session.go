package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/careercrafter/crafter/internal/models"
)

// ErrNotLoggedIn is returned when a command needs a session and none exists.
var ErrNotLoggedIn = errors.New("not logged in (run: crafter login)")

// State is the persisted session record: token, username, and role, written
// at login and cleared at logout. Nothing else is durable client-side.
type State struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func (s State) Empty() bool {
	return strings.TrimSpace(s.Token) == ""
}

// ProfileFetcher resolves the role-specific profile endpoint.
type ProfileFetcher interface {
	FetchProfile(ctx context.Context, role, username string) (*models.Profile, error)
}

// Store holds the persisted state plus an in-memory cached profile. The only
// writer of the cached profile is CurrentUser; everything else reads.
type Store struct {
	mu      sync.Mutex
	path    string
	state   State
	profile *models.Profile
}

// Open reads the session file at path. A missing file is an empty session.
func Open(path string) (*Store, error) {
	store := &Store{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return store, nil
		}
		return nil, err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return store, nil
	}
	if err := json.Unmarshal(data, &store.state); err != nil {
		return nil, fmt.Errorf("parse session file %q: %w", path, err)
	}
	return store, nil
}

func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Store) Token() string {
	return s.State().Token
}

// SignIn replaces the persisted state and discards any cached profile.
func (s *Store) SignIn(state State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, append(data, '\n'), 0o600); err != nil {
		return err
	}

	s.state = state
	s.profile = nil
	return nil
}

// SignOut removes the session file and clears in-memory state.
func (s *Store) SignOut() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	s.state = State{}
	s.profile = nil
	return nil
}

// CurrentUser returns the cached profile, refetching it when none is cached
// or the cached profile's username no longer matches the stored username.
// Exactly one fetch is issued per invalidation; a failed fetch leaves the
// cache empty.
func (s *Store) CurrentUser(ctx context.Context, fetcher ProfileFetcher) (*models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Empty() {
		return nil, ErrNotLoggedIn
	}
	if s.profile != nil && s.profile.Username == s.state.Username {
		return s.profile, nil
	}

	profile, err := fetcher.FetchProfile(ctx, s.state.Role, s.state.Username)
	if err != nil {
		return nil, err
	}
	if profile.Username == "" {
		// Some profile payloads omit the username; pin it so the
		// mismatch check stays meaningful.
		profile.Username = s.state.Username
	}
	s.profile = profile
	return profile, nil
}
