package session

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/careercrafter/crafter/internal/models"
)

type fakeFetcher struct {
	calls   int
	profile *models.Profile
	err     error
}

func (f *fakeFetcher) FetchProfile(_ context.Context, role, username string) (*models.Profile, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	p := *f.profile
	return &p, nil
}

func tempStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "session.json"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return store
}

func TestCurrentUserRequiresLogin(t *testing.T) {
	store := tempStore(t)
	_, err := store.CurrentUser(context.Background(), &fakeFetcher{})
	if !errors.Is(err, ErrNotLoggedIn) {
		t.Fatalf("expected ErrNotLoggedIn, got %v", err)
	}
}

func TestCurrentUserFetchesOnceWhileValid(t *testing.T) {
	store := tempStore(t)
	if err := store.SignIn(State{Token: "t1", Username: "sarah", Role: models.RoleHR}); err != nil {
		t.Fatalf("sign in: %v", err)
	}

	fetcher := &fakeFetcher{profile: &models.Profile{ID: 7, Name: "Sarah", Username: "sarah"}}
	for i := 0; i < 3; i++ {
		profile, err := store.CurrentUser(context.Background(), fetcher)
		if err != nil {
			t.Fatalf("current user: %v", err)
		}
		if profile.ID != 7 {
			t.Fatalf("unexpected profile: %+v", profile)
		}
	}
	if fetcher.calls != 1 {
		t.Fatalf("expected 1 fetch, got %d", fetcher.calls)
	}
}

func TestCurrentUserRefetchesOnUsernameMismatch(t *testing.T) {
	store := tempStore(t)
	if err := store.SignIn(State{Token: "t1", Username: "sarah", Role: models.RoleHR}); err != nil {
		t.Fatalf("sign in: %v", err)
	}

	fetcher := &fakeFetcher{profile: &models.Profile{ID: 7, Username: "sarah"}}
	if _, err := store.CurrentUser(context.Background(), fetcher); err != nil {
		t.Fatalf("current user: %v", err)
	}

	// New login as a different user invalidates the cached profile.
	if err := store.SignIn(State{Token: "t2", Username: "raj", Role: models.RoleExecutive}); err != nil {
		t.Fatalf("sign in: %v", err)
	}
	fetcher.profile = &models.Profile{ID: 11, Username: "raj"}
	profile, err := store.CurrentUser(context.Background(), fetcher)
	if err != nil {
		t.Fatalf("current user: %v", err)
	}
	if profile.ID != 11 {
		t.Fatalf("expected refetched profile, got %+v", profile)
	}
	if fetcher.calls != 2 {
		t.Fatalf("expected 2 fetches, got %d", fetcher.calls)
	}
}

func TestCurrentUserPinsMissingUsername(t *testing.T) {
	store := tempStore(t)
	if err := store.SignIn(State{Token: "t1", Username: "sarah", Role: models.RoleHR}); err != nil {
		t.Fatalf("sign in: %v", err)
	}

	fetcher := &fakeFetcher{profile: &models.Profile{ID: 7}}
	if _, err := store.CurrentUser(context.Background(), fetcher); err != nil {
		t.Fatalf("current user: %v", err)
	}
	if _, err := store.CurrentUser(context.Background(), fetcher); err != nil {
		t.Fatalf("current user: %v", err)
	}
	if fetcher.calls != 1 {
		t.Fatalf("expected payload without username to stay cached, got %d fetches", fetcher.calls)
	}
}

func TestCurrentUserFetchFailureLeavesCacheEmpty(t *testing.T) {
	store := tempStore(t)
	if err := store.SignIn(State{Token: "t1", Username: "sarah", Role: models.RoleHR}); err != nil {
		t.Fatalf("sign in: %v", err)
	}

	fetcher := &fakeFetcher{err: errors.New("boom")}
	if _, err := store.CurrentUser(context.Background(), fetcher); err == nil {
		t.Fatalf("expected fetch error")
	}

	fetcher.err = nil
	fetcher.profile = &models.Profile{ID: 7, Username: "sarah"}
	if _, err := store.CurrentUser(context.Background(), fetcher); err != nil {
		t.Fatalf("expected retry to fetch fresh profile: %v", err)
	}
	if fetcher.calls != 2 {
		t.Fatalf("expected 2 fetches, got %d", fetcher.calls)
	}
}

func TestSignOutClearsStateAndFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "session.json")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := store.SignIn(State{Token: "t1", Username: "sarah", Role: models.RoleHR}); err != nil {
		t.Fatalf("sign in: %v", err)
	}
	if err := store.SignOut(); err != nil {
		t.Fatalf("sign out: %v", err)
	}
	if !store.State().Empty() {
		t.Fatalf("expected empty state after sign out")
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected session file removed, stat err = %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if !reopened.State().Empty() {
		t.Fatalf("expected reopened store empty")
	}
}

func TestStatePersistsAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	want := State{Token: "abc", Username: "sarah", Role: models.RoleHR}
	if err := store.SignIn(want); err != nil {
		t.Fatalf("sign in: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if got := reopened.State(); got != want {
		t.Fatalf("State() = %+v, want %+v", got, want)
	}
}
