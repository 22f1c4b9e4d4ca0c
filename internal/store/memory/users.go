package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/jsamuelsen11/household-tasks/internal/domain"
	"github.com/jsamuelsen11/household-tasks/internal/domain/user"
)

// CreateUser stores a new user with a fresh ID. Language defaults to
// English. Usernames are unique.
func (s *Store) CreateUser(_ context.Context, u user.User) (user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.userByUsernameLocked(u.Username); taken {
		return user.User{}, fmt.Errorf("%w: username already exists", domain.ErrConflict)
	}

	u = u.Clone()
	if u.ID == "" {
		u.ID = s.newID()
	}
	if u.Language == "" {
		u.Language = user.DefaultLanguage
	}
	s.users[u.ID] = u
	return u.Clone(), nil
}

// GetUser returns the user with the given ID.
func (s *Store) GetUser(_ context.Context, id string) (user.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return user.User{}, false
	}
	return u.Clone(), true
}

// GetUserByUsername returns the user with the given username.
func (s *Store) GetUserByUsername(_ context.Context, username string) (user.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.userByUsernameLocked(username)
	if !ok {
		return user.User{}, false
	}
	return u.Clone(), true
}

// UpdateUserLanguage sets the user's preferred language.
func (s *Store) UpdateUserLanguage(_ context.Context, id string, lang user.Language) (user.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return user.User{}, false
	}
	u.Language = lang
	s.users[id] = u
	return u.Clone(), true
}

// ListMaids returns every maid ordered by name.
func (s *Store) ListMaids(_ context.Context) []user.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]user.User, 0)
	for _, u := range s.users {
		if u.IsMaid() {
			out = append(out, u.Clone())
		}
	}
	slices.SortFunc(out, func(a, b user.User) int {
		if c := cmp.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}

// ListOwnerIDs returns the IDs of every owner in ID order.
func (s *Store) ListOwnerIDs(_ context.Context) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ownerIDsLocked()
}

func (s *Store) ownerIDsLocked() []string {
	ids := make([]string, 0, 1)
	for id, u := range s.users {
		if u.IsOwner() {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}

func (s *Store) userByUsernameLocked(username string) (user.User, bool) {
	for _, u := range s.users {
		if u.Username == username {
			return u, true
		}
	}
	return user.User{}, false
}
