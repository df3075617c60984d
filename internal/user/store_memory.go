package user

import (
	"context"
	"strings"
	"sync"

	id "userhub/pkg/domain"
	"userhub/pkg/platform/sentinel"
)

// InMemoryStore keeps the directory testable without a database. It
// intentionally favors clarity over performance.
type InMemoryStore struct {
	mu    sync.RWMutex
	users map[id.UserID]*User
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{users: make(map[id.UserID]*User)}
}

// Put inserts or replaces a directory entry. Test seeding helper.
func (s *InMemoryStore) Put(u *User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *u
	s.users[u.ID] = &copied
}

func (s *InMemoryStore) FindByID(_ context.Context, userID id.UserID) (*User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if u, ok := s.users[userID]; ok && !u.Deleted {
		copied := *u
		return &copied, nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryStore) SearchByEmail(_ context.Context, email string) ([]*User, error) {
	return s.search(func(u *User) bool {
		return strings.Contains(strings.ToLower(u.Email), strings.ToLower(email))
	}), nil
}

func (s *InMemoryStore) SearchByName(_ context.Context, name string) ([]*User, error) {
	return s.search(func(u *User) bool {
		full := strings.ToLower(u.FirstName + " " + u.MiddleName + " " + u.LastName)
		return strings.Contains(full, strings.ToLower(name))
	}), nil
}

func (s *InMemoryStore) search(match func(*User) bool) []*User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*User
	for _, u := range s.users {
		if u.Deleted || !match(u) {
			continue
		}
		copied := *u
		out = append(out, &copied)
	}
	return out
}
