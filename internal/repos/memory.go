package repos

import (
	"strings"
	"sync"

	"internboat/internal/domain"
)

// MemoryUserStore keeps users in a process-local slice, preserving the
// first backend's behavior: insertion order, lost on restart, and a
// case-insensitive duplicate-email check. The check and the append run
// under one lock so concurrent registrations cannot race past it.
type MemoryUserStore struct {
	mu     sync.Mutex
	users  []domain.User
	nextID int64
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{nextID: 1}
}

func (s *MemoryUserStore) CreateUser(name, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return nil, ErrDuplicateEmail
		}
	}

	u := domain.User{ID: s.nextID, Name: name, Email: email, Role: domain.RoleStandard}
	s.nextID++
	s.users = append(s.users, u)
	return &u, nil
}

// ByNameAndEmail matches both fields exactly, unlike the registration
// duplicate check. The asymmetry is inherited behavior.
func (s *MemoryUserStore) ByNameAndEmail(name, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Name == name && u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryUserStore) ListUsers() ([]domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.User, len(s.users))
	copy(out, s.users)
	return out, nil
}
