package services

import (
	"errors"

	"internboat/internal/domain"
	"internboat/internal/repos"
)

var ErrBadCreds = errors.New("invalid name or email")

// UserStore is the storage backend for registrations. Two
// implementations exist: the sqlite-backed repo and the in-memory
// store; main picks one from config.
type UserStore interface {
	CreateUser(name, email string) (*domain.User, error)
	ByNameAndEmail(name, email string) (*domain.User, error)
	ListUsers() ([]domain.User, error)
}

type UserService struct {
	Users UserStore
}

// Register persists a new user with the standard role. A duplicate
// email surfaces as repos.ErrDuplicateEmail straight from the store.
func (s *UserService) Register(name, email string) (*domain.User, error) {
	return s.Users.CreateUser(name, email)
}

// Login verifies an exact name+email pair. A miss is reported as
// ErrBadCreds without saying which field was wrong.
func (s *UserService) Login(name, email string) (*domain.User, error) {
	u, err := s.Users.ByNameAndEmail(name, email)
	if errors.Is(err, repos.ErrNotFound) {
		return nil, ErrBadCreds
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserService) List() ([]domain.User, error) {
	return s.Users.ListUsers()
}
