package repos

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"internboat/internal/domain"
)

// UserRepo stores users in the sqlite table created by ensureSchema.
// Email uniqueness is enforced by the UNIQUE constraint (exact match),
// not by a pre-check, so concurrent registrations cannot race past it.
type UserRepo struct{ DB *sqlx.DB }

func NewUserRepo(db *sqlx.DB) *UserRepo { return &UserRepo{DB: db} }

func (r *UserRepo) CreateUser(name, email string) (*domain.User, error) {
	res, err := r.DB.Exec(`INSERT INTO users(name,email,role) VALUES(?,?,?)`,
		name, email, domain.RoleStandard)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &domain.User{ID: id, Name: name, Email: email, Role: domain.RoleStandard}, nil
}

func (r *UserRepo) ByNameAndEmail(name, email string) (*domain.User, error) {
	var u domain.User
	err := r.DB.Get(&u, `SELECT id,name,email,role FROM users WHERE name=? AND email=?`, name, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) ListUsers() ([]domain.User, error) {
	users := []domain.User{}
	if err := r.DB.Select(&users, `SELECT id,name,email,role FROM users ORDER BY id`); err != nil {
		return nil, err
	}
	return users, nil
}

func isUniqueViolation(err error) bool {
	var serr *sqlite.Error
	if !errors.As(err, &serr) {
		return false
	}
	return serr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE ||
		serr.Code() == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
}
