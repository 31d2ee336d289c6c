package repos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *UserRepo {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err, "open in-memory db")
	t.Cleanup(func() { _ = db.Close() })
	return NewUserRepo(db)
}

func TestUserRepoCreateAndList(t *testing.T) {
	r := newTestRepo(t)

	ann, err := r.CreateUser("Ann", "ann@x.com")
	require.NoError(t, err)
	assert.Equal(t, int64(1), ann.ID)
	assert.Equal(t, 0, ann.Role)

	bob, err := r.CreateUser("Bob", "bob@x.com")
	require.NoError(t, err)
	assert.Equal(t, int64(2), bob.ID)

	users, err := r.ListUsers()
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Ann", users[0].Name, "listing follows primary-key order")
	assert.Equal(t, "Bob", users[1].Name)
}

func TestUserRepoDuplicateEmail(t *testing.T) {
	r := newTestRepo(t)

	_, err := r.CreateUser("Ann", "ann@x.com")
	require.NoError(t, err)

	_, err = r.CreateUser("Other Ann", "ann@x.com")
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	users, err := r.ListUsers()
	require.NoError(t, err)
	assert.Len(t, users, 1, "rejected insert must not change the table")
}

func TestUserRepoDuplicateCheckIsCaseSensitive(t *testing.T) {
	// The UNIQUE constraint compares exactly; a case variation is a
	// different email as far as this store is concerned.
	r := newTestRepo(t)

	_, err := r.CreateUser("Ann", "ann@x.com")
	require.NoError(t, err)

	_, err = r.CreateUser("Ann", "ANN@x.com")
	assert.NoError(t, err)
}

func TestUserRepoByNameAndEmail(t *testing.T) {
	r := newTestRepo(t)

	_, err := r.CreateUser("Ann", "ann@x.com")
	require.NoError(t, err)

	u, err := r.ByNameAndEmail("Ann", "ann@x.com")
	require.NoError(t, err)
	assert.Equal(t, "ann@x.com", u.Email)

	_, err = r.ByNameAndEmail("Ann", "wrong@x.com")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = r.ByNameAndEmail("ann", "ann@x.com")
	assert.ErrorIs(t, err, ErrNotFound, "name match is case-sensitive")
}
