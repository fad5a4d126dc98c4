package userService

import (
	"BlogGolang/internal/api/user"
	userRepository "BlogGolang/internal/api/user/repository"
	"BlogGolang/internal/testutil"
	"BlogGolang/pkg/bcrypt"
	"BlogGolang/pkg/log"
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cryptobcrypt "golang.org/x/crypto/bcrypt"
)

type stubHasher struct {
	err error
}

func (s stubHasher) HashPassword(string) (string, error) {
	return "", s.err
}

func newService(t *testing.T) (IUserService, *sqlx.DB) {
	t.Helper()
	logger := log.NewDiscardLogger()
	db := testutil.NewDB(t)
	return NewUserService(logger, userRepository.New(db, logger), bcrypt.NewWithCost(cryptobcrypt.MinCost)), db
}

func TestCreateUserStoresDigest(t *testing.T) {
	ctx := context.Background()
	svc, db := newService(t)

	created, err := svc.CreateUser(ctx, newRequest("Ada", "ada@example.com", "plaintext"))
	require.NoError(t, err)
	assert.Equal(t, users.ShowUser{ID: 1, Name: "Ada", Email: "ada@example.com"}, created)

	var stored string
	require.NoError(t, db.Get(&stored, `SELECT password FROM users WHERE id = ?`, created.ID))
	assert.NotEqual(t, "plaintext", stored)
	assert.NoError(t, cryptobcrypt.CompareHashAndPassword([]byte(stored), []byte("plaintext")))
}

func TestGetUserByID(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t)

	created, err := svc.CreateUser(ctx, newRequest("Ada", "ada@example.com", "pw"))
	require.NoError(t, err)

	got, err := svc.GetUserByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = svc.GetUserByID(ctx, created.ID+1)
	assert.ErrorIs(t, err, users.ErrUserNotFound)
}

func TestCreateUserHashFailureWritesNothing(t *testing.T) {
	ctx := context.Background()
	logger := log.NewDiscardLogger()
	db := testutil.NewDB(t)
	svc := NewUserService(logger, userRepository.New(db, logger), stubHasher{err: errors.New("boom")})

	_, err := svc.CreateUser(ctx, newRequest("Ada", "ada@example.com", "pw"))
	assert.ErrorIs(t, err, users.ErrHashPassword)

	var count int
	require.NoError(t, db.Get(&count, `SELECT COUNT(*) FROM users`))
	assert.Zero(t, count)
}

func newRequest(name, email, password string) users.CreateUserRequest {
	return users.CreateUserRequest{Name: &name, Email: &email, Password: &password}
}
