package userRepository

import (
	"BlogGolang/internal/api/user"
	"BlogGolang/internal/entity"
	"BlogGolang/internal/testutil"
	"BlogGolang/pkg/log"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndGetUser(t *testing.T) {
	ctx := context.Background()
	repo := New(testutil.NewDB(t), log.NewDiscardLogger())

	client, err := repo.NewClient(ctx, true)
	require.NoError(t, err)
	defer client.Rollback()

	created, err := client.Users.CreateUser(ctx, entity.User{Name: "Ada", Email: "ada@example.com", Password: "digest"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	require.NoError(t, client.Commit())

	reader, err := repo.NewClient(ctx, false)
	require.NoError(t, err)

	got, err := reader.Users.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.User{ID: 1, Name: "Ada", Email: "ada@example.com", Password: "digest"}, got)
}

func TestGetUserNotFound(t *testing.T) {
	repo := New(testutil.NewDB(t), log.NewDiscardLogger())

	client, err := repo.NewClient(context.Background(), false)
	require.NoError(t, err)

	_, err = client.Users.GetByID(context.Background(), 7)
	assert.ErrorIs(t, err, users.ErrUserNotFound)
}
