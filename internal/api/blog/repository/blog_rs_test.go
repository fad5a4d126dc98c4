package blogRepository

import (
	"BlogGolang/internal/api/blog"
	"BlogGolang/internal/entity"
	"BlogGolang/internal/testutil"
	"BlogGolang/pkg/log"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, tx bool) (Repository, Client) {
	t.Helper()

	repo := New(testutil.NewDB(t), log.NewDiscardLogger())
	client, err := repo.NewClient(context.Background(), tx)
	require.NoError(t, err)

	return repo, client
}

func TestCreateAndGetBlog(t *testing.T) {
	ctx := context.Background()
	_, client := newClient(t, false)

	created, err := client.Blogs.CreateBlog(ctx, entity.Blog{Title: "Hello", Body: "World"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	got, err := client.Blogs.GetBlogByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.Blog{ID: 1, Title: "Hello", Body: "World"}, got)
}

func TestGetBlogByIDNotFound(t *testing.T) {
	_, client := newClient(t, false)

	_, err := client.Blogs.GetBlogByID(context.Background(), 99)
	assert.ErrorIs(t, err, blogs.ErrBlogNotFound)
}

func TestGetAllBlogsOrderedByID(t *testing.T) {
	ctx := context.Background()
	_, client := newClient(t, false)

	all, err := client.Blogs.GetAllBlogs(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
	assert.NotNil(t, all)

	for _, title := range []string{"a", "b", "c"} {
		_, err := client.Blogs.CreateBlog(ctx, entity.Blog{Title: title, Body: title + "-body"})
		require.NoError(t, err)
	}

	all, err = client.Blogs.GetAllBlogs(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i, title := range []string{"a", "b", "c"} {
		assert.Equal(t, int64(i+1), all[i].ID)
		assert.Equal(t, title, all[i].Title)
	}
}

func TestUpdateBlog(t *testing.T) {
	ctx := context.Background()
	_, client := newClient(t, false)

	created, err := client.Blogs.CreateBlog(ctx, entity.Blog{Title: "old", Body: "old"})
	require.NoError(t, err)

	require.NoError(t, client.Blogs.UpdateBlog(ctx, entity.Blog{ID: created.ID, Title: "new", Body: "text"}))

	got, err := client.Blogs.GetBlogByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "new", got.Title)
	assert.Equal(t, "text", got.Body)

	err = client.Blogs.UpdateBlog(ctx, entity.Blog{ID: 42, Title: "x", Body: "y"})
	assert.ErrorIs(t, err, blogs.ErrBlogNotFound)
}

func TestDeleteBlog(t *testing.T) {
	ctx := context.Background()
	_, client := newClient(t, false)

	created, err := client.Blogs.CreateBlog(ctx, entity.Blog{Title: "t", Body: "b"})
	require.NoError(t, err)

	require.NoError(t, client.Blogs.DeleteBlog(ctx, created.ID))

	_, err = client.Blogs.GetBlogByID(ctx, created.ID)
	assert.ErrorIs(t, err, blogs.ErrBlogNotFound)

	assert.ErrorIs(t, client.Blogs.DeleteBlog(ctx, created.ID), blogs.ErrBlogNotFound)
}

func TestTransactionalClientRollback(t *testing.T) {
	ctx := context.Background()
	repo, client := newClient(t, true)

	_, err := client.Blogs.CreateBlog(ctx, entity.Blog{Title: "t", Body: "b"})
	require.NoError(t, err)
	require.NoError(t, client.Rollback())

	reader, err := repo.NewClient(ctx, false)
	require.NoError(t, err)
	all, err := reader.Blogs.GetAllBlogs(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestTransactionalClientCommitThenRollback(t *testing.T) {
	ctx := context.Background()
	repo, client := newClient(t, true)

	_, err := client.Blogs.CreateBlog(ctx, entity.Blog{Title: "t", Body: "b"})
	require.NoError(t, err)
	require.NoError(t, client.Commit())
	assert.NoError(t, client.Rollback())

	reader, err := repo.NewClient(ctx, false)
	require.NoError(t, err)
	all, err := reader.Blogs.GetAllBlogs(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
