package blogService

import (
	"BlogGolang/internal/api/blog"
	blogsRepository "BlogGolang/internal/api/blog/repository"
	"BlogGolang/internal/testutil"
	"BlogGolang/pkg/log"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingRepo struct {
	err error
}

func (f failingRepo) NewClient(context.Context, bool) (blogsRepository.Client, error) {
	return blogsRepository.Client{}, f.err
}

func newService(t *testing.T) IBlogsService {
	t.Helper()
	logger := log.NewDiscardLogger()
	return NewBlogsService(logger, blogsRepository.New(testutil.NewDB(t), logger))
}

func TestBlogLifecycle(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	created, err := svc.CreateBlog(ctx, newRequest("Hello", "World"))
	require.NoError(t, err)
	assert.Equal(t, blogs.ShowBlog{ID: 1, Title: "Hello", Body: "World"}, created)

	got, err := svc.GetBlogByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	require.NoError(t, svc.UpdateBlog(ctx, created.ID, newRequest("Hi", "There")))
	got, err = svc.GetBlogByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, blogs.ShowBlog{ID: 1, Title: "Hi", Body: "There"}, got)

	all, err := svc.GetAllBlogs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []blogs.ShowBlog{got}, all)

	require.NoError(t, svc.DeleteBlog(ctx, created.ID))
	_, err = svc.GetBlogByID(ctx, created.ID)
	assert.ErrorIs(t, err, blogs.ErrBlogNotFound)
}

func TestMissingBlogLeavesStorageUnchanged(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	existing, err := svc.CreateBlog(ctx, newRequest("keep", "me"))
	require.NoError(t, err)

	assert.ErrorIs(t, svc.UpdateBlog(ctx, 404, newRequest("x", "y")), blogs.ErrBlogNotFound)
	assert.ErrorIs(t, svc.DeleteBlog(ctx, 404), blogs.ErrBlogNotFound)
	_, err = svc.GetBlogByID(ctx, 404)
	assert.ErrorIs(t, err, blogs.ErrBlogNotFound)

	all, err := svc.GetAllBlogs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []blogs.ShowBlog{existing}, all)
}

func TestRepositoryUnavailable(t *testing.T) {
	ctx := context.Background()
	dbDown := errors.New("connection refused")
	svc := NewBlogsService(log.NewDiscardLogger(), failingRepo{err: dbDown})

	_, err := svc.CreateBlog(ctx, newRequest("t", "b"))
	assert.ErrorIs(t, err, dbDown)

	_, err = svc.GetBlogByID(ctx, 1)
	assert.ErrorIs(t, err, dbDown)

	_, err = svc.GetAllBlogs(ctx)
	assert.ErrorIs(t, err, dbDown)

	assert.ErrorIs(t, svc.UpdateBlog(ctx, 1, newRequest("t", "b")), dbDown)
	assert.ErrorIs(t, svc.DeleteBlog(ctx, 1), dbDown)
}

func newRequest(title, body string) blogs.BlogRequest {
	return blogs.BlogRequest{Title: &title, Body: &body}
}
