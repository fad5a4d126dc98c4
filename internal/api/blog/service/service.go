package blogService

import (
	"BlogGolang/internal/api/blog"
	blogsRepository "BlogGolang/internal/api/blog/repository"
	"context"

	"github.com/sirupsen/logrus"
)

type IBlogsService interface {
	CreateBlog(ctx context.Context, req blogs.BlogRequest) (blogs.ShowBlog, error)
	GetBlogByID(ctx context.Context, id int64) (blogs.ShowBlog, error)
	GetAllBlogs(ctx context.Context) ([]blogs.ShowBlog, error)
	UpdateBlog(ctx context.Context, id int64, req blogs.BlogRequest) error
	DeleteBlog(ctx context.Context, id int64) error
}

type blogsService struct {
	log       *logrus.Logger
	blogsRepo blogsRepository.Repository
}

func NewBlogsService(
	log *logrus.Logger,
	blogsRepo blogsRepository.Repository,
) IBlogsService {
	return &blogsService{
		log:       log,
		blogsRepo: blogsRepo,
	}
}
