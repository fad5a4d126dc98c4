package blogService

import (
	"BlogGolang/internal/api/blog"
	contextPkg "BlogGolang/pkg/context"
	"context"
	"errors"

	"github.com/sirupsen/logrus"
)

func (s *blogsService) CreateBlog(ctx context.Context, req blogs.BlogRequest) (blogs.ShowBlog, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(ctx, true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return blogs.ShowBlog{}, err
	}
	defer repo.Rollback()

	blog, err := repo.Blogs.CreateBlog(ctx, req.ToEntity(0))
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create blog")
		return blogs.ShowBlog{}, blogs.ErrCreateBlog
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return blogs.ShowBlog{}, blogs.ErrCreateBlog
	}

	return blogs.NewShowBlog(blog), nil
}

func (s *blogsService) GetBlogByID(ctx context.Context, id int64) (blogs.ShowBlog, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(ctx, false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return blogs.ShowBlog{}, err
	}

	blog, err := repo.Blogs.GetBlogByID(ctx, id)
	if err != nil {
		if errors.Is(err, blogs.ErrBlogNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("Blog not found")
		} else {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
				"error":      err.Error(),
			}).Error("Failed to get blog")
		}
		return blogs.ShowBlog{}, err
	}

	return blogs.NewShowBlog(blog), nil
}

func (s *blogsService) GetAllBlogs(ctx context.Context) ([]blogs.ShowBlog, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(ctx, false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	blogsList, err := repo.Blogs.GetAllBlogs(ctx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get blogs")
		return nil, err
	}

	result := make([]blogs.ShowBlog, 0, len(blogsList))
	for _, blog := range blogsList {
		result = append(result, blogs.NewShowBlog(blog))
	}

	return result, nil
}

func (s *blogsService) UpdateBlog(ctx context.Context, id int64, req blogs.BlogRequest) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(ctx, true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer repo.Rollback()

	err = repo.Blogs.UpdateBlog(ctx, req.ToEntity(id))
	if err != nil {
		if errors.Is(err, blogs.ErrBlogNotFound) {
			return err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to update blog")
		return blogs.ErrUpdateBlog
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return blogs.ErrUpdateBlog
	}

	return nil
}

func (s *blogsService) DeleteBlog(ctx context.Context, id int64) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(ctx, true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer repo.Rollback()

	if err := repo.Blogs.DeleteBlog(ctx, id); err != nil {
		if errors.Is(err, blogs.ErrBlogNotFound) {
			return err
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to delete blog")
		return blogs.ErrDeleteBlog
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return blogs.ErrDeleteBlog
	}

	return nil
}
