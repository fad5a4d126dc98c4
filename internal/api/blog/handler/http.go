package blogHandler

import (
	blogsService "BlogGolang/internal/api/blog/service"
	"BlogGolang/internal/middleware"
	"BlogGolang/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type BlogsHandler struct {
	log          *logrus.Logger
	validator    *validator.Validate
	middleware   middleware.Middleware
	blogsService blogsService.IBlogsService
	utils        utils.IUtils
}

func New(
	log *logrus.Logger,
	validate *validator.Validate,
	middleware middleware.Middleware,
	bs blogsService.IBlogsService,
	utils utils.IUtils,
) *BlogsHandler {
	return &BlogsHandler{
		log:          log,
		validator:    validate,
		middleware:   middleware,
		blogsService: bs,
		utils:        utils,
	}
}

func (h *BlogsHandler) Start(srv fiber.Router) {
	srv.Post("/blog", h.CreateBlog)
	srv.Get("/blog", h.GetAllBlogs)

	// Static routes go before /blog/:id so they are not captured by it.
	srv.Get("/blog/unpublished", h.GetUnpublishedBlogs)
	srv.Get("/blog/:id/comments", h.GetBlogComments)

	srv.Get("/blog/:id", h.GetBlogByID)
	srv.Put("/blog/:id", h.UpdateBlog)
	srv.Delete("/blog/:id", h.DeleteBlog)
}
