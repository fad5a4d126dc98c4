package blogHandler

import (
	"BlogGolang/internal/api/blog"
	contextPkg "BlogGolang/pkg/context"
	"BlogGolang/pkg/handlerUtil"
	"BlogGolang/pkg/log"
	"BlogGolang/pkg/response"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/net/context"
)

const requestTimeout = 10 * time.Second

func (h *BlogsHandler) CreateBlog(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), requestTimeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing create blog request")

	var req blogs.BlogRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	blog, err := h.blogsService.CreateBlog(c, req)
	if err != nil {
		if handlerUtil.TimedOut(c, err) {
			return errHandler.HandleRequestTimeout(ctx)
		}
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "create_blog")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusCreated, blog)
	}
}

func (h *BlogsHandler) GetBlogByID(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), requestTimeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get blog by ID request")

	id, err := h.utils.ParseID(ctx.Params("id"))
	if err != nil {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("blog id must be an integer"), ctx.Path())
	}

	blog, err := h.blogsService.GetBlogByID(c, id)
	if err != nil {
		if handlerUtil.TimedOut(c, err) {
			return errHandler.HandleRequestTimeout(ctx)
		}
		if errors.Is(err, blogs.ErrBlogNotFound) {
			return errHandler.HandleNotFound(ctx, requestID, blogs.NotAvailable(id))
		}
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_blog")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, blog)
	}
}

func (h *BlogsHandler) GetAllBlogs(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), requestTimeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing get all blogs request")

	result, err := h.blogsService.GetAllBlogs(c)
	if err != nil {
		if handlerUtil.TimedOut(c, err) {
			return errHandler.HandleRequestTimeout(ctx)
		}
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "get_all_blogs")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusOK, result)
	}
}

func (h *BlogsHandler) UpdateBlog(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), requestTimeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing update blog request")

	id, err := h.utils.ParseID(ctx.Params("id"))
	if err != nil {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("blog id must be an integer"), ctx.Path())
	}

	var req blogs.BlogRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.validator.Struct(req); err != nil {
		return errHandler.HandleValidationError(ctx, requestID, err, ctx.Path())
	}

	if err := h.blogsService.UpdateBlog(c, id, req); err != nil {
		if handlerUtil.TimedOut(c, err) {
			return errHandler.HandleRequestTimeout(ctx)
		}
		if errors.Is(err, blogs.ErrBlogNotFound) {
			return errHandler.HandleNotFound(ctx, requestID, blogs.NotAvailable(id))
		}
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "update_blog")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusAccepted, response.Message{
			Data: fmt.Sprintf("Blog with id %d updated", id),
		})
	}
}

func (h *BlogsHandler) DeleteBlog(ctx *fiber.Ctx) error {
	requestID := h.middleware.GetRequestID(ctx)
	c, cancel := context.WithTimeout(contextPkg.FromFiberCtx(ctx), requestTimeout)
	defer cancel()

	errHandler := handlerUtil.New(h.log)

	h.log.WithFields(log.Fields{
		"request_id": requestID,
		"path":       ctx.Path(),
	}).Debug("Processing delete blog request")

	id, err := h.utils.ParseID(ctx.Params("id"))
	if err != nil {
		return errHandler.HandleValidationError(ctx, requestID,
			errors.New("blog id must be an integer"), ctx.Path())
	}

	if err := h.blogsService.DeleteBlog(c, id); err != nil {
		if handlerUtil.TimedOut(c, err) {
			return errHandler.HandleRequestTimeout(ctx)
		}
		if errors.Is(err, blogs.ErrBlogNotFound) {
			return errHandler.HandleNotFound(ctx, requestID, blogs.NotAvailable(id))
		}
		return errHandler.Handle(ctx, requestID, err, ctx.Path(), "delete_blog")
	}

	select {
	case <-c.Done():
		return errHandler.HandleRequestTimeout(ctx)
	default:
		return errHandler.HandleSuccess(ctx, fiber.StatusNoContent, nil)
	}
}

func (h *BlogsHandler) GetUnpublishedBlogs(ctx *fiber.Ctx) error {
	var res blogs.UnpublishedResponse
	res.Data.Blog = []string{"unpublished blogs"}

	return ctx.Status(fiber.StatusOK).JSON(res)
}

func (h *BlogsHandler) GetBlogComments(ctx *fiber.Ctx) error {
	id, err := h.utils.ParseID(ctx.Params("id"))
	if err != nil {
		return handlerUtil.New(h.log).HandleValidationError(ctx, h.middleware.GetRequestID(ctx),
			errors.New("blog id must be an integer"), ctx.Path())
	}

	var res blogs.CommentsResponse
	res.Data.Blog = id
	res.Data.Comments = []string{"comments list"}

	return ctx.Status(fiber.StatusOK).JSON(res)
}
