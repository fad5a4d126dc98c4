package handlerUtil

import (
	"BlogGolang/pkg/log"
	"BlogGolang/pkg/response"
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/sirupsen/logrus"
)

const CodeValidationError = "VALIDATION_ERROR"

type ErrorHandler struct {
	logger *logrus.Logger
}

func New(logger *logrus.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
	}
}

// Handle writes the response for err. Errors carrying an HTTP code are
// returned as is, anything else becomes a 500 with a trace id in the logs.
func (h *ErrorHandler) Handle(c *fiber.Ctx, requestID string, err error, path string, operation string) error {
	var respErr *response.Error
	if errors.As(err, &respErr) && respErr.Code < fiber.StatusInternalServerError {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"code":       respErr.Code,
			"path":       path,
			"operation":  operation,
		}).Warn("Operation failed with error response")
		return c.Status(respErr.Code).JSON(response.Detail{Detail: err.Error()})
	}

	log.ErrorWithTraceID(h.logger, log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
		"operation":  operation,
	}, "Unexpected error")

	return c.Status(fiber.StatusInternalServerError).JSON(response.Detail{
		Detail: utils.StatusMessage(fiber.StatusInternalServerError),
	})
}

func (h *ErrorHandler) HandleNotFound(c *fiber.Ctx, requestID string, detail string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"path":       c.Path(),
		"detail":     detail,
	}).Warn("Resource not found")

	return c.Status(fiber.StatusNotFound).JSON(response.Detail{Detail: detail})
}

func (h *ErrorHandler) HandleValidationError(c *fiber.Ctx, requestID string, err error, path string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"error":      err.Error(),
		"path":       path,
	}).Warn("Validation failed")

	return c.Status(fiber.StatusUnprocessableEntity).JSON(response.Detail{
		Detail: "Validation failed: " + err.Error(),
		Code:   CodeValidationError,
	})
}

// TimedOut reports whether a failed call ran past the request deadline held
// by c. Services wrap storage errors, so c is checked as well as err.
func TimedOut(c context.Context, err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(c.Err(), context.DeadlineExceeded)
}

func (h *ErrorHandler) HandleRequestTimeout(c *fiber.Ctx) error {
	return c.Status(fiber.StatusRequestTimeout).JSON(response.Detail{
		Detail: utils.StatusMessage(fiber.StatusRequestTimeout),
	})
}

func (h *ErrorHandler) HandleSuccess(c *fiber.Ctx, statusCode int, data interface{}) error {
	if data == nil {
		return c.SendStatus(statusCode)
	}
	return c.Status(statusCode).JSON(data)
}

// FiberErrorHandler renders errors that escape handlers (unknown routes,
// recovered panics, body limit) in the same JSON shape.
func FiberErrorHandler(logger *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}

		if code >= fiber.StatusInternalServerError {
			log.ErrorWithTraceID(logger, log.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}, "Unhandled server error")
			return c.Status(code).JSON(response.Detail{Detail: utils.StatusMessage(code)})
		}

		return c.Status(code).JSON(response.Detail{Detail: err.Error()})
	}
}
