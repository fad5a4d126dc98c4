package userHandler

import (
	userService "BlogGolang/internal/api/user/service"
	"BlogGolang/internal/middleware"
	"BlogGolang/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type UserHandler struct {
	log         *logrus.Logger
	userService userService.IUserService
	validator   *validator.Validate
	middleware  middleware.Middleware
	utils       utils.IUtils
}

func New(
	log *logrus.Logger,
	us userService.IUserService,
	validate *validator.Validate,
	middleware middleware.Middleware,
	utils utils.IUtils,
) *UserHandler {
	return &UserHandler{
		log:         log,
		userService: us,
		validator:   validate,
		middleware:  middleware,
		utils:       utils,
	}
}

// Start registers create and read only. Users cannot be updated or deleted
// over HTTP.
func (h *UserHandler) Start(srv fiber.Router) {
	srv.Post("/user", h.HandleCreateUser)
	srv.Get("/user/:id", h.HandleGetUserByID)
}
