package userService

import (
	"BlogGolang/internal/api/user"
	userRepository "BlogGolang/internal/api/user/repository"
	"BlogGolang/pkg/bcrypt"
	"context"

	"github.com/sirupsen/logrus"
)

type IUserService interface {
	CreateUser(ctx context.Context, req users.CreateUserRequest) (users.ShowUser, error)
	GetUserByID(ctx context.Context, id int64) (users.ShowUser, error)
}

type userService struct {
	log         *logrus.Logger
	userRepo    userRepository.Repository
	bcryptUtils bcrypt.IBcrypt
}

func NewUserService(
	log *logrus.Logger,
	userRepo userRepository.Repository,
	bcryptUtils bcrypt.IBcrypt,
) IUserService {
	return &userService{
		log:         log,
		userRepo:    userRepo,
		bcryptUtils: bcryptUtils,
	}
}
