package userService

import (
	"BlogGolang/internal/api/user"
	contextPkg "BlogGolang/pkg/context"
	"context"
	"errors"

	"github.com/sirupsen/logrus"
)

// CreateUser hashes the password before anything touches the database.
func (s *userService) CreateUser(ctx context.Context, req users.CreateUserRequest) (users.ShowUser, error) {
	requestID := contextPkg.GetRequestID(ctx)

	hashed, err := s.bcryptUtils.HashPassword(req.PlainPassword())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to hash password")
		return users.ShowUser{}, users.ErrHashPassword
	}

	repo, err := s.userRepo.NewClient(ctx, true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return users.ShowUser{}, err
	}
	defer repo.Rollback()

	user, err := repo.Users.CreateUser(ctx, req.ToEntity(hashed))
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create user")
		return users.ShowUser{}, users.ErrCreateUser
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return users.ShowUser{}, users.ErrCreateUser
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    user.ID,
	}).Info("User created")

	return users.NewShowUser(user), nil
}

func (s *userService) GetUserByID(ctx context.Context, id int64) (users.ShowUser, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.userRepo.NewClient(ctx, false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return users.ShowUser{}, err
	}

	user, err := repo.Users.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, users.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
				"error":      err.Error(),
			}).Error("Failed to get user")
		}
		return users.ShowUser{}, err
	}

	return users.NewShowUser(user), nil
}
