package users

import (
	"BlogGolang/pkg/response"
	"fmt"
	"net/http"
)

var (
	ErrUserNotFound = response.NewError(http.StatusNotFound, "user not found")
	ErrCreateUser   = response.NewError(http.StatusInternalServerError, "failed to create user")
	ErrHashPassword = response.NewError(http.StatusInternalServerError, "failed to hash password")
)

func NotAvailable(id int64) string {
	return fmt.Sprintf("User with id %d not available", id)
}
