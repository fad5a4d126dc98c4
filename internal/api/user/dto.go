package users

import "BlogGolang/internal/entity"

// CreateUserRequest only rejects absent or null fields; empty strings are
// accepted.
type CreateUserRequest struct {
	Name     *string `json:"name" validate:"required"`
	Email    *string `json:"email" validate:"required"`
	Password *string `json:"password" validate:"required"`
}

// ToEntity maps the request onto a user row carrying the given digest in
// place of the plaintext password.
func (r CreateUserRequest) ToEntity(digest string) entity.User {
	user := entity.User{Password: digest}
	if r.Name != nil {
		user.Name = *r.Name
	}
	if r.Email != nil {
		user.Email = *r.Email
	}
	return user
}

func (r CreateUserRequest) PlainPassword() string {
	if r.Password == nil {
		return ""
	}
	return *r.Password
}

// ShowUser is the only shape a user is ever serialized in. It has no
// password field.
type ShowUser struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func NewShowUser(user entity.User) ShowUser {
	return ShowUser{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}
