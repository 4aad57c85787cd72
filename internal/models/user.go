package models

import "time"

type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Bio          *string   `json:"bio"`
	Image        *string   `json:"image"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// UserChanges: частичное обновление: nil означает «не трогать».
type UserChanges struct {
	Email        *string
	Username     *string
	PasswordHash *string
	Bio          *string
	Image        *string
}

func (c *UserChanges) Empty() bool {
	return c.Email == nil && c.Username == nil && c.PasswordHash == nil && c.Bio == nil && c.Image == nil
}

// Identity: пользователь, установленный по токену запроса.
type Identity struct {
	UserID int64
	Token  string
}

// swagger:model RegisterUser
type RegisterUser struct {
	Username string `json:"username" validate:"required,max=64,nocontrol" example:"jake"`
	Email    string `json:"email"    validate:"required,email,max=64"   example:"jake@jake.jake"`
	Password string `json:"password" validate:"required,min=8,max=64"   example:"jakejake"`
}

type RegisterUserRequest struct {
	User RegisterUser `json:"user"`
}

// swagger:model LoginUser
type LoginUser struct {
	Email    string `json:"email"    validate:"required,email" example:"jake@jake.jake"`
	Password string `json:"password" validate:"required"       example:"jakejake"`
}

type LoginUserRequest struct {
	User LoginUser `json:"user"`
}

// swagger:model UpdateUser
type UpdateUser struct {
	Email    *string `json:"email,omitempty"    validate:"omitnil,email,max=64"`
	Username *string `json:"username,omitempty" validate:"omitnil,min=1,max=64,nocontrol"`
	Password *string `json:"password,omitempty" validate:"omitnil,min=8,max=64"`
	Bio      *string `json:"bio,omitempty"`
	Image    *string `json:"image,omitempty"`
}

type UpdateUserRequest struct {
	User UpdateUser `json:"user"`
}

type UserView struct {
	Email    string  `json:"email"`
	Token    string  `json:"token"`
	Username string  `json:"username"`
	Bio      *string `json:"bio"`
	Image    *string `json:"image"`
}

type UserResponse struct {
	User UserView `json:"user"`
}

func NewUserView(u *User, token string) UserView {
	return UserView{
		Email:    u.Email,
		Token:    token,
		Username: u.Username,
		Bio:      u.Bio,
		Image:    u.Image,
	}
}
