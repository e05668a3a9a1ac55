package dto

import "github.com/google/uuid"

type RegisterRequest struct {
	Username string `form:"username" validate:"required,min=3,max=80"`
	Password string `form:"password" validate:"required,min=6,max=200"`
}

type LoginRequest struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

type LoginResponse struct {
	UserId   uuid.UUID
	Username string
	Token    string
}
