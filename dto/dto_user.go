package dto

import (
	"blogbase/internal/models"
)

type SignupReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Bio      string `json:"bio,omitempty"`
}

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupResp struct {
	Message string            `json:"message"`
	Data    models.PublicUser `json:"data"`
}

type LoginResp struct {
	Message string `json:"message"`
}
