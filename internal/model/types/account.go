package types

import "eag.dev/backend/internal/model"

type SignUpRequest struct {
	Email    string `json:"email" validate:"required,email,max=254" required:"true"`
	Password string `json:"password" validate:"required,min=8,max=72" required:"true"`
}

type SignInRequest struct {
	Email    string `json:"email" validate:"required,email,max=254" required:"true"`
	Password string `json:"password" validate:"required,max=72" required:"true"`
}

type SessionResponse struct {
	Token    string          `json:"token,omitempty"`
	Identity *model.Identity `json:"identity"`
}
