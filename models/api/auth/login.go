package authapimodels

import (
	apimodels "attachment-hub-backend/models/api"
)

type LoginRequest struct {
	Login    string `json:"login" validate:"required"` // username or email
	Password string `json:"password" validate:"required"`
}

func (r LoginRequest) Validate() error {
	return apimodels.ValidateStruct(r)
}

type StudentRegister struct {
	Username        string `json:"username" validate:"required,max=150"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	PasswordConfirm string `json:"password_confirm" validate:"required,eqfield=Password"`
	Next            string `json:"next"` // relative path to return to after signup
}

func (r StudentRegister) Validate() error {
	return apimodels.ValidateStruct(r)
}
