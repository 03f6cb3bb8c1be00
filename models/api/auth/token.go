package authapimodels

import "attachment-hub-backend/models"

type JWTResponse struct {
	Token string `json:"token"`
	Next  string `json:"next,omitempty"`
}

type MeView struct {
	ID       string              `json:"id"`
	Username string              `json:"username"`
	Email    string              `json:"email"`
	Role     models.UserRole     `json:"role"`
	RoleName string              `json:"role_name"`
	Scope    models.SessionScope `json:"scope"`
	CanPost  *bool               `json:"can_post,omitempty"` // companies only
}
