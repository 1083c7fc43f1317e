package dto

import "github.com/google/uuid"

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string     `json:"token"`
	UserId    uuid.UUID  `json:"user_id"`
	CompanyId *uuid.UUID `json:"company_id,omitempty"`
	Role      string     `json:"role"`
	FullName  string     `json:"full_name"`
}
