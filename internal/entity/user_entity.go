package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	UserRoleAdmin   UserRole = "admin"
	UserRoleCompany UserRole = "company"
	UserRoleVendor  UserRole = "vendor"
)

type User struct {
	Id           uuid.UUID
	Email        string
	PasswordHash string
	FullName     string
	Role         UserRole
	CompanyId    *uuid.UUID // nil for platform admins
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
