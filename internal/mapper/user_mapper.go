package mapper

import (
	"prism-spend-be/internal/entity"
	"prism-spend-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(mdl *model.User) *entity.User {
	if mdl == nil {
		return nil
	}
	return &entity.User{
		Id:           mdl.Id,
		Email:        mdl.Email,
		PasswordHash: mdl.PasswordHash,
		FullName:     mdl.FullName,
		Role:         entity.UserRole(mdl.Role),
		CompanyId:    mdl.CompanyId,
		CreatedAt:    mdl.CreatedAt,
		UpdatedAt:    mdl.UpdatedAt,
	}
}

func (m *UserMapper) ToModel(e *entity.User) *model.User {
	if e == nil {
		return nil
	}
	return &model.User{
		Id:           e.Id,
		Email:        e.Email,
		PasswordHash: e.PasswordHash,
		FullName:     e.FullName,
		Role:         string(e.Role),
		CompanyId:    e.CompanyId,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}
