package dto

import (
	"time"

	"prism-spend-be/internal/entity"

	"github.com/google/uuid"
)

type UpdateRecommendationRequest struct {
	Id     uuid.UUID
	Status string `json:"status" validate:"required,oneof=accepted rejected"`
}

type ShowRecommendationResponse struct {
	Id               uuid.UUID          `json:"id"`
	RunId            uuid.UUID          `json:"run_id"`
	Category         string             `json:"category"`
	KeepProduct      entity.ProductRef  `json:"keep_product"`
	RetireProducts   []entity.ProductRef `json:"retire_products"`
	EstimatedSavings float64            `json:"estimated_savings"`
	Status           string             `json:"status"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        *time.Time         `json:"updated_at"`
}
