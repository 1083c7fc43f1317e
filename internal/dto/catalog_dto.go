package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateCatalogRequest struct {
	Name        string `json:"name" validate:"required"`
	VendorName  string `json:"vendor_name"`
	Description string `json:"description"`
}

type CreateCatalogResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateCatalogRequest struct {
	Id          uuid.UUID
	Name        string `json:"name" validate:"required"`
	VendorName  string `json:"vendor_name"`
	Description string `json:"description"`
}

type CatalogFeatureResponse struct {
	Id       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
}

type ShowCatalogResponse struct {
	Id          uuid.UUID                `json:"id"`
	Name        string                   `json:"name"`
	VendorName  string                   `json:"vendor_name"`
	Description string                   `json:"description"`
	Features    []CatalogFeatureResponse `json:"features,omitempty"`
	CreatedAt   time.Time                `json:"created_at"`
	UpdatedAt   *time.Time               `json:"updated_at"`
}

type EnrichCatalogResponse struct {
	Id           uuid.UUID `json:"id"`
	FeatureCount int       `json:"feature_count"`
}
