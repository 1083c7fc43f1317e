package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSoftwareRequest struct {
	Name            string     `json:"name" validate:"required"`
	VendorName      string     `json:"vendor_name"`
	Category        string     `json:"category" validate:"required"`
	AnnualCost      float64    `json:"annual_cost" validate:"gte=0"`
	LicenseCount    int        `json:"license_count" validate:"gte=0"`
	UtilizationRate float64    `json:"utilization_rate" validate:"gte=0,lte=100"`
	CatalogId       *uuid.UUID `json:"catalog_id"`
}

type CreateSoftwareResponse struct {
	Id uuid.UUID `json:"id"`
}

type UpdateSoftwareRequest struct {
	Id              uuid.UUID
	Name            string     `json:"name" validate:"required"`
	VendorName      string     `json:"vendor_name"`
	Category        string     `json:"category" validate:"required"`
	AnnualCost      float64    `json:"annual_cost" validate:"gte=0"`
	LicenseCount    int        `json:"license_count" validate:"gte=0"`
	UtilizationRate float64    `json:"utilization_rate" validate:"gte=0,lte=100"`
	Status          string     `json:"status" validate:"omitempty,oneof=active inactive"`
	CatalogId       *uuid.UUID `json:"catalog_id"`
}

type ShowSoftwareResponse struct {
	Id              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	VendorName      string     `json:"vendor_name"`
	Category        string     `json:"category"`
	AnnualCost      float64    `json:"annual_cost"`
	LicenseCount    int        `json:"license_count"`
	UtilizationRate float64    `json:"utilization_rate"`
	Status          string     `json:"status"`
	CatalogId       *uuid.UUID `json:"catalog_id,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at"`
}
