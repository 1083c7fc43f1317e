package dto

import "github.com/google/uuid"

// AlternativeResponse is one catalog product semantically similar to the
// asset the user asked about.
type AlternativeResponse struct {
	CatalogId  uuid.UUID `json:"catalog_id"`
	Name       string    `json:"name"`
	VendorName string    `json:"vendor_name"`
}
