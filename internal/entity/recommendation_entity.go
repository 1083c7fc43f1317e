// Domain entity for consolidation recommendations
package entity

import (
	"time"

	"github.com/google/uuid"
)

type RecommendationStatus string

const (
	RecommendationPending  RecommendationStatus = "pending"
	RecommendationAccepted RecommendationStatus = "accepted"
	RecommendationRejected RecommendationStatus = "rejected"
)

// ConsolidationRecommendation suggests retiring one or more redundant
// products in favor of a retained one. Created at analysis time, mutated
// (status only) by user action, never auto-deleted.
type ConsolidationRecommendation struct {
	Id               uuid.UUID            `json:"id"`
	RunId            uuid.UUID            `json:"run_id"`
	CompanyId        uuid.UUID            `json:"company_id"`
	Category         SoftwareCategory     `json:"category"`
	KeepProduct      ProductRef           `json:"keep_product"`
	RetireProducts   []ProductRef         `json:"retire_products"`
	EstimatedSavings float64              `json:"estimated_savings"` // per year
	Status           RecommendationStatus `json:"status"`
	CreatedAt        time.Time            `json:"created_at"`
	UpdatedAt        *time.Time           `json:"updated_at,omitempty"`
}
