// Computed analysis structures (not persisted row-by-row; the completed
// result is stored as one JSON payload on the analysis run)
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProductRef is the slice of a SoftwareAsset the analysis output carries.
type ProductRef struct {
	Id              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	VendorName      string    `json:"vendor_name"`
	AnnualCost      float64   `json:"annual_cost"`
	UtilizationRate float64   `json:"utilization_rate"`
}

// OverlapPair is the scored relation between two software assets of the
// same category. Symmetric: Score(A,B) == Score(B,A).
type OverlapPair struct {
	ProductA       ProductRef `json:"product_a"`
	ProductB       ProductRef `json:"product_b"`
	SharedFeatures []string   `json:"shared_features"`
	UniqueToA      []string   `json:"unique_to_a"`
	UniqueToB      []string   `json:"unique_to_b"`
	SharedCount    int        `json:"shared_count"`
	Score          float64    `json:"score"` // [0,1]
}

// CategoryOverlap aggregates all assets of a company sharing one category.
// RedundancyCost is what would be saved by consolidating every overlapping
// member onto the best-utilized one.
type CategoryOverlap struct {
	Category       SoftwareCategory `json:"category"`
	Products       []ProductRef     `json:"products"`
	ProductCount   int              `json:"product_count"`
	RedundancyCost float64          `json:"redundancy_cost"`
}

// AnalysisResult is the full output of one redundancy analysis run.
type AnalysisResult struct {
	Overlaps            []*OverlapPair                 `json:"overlaps"`
	ComparisonMatrix    []*CategoryOverlap             `json:"comparison_matrix"`
	Recommendations     []*ConsolidationRecommendation `json:"recommendations"`
	TotalRedundancyCost float64                        `json:"total_redundancy_cost"`
	AnalysisDate        time.Time                      `json:"analysis_date"`
}
