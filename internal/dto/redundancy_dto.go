package dto

import (
	"time"

	"prism-spend-be/internal/entity"

	"github.com/google/uuid"
)

// AnalysisJobMessage is the in-process job dispatched to the analysis worker.
type AnalysisJobMessage struct {
	RunId     uuid.UUID `json:"run_id"`
	CompanyId uuid.UUID `json:"company_id"`
}

// TriggerAnalysisResponse acknowledges an accepted analysis run; the client
// polls the progress endpoint (or listens on the websocket) from here on.
type TriggerAnalysisResponse struct {
	RunId  uuid.UUID `json:"run_id"`
	Status string    `json:"status"`
}

type AnalysisProgressResponse struct {
	RunId                 uuid.UUID `json:"run_id"`
	Status                string    `json:"status"`
	Stage                 string    `json:"stage"`
	Percent               int       `json:"percent"`
	Error                 string    `json:"error,omitempty"`
	CancellationRequested bool      `json:"cancellation_requested"`
}

type AnalysisResultResponse struct {
	RunId               uuid.UUID                               `json:"run_id"`
	Status              string                                  `json:"status"`
	Overlaps            []*entity.OverlapPair                   `json:"overlaps"`
	ComparisonMatrix    []*entity.CategoryOverlap               `json:"comparison_matrix"`
	Recommendations     []*entity.ConsolidationRecommendation   `json:"recommendations"`
	TotalRedundancyCost float64                                 `json:"total_redundancy_cost"`
	AnalysisDate        time.Time                               `json:"analysis_date"`
}
