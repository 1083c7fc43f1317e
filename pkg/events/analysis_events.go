package events

import (
	"time"

	"github.com/google/uuid"
)

// Lifecycle event codes for the redundancy analysis pipeline.
const (
	AnalysisStartedType   = "ANALYSIS_STARTED"
	AnalysisCompletedType = "ANALYSIS_COMPLETED"
	AnalysisFailedType    = "ANALYSIS_FAILED"
	AnalysisCancelledType = "ANALYSIS_CANCELLED"

	RecommendationUpdatedType = "RECOMMENDATION_UPDATED"
)

func NewAnalysisStartedEvent(companyId, runId uuid.UUID) Event {
	return BaseEvent{
		Type: AnalysisStartedType,
		Data: map[string]interface{}{
			"company_id": companyId.String(),
			"run_id":     runId.String(),
		},
		OccurredAt: time.Now(),
	}
}

func NewAnalysisCompletedEvent(companyId, runId uuid.UUID, totalRedundancyCost float64, recommendationCount int) Event {
	return BaseEvent{
		Type: AnalysisCompletedType,
		Data: map[string]interface{}{
			"company_id":            companyId.String(),
			"run_id":                runId.String(),
			"total_redundancy_cost": totalRedundancyCost,
			"recommendation_count":  recommendationCount,
		},
		OccurredAt: time.Now(),
	}
}

func NewAnalysisFailedEvent(companyId, runId uuid.UUID, reason string) Event {
	return BaseEvent{
		Type: AnalysisFailedType,
		Data: map[string]interface{}{
			"company_id": companyId.String(),
			"run_id":     runId.String(),
			"reason":     reason,
		},
		OccurredAt: time.Now(),
	}
}

func NewAnalysisCancelledEvent(companyId, runId uuid.UUID) Event {
	return BaseEvent{
		Type: AnalysisCancelledType,
		Data: map[string]interface{}{
			"company_id": companyId.String(),
			"run_id":     runId.String(),
		},
		OccurredAt: time.Now(),
	}
}

func NewRecommendationUpdatedEvent(companyId, recommendationId uuid.UUID, status string) Event {
	return BaseEvent{
		Type: RecommendationUpdatedType,
		Data: map[string]interface{}{
			"company_id":        companyId.String(),
			"recommendation_id": recommendationId.String(),
			"status":            status,
		},
		OccurredAt: time.Now(),
	}
}
