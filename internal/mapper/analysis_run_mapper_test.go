package mapper

import (
	"testing"
	"time"

	"prism-spend-be/internal/entity"
	"prism-spend-be/internal/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

func TestAnalysisRunRoundTrip(t *testing.T) {
	m := NewAnalysisRunMapper()

	now := time.Now()
	run := &entity.AnalysisRun{
		Id:        uuid.New(),
		CompanyId: uuid.New(),
		Status:    entity.RunStatusCompleted,
		Stage:     "completed",
		Percent:   100,
		Result: &entity.AnalysisResult{
			TotalRedundancyCost: 13000,
			AnalysisDate:        now,
		},
		StartedAt:  now,
		FinishedAt: &now,
	}

	mdl, err := m.ToModel(run)
	if err != nil {
		t.Fatalf("ToModel: %v", err)
	}
	if len(mdl.Result) == 0 {
		t.Fatal("expected serialized result payload")
	}

	back, err := m.ToEntity(mdl)
	if err != nil {
		t.Fatalf("ToEntity: %v", err)
	}
	if back.Result == nil {
		t.Fatal("expected result to survive the round trip")
	}
	if back.Result.TotalRedundancyCost != 13000 {
		t.Errorf("TotalRedundancyCost = %v, want 13000", back.Result.TotalRedundancyCost)
	}
}

func TestAnalysisRunCorruptResultPayload(t *testing.T) {
	m := NewAnalysisRunMapper()

	mdl := &model.AnalysisRun{
		Id:        uuid.New(),
		CompanyId: uuid.New(),
		Status:    string(entity.RunStatusCompleted),
		Result:    datatypes.JSON([]byte(`{"overlaps": not-json`)),
	}

	run, err := m.ToEntity(mdl)
	if err == nil {
		t.Fatal("expected an error for a corrupt result payload")
	}
	if run != nil {
		t.Errorf("expected nil run on error, got %+v", run)
	}
}

func TestAnalysisRunWithoutResult(t *testing.T) {
	m := NewAnalysisRunMapper()

	mdl := &model.AnalysisRun{
		Id:        uuid.New(),
		CompanyId: uuid.New(),
		Status:    string(entity.RunStatusQueued),
	}

	run, err := m.ToEntity(mdl)
	if err != nil {
		t.Fatalf("ToEntity: %v", err)
	}
	if run.Result != nil {
		t.Errorf("expected nil result, got %+v", run.Result)
	}
}
