// Mapper for AnalysisRun entity <-> model conversion. The result payload
// crosses the boundary as JSONB.
package mapper

import (
	"encoding/json"
	"fmt"

	"prism-spend-be/internal/entity"
	"prism-spend-be/internal/model"

	"gorm.io/datatypes"
)

type AnalysisRunMapper struct{}

func NewAnalysisRunMapper() *AnalysisRunMapper {
	return &AnalysisRunMapper{}
}

func (m *AnalysisRunMapper) ToEntity(mdl *model.AnalysisRun) (*entity.AnalysisRun, error) {
	if mdl == nil {
		return nil, nil
	}
	run := &entity.AnalysisRun{
		Id:           mdl.Id,
		CompanyId:    mdl.CompanyId,
		Status:       entity.RunStatus(mdl.Status),
		Stage:        mdl.Stage,
		Percent:      mdl.Percent,
		ErrorSummary: mdl.ErrorSummary,
		StartedAt:    mdl.StartedAt,
		FinishedAt:   mdl.FinishedAt,
	}
	if len(mdl.Result) > 0 {
		var result entity.AnalysisResult
		if err := json.Unmarshal(mdl.Result, &result); err != nil {
			return nil, fmt.Errorf("unmarshal analysis result for run %s: %w", mdl.Id, err)
		}
		run.Result = &result
	}
	return run, nil
}

func (m *AnalysisRunMapper) ToModel(run *entity.AnalysisRun) (*model.AnalysisRun, error) {
	if run == nil {
		return nil, nil
	}
	mdl := &model.AnalysisRun{
		Id:           run.Id,
		CompanyId:    run.CompanyId,
		Status:       string(run.Status),
		Stage:        run.Stage,
		Percent:      run.Percent,
		ErrorSummary: run.ErrorSummary,
		StartedAt:    run.StartedAt,
		FinishedAt:   run.FinishedAt,
	}
	if run.Result != nil {
		data, err := json.Marshal(run.Result)
		if err != nil {
			return nil, fmt.Errorf("marshal analysis result for run %s: %w", run.Id, err)
		}
		mdl.Result = datatypes.JSON(data)
	}
	return mdl, nil
}

func (m *AnalysisRunMapper) ToEntities(models []*model.AnalysisRun) ([]*entity.AnalysisRun, error) {
	entities := make([]*entity.AnalysisRun, 0, len(models))
	for _, mdl := range models {
		run, err := m.ToEntity(mdl)
		if err != nil {
			return nil, err
		}
		entities = append(entities, run)
	}
	return entities, nil
}
