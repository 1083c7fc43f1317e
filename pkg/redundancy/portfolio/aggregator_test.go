package portfolio

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"prism-spend-be/internal/entity"
	"prism-spend-be/pkg/redundancy"

	"github.com/google/uuid"
)

type mapFeatureSource map[uuid.UUID]*entity.FeatureSet

func (m mapFeatureSource) GetFeatureSet(_ context.Context, catalogId uuid.UUID) (*entity.FeatureSet, error) {
	if fs, ok := m[catalogId]; ok {
		return fs, nil
	}
	return &entity.FeatureSet{CatalogId: catalogId}, nil
}

type failingFeatureSource struct{}

func (failingFeatureSource) GetFeatureSet(_ context.Context, _ uuid.UUID) (*entity.FeatureSet, error) {
	return nil, fmt.Errorf("connection refused")
}

func asset(name string, category entity.SoftwareCategory, cost, utilization float64, catalogId uuid.UUID) *entity.SoftwareAsset {
	return &entity.SoftwareAsset{
		Id:              uuid.New(),
		CompanyId:       uuid.New(),
		Name:            name,
		Category:        category,
		AnnualCost:      cost,
		UtilizationRate: utilization,
		Status:          entity.AssetStatusActive,
		CatalogId:       &catalogId,
	}
}

func catalogWith(source mapFeatureSource, names ...string) uuid.UUID {
	id := uuid.New()
	fs := &entity.FeatureSet{CatalogId: id}
	for _, n := range names {
		fs.Features = append(fs.Features, entity.CatalogFeature{Id: uuid.New(), CatalogId: id, Name: n})
	}
	source[id] = fs
	return id
}

func TestAggregateThreeRedundantCRMs(t *testing.T) {
	source := mapFeatureSource{}
	features := []string{"Contact Management", "Email Tracking", "Pipeline View", "Lead Scoring", "Reporting"}

	assets := []*entity.SoftwareAsset{
		asset("Salesforce", entity.CategoryCRM, 10000, 90, catalogWith(source, features...)),
		asset("HubSpot", entity.CategoryCRM, 8000, 40, catalogWith(source, features...)),
		asset("Pipedrive", entity.CategoryCRM, 5000, 20, catalogWith(source, features...)),
	}

	result, err := NewAggregator().Aggregate(context.Background(), Input{Assets: assets, Features: source})
	if err != nil {
		t.Fatalf("Aggregate returned error: %v", err)
	}

	if len(result.Overlaps) != 3 {
		t.Errorf("expected 3 pairs for 3 products, got %d", len(result.Overlaps))
	}
	for _, pair := range result.Overlaps {
		if pair.Score != 1.0 {
			t.Errorf("pair %s/%s score = %v, want 1.0", pair.ProductA.Name, pair.ProductB.Name, pair.Score)
		}
	}

	if len(result.ComparisonMatrix) != 1 {
		t.Fatalf("expected 1 category, got %d", len(result.ComparisonMatrix))
	}
	category := result.ComparisonMatrix[0]
	if category.Category != entity.CategoryCRM {
		t.Errorf("category = %s, want crm", category.Category)
	}
	if category.ProductCount != 3 {
		t.Errorf("product count = %d, want 3", category.ProductCount)
	}
	// Keep the 90%-utilized $10,000 product, recover the other two.
	if category.RedundancyCost != 13000 {
		t.Errorf("redundancy cost = %v, want 13000", category.RedundancyCost)
	}
	if result.TotalRedundancyCost != 13000 {
		t.Errorf("total redundancy cost = %v, want 13000", result.TotalRedundancyCost)
	}
}

func TestAggregateDisjointPairContributesNothing(t *testing.T) {
	source := mapFeatureSource{}
	assets := []*entity.SoftwareAsset{
		asset("Notion", entity.CategoryProjectManagement, 4000, 70, catalogWith(source, "Wiki Pages", "Databases")),
		asset("Jira", entity.CategoryProjectManagement, 6000, 80, catalogWith(source, "Sprint Boards", "Issue Tracking")),
	}

	result, err := NewAggregator().Aggregate(context.Background(), Input{Assets: assets, Features: source})
	if err != nil {
		t.Fatalf("Aggregate returned error: %v", err)
	}

	if len(result.Overlaps) != 1 {
		t.Fatalf("expected 1 pair, got %d", len(result.Overlaps))
	}
	if result.Overlaps[0].Score != 0 {
		t.Errorf("disjoint pair score = %v, want 0", result.Overlaps[0].Score)
	}
	if result.ComparisonMatrix[0].RedundancyCost != 0 {
		t.Errorf("redundancy cost = %v, want 0 for disjoint members", result.ComparisonMatrix[0].RedundancyCost)
	}
	if result.TotalRedundancyCost != 0 {
		t.Errorf("total = %v, want 0", result.TotalRedundancyCost)
	}
}

func TestAggregateDisjointMemberExcludedFromCost(t *testing.T) {
	source := mapFeatureSource{}
	shared := []string{"Dashboards", "Alerts", "Exports"}
	assets := []*entity.SoftwareAsset{
		asset("Looker", entity.CategoryAnalytics, 10000, 90, catalogWith(source, shared...)),
		asset("Tableau", entity.CategoryAnalytics, 8000, 40, catalogWith(source, shared...)),
		asset("Hotjar", entity.CategoryAnalytics, 5000, 20, catalogWith(source, "Session Replay", "Heatmaps")),
	}

	result, err := NewAggregator().Aggregate(context.Background(), Input{Assets: assets, Features: source})
	if err != nil {
		t.Fatalf("Aggregate returned error: %v", err)
	}

	// Hotjar overlaps with neither, so only Looker+Tableau contribute.
	if got := result.ComparisonMatrix[0].RedundancyCost; got != 8000 {
		t.Errorf("redundancy cost = %v, want 8000", got)
	}
}

func TestAggregateCrossCategoryNeverScored(t *testing.T) {
	source := mapFeatureSource{}
	features := []string{"Messaging", "File Sharing"}
	assets := []*entity.SoftwareAsset{
		asset("Slack", entity.CategoryCommunication, 5000, 80, catalogWith(source, features...)),
		asset("Dropbox", entity.CategoryStorage, 3000, 60, catalogWith(source, features...)),
	}

	result, err := NewAggregator().Aggregate(context.Background(), Input{Assets: assets, Features: source})
	if err != nil {
		t.Fatalf("Aggregate returned error: %v", err)
	}

	if len(result.Overlaps) != 0 {
		t.Errorf("cross-category pair was scored, got %d pairs", len(result.Overlaps))
	}
	if result.TotalRedundancyCost != 0 {
		t.Errorf("total = %v, want 0", result.TotalRedundancyCost)
	}
}

func TestAggregateInsufficientData(t *testing.T) {
	source := mapFeatureSource{}
	catalogId := catalogWith(source, "Feature")
	active := asset("Only Tool", entity.CategoryCRM, 1000, 50, catalogId)
	inactive := asset("Retired Tool", entity.CategoryCRM, 2000, 10, catalogId)
	inactive.Status = entity.AssetStatusInactive

	_, err := NewAggregator().Aggregate(context.Background(), Input{
		Assets:   []*entity.SoftwareAsset{active, inactive},
		Features: source,
	})
	if !errors.Is(err, redundancy.ErrInsufficientData) {
		t.Errorf("err = %v, want ErrInsufficientData", err)
	}
}

func TestAggregateCancellation(t *testing.T) {
	source := mapFeatureSource{}
	assets := []*entity.SoftwareAsset{
		asset("A", entity.CategoryCRM, 1000, 50, catalogWith(source, "X")),
		asset("B", entity.CategoryCRM, 2000, 60, catalogWith(source, "X")),
	}

	_, err := NewAggregator().Aggregate(context.Background(), Input{
		Assets:    assets,
		Features:  source,
		Cancelled: func() bool { return true },
	})
	if !errors.Is(err, redundancy.ErrCancelled) {
		t.Errorf("err = %v, want ErrCancelled", err)
	}
}

func TestAggregateContextCancellation(t *testing.T) {
	source := mapFeatureSource{}
	assets := []*entity.SoftwareAsset{
		asset("A", entity.CategoryCRM, 1000, 50, catalogWith(source, "X")),
		asset("B", entity.CategoryCRM, 2000, 60, catalogWith(source, "X")),
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewAggregator().Aggregate(ctx, Input{Assets: assets, Features: source})
	if !errors.Is(err, redundancy.ErrCancelled) {
		t.Errorf("err = %v, want ErrCancelled", err)
	}
}

func TestAggregateDeadlineExceededReportsFailure(t *testing.T) {
	source := mapFeatureSource{}
	assets := []*entity.SoftwareAsset{
		asset("A", entity.CategoryCRM, 1000, 50, catalogWith(source, "X")),
		asset("B", entity.CategoryCRM, 2000, 60, catalogWith(source, "X")),
	}

	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	_, err := NewAggregator().Aggregate(ctx, Input{Assets: assets, Features: source})
	if !errors.Is(err, redundancy.ErrAggregationFailed) {
		t.Errorf("err = %v, want ErrAggregationFailed", err)
	}
	if errors.Is(err, redundancy.ErrCancelled) {
		t.Error("a timed-out run must not read as cancelled")
	}
}

func TestAggregateFeatureFetchFailureAbortsRun(t *testing.T) {
	catalogId := uuid.New()
	assets := []*entity.SoftwareAsset{
		asset("A", entity.CategoryCRM, 1000, 50, catalogId),
		asset("B", entity.CategoryCRM, 2000, 60, catalogId),
	}

	_, err := NewAggregator().Aggregate(context.Background(), Input{
		Assets:   assets,
		Features: failingFeatureSource{},
	})
	if !errors.Is(err, redundancy.ErrAggregationFailed) {
		t.Errorf("err = %v, want ErrAggregationFailed", err)
	}
}

func TestAggregateProgressIsMonotonic(t *testing.T) {
	source := mapFeatureSource{}
	assets := []*entity.SoftwareAsset{
		asset("A", entity.CategoryCRM, 1000, 50, catalogWith(source, "X")),
		asset("B", entity.CategoryCRM, 2000, 60, catalogWith(source, "X")),
		asset("C", entity.CategoryStorage, 500, 30, catalogWith(source, "Y")),
		asset("D", entity.CategoryStorage, 700, 40, catalogWith(source, "Y")),
	}

	var percents []int
	_, err := NewAggregator().Aggregate(context.Background(), Input{
		Assets:   assets,
		Features: source,
		Progress: func(_ string, percent int) { percents = append(percents, percent) },
	})
	if err != nil {
		t.Fatalf("Aggregate returned error: %v", err)
	}
	if len(percents) == 0 {
		t.Fatal("no progress reported")
	}
	for i := 1; i < len(percents); i++ {
		if percents[i] < percents[i-1] {
			t.Errorf("progress decreased: %v", percents)
		}
	}
}

func TestAggregateAssetWithoutCatalogLink(t *testing.T) {
	source := mapFeatureSource{}
	linked := asset("Linked", entity.CategoryCRM, 1000, 50, catalogWith(source, "X"))
	unlinked := &entity.SoftwareAsset{
		Id:              uuid.New(),
		Name:            "Unlinked",
		Category:        entity.CategoryCRM,
		AnnualCost:      2000,
		UtilizationRate: 60,
		Status:          entity.AssetStatusActive,
	}

	result, err := NewAggregator().Aggregate(context.Background(), Input{
		Assets:   []*entity.SoftwareAsset{linked, unlinked},
		Features: source,
	})
	if err != nil {
		t.Fatalf("Aggregate returned error: %v", err)
	}
	if result.Overlaps[0].Score != 0 {
		t.Errorf("uncatalogued asset should score 0, got %v", result.Overlaps[0].Score)
	}
}
