package overlap

import (
	"testing"

	"prism-spend-be/internal/entity"

	"github.com/google/uuid"
)

func featureSet(catalogId uuid.UUID, names ...string) *entity.FeatureSet {
	fs := &entity.FeatureSet{CatalogId: catalogId}
	for _, n := range names {
		fs.Features = append(fs.Features, entity.CatalogFeature{
			Id:        uuid.New(),
			CatalogId: catalogId,
			Name:      n,
		})
	}
	return fs
}

func product(name string) entity.ProductRef {
	return entity.ProductRef{Id: uuid.New(), Name: name}
}

func TestScore(t *testing.T) {
	catA := uuid.New()
	catB := uuid.New()

	tests := []struct {
		name        string
		featuresA   *entity.FeatureSet
		featuresB   *entity.FeatureSet
		wantScore   float64
		wantShared  int
		wantUniqueA int
		wantUniqueB int
	}{
		{
			name:       "identical feature sets",
			featuresA:  featureSet(catA, "Contact Management", "Email Tracking", "Pipeline View"),
			featuresB:  featureSet(catB, "Contact Management", "Email Tracking", "Pipeline View"),
			wantScore:  1.0,
			wantShared: 3,
		},
		{
			name:        "disjoint feature sets",
			featuresA:   featureSet(catA, "Video Calls", "Screen Sharing"),
			featuresB:   featureSet(catB, "File Sync", "Version History"),
			wantScore:   0,
			wantUniqueA: 2,
			wantUniqueB: 2,
		},
		{
			name:        "partial overlap uses smaller set as denominator",
			featuresA:   featureSet(catA, "Dashboards", "Alerts", "Exports", "Funnels"),
			featuresB:   featureSet(catB, "Dashboards", "Heatmaps"),
			wantScore:   0.5,
			wantShared:  1,
			wantUniqueA: 3,
			wantUniqueB: 1,
		},
		{
			name:       "case and whitespace insensitive matching",
			featuresA:  featureSet(catA, "  Email Tracking  ", "CRM Reports"),
			featuresB:  featureSet(catB, "email tracking", "crm reports"),
			wantScore:  1.0,
			wantShared: 2,
		},
		{
			name:        "empty set scores zero against anything",
			featuresA:   featureSet(catA),
			featuresB:   featureSet(catB, "Task Boards"),
			wantScore:   0,
			wantUniqueB: 1,
		},
		{
			name:      "both empty scores zero",
			featuresA: featureSet(catA),
			featuresB: featureSet(catB),
			wantScore: 0,
		},
		{
			name:       "same catalog entry short-circuits to full duplication",
			featuresA:  featureSet(catA, "Task Boards", "Gantt Charts"),
			featuresB:  featureSet(catA, "Task Boards", "Gantt Charts"),
			wantScore:  1.0,
			wantShared: 2,
		},
	}

	scorer := NewScorer()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pair := scorer.Score(product("A"), product("B"), tt.featuresA, tt.featuresB)
			if pair.Score != tt.wantScore {
				t.Errorf("Score = %v, want %v", pair.Score, tt.wantScore)
			}
			if len(pair.SharedFeatures) != tt.wantShared {
				t.Errorf("SharedFeatures = %d, want %d", len(pair.SharedFeatures), tt.wantShared)
			}
			if len(pair.UniqueToA) != tt.wantUniqueA {
				t.Errorf("UniqueToA = %d, want %d", len(pair.UniqueToA), tt.wantUniqueA)
			}
			if len(pair.UniqueToB) != tt.wantUniqueB {
				t.Errorf("UniqueToB = %d, want %d", len(pair.UniqueToB), tt.wantUniqueB)
			}
			if pair.Score < 0 || pair.Score > 1 {
				t.Errorf("Score %v out of [0,1]", pair.Score)
			}
		})
	}
}

func TestScoreSymmetry(t *testing.T) {
	scorer := NewScorer()
	fsA := featureSet(uuid.New(), "Dashboards", "Alerts", "Exports")
	fsB := featureSet(uuid.New(), "Dashboards", "Heatmaps")

	forward := scorer.Score(product("A"), product("B"), fsA, fsB)
	backward := scorer.Score(product("B"), product("A"), fsB, fsA)

	if forward.Score != backward.Score {
		t.Errorf("score not symmetric: %v vs %v", forward.Score, backward.Score)
	}
	if forward.SharedCount != backward.SharedCount {
		t.Errorf("shared count not symmetric: %d vs %d", forward.SharedCount, backward.SharedCount)
	}
}

func TestScoreDeduplicatesVariants(t *testing.T) {
	scorer := NewScorer()
	// Same feature listed twice with different casing counts once.
	fsA := featureSet(uuid.New(), "Email Tracking", "email tracking ")
	fsB := featureSet(uuid.New(), "Email Tracking")

	pair := scorer.Score(product("A"), product("B"), fsA, fsB)
	if pair.Score != 1.0 {
		t.Errorf("Score = %v, want 1.0", pair.Score)
	}
	if pair.SharedCount != 1 {
		t.Errorf("SharedCount = %d, want 1", pair.SharedCount)
	}
}
