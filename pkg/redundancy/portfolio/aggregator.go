// Category-level aggregation of pairwise overlap scores across a portfolio.
package portfolio

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"prism-spend-be/internal/entity"
	"prism-spend-be/pkg/redundancy"
	"prism-spend-be/pkg/redundancy/overlap"

	"github.com/google/uuid"
)

// FeatureSource resolves the catalogued feature set for a product. A lookup
// failure aborts the whole run; a missing catalog link yields an empty set.
type FeatureSource interface {
	GetFeatureSet(ctx context.Context, catalogId uuid.UUID) (*entity.FeatureSet, error)
}

// ProgressFunc receives coarse-grained progress while the aggregation runs.
type ProgressFunc func(stage string, percent int)

// Input carries everything one aggregation run needs. Cancelled is polled at
// category boundaries for cooperative cancellation; either hook may be nil.
type Input struct {
	Assets    []*entity.SoftwareAsset
	Features  FeatureSource
	Progress  ProgressFunc
	Cancelled func() bool
}

const (
	StageGrouping    = "grouping portfolio"
	StageScoring     = "scoring overlaps"
	StageAggregating = "aggregating categories"
)

type Aggregator struct {
	scorer *overlap.Scorer
}

func NewAggregator() *Aggregator {
	return &Aggregator{
		scorer: overlap.NewScorer(),
	}
}

// Aggregate groups active assets by category, scores every unordered pair
// within each category, and derives per-category redundancy costs.
//
// The redundancy cost of a category counts only members that overlap with at
// least one other member. Disjoint products sharing a category label do not
// contribute. Cost = sum of contributing members' annual costs minus the
// retained member's cost, where the retained member is the contributing
// member with the highest utilization rate (ties keep the cheaper product).
func (a *Aggregator) Aggregate(ctx context.Context, in Input) (*entity.AnalysisResult, error) {
	active := make([]*entity.SoftwareAsset, 0, len(in.Assets))
	for _, asset := range in.Assets {
		if asset.IsActive() {
			active = append(active, asset)
		}
	}
	if len(active) < 2 {
		return nil, redundancy.ErrInsufficientData
	}

	report(in.Progress, StageGrouping, 5)

	groups := make(map[entity.SoftwareCategory][]*entity.SoftwareAsset)
	for _, asset := range active {
		groups[asset.Category] = append(groups[asset.Category], asset)
	}

	categories := make([]entity.SoftwareCategory, 0, len(groups))
	for category := range groups {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i] < categories[j] })

	featureCache := make(map[uuid.UUID]*entity.FeatureSet)
	overlaps := make([]*entity.OverlapPair, 0)
	matrix := make([]*entity.CategoryOverlap, 0, len(categories))
	totalCost := 0.0

	for idx, category := range categories {
		if err := checkCancelled(ctx, in.Cancelled); err != nil {
			return nil, err
		}
		report(in.Progress, StageScoring, scoringPercent(idx, len(categories)))

		members := groups[category]
		sort.Slice(members, func(i, j int) bool { return members[i].Name < members[j].Name })

		contributors := make(map[uuid.UUID]bool)
		for i := 0; i < len(members); i++ {
			for j := i + 1; j < len(members); j++ {
				pair, err := a.scorePair(ctx, members[i], members[j], in.Features, featureCache)
				if err != nil {
					return nil, err
				}
				overlaps = append(overlaps, pair)
				if pair.Score > 0 {
					contributors[members[i].Id] = true
					contributors[members[j].Id] = true
				}
			}
		}

		cost := categoryCost(members, contributors)
		totalCost += cost
		matrix = append(matrix, &entity.CategoryOverlap{
			Category:       category,
			Products:       productRefs(members),
			ProductCount:   len(members),
			RedundancyCost: cost,
		})
	}

	if err := checkCancelled(ctx, in.Cancelled); err != nil {
		return nil, err
	}
	report(in.Progress, StageAggregating, 75)

	return &entity.AnalysisResult{
		Overlaps:            overlaps,
		ComparisonMatrix:    matrix,
		TotalRedundancyCost: totalCost,
		AnalysisDate:        time.Now(),
	}, nil
}

func (a *Aggregator) scorePair(ctx context.Context, assetA, assetB *entity.SoftwareAsset, source FeatureSource, cache map[uuid.UUID]*entity.FeatureSet) (*entity.OverlapPair, error) {
	featuresA, err := a.resolveFeatures(ctx, assetA, source, cache)
	if err != nil {
		return nil, err
	}
	featuresB, err := a.resolveFeatures(ctx, assetB, source, cache)
	if err != nil {
		return nil, err
	}
	return a.scorer.Score(productRef(assetA), productRef(assetB), featuresA, featuresB), nil
}

func (a *Aggregator) resolveFeatures(ctx context.Context, asset *entity.SoftwareAsset, source FeatureSource, cache map[uuid.UUID]*entity.FeatureSet) (*entity.FeatureSet, error) {
	if asset.CatalogId == nil {
		return &entity.FeatureSet{}, nil
	}
	if fs, ok := cache[*asset.CatalogId]; ok {
		return fs, nil
	}
	fs, err := source.GetFeatureSet(ctx, *asset.CatalogId)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch features for %s: %v", redundancy.ErrAggregationFailed, asset.Name, err)
	}
	if fs == nil {
		fs = &entity.FeatureSet{CatalogId: *asset.CatalogId}
	}
	cache[*asset.CatalogId] = fs
	return fs, nil
}

// categoryCost assumes full consolidation onto the best-utilized contributing
// member: everything else a contributor costs is recoverable.
func categoryCost(members []*entity.SoftwareAsset, contributors map[uuid.UUID]bool) float64 {
	if len(contributors) < 2 {
		return 0
	}

	sum := 0.0
	var keeper *entity.SoftwareAsset
	for _, m := range members {
		if !contributors[m.Id] {
			continue
		}
		sum += m.AnnualCost
		if keeper == nil || betterKeeper(m, keeper) {
			keeper = m
		}
	}

	cost := sum - keeper.AnnualCost
	if cost < 0 {
		return 0
	}
	return cost
}

// betterKeeper reports whether candidate should be retained over current:
// highest utilization wins, ties retain the cheaper product so the pricier
// one is retired.
func betterKeeper(candidate, current *entity.SoftwareAsset) bool {
	if candidate.UtilizationRate != current.UtilizationRate {
		return candidate.UtilizationRate > current.UtilizationRate
	}
	if candidate.AnnualCost != current.AnnualCost {
		return candidate.AnnualCost < current.AnnualCost
	}
	return candidate.Name < current.Name
}

func checkCancelled(ctx context.Context, cancelled func() bool) error {
	if err := ctx.Err(); err != nil {
		// A run that hits its deadline failed; nobody asked for it to stop.
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%w: run deadline exceeded", redundancy.ErrAggregationFailed)
		}
		return redundancy.ErrCancelled
	}
	if cancelled != nil && cancelled() {
		return redundancy.ErrCancelled
	}
	return nil
}

// scoringPercent maps per-category progress into the 15-70 band of the run.
func scoringPercent(index, total int) int {
	if total == 0 {
		return 15
	}
	return 15 + (55*index)/total
}

func report(progress ProgressFunc, stage string, percent int) {
	if progress != nil {
		progress(stage, percent)
	}
}

func productRef(asset *entity.SoftwareAsset) entity.ProductRef {
	return entity.ProductRef{
		Id:              asset.Id,
		Name:            asset.Name,
		VendorName:      asset.VendorName,
		AnnualCost:      asset.AnnualCost,
		UtilizationRate: asset.UtilizationRate,
	}
}

func productRefs(assets []*entity.SoftwareAsset) []entity.ProductRef {
	refs := make([]entity.ProductRef, len(assets))
	for i, a := range assets {
		refs[i] = productRef(a)
	}
	return refs
}
