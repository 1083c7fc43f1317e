// Ranked consolidation recommendations derived from the comparison matrix.
package recommend

import (
	"sort"
	"time"

	"prism-spend-be/internal/entity"

	"github.com/google/uuid"
)

type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Generate emits one recommendation per category with a positive redundancy
// cost: retain the highest-utilization overlapping member, retire the rest.
// When utilization ties, the pricier product is retired. The savings estimate
// is the sum of retired members' annual costs. The result is sorted by
// savings descending, ties broken by category name ascending.
func (g *Generator) Generate(matrix []*entity.CategoryOverlap, overlaps []*entity.OverlapPair) []*entity.ConsolidationRecommendation {
	now := time.Now()
	recommendations := make([]*entity.ConsolidationRecommendation, 0)

	for _, category := range matrix {
		if category.RedundancyCost <= 0 {
			continue
		}

		contributors := contributingMembers(category, overlaps)
		if len(contributors) < 2 {
			continue
		}

		sort.Slice(contributors, func(i, j int) bool {
			return keeperBefore(contributors[i], contributors[j])
		})

		keep := contributors[0]
		retire := contributors[1:]

		savings := 0.0
		for _, r := range retire {
			savings += r.AnnualCost
		}

		recommendations = append(recommendations, &entity.ConsolidationRecommendation{
			Category:         category.Category,
			KeepProduct:      keep,
			RetireProducts:   retire,
			EstimatedSavings: savings,
			Status:           entity.RecommendationPending,
			CreatedAt:        now,
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		if recommendations[i].EstimatedSavings != recommendations[j].EstimatedSavings {
			return recommendations[i].EstimatedSavings > recommendations[j].EstimatedSavings
		}
		return recommendations[i].Category < recommendations[j].Category
	})
	return recommendations
}

// contributingMembers filters the category's products down to those with a
// positive overlap score against at least one other member.
func contributingMembers(category *entity.CategoryOverlap, overlaps []*entity.OverlapPair) []entity.ProductRef {
	memberIds := make(map[uuid.UUID]bool, len(category.Products))
	for _, p := range category.Products {
		memberIds[p.Id] = true
	}

	contributing := make(map[uuid.UUID]bool)
	for _, pair := range overlaps {
		if pair.Score <= 0 {
			continue
		}
		if memberIds[pair.ProductA.Id] && memberIds[pair.ProductB.Id] {
			contributing[pair.ProductA.Id] = true
			contributing[pair.ProductB.Id] = true
		}
	}

	members := make([]entity.ProductRef, 0, len(contributing))
	for _, p := range category.Products {
		if contributing[p.Id] {
			members = append(members, p)
		}
	}
	return members
}

// keeperBefore orders candidates so the retained product sorts first:
// highest utilization, then lowest annual cost, then name.
func keeperBefore(a, b entity.ProductRef) bool {
	if a.UtilizationRate != b.UtilizationRate {
		return a.UtilizationRate > b.UtilizationRate
	}
	if a.AnnualCost != b.AnnualCost {
		return a.AnnualCost < b.AnnualCost
	}
	return a.Name < b.Name
}
