// Pairwise feature-overlap scoring between two software products.
package overlap

import (
	"sort"
	"strings"

	"prism-spend-be/internal/entity"
)

// Scorer computes the overlap between two products' feature sets.
// It is stateless and safe for concurrent use.
type Scorer struct{}

func NewScorer() *Scorer {
	return &Scorer{}
}

// Score compares the feature sets of two products and returns the pair with
// shared and unique feature lists populated for the UI heatmap.
//
// The score is |A ∩ B| / min(|A|, |B|) with case-insensitive, trimmed name
// equality. A product with zero catalogued features scores 0 against
// everything: an under-catalogued product must not look redundant.
// Two assets backed by the same catalog entry score 1.0 outright, since that
// is true duplication (two licenses of the same tool).
func (s *Scorer) Score(productA, productB entity.ProductRef, featuresA, featuresB *entity.FeatureSet) *entity.OverlapPair {
	pair := &entity.OverlapPair{
		ProductA: productA,
		ProductB: productB,
	}

	setA := normalizeFeatures(featuresA)
	setB := normalizeFeatures(featuresB)

	if len(setA) == 0 || len(setB) == 0 {
		pair.SharedFeatures = []string{}
		pair.UniqueToA = originalNames(setA)
		pair.UniqueToB = originalNames(setB)
		return pair
	}

	sameCatalog := featuresA.CatalogId == featuresB.CatalogId

	shared := make([]string, 0)
	uniqueA := make([]string, 0)
	uniqueB := make([]string, 0)

	for key, name := range setA {
		if _, ok := setB[key]; ok {
			shared = append(shared, name)
		} else {
			uniqueA = append(uniqueA, name)
		}
	}
	for key, name := range setB {
		if _, ok := setA[key]; !ok {
			uniqueB = append(uniqueB, name)
		}
	}

	sort.Strings(shared)
	sort.Strings(uniqueA)
	sort.Strings(uniqueB)

	pair.SharedFeatures = shared
	pair.UniqueToA = uniqueA
	pair.UniqueToB = uniqueB
	pair.SharedCount = len(shared)

	if sameCatalog {
		pair.Score = 1.0
		return pair
	}

	minSize := len(setA)
	if len(setB) < minSize {
		minSize = len(setB)
	}
	pair.Score = float64(len(shared)) / float64(minSize)
	return pair
}

// normalizeFeatures maps the normalized feature name to the first original
// spelling seen, deduplicating case and whitespace variants.
func normalizeFeatures(fs *entity.FeatureSet) map[string]string {
	set := make(map[string]string)
	if fs == nil {
		return set
	}
	for _, f := range fs.Features {
		key := strings.ToLower(strings.TrimSpace(f.Name))
		if key == "" {
			continue
		}
		if _, ok := set[key]; !ok {
			set[key] = strings.TrimSpace(f.Name)
		}
	}
	return set
}

func originalNames(set map[string]string) []string {
	names := make([]string, 0, len(set))
	for _, name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
