package recommend

import (
	"testing"

	"prism-spend-be/internal/entity"

	"github.com/google/uuid"
)

func ref(name string, cost, utilization float64) entity.ProductRef {
	return entity.ProductRef{
		Id:              uuid.New(),
		Name:            name,
		AnnualCost:      cost,
		UtilizationRate: utilization,
	}
}

func pairOf(a, b entity.ProductRef, score float64) *entity.OverlapPair {
	return &entity.OverlapPair{ProductA: a, ProductB: b, Score: score}
}

func categoryOf(category entity.SoftwareCategory, cost float64, products ...entity.ProductRef) *entity.CategoryOverlap {
	return &entity.CategoryOverlap{
		Category:       category,
		Products:       products,
		ProductCount:   len(products),
		RedundancyCost: cost,
	}
}

func TestGenerateKeepsHighestUtilization(t *testing.T) {
	salesforce := ref("Salesforce", 10000, 90)
	hubspot := ref("HubSpot", 8000, 40)
	pipedrive := ref("Pipedrive", 5000, 20)

	matrix := []*entity.CategoryOverlap{
		categoryOf(entity.CategoryCRM, 13000, salesforce, hubspot, pipedrive),
	}
	overlaps := []*entity.OverlapPair{
		pairOf(salesforce, hubspot, 0.9),
		pairOf(salesforce, pipedrive, 0.85),
		pairOf(hubspot, pipedrive, 0.8),
	}

	recs := NewGenerator().Generate(matrix, overlaps)
	if len(recs) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(recs))
	}

	rec := recs[0]
	if rec.KeepProduct.Name != "Salesforce" {
		t.Errorf("keep = %s, want Salesforce", rec.KeepProduct.Name)
	}
	if len(rec.RetireProducts) != 2 {
		t.Errorf("retire count = %d, want 2", len(rec.RetireProducts))
	}
	if rec.EstimatedSavings != 13000 {
		t.Errorf("savings = %v, want 13000", rec.EstimatedSavings)
	}
	if rec.Status != entity.RecommendationPending {
		t.Errorf("status = %s, want pending", rec.Status)
	}
}

func TestGenerateTieRetiresHigherCost(t *testing.T) {
	cheap := ref("Cheap Tool", 5000, 60)
	pricey := ref("Pricey Tool", 7000, 60)

	matrix := []*entity.CategoryOverlap{
		categoryOf(entity.CategoryAnalytics, 7000, cheap, pricey),
	}
	overlaps := []*entity.OverlapPair{pairOf(cheap, pricey, 1.0)}

	recs := NewGenerator().Generate(matrix, overlaps)
	if len(recs) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(recs))
	}
	if recs[0].KeepProduct.Name != "Cheap Tool" {
		t.Errorf("keep = %s, want Cheap Tool (equal utilization retires the pricier one)", recs[0].KeepProduct.Name)
	}
	if recs[0].EstimatedSavings != 7000 {
		t.Errorf("savings = %v, want 7000", recs[0].EstimatedSavings)
	}
}

func TestGenerateSortedBySavingsThenCategory(t *testing.T) {
	mkCategory := func(category entity.SoftwareCategory, costA, costB float64) (*entity.CategoryOverlap, *entity.OverlapPair) {
		a := ref("A-"+string(category), costA, 80)
		b := ref("B-"+string(category), costB, 30)
		return categoryOf(category, costB, a, b), pairOf(a, b, 0.9)
	}

	crm, crmPair := mkCategory(entity.CategoryCRM, 10000, 5000)
	storage, storagePair := mkCategory(entity.CategoryStorage, 4000, 9000)
	analytics, analyticsPair := mkCategory(entity.CategoryAnalytics, 2000, 5000)

	recs := NewGenerator().Generate(
		[]*entity.CategoryOverlap{crm, storage, analytics},
		[]*entity.OverlapPair{crmPair, storagePair, analyticsPair},
	)
	if len(recs) != 3 {
		t.Fatalf("expected 3 recommendations, got %d", len(recs))
	}

	if recs[0].Category != entity.CategoryStorage {
		t.Errorf("first = %s, want storage (largest savings)", recs[0].Category)
	}
	// analytics and crm tie at 5000: category name ascending.
	if recs[1].Category != entity.CategoryAnalytics || recs[2].Category != entity.CategoryCRM {
		t.Errorf("tie order = %s, %s; want analytics, crm", recs[1].Category, recs[2].Category)
	}
}

func TestGenerateSkipsZeroCostCategories(t *testing.T) {
	a := ref("A", 1000, 50)
	b := ref("B", 2000, 60)

	matrix := []*entity.CategoryOverlap{
		categoryOf(entity.CategoryHR, 0, a, b),
	}
	overlaps := []*entity.OverlapPair{pairOf(a, b, 0)}

	recs := NewGenerator().Generate(matrix, overlaps)
	if len(recs) != 0 {
		t.Errorf("expected no recommendations for zero-cost category, got %d", len(recs))
	}
}

func TestGenerateExcludesNonContributingMembers(t *testing.T) {
	looker := ref("Looker", 10000, 90)
	tableau := ref("Tableau", 8000, 40)
	hotjar := ref("Hotjar", 5000, 20)

	matrix := []*entity.CategoryOverlap{
		categoryOf(entity.CategoryAnalytics, 8000, looker, tableau, hotjar),
	}
	overlaps := []*entity.OverlapPair{
		pairOf(looker, tableau, 0.9),
		pairOf(looker, hotjar, 0),
		pairOf(tableau, hotjar, 0),
	}

	recs := NewGenerator().Generate(matrix, overlaps)
	if len(recs) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(recs))
	}
	rec := recs[0]
	if rec.KeepProduct.Name != "Looker" {
		t.Errorf("keep = %s, want Looker", rec.KeepProduct.Name)
	}
	if len(rec.RetireProducts) != 1 || rec.RetireProducts[0].Name != "Tableau" {
		t.Errorf("retire = %+v, want only Tableau", rec.RetireProducts)
	}
	if rec.EstimatedSavings != 8000 {
		t.Errorf("savings = %v, want 8000", rec.EstimatedSavings)
	}
}
