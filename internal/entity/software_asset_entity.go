// Domain entity for software assets (a company's purchased products)
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type AssetStatus string

const (
	AssetStatusActive   AssetStatus = "active"
	AssetStatusInactive AssetStatus = "inactive"
)

// SoftwareCategory is the validated taxonomy for software assets.
// Free-text input is normalized through ParseCategory; anything that does
// not match a known bucket lands in CategoryOther.
type SoftwareCategory string

const (
	CategoryCRM               SoftwareCategory = "crm"
	CategoryCommunication     SoftwareCategory = "communication"
	CategoryProjectManagement SoftwareCategory = "project_management"
	CategoryAnalytics         SoftwareCategory = "analytics"
	CategoryStorage           SoftwareCategory = "storage"
	CategorySecurity          SoftwareCategory = "security"
	CategoryHR                SoftwareCategory = "hr"
	CategoryFinance           SoftwareCategory = "finance"
	CategoryDevTools          SoftwareCategory = "dev_tools"
	CategoryDesign            SoftwareCategory = "design"
	CategoryMarketing         SoftwareCategory = "marketing"
	CategoryOther             SoftwareCategory = "other"
)

// categoryAliases maps normalized free-text labels to the fixed taxonomy.
// The long tail of vendor-invented labels falls through to CategoryOther.
var categoryAliases = map[string]SoftwareCategory{
	"crm":                              CategoryCRM,
	"customer relationship management": CategoryCRM,
	"sales":                            CategoryCRM,
	"communication":                    CategoryCommunication,
	"messaging":                        CategoryCommunication,
	"video conferencing":               CategoryCommunication,
	"chat":                             CategoryCommunication,
	"project management":               CategoryProjectManagement,
	"task management":                  CategoryProjectManagement,
	"work management":                  CategoryProjectManagement,
	"analytics":                        CategoryAnalytics,
	"business intelligence":            CategoryAnalytics,
	"reporting & analytics":            CategoryAnalytics,
	"reporting":                        CategoryAnalytics,
	"storage":                          CategoryStorage,
	"cloud storage":                    CategoryStorage,
	"document management":              CategoryStorage,
	"security":                         CategorySecurity,
	"identity management":              CategorySecurity,
	"hr":                               CategoryHR,
	"human resources":                  CategoryHR,
	"people management":                CategoryHR,
	"finance":                          CategoryFinance,
	"accounting":                       CategoryFinance,
	"budget & finance":                 CategoryFinance,
	"dev tools":                        CategoryDevTools,
	"developer tools":                  CategoryDevTools,
	"engineering":                      CategoryDevTools,
	"design":                           CategoryDesign,
	"marketing":                        CategoryMarketing,
	"marketing automation":             CategoryMarketing,
}

// ParseCategory normalizes a free-text category label into the taxonomy.
func ParseCategory(raw string) SoftwareCategory {
	key := strings.ToLower(strings.TrimSpace(raw))
	if key == "" {
		return CategoryOther
	}
	if cat, ok := categoryAliases[key]; ok {
		return cat
	}
	// Accept canonical values as-is (e.g. "project_management")
	switch SoftwareCategory(key) {
	case CategoryCRM, CategoryCommunication, CategoryProjectManagement,
		CategoryAnalytics, CategoryStorage, CategorySecurity, CategoryHR,
		CategoryFinance, CategoryDevTools, CategoryDesign, CategoryMarketing,
		CategoryOther:
		return SoftwareCategory(key)
	}
	return CategoryOther
}

// SoftwareAsset is one purchased product in a company's portfolio.
type SoftwareAsset struct {
	Id              uuid.UUID
	CompanyId       uuid.UUID
	Name            string
	VendorName      string
	Category        SoftwareCategory
	AnnualCost      float64 // non-negative, per year
	LicenseCount    int
	UtilizationRate float64 // 0-100
	Status          AssetStatus
	CatalogId       *uuid.UUID // reference into the feature catalog
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}

func (a *SoftwareAsset) IsActive() bool {
	return a.Status == AssetStatusActive
}
