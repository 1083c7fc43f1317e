package enrichment

import "context"

// ExtractedFeature is one capability returned by the extraction model.
type ExtractedFeature struct {
	Name            string `json:"feature_name"`
	Category        string `json:"category"`
	Description     string `json:"description"`
	IsCore          bool   `json:"is_core"`
	RequiresPremium bool   `json:"requires_premium"`
}

// Provider extracts the feature list of a software product from an LLM.
type Provider interface {
	ExtractFeatures(ctx context.Context, softwareName, vendor, description string) ([]ExtractedFeature, error)
}

// FeatureCategories is the fixed taxonomy the model is instructed to use.
// Anything outside it is normalized to "Other".
var FeatureCategories = []string{
	"Task Management",
	"Calendar & Scheduling",
	"Communication",
	"Document Management",
	"Reporting & Analytics",
	"Collaboration",
	"Workflow Automation",
	"Time Tracking",
	"Resource Management",
	"Budget & Finance",
	"CRM Features",
	"Project Planning",
	"Integration Hub",
	"Mobile Access",
	"Security & Permissions",
	"Customization",
	"Data Import/Export",
	"Search & Filter",
	"Notifications",
	"Templates",
}

// NormalizeCategory snaps a model-provided category onto the fixed taxonomy.
func NormalizeCategory(raw string) string {
	for _, c := range FeatureCategories {
		if c == raw {
			return c
		}
	}
	return "Other"
}
