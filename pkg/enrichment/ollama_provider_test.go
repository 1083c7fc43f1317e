package enrichment

import "testing"

func TestParseExtraction(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		wantCount int
		wantErr   bool
	}{
		{
			name: "clean json",
			content: `{"core_features":[{"feature_name":"Task Management","category":"Task Management","is_core":true}],"total_count":1}`,
			wantCount: 1,
		},
		{
			name: "json wrapped in prose",
			content: "Here is the result:\n{\"core_features\":[{\"feature_name\":\"Dashboards\",\"category\":\"Reporting & Analytics\"}],\"total_count\":1}\nDone.",
			wantCount: 1,
		},
		{
			name: "unknown category normalized",
			content: `{"core_features":[{"feature_name":"Quantum Sync","category":"Made Up Category"}],"total_count":1}`,
			wantCount: 1,
		},
		{
			name:    "no json at all",
			content: "I cannot help with that.",
			wantErr: true,
		},
		{
			name: "blank feature names dropped",
			content: `{"core_features":[{"feature_name":"  ","category":"Templates"},{"feature_name":"Boards","category":"Task Management"}],"total_count":2}`,
			wantCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			features, err := parseExtraction(tt.content)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseExtraction failed: %v", err)
			}
			if len(features) != tt.wantCount {
				t.Errorf("feature count = %d, want %d", len(features), tt.wantCount)
			}
			for _, f := range features {
				if NormalizeCategory(f.Category) != f.Category {
					t.Errorf("category %q not normalized", f.Category)
				}
			}
		})
	}
}

func TestNormalizeCategory(t *testing.T) {
	if got := NormalizeCategory("Task Management"); got != "Task Management" {
		t.Errorf("known category changed: %s", got)
	}
	if got := NormalizeCategory("Fancy Label"); got != "Other" {
		t.Errorf("unknown category = %s, want Other", got)
	}
}
