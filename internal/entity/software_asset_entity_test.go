package entity

import "testing"

func TestParseCategory(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want SoftwareCategory
	}{
		{"canonical value", "crm", CategoryCRM},
		{"canonical underscore value", "project_management", CategoryProjectManagement},
		{"alias", "Customer Relationship Management", CategoryCRM},
		{"alias with whitespace", "  Video Conferencing  ", CategoryCommunication},
		{"mixed case alias", "CLOUD STORAGE", CategoryStorage},
		{"task management maps to project management", "Task Management", CategoryProjectManagement},
		{"unknown label", "quantum blockchain", CategoryOther},
		{"empty", "", CategoryOther},
		{"whitespace only", "   ", CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseCategory(tt.raw); got != tt.want {
				t.Errorf("ParseCategory(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestIsActive(t *testing.T) {
	active := SoftwareAsset{Status: AssetStatusActive}
	inactive := SoftwareAsset{Status: AssetStatusInactive}

	if !active.IsActive() {
		t.Error("expected active asset to report active")
	}
	if inactive.IsActive() {
		t.Error("expected inactive asset to report inactive")
	}
}
