package triage

import (
	"strings"
	"testing"
)

func TestNextSteps_NeverMoreThanFour(t *testing.T) {
	categories := []Category{
		CategoryNetwork, CategoryIdentityAccess, CategoryPlatform,
		CategoryEmailCollaboration, CategoryGeneral,
	}
	severities := []Severity{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}

	for _, cat := range categories {
		for _, sev := range severities {
			steps := NextSteps(cat, sev)
			if len(steps) > 4 {
				t.Errorf("NextSteps(%s, %s) returned %d steps, want <= 4", cat, sev, len(steps))
			}
		}
	}
}

func TestNextSteps_EscalatedStartsWithBridge(t *testing.T) {
	for _, sev := range []Severity{SeverityCritical, SeverityHigh} {
		steps := NextSteps(CategoryNetwork, sev)
		if len(steps) == 0 || !strings.HasPrefix(steps[0], "Start incident bridge") {
			t.Errorf("NextSteps(network, %s)[0] = %q, want incident-bridge step", sev, steps[0])
		}
	}
}

func TestNextSteps_NonEscalatedHasCategoryStep(t *testing.T) {
	tests := []struct {
		category Category
		fragment string
	}{
		{CategoryIdentityAccess, "IdP logs"},
		{CategoryNetwork, "VPN/DNS health"},
		{CategoryPlatform, "recent deploys"},
		{CategoryEmailCollaboration, "recent changes and known workarounds"},
		{CategoryGeneral, "recent changes and known workarounds"},
	}

	for _, tt := range tests {
		steps := NextSteps(tt.category, SeverityMedium)
		if len(steps) != 4 {
			t.Fatalf("NextSteps(%s, medium) returned %d steps, want 4", tt.category, len(steps))
		}
		if !strings.Contains(steps[3], tt.fragment) {
			t.Errorf("NextSteps(%s, medium)[3] = %q, want it to mention %q",
				tt.category, steps[3], tt.fragment)
		}
	}
}

func TestNextSteps_EscalationDisplacesCategoryStep(t *testing.T) {
	// The bridge prepend pushes the category-specific step past the
	// four-item cap. That displacement is pinned behavior.
	steps := NextSteps(CategoryIdentityAccess, SeverityCritical)
	if len(steps) != 4 {
		t.Fatalf("got %d steps, want 4", len(steps))
	}
	for _, s := range steps {
		if strings.Contains(s, "IdP logs") {
			t.Errorf("escalated list still contains the category step: %q", s)
		}
	}
	if !strings.HasPrefix(steps[0], "Start incident bridge") {
		t.Errorf("steps[0] = %q, want incident-bridge step", steps[0])
	}
}

func TestNextSteps_BaseOrderPreserved(t *testing.T) {
	steps := NextSteps(CategoryGeneral, SeverityLow)
	wantPrefixes := []string{
		"Confirm scope",
		"Capture exact error",
		"Check monitoring/status",
		"Identify any recent changes",
	}
	for i, prefix := range wantPrefixes {
		if !strings.HasPrefix(steps[i], prefix) {
			t.Errorf("steps[%d] = %q, want prefix %q", i, steps[i], prefix)
		}
	}
}
