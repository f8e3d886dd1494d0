package triage

import "testing"

func TestSeverityFromImpactUrgency_Matrix(t *testing.T) {
	tests := []struct {
		impact  string
		urgency string
		want    Severity
	}{
		{"high", "high", SeverityCritical},
		{"high", "medium", SeverityHigh},
		{"high", "low", SeverityHigh},
		{"medium", "high", SeverityHigh},
		{"low", "high", SeverityHigh},
		{"medium", "medium", SeverityMedium},
		{"medium", "low", SeverityLow},
		{"low", "medium", SeverityLow},
		{"low", "low", SeverityLow},
	}

	for _, tt := range tests {
		got := SeverityFromImpactUrgency(tt.impact, tt.urgency)
		if got != tt.want {
			t.Errorf("SeverityFromImpactUrgency(%q, %q) = %s, want %s",
				tt.impact, tt.urgency, got, tt.want)
		}
	}
}

func TestSeverityFromImpactUrgency_NormalizesInput(t *testing.T) {
	if got := SeverityFromImpactUrgency("  HIGH ", "High"); got != SeverityCritical {
		t.Errorf("mixed-case high/high = %s, want critical", got)
	}
}

func TestSeverityFromImpactUrgency_UnrecognizedFallsToLow(t *testing.T) {
	tests := []struct {
		impact  string
		urgency string
	}{
		{"", ""},
		{"urgent", "high-ish"},
		{"HIGHEST", "low"},
		{"high", ""},
		{"", "high"},
	}

	for _, tt := range tests {
		if got := SeverityFromImpactUrgency(tt.impact, tt.urgency); got != SeverityLow {
			t.Errorf("SeverityFromImpactUrgency(%q, %q) = %s, want low",
				tt.impact, tt.urgency, got)
		}
	}
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		in     string
		want   Severity
		wantOK bool
	}{
		{"critical", SeverityCritical, true},
		{" HIGH ", SeverityHigh, true},
		{"medium", SeverityMedium, true},
		{"low", SeverityLow, true},
		{"", SeverityLow, false},
		{"sev1", SeverityLow, false},
	}

	for _, tt := range tests {
		got, ok := ParseSeverity(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseSeverity(%q) = (%s, %v), want (%s, %v)",
				tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestSeverityEscalates(t *testing.T) {
	if !SeverityCritical.Escalates() || !SeverityHigh.Escalates() {
		t.Error("critical and high must escalate")
	}
	if SeverityMedium.Escalates() || SeverityLow.Escalates() {
		t.Error("medium and low must not escalate")
	}
}

func TestSeverityAtLeast_TotalOrder(t *testing.T) {
	ordered := []Severity{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}
	for i, lower := range ordered {
		for j, higher := range ordered {
			got := higher.AtLeast(lower)
			want := j >= i
			if got != want {
				t.Errorf("%s.AtLeast(%s) = %v, want %v", higher, lower, got, want)
			}
		}
	}
}
