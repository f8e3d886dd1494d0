// Package triage implements the deterministic incident-triage rules:
// the impact/urgency severity matrix, the keyword-based category
// classifier, and the next-steps synthesizer.
//
// All inputs are treated liberally: unrecognized impact, urgency,
// severity, or category strings are never rejected — they normalize
// through Normalize and fall through to the lowest severity or the
// general category. A stricter mode only needs to replace Normalize.
package triage

import "strings"

// --- Severity enum ---

// Severity is the normalized triage tier derived from impact × urgency.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// severityRank orders severities for escalation decisions:
// low < medium < high < critical.
var severityRank = map[Severity]int{
	SeverityLow:      0,
	SeverityMedium:   1,
	SeverityHigh:     2,
	SeverityCritical: 3,
}

// ParseSeverity normalizes s and reports whether it names a known
// severity. Unknown strings return (SeverityLow, false).
func ParseSeverity(s string) (Severity, bool) {
	sev := Severity(Normalize(s))
	if _, ok := severityRank[sev]; ok {
		return sev, true
	}
	return SeverityLow, false
}

// Escalates reports whether the severity warrants incident-bridge
// handling (critical or high).
func (s Severity) Escalates() bool {
	return s == SeverityCritical || s == SeverityHigh
}

// AtLeast reports whether s is at or above other in the severity order.
func (s Severity) AtLeast(other Severity) bool {
	return severityRank[s] >= severityRank[other]
}

// --- Normalization ---

// Normalize is the single leniency seam for enum-like inputs:
// trimmed and lower-cased. Unrecognized values come out as strings
// that match no rule and fall through to the default arm.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// --- Severity matrix ---

// SeverityFromImpactUrgency maps an (impact, urgency) pair to a
// severity. Rules are evaluated in order, first match wins:
//
//	high   × high          → critical
//	high   × medium|low    → high
//	medium|low × high      → high
//	medium × medium        → medium
//	anything else          → low
//
// Empty or unrecognized strings match nothing and land on low.
func SeverityFromImpactUrgency(impact, urgency string) Severity {
	i := Normalize(impact)
	u := Normalize(urgency)

	switch {
	case i == "high" && u == "high":
		return SeverityCritical
	case i == "high" && (u == "medium" || u == "low"):
		return SeverityHigh
	case u == "high" && (i == "medium" || i == "low"):
		return SeverityHigh
	case i == "medium" && u == "medium":
		return SeverityMedium
	default:
		return SeverityLow
	}
}
