// Package plan builds structured research plans — hypothesis/check/
// evidence documents for investigating an incident in a given category
// at a given severity.
package plan

import (
	"strings"

	"github.com/itsmlab/itsmd/internal/triage"
)

// ResearchPlan is an immutable investigation document. Once built it
// is never mutated; escalated severities get one extra leading entry
// in Checks and EvidenceToCollect.
type ResearchPlan struct {
	Category          triage.Category `json:"category"`
	Severity          triage.Severity `json:"severity"`
	IncidentContext   string          `json:"incident_context"`
	Hypotheses        []string        `json:"hypotheses"`
	Checks            []string        `json:"checks"`
	EvidenceToCollect []string        `json:"evidence_to_collect"`
	Note              string          `json:"note"`
}

// Build selects the category's template triple and assembles the plan.
// The incident context is the newline-joined, trimmed concatenation of
// short description and details, verbatim — no truncation.
func Build(category triage.Category, severity triage.Severity, shortDescription, details string) ResearchPlan {
	context := strings.TrimSpace(shortDescription + "\n" + details)

	var hypotheses, checks, evidence []string
	switch category {
	case triage.CategoryIdentityAccess:
		hypotheses = []string{
			"Identity provider issue or outage",
			"Recent SSO config/cert change",
			"Clock skew causing token validity failures",
		}
		checks = []string{
			"Check IdP status + auth error patterns",
			"Review recent SSO changes (SAML/OAuth/certs)",
			"Validate time sync (NTP) for key systems",
		}
		evidence = []string{
			"Exact error text + timestamps + impacted app URL",
			"Auth log excerpts and request IDs if available",
			"List of affected users/groups/regions",
		}
	case triage.CategoryNetwork:
		hypotheses = []string{"Regional ISP issue", "VPN gateway saturation", "DNS issue"}
		checks = []string{"Check network dashboards", "Compare affected vs unaffected regions", "Validate DNS resolution paths"}
		evidence = []string{"Traceroute/ping from affected users", "VPN gateway metrics", "Time window + location map"}
	case triage.CategoryPlatform:
		hypotheses = []string{"Recent deploy regression", "Dependency outage", "Resource exhaustion"}
		checks = []string{"Review recent deploys", "Check service metrics/logs", "Verify dependencies health"}
		evidence = []string{"Service logs around onset", "Dashboard screenshots", "Deployment IDs/change records"}
	default:
		hypotheses = []string{"Misconfiguration", "Transient outage", "User-specific issue"}
		checks = []string{"Confirm scope/timeframe", "Check status dashboards", "Review recent changes"}
		evidence = []string{"Error text + timestamps", "User/device context", "Steps already tried"}
	}

	if severity.Escalates() {
		checks = append([]string{"Start incident bridge and establish comms cadence"}, checks...)
		evidence = append([]string{"Business impact summary + blast radius estimate"}, evidence...)
	}

	return ResearchPlan{
		Category:          category,
		Severity:          severity,
		IncidentContext:   context,
		Hypotheses:        hypotheses,
		Checks:            checks,
		EvidenceToCollect: evidence,
		Note:              "Guidance only. Follow your org's incident process.",
	}
}
