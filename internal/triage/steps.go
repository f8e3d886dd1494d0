package triage

// maxNextSteps caps the synthesized list. The escalation prepend can
// push the category-specific step past the cap; that displacement is
// the documented behavior, not a bug.
const maxNextSteps = 4

// bridgeStep is the first action for critical/high incidents.
const bridgeStep = "Start incident bridge and assign an incident commander (IC)"

// NextSteps synthesizes a short ordered action list for the given
// category and severity: a fixed base, exactly one category-specific
// step, an incident-bridge prepend for escalated severities, truncated
// to four entries.
func NextSteps(category Category, severity Severity) []string {
	steps := []string{
		"Confirm scope (how many users/regions) and exact start time",
		"Capture exact error message(s) + timestamps",
		"Check monitoring/status for related service health",
	}

	switch category {
	case CategoryIdentityAccess:
		steps = append(steps, "Check IdP logs and recent SSO config/cert changes")
	case CategoryNetwork:
		steps = append(steps, "Check VPN/DNS health and region-specific impact")
	case CategoryPlatform:
		steps = append(steps, "Check recent deploys and service error-rate/latency graphs")
	default:
		steps = append(steps, "Identify any recent changes and known workarounds")
	}

	if severity.Escalates() {
		steps = append([]string{bridgeStep}, steps...)
	}

	if len(steps) > maxNextSteps {
		steps = steps[:maxNextSteps]
	}
	return steps
}
