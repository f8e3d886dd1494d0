// Package desk is the triage facade: it composes the severity matrix,
// category classifier, KB ranker, next-steps synthesizer, research-plan
// builder, and case store into the two decision operations external
// collaborators call, and emits one audit event per decision.
package desk

import (
	"fmt"
	"strings"

	"github.com/itsmlab/itsmd/internal/audit"
	"github.com/itsmlab/itsmd/internal/cases"
	"github.com/itsmlab/itsmd/internal/kb"
	"github.com/itsmlab/itsmd/internal/plan"
	"github.com/itsmlab/itsmd/internal/triage"
)

// RefEncoder turns core identifiers into resource locator strings.
// The core only produces case/article ids; the transport layer owns
// the URI syntax.
type RefEncoder interface {
	Policy() string
	KBArticle(articleID string) string
	CasePlan(caseID string) string
}

// Service is the only entry point collaborators call. It holds no
// hidden global state — the ranker, case store, audit sink, and
// locator encoder are injected at construction.
type Service struct {
	ranker *kb.Ranker
	cases  cases.Store
	audit  audit.Logger
	refs   RefEncoder
}

// NewService wires the triage facade.
func NewService(ranker *kb.Ranker, store cases.Store, logger audit.Logger, refs RefEncoder) *Service {
	return &Service{ranker: ranker, cases: store, audit: logger, refs: refs}
}

// --- Incident pack ---

// IncidentInput is the caller-supplied signal set for an incident pack.
type IncidentInput struct {
	ShortDescription  string
	Details           string
	Impact            string
	Urgency           string
	CustomerImpacting bool
	MaxKBResults      int
}

// Incident is the normalized summary block of an IncidentPack.
type Incident struct {
	Summary           string          `json:"summary"`
	Category          triage.Category `json:"category"`
	Severity          triage.Severity `json:"severity"`
	CustomerImpacting bool            `json:"customer_impacting"`
	EscalationHint    string          `json:"escalation_hint"`
}

// PackResources lists the policy and KB locators a client should fetch.
type PackResources struct {
	PolicyURIs []string `json:"policy_uris"`
	KBURIs     []string `json:"kb_uris"`
}

// IncidentPack is the machine-usable triage bundle. Produced fresh per
// call, never stored; identical inputs yield identical packs.
type IncidentPack struct {
	Incident  Incident      `json:"incident"`
	NextSteps []string      `json:"next_steps"`
	Resources PackResources `json:"resources"`
	Notes     string        `json:"notes"`
}

// BuildIncidentPack derives severity and category, synthesizes next
// steps, ranks the KB catalog, and emits one audit event.
func (s *Service) BuildIncidentPack(in IncidentInput) IncidentPack {
	text := in.ShortDescription + "\n" + in.Details
	severity := triage.SeverityFromImpactUrgency(in.Impact, in.Urgency)
	category := triage.Classify(text)

	shouldEscalate := in.CustomerImpacting || severity.Escalates()
	hint := "Handle in service desk queue"
	if shouldEscalate {
		hint = "Escalate to on-call"
	}

	kbIDs := s.ranker.Rank(category, text, in.MaxKBResults)
	kbURIs := make([]string, len(kbIDs))
	for i, id := range kbIDs {
		kbURIs[i] = s.refs.KBArticle(id)
	}

	pack := IncidentPack{
		Incident: Incident{
			Summary:           strings.TrimSpace(in.ShortDescription),
			Category:          category,
			Severity:          severity,
			CustomerImpacting: in.CustomerImpacting,
			EscalationHint:    hint,
		},
		NextSteps: triage.NextSteps(category, severity),
		Resources: PackResources{
			PolicyURIs: []string{s.refs.Policy()},
			KBURIs:     kbURIs,
		},
		Notes: "Client should fetch any URIs it wants via read_resource() and include in the prompt/context.",
	}

	s.audit.Record("incident_pack", map[string]any{
		"inputs": map[string]any{
			"short_description":  in.ShortDescription,
			"impact":             in.Impact,
			"urgency":            in.Urgency,
			"customer_impacting": in.CustomerImpacting,
		},
		"result": pack,
	})
	return pack
}

// --- Research plan ---

// PlanInput is the caller-supplied signal set for creating a research
// plan. Category, severity, impact, and urgency are all optional.
type PlanInput struct {
	ShortDescription string
	Details          string
	Category         string
	Severity         string
	Impact           string
	Urgency          string
}

// PlanReceipt references a freshly created case.
type PlanReceipt struct {
	CaseID      string          `json:"case_id"`
	ResourceURI string          `json:"resource_uri"`
	Category    triage.Category `json:"category"`
	Severity    triage.Severity `json:"severity"`
	Summary     string          `json:"summary"`
}

// CreatePlan resolves category and severity, builds the plan, stores a
// new case, and emits one audit event.
//
// Severity precedence: explicit severity, else impact+urgency through
// the matrix when both are present, else medium. Category precedence:
// explicit category, else keyword classification. Unrecognized
// explicit values fall through the normalization defaults rather than
// erroring.
func (s *Service) CreatePlan(in PlanInput) (PlanReceipt, error) {
	category := triage.Classify(in.ShortDescription + "\n" + in.Details)
	if strings.TrimSpace(in.Category) != "" {
		category, _ = triage.ParseCategory(in.Category)
	}

	severity := triage.SeverityMedium
	switch {
	case strings.TrimSpace(in.Severity) != "":
		severity, _ = triage.ParseSeverity(in.Severity)
	case strings.TrimSpace(in.Impact) != "" && strings.TrimSpace(in.Urgency) != "":
		severity = triage.SeverityFromImpactUrgency(in.Impact, in.Urgency)
	}

	p := plan.Build(category, severity, in.ShortDescription, in.Details)
	caseID, err := s.cases.Create(in.ShortDescription, in.Details, p)
	if err != nil {
		return PlanReceipt{}, fmt.Errorf("creating case: %w", err)
	}

	receipt := PlanReceipt{
		CaseID:      caseID,
		ResourceURI: s.refs.CasePlan(caseID),
		Category:    category,
		Severity:    severity,
		Summary:     "Research plan created. Fetch it via read_resource(resource_uri).",
	}

	s.audit.Record("create_research_plan", map[string]any{
		"inputs": map[string]any{"short_description": in.ShortDescription},
		"result": receipt,
	})
	return receipt, nil
}

// GetPlan looks up the research plan for a case. Unknown ids return
// cases.ErrNotFound.
func (s *Service) GetPlan(caseID string) (plan.ResearchPlan, error) {
	c, err := s.cases.Get(caseID)
	if err != nil {
		return plan.ResearchPlan{}, err
	}
	return c.Plan, nil
}

// RankKB exposes the KB ranking directly.
func (s *Service) RankKB(category triage.Category, text string, max int) []string {
	return s.ranker.Rank(category, text, max)
}
