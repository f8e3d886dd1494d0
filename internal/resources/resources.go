// Package resources implements the MCP resource endpoints: the
// severity policy snapshot, KB article bodies, and research plans for
// previously created cases. Resources are read-only; all addressing is
// itsm:// URI based.
package resources

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/itsmlab/itsmd/internal/cases"
	"github.com/itsmlab/itsmd/internal/kb"
	"github.com/itsmlab/itsmd/internal/plan"
)

// PlanReader looks up the research plan for a case. Satisfied by
// desk.Service.
type PlanReader interface {
	GetPlan(caseID string) (plan.ResearchPlan, error)
}

// Handler serves all itsm:// resources.
type Handler struct {
	plans   PlanReader
	catalog []kb.Article
}

// NewHandler creates a resource Handler with its dependencies.
func NewHandler(plans PlanReader, catalog []kb.Article) *Handler {
	return &Handler{plans: plans, catalog: catalog}
}

// --- Severity policy ---

// PolicyResource returns the static severity-policy resource definition.
func (h *Handler) PolicyResource() mcp.Resource {
	return mcp.NewResource(
		PolicyURI,
		"Incident Severity Policy",
		mcp.WithResourceDescription("Snapshot of the severity tiers and paging rules"),
		mcp.WithMIMEType("text/markdown"),
	)
}

// HandlePolicy serves the severity policy snapshot.
func (h *Handler) HandlePolicy(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return textResource(req.Params.URI, "text/markdown", policyText), nil
}

const policyText = `# Incident Severity Policy (Snapshot)

- Critical: major service down / widespread customer impact / safety or compliance risk
- High: significant degradation or many users impacted
- Medium: limited impact, workaround exists
- Low: minor issue or single user impact

Always follow your org's paging + incident commander rules for High/Critical.
`

// --- KB articles ---

// KBTemplate returns the resource template for KB article bodies.
func (h *Handler) KBTemplate() mcp.ResourceTemplate {
	return mcp.NewResourceTemplate(
		KBURITemplate,
		"KB Article",
		mcp.WithTemplateDescription("Knowledge-base article body by article id"),
		mcp.WithTemplateMIMEType("text/plain"),
	)
}

// HandleKB serves a KB article body. Unknown ids get a miss message,
// not an error — the catalog is fixed and misses are expected.
func (h *Handler) HandleKB(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	articleID := articleIDFromURI(req.Params.URI)
	a, ok := kb.Find(h.catalog, articleID)
	if !ok {
		return textResource(req.Params.URI, "text/plain",
			fmt.Sprintf("No KB article found for %s.", articleID)), nil
	}
	return textResource(req.Params.URI, "text/plain", a.Body), nil
}

// --- Case research plans ---

// CasePlanResourceTemplate returns the resource template for research plans.
func (h *Handler) CasePlanResourceTemplate() mcp.ResourceTemplate {
	return mcp.NewResourceTemplate(
		CasePlanTemplate,
		"Case Research Plan",
		mcp.WithTemplateDescription("Research plan for a previously created case"),
		mcp.WithTemplateMIMEType("text/markdown"),
	)
}

// HandleCasePlan renders a case's research plan as markdown. A missing
// case is a normal negative result and is surfaced as a readable
// message, never masked as a transport fault.
func (h *Handler) HandleCasePlan(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	caseID := caseIDFromURI(req.Params.URI)

	p, err := h.plans.GetPlan(caseID)
	if errors.Is(err, cases.ErrNotFound) {
		return textResource(req.Params.URI, "text/plain", fmt.Sprintf(
			"No research plan found for case_id=%s. Create one via tool create_research_plan().", caseID)), nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading plan for %s: %w", caseID, err)
	}

	return textResource(req.Params.URI, "text/markdown", renderPlan(caseID, p)), nil
}

// renderPlan formats a research plan as the markdown document clients
// receive when reading the case resource.
func renderPlan(caseID string, p plan.ResearchPlan) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Research Plan: %s\n\n", caseID)
	fmt.Fprintf(&b, "## Context\n%s\n\n", p.IncidentContext)
	fmt.Fprintf(&b, "## Category / Severity\n- Category: %s\n- Severity: %s\n\n", p.Category, p.Severity)
	writeSection(&b, "Hypotheses", p.Hypotheses)
	writeSection(&b, "Checks", p.Checks)
	writeSection(&b, "Evidence to Collect", p.EvidenceToCollect)
	fmt.Fprintf(&b, "## Note\n%s\n", p.Note)
	return b.String()
}

func writeSection(b *strings.Builder, title string, items []string) {
	fmt.Fprintf(b, "## %s\n", title)
	for _, item := range items {
		fmt.Fprintf(b, "- %s\n", item)
	}
	b.WriteString("\n")
}

// textResource wraps text content in the single-element contents slice
// the MCP read_resource response expects.
func textResource(uri, mimeType, text string) []mcp.ResourceContents {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: mimeType,
			Text:     text,
		},
	}
}
