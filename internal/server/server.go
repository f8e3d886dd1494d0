// Package server wires the triage service and its MCP surface.
//
// This is the composition root: it creates the catalog, ranker, case
// store, audit sink, and desk service, and registers every tool,
// resource, and prompt. No business logic lives here, only wiring.
package server

import (
	"log"

	"github.com/mark3labs/mcp-go/server"

	"github.com/itsmlab/itsmd/internal/audit"
	"github.com/itsmlab/itsmd/internal/cases"
	"github.com/itsmlab/itsmd/internal/config"
	"github.com/itsmlab/itsmd/internal/desk"
	"github.com/itsmlab/itsmd/internal/kb"
	"github.com/itsmlab/itsmd/internal/prompts"
	"github.com/itsmlab/itsmd/internal/resources"
	"github.com/itsmlab/itsmd/internal/tools"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates and configures the MCP server with all tools, resources,
// and prompts registered. The returned cleanup function closes the
// audit sink and (when enabled) the sqlite case store; it is always
// non-nil and safe to call.
//
// Degraded subsystems never abort startup: a failed audit sink logs a
// warning and drops events, a failed sqlite open falls back to the
// in-memory store. Triage itself always works.
func New(cfg config.Config) (*server.MCPServer, func(), error) {
	cleanup := noop

	// --- Audit sink ---

	var auditLogger audit.Logger = audit.Nop{}
	fileLogger, err := audit.NewFileLogger(cfg.AuditLog)
	if err != nil {
		log.Printf("WARNING: audit sink disabled: %v", err)
	} else {
		auditLogger = fileLogger
		cleanup = chain(cleanup, func() {
			if err := fileLogger.Close(); err != nil {
				log.Printf("WARNING: audit log close: %v", err)
			}
		})
	}

	// --- Case store ---

	var caseStore cases.Store = cases.NewMemStore()
	if cfg.CaseDB != "" {
		sqliteStore, err := cases.NewSQLiteStore(cfg.CaseDB)
		if err != nil {
			log.Printf("WARNING: sqlite case store disabled, using in-memory: %v", err)
		} else {
			caseStore = sqliteStore
			cleanup = chain(cleanup, func() {
				if err := sqliteStore.Close(); err != nil {
					log.Printf("WARNING: case store close: %v", err)
				}
			})
		}
	}

	// --- Triage facade ---

	catalog := kb.DefaultCatalog()
	svc := desk.NewService(kb.NewRanker(catalog), caseStore, auditLogger, resources.Locator{})

	// --- Create the MCP server ---

	s := server.NewMCPServer(
		"itsm-service-desk",
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	// --- Register tools ---

	packTool := tools.NewIncidentPackTool(svc)
	s.AddTool(packTool.Definition(), packTool.Handle)

	planTool := tools.NewCreatePlanTool(svc)
	s.AddTool(planTool.Definition(), planTool.Handle)

	// --- Register resources ---

	resourceHandler := resources.NewHandler(svc, catalog)
	s.AddResource(resourceHandler.PolicyResource(), resourceHandler.HandlePolicy)
	s.AddResourceTemplate(resourceHandler.KBTemplate(), resourceHandler.HandleKB)
	s.AddResourceTemplate(resourceHandler.CasePlanResourceTemplate(), resourceHandler.HandleCasePlan)

	// --- Register prompts ---

	clarifyPrompt := prompts.NewClarifyPrompt()
	s.AddPrompt(clarifyPrompt.Definition(), clarifyPrompt.Handle)

	return s, cleanup, nil
}

// noop is the default cleanup when nothing needs closing.
func noop() {}

// chain composes cleanup functions, running them in reverse order of
// registration.
func chain(prev, next func()) func() {
	return func() {
		next()
		prev()
	}
}

// serverInstructions tells the AI host how to use the service desk.
func serverInstructions() string {
	return `You have access to an ITSM service desk triage server.

## Tools
- incident_pack: call this first when a user reports a problem. Supply the
  short description, details, and impact/urgency tiers. The response is a
  machine-usable bundle: normalized severity and category, next steps, and
  resource URIs worth fetching.
- create_research_plan: call this to materialize a structured investigation
  plan as a durable case artifact. The response includes a resource_uri —
  read it back via read_resource to get the full plan.

## Resources
- itsm://policies/incident-severity: the severity policy snapshot. Fetch it
  when deciding whether to page.
- itsm://kb/{article_id}: KB article bodies. incident_pack suggests which
  ones are relevant.
- itsm://cases/{case_id}/research-plan: research plans for created cases.

## Prompt
- ask_clarifying_questions: generates the minimum triage questions for a
  category/severity pair. Use it before escalating ambiguous reports.

Fetch suggested resource URIs and include them in your context before
advising the user. Severity and category in responses are authoritative —
do not re-derive them.`
}
