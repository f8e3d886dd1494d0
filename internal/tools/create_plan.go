package tools

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/itsmlab/itsmd/internal/desk"
)

// CreatePlanTool handles the create_research_plan MCP tool. It
// materializes a research-plan artifact and returns a resource URI the
// client can read it back from.
type CreatePlanTool struct {
	svc *desk.Service
}

// NewCreatePlanTool creates a CreatePlanTool.
func NewCreatePlanTool(svc *desk.Service) *CreatePlanTool {
	return &CreatePlanTool{svc: svc}
}

// Definition returns the MCP tool definition for registration.
func (t *CreatePlanTool) Definition() mcp.Tool {
	return mcp.NewTool("create_research_plan",
		mcp.WithDescription(
			"Create a research plan artifact and return a resource URI: "+
				"itsm://cases/<case_id>/research-plan. "+
				"Severity resolution: explicit severity, else impact+urgency, else medium. "+
				"Category resolution: explicit category, else keyword classification.",
		),
		mcp.WithString("short_description",
			mcp.Required(),
			mcp.Description("One-line summary of the problem"),
		),
		mcp.WithString("details",
			mcp.Required(),
			mcp.Description("Free-text description: error messages, scope, timeline"),
		),
		mcp.WithString("category",
			mcp.Description("Override the inferred category"),
			mcp.Enum("network", "identity_access", "platform", "email_collaboration", "general"),
		),
		mcp.WithString("severity",
			mcp.Description("Override the derived severity"),
			mcp.Enum("low", "medium", "high", "critical"),
		),
		mcp.WithString("impact",
			mcp.Description("Business impact tier, used with urgency when severity is not given"),
			mcp.Enum("low", "medium", "high"),
		),
		mcp.WithString("urgency",
			mcp.Description("Time-pressure tier, used with impact when severity is not given"),
			mcp.Enum("low", "medium", "high"),
		),
	)
}

// Handle processes the create_research_plan tool call.
func (t *CreatePlanTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	shortDescription := req.GetString("short_description", "")
	if strings.TrimSpace(shortDescription) == "" {
		return mcp.NewToolResultError("'short_description' is required"), nil
	}

	receipt, err := t.svc.CreatePlan(desk.PlanInput{
		ShortDescription: shortDescription,
		Details:          req.GetString("details", ""),
		Category:         req.GetString("category", ""),
		Severity:         req.GetString("severity", ""),
		Impact:           req.GetString("impact", ""),
		Urgency:          req.GetString("urgency", ""),
	})
	if err != nil {
		return nil, err
	}

	return jsonResult(receipt)
}
