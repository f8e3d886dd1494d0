// Package tools implements the MCP tool handlers for the triage
// service. Handlers follow one pattern: a struct with the desk service
// injected via constructor, Definition() returning the mcp.Tool
// schema, and Handle() processing the request.
//
// Tools are thin plumbing — every decision is made by internal/desk.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/itsmlab/itsmd/internal/desk"
)

// defaultMaxKBResults is the KB suggestion count when the caller
// doesn't ask for a specific number.
const defaultMaxKBResults = 3

// IncidentPackTool handles the incident_pack MCP tool.
type IncidentPackTool struct {
	svc *desk.Service
}

// NewIncidentPackTool creates an IncidentPackTool.
func NewIncidentPackTool(svc *desk.Service) *IncidentPackTool {
	return &IncidentPackTool{svc: svc}
}

// Definition returns the MCP tool definition for registration.
func (t *IncidentPackTool) Definition() mcp.Tool {
	return mcp.NewTool("incident_pack",
		mcp.WithDescription(
			"Returns a machine-usable incident bundle (not just prose): "+
				"normalized severity/category/summary, recommended next steps, "+
				"suggested KB resource URIs to fetch via read_resource(), and "+
				"references to policy resources.",
		),
		mcp.WithString("short_description",
			mcp.Required(),
			mcp.Description("One-line summary of the problem"),
		),
		mcp.WithString("details",
			mcp.Required(),
			mcp.Description("Free-text description: error messages, scope, timeline"),
		),
		mcp.WithString("impact",
			mcp.Required(),
			mcp.Description("Business impact tier"),
			mcp.Enum("low", "medium", "high"),
		),
		mcp.WithString("urgency",
			mcp.Required(),
			mcp.Description("Time-pressure tier"),
			mcp.Enum("low", "medium", "high"),
		),
		mcp.WithBoolean("customer_impacting",
			mcp.Description("Whether external customers are affected (default: false)"),
		),
		mcp.WithNumber("max_kb_results",
			mcp.Description("Max suggested KB articles, clamped to 1-10 (default: 3)"),
		),
	)
}

// Handle processes the incident_pack tool call.
func (t *IncidentPackTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	shortDescription := req.GetString("short_description", "")
	if strings.TrimSpace(shortDescription) == "" {
		return mcp.NewToolResultError("'short_description' is required"), nil
	}

	pack := t.svc.BuildIncidentPack(desk.IncidentInput{
		ShortDescription:  shortDescription,
		Details:           req.GetString("details", ""),
		Impact:            req.GetString("impact", ""),
		Urgency:           req.GetString("urgency", ""),
		CustomerImpacting: boolArg(req, "customer_impacting", false),
		MaxKBResults:      intArg(req, "max_kb_results", defaultMaxKBResults),
	})

	return jsonResult(pack)
}

// jsonResult marshals v as indented JSON into a text tool result.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
