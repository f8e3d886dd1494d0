// Package prompts implements the MCP prompt handlers. Prompts are
// user-triggered templates; unlike tools, the host initiates them.
package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// ClarifyPrompt handles the ask_clarifying_questions MCP prompt. It
// produces a template asking the AI to generate the minimum set of
// triage questions for a category/severity pair.
type ClarifyPrompt struct{}

// NewClarifyPrompt creates a ClarifyPrompt.
func NewClarifyPrompt() *ClarifyPrompt {
	return &ClarifyPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *ClarifyPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("ask_clarifying_questions",
		mcp.WithPromptDescription(
			"Generate short, numbered clarifying questions for triaging an "+
				"incident of a given category and severity.",
		),
		mcp.WithArgument("category",
			mcp.ArgumentDescription("Problem category (network, identity_access, platform, email_collaboration, general)"),
		),
		mcp.WithArgument("severity",
			mcp.ArgumentDescription("Severity tier (low, medium, high, critical)"),
		),
	)
}

// Handle processes the ask_clarifying_questions prompt request.
func (p *ClarifyPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	category := "general"
	severity := "medium"
	if args := req.Params.Arguments; args != nil {
		if c, ok := args["category"]; ok && c != "" {
			category = c
		}
		if s, ok := args["severity"]; ok && s != "" {
			severity = s
		}
	}

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Clarifying questions for %s/%s incident", category, severity),
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(fmt.Sprintf(
					"You are an IT Service Desk assistant. Ask only the minimum clarifying "+
						"questions needed to triage and resolve. Keep questions short and numbered.\n\n"+
						"Generate clarifying questions for:\n"+
						"Category: %s\n"+
						"Severity: %s\n\n"+
						"Ask about:\n"+
						"1) Scope (# users, locations)\n"+
						"2) Exact error messages\n"+
						"3) Timeframe (when it started)\n"+
						"4) Recent changes\n"+
						"5) What has been tried already\n",
					category, severity,
				)),
			},
		},
	}, nil
}
