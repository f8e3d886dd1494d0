// itsmctl: smoke-test client for the itsmd MCP server.
//
// Spawns itsmd over stdio and walks the full surface: tool discovery,
// incident_pack, create_research_plan, reading the created plan
// resource, and fetching the clarifying-questions prompt.
//
// Usage:
//
//	itsmctl tools [itsmd-binary]    # List the server's tools
//	itsmctl smoke [itsmd-binary]    # Run the full smoke flow
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/mcp"
)

const version = "dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	serverBin := "itsmd"
	if len(os.Args) > 2 {
		serverBin = os.Args[2]
	}

	var err error
	switch os.Args[1] {
	case "tools":
		err = withClient(serverBin, listTools)
	case "smoke":
		err = withClient(serverBin, smoke)
	case "--help", "-h", "help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// withClient spawns the server, initializes the MCP session, and runs fn.
func withClient(serverBin string, fn func(ctx context.Context, c *client.Client) error) error {
	c, err := client.NewStdioMCPClient(serverBin, nil, "serve")
	if err != nil {
		return fmt.Errorf("spawning %s: %w", serverBin, err)
	}
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	initReq := mcp.InitializeRequest{}
	initReq.Params.ProtocolVersion = mcp.LATEST_PROTOCOL_VERSION
	initReq.Params.ClientInfo = mcp.Implementation{Name: "itsmctl", Version: version}
	if _, err := c.Initialize(ctx, initReq); err != nil {
		return fmt.Errorf("initializing session: %w", err)
	}

	return fn(ctx, c)
}

// listTools prints a one-line summary of every tool the server exposes.
func listTools(ctx context.Context, c *client.Client) error {
	resp, err := c.ListTools(ctx, mcp.ListToolsRequest{})
	if err != nil {
		return fmt.Errorf("listing tools: %w", err)
	}
	for _, t := range resp.Tools {
		fmt.Printf("- %s: %s\n", t.Name, t.Description)
	}
	return nil
}

// smoke drives the whole server surface end to end.
func smoke(ctx context.Context, c *client.Client) error {
	fmt.Println("=== Tools ===")
	if err := listTools(ctx, c); err != nil {
		return err
	}

	fmt.Println("\n=== Call: incident_pack ===")
	packReq := mcp.CallToolRequest{}
	packReq.Params.Name = "incident_pack"
	packReq.Params.Arguments = map[string]any{
		"short_description":  "Users cannot login (SSO error)",
		"details":            "Multiple users across EU region report SAML errors since 09:30 UTC",
		"impact":             "high",
		"urgency":            "high",
		"customer_impacting": true,
	}
	packText, err := callTool(ctx, c, packReq)
	if err != nil {
		return err
	}
	fmt.Println(packText)

	fmt.Println("\n=== Fetch policy resource ===")
	policy, err := readResource(ctx, c, "itsm://policies/incident-severity")
	if err != nil {
		return err
	}
	fmt.Println(policy)

	fmt.Println("\n=== Call: create_research_plan ===")
	planReq := mcp.CallToolRequest{}
	planReq.Params.Name = "create_research_plan"
	planReq.Params.Arguments = map[string]any{
		"short_description": "Users cannot login (SSO error)",
		"details":           "Multiple users across EU region report SAML errors since 09:30 UTC",
		"impact":            "high",
		"urgency":           "high",
	}
	receipt, err := callToolJSON(ctx, c, planReq)
	if err != nil {
		return err
	}
	fmt.Printf("case_id=%s severity=%s category=%s\n",
		receipt["case_id"], receipt["severity"], receipt["category"])

	resourceURI, _ := receipt["resource_uri"].(string)
	if resourceURI == "" {
		return fmt.Errorf("create_research_plan returned no resource_uri")
	}

	fmt.Println("\n=== Read research plan resource ===")
	planDoc, err := readResource(ctx, c, resourceURI)
	if err != nil {
		return err
	}
	fmt.Println(planDoc)

	fmt.Println("\n=== Get prompt: ask_clarifying_questions ===")
	promptReq := mcp.GetPromptRequest{}
	promptReq.Params.Name = "ask_clarifying_questions"
	promptReq.Params.Arguments = map[string]string{
		"category": "identity_access",
		"severity": "critical",
	}
	prompt, err := c.GetPrompt(ctx, promptReq)
	if err != nil {
		return fmt.Errorf("getting prompt: %w", err)
	}
	for i, msg := range prompt.Messages {
		fmt.Printf("\n--- Prompt message %d (%s) ---\n", i+1, msg.Role)
		if tc, ok := msg.Content.(mcp.TextContent); ok {
			fmt.Println(tc.Text)
		}
	}

	return nil
}

// callTool invokes a tool and returns its text content.
func callTool(ctx context.Context, c *client.Client, req mcp.CallToolRequest) (string, error) {
	res, err := c.CallTool(ctx, req)
	if err != nil {
		return "", fmt.Errorf("calling %s: %w", req.Params.Name, err)
	}
	if res.IsError {
		return "", fmt.Errorf("%s returned a tool error", req.Params.Name)
	}
	for _, content := range res.Content {
		if tc, ok := content.(mcp.TextContent); ok {
			return tc.Text, nil
		}
	}
	return "", fmt.Errorf("%s returned no text content", req.Params.Name)
}

// callToolJSON invokes a tool and decodes its JSON text content.
func callToolJSON(ctx context.Context, c *client.Client, req mcp.CallToolRequest) (map[string]any, error) {
	text, err := callTool(ctx, c, req)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return nil, fmt.Errorf("decoding %s result: %w", req.Params.Name, err)
	}
	return out, nil
}

// readResource fetches a resource and returns its first text content.
func readResource(ctx context.Context, c *client.Client, uri string) (string, error) {
	req := mcp.ReadResourceRequest{}
	req.Params.URI = uri
	res, err := c.ReadResource(ctx, req)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", uri, err)
	}
	for _, content := range res.Contents {
		if tc, ok := content.(mcp.TextResourceContents); ok {
			return tc.Text, nil
		}
	}
	return "", fmt.Errorf("%s returned no text contents", uri)
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `itsmctl v%s — smoke-test client for itsmd

Usage:
  itsmctl tools [itsmd-binary]   List the server's tools
  itsmctl smoke [itsmd-binary]   Run the full smoke flow

The server binary defaults to "itsmd" on PATH; it is spawned with
"serve" over stdio.
`, version)
}
