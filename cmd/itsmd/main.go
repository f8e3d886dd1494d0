// itsmd: ITSM service-desk MCP server.
//
// Exposes rule-based incident triage — severity/category normalization,
// next-step synthesis, KB ranking, and research-plan case artifacts —
// as MCP tools, resources, and prompts.
//
// Usage:
//
//	itsmd serve [config.yaml]   # Start MCP server (stdio, or HTTP if configured)
//	itsmd version               # Print version
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"github.com/itsmlab/itsmd/internal/config"
	itsmserver "github.com/itsmlab/itsmd/internal/server"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		configPath := ""
		if len(os.Args) > 2 {
			configPath = os.Args[2]
		}
		if err := run(configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "--help", "-h", "help":
		printUsage()
		os.Exit(0)
	case "--version", "-v", "version":
		fmt.Printf("itsmd v%s\n", itsmserver.Version)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	s, cleanup, err := itsmserver.New(cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}
	defer cleanup()

	if cfg.HTTPAddr != "" {
		return serveHTTP(s, cfg.HTTPAddr)
	}

	// Stdio transport: stdout is the MCP wire, diagnostics go to stderr.
	return server.ServeStdio(s)
}

// serveHTTP runs the streamable HTTP transport with a liveness check,
// shutting down gracefully on SIGINT/SIGTERM.
func serveHTTP(s *server.MCPServer, addr string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		fmt.Fprint(w, "OK")
	})

	streamable := server.NewStreamableHTTPServer(s)
	mux.Handle("/mcp", streamable)
	mux.Handle("/mcp/", streamable)

	httpServer := &http.Server{Addr: addr, Handler: mux}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(ctx)
	}()

	fmt.Fprintf(os.Stderr, "itsmd v%s listening on %s (MCP endpoint: /mcp)\n", itsmserver.Version, addr)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `itsmd v%s — ITSM Service Desk MCP Server

Usage:
  itsmd serve [config.yaml]   Start the MCP server (stdio transport by default)
  itsmd version               Print version

Configuration (env overrides file):
  %s    Audit JSONL path (default ./itsm_audit.jsonl)
  %s      SQLite case store path (default: in-memory)
  %s    HTTP listen address, e.g. 127.0.0.1:8000 (default: stdio)

MCP client config:

  {
    "mcpServers": {
      "itsm": {
        "command": "itsmd",
        "args": ["serve"]
      }
    }
  }
`, itsmserver.Version, config.EnvAuditLog, config.EnvCaseDB, config.EnvHTTPAddr)
}
