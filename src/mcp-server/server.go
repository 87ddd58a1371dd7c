// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"

	"github.com/H0llyW00dzZ/tls-cert-inspector/src/logger"
	"github.com/H0llyW00dzZ/tls-cert-inspector/src/version"
)

var appVersion = version.Version // default version

// GetVersion returns the current version of the MCP server.
//
// The version is initially set to the default from the version package,
// but can be overridden when calling Run() with a specific version string.
func GetVersion() string {
	return appVersion
}

// Run starts the MCP server exposing the inspector over stdio.
//
// Run registers the parse_certificates and probe_tls_endpoint tools and
// serves them until the context is cancelled by SIGINT or SIGTERM. Stdout
// carries the protocol, so all logging goes to stderr.
//
// Parameters:
//   - ver: Version string to report for the server (e.g., "0.1.0")
//
// Returns:
//   - error: Server startup or runtime error, or graceful shutdown signal
//
// Configuration:
//   - Loads config from MCP_TLS_INSPECTOR_CONFIG_FILE environment variable
//   - Falls back to default config if environment variable not set
//
// Graceful Shutdown:
//   - Responds to SIGINT (Ctrl+C) and SIGTERM signals
//   - Cancels context to stop any in-flight probe
//   - Returns context.Canceled error on signal-based shutdown
func Run(ver string) error {
	appVersion = ver

	config, err := loadConfig("")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.NewZapLogger(os.Stderr, false)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	s := server.NewMCPServer(
		"tls-cert-inspector",
		ver,
		server.WithToolCapabilities(true),
	)

	for _, def := range createTools(config, log) {
		s.AddTool(def.Tool, def.Handler)
	}

	log.Printf("MCP server started (version %s)", ver)

	stdioServer := server.NewStdioServer(s)

	errChan := make(chan error, 1)
	go func() {
		errChan <- stdioServer.Listen(ctx, os.Stdin, os.Stdout)
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		return fmt.Errorf("server shutdown: %w", ctx.Err())
	}
}
