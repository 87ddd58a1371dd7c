// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/H0llyW00dzZ/tls-cert-inspector/src/logger"
)

// ToolDefinition pairs an MCP tool schema with its handler.
type ToolDefinition struct {
	Tool    mcp.Tool
	Handler server.ToolHandlerFunc
}

// createTools creates and returns all MCP tool definitions with their
// handlers bound to the server configuration.
//
// The function defines the following tools:
//   - parse_certificates: Extracts certificates, requests, and keys from
//     PEM or DER data
//   - probe_tls_endpoint: Diagnoses a live TLS endpoint
func createTools(config *Config, log logger.Logger) []ToolDefinition {
	return []ToolDefinition{
		{
			Tool: mcp.NewTool("parse_certificates",
				mcp.WithDescription("Extract X509 certificates, certificate requests, and keys from PEM text or base64-encoded DER data"),
				mcp.WithString("data",
					mcp.Required(),
					mcp.Description("PEM text (markers may be embedded in JSON with escaped newlines) or base64-encoded DER data"),
				),
				mcp.WithString("format",
					mcp.Description("Output format: 'json', 'text', or 'pem' (default: from config)"),
				),
			),
			Handler: newParseHandler(config, log),
		},
		{
			Tool: mcp.NewTool("probe_tls_endpoint",
				mcp.WithDescription("Connect to a TLS endpoint and report negotiated parameters, timings, and peer certificates"),
				mcp.WithString("host",
					mcp.Required(),
					mcp.Description("Endpoint: hostname, hostname:port, address:port, or URL (default port: 443)"),
				),
				mcp.WithBoolean("chain",
					mcp.Description("Include the full presented chain instead of only the leaf (default: from config)"),
				),
				mcp.WithString("curves",
					mcp.Description("Colon-separated key exchange groups to offer (e.g. 'X25519:P-256')"),
				),
				mcp.WithBoolean("pqc",
					mcp.Description("Offer only hybrid post-quantum key exchange groups (default: false)"),
					mcp.DefaultBool(false),
				),
				mcp.WithBoolean("rpk",
					mcp.Description("Raw public key endpoint: skip certificate extraction (default: false)"),
					mcp.DefaultBool(false),
				),
			),
			Handler: newProbeHandler(config, log),
		},
	}
}
