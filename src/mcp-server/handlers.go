// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/H0llyW00dzZ/tls-cert-inspector/src/cli"
	pemscan "github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/pem"
	"github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/render"
	"github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/tlsprobe"
	x509model "github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/x509/model"
	"github.com/H0llyW00dzZ/tls-cert-inspector/src/logger"
)

// newParseHandler returns the handler for the parse_certificates tool.
// Input without PEM markers is tried as base64-encoded DER before being
// handed to the parse pipeline as-is.
func newParseHandler(config *Config, log logger.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		data, err := request.RequireString("data")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		format := request.GetString("format", config.Defaults.Format)

		raw := []byte(data)
		if !pemscan.HasMarkers(raw) {
			if decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(data)); err == nil {
				raw = decoded
			}
		}

		result, err := cli.ParseData(log, raw, time.Now())
		if err != nil {
			log.Debugf("parse_certificates failed: %v", err)
			return mcp.NewToolResultError(err.Error()), nil
		}

		out, err := renderParseOutput(config, format, result)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(out), nil
	}
}

// newProbeHandler returns the handler for the probe_tls_endpoint tool.
// Probes run under the configured timeout; results are always JSON.
func newProbeHandler(config *Config, log logger.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		host, err := request.RequireString("host")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		opts := tlsprobe.Options{
			Chain:  request.GetBool("chain", config.Defaults.Chain),
			RPK:    request.GetBool("rpk", false),
			Curves: request.GetString("curves", ""),
			PQC:    request.GetBool("pqc", false),
		}

		ctx, cancel := context.WithTimeout(ctx, time.Duration(config.Defaults.Timeout)*time.Second)
		defer cancel()

		log.Debugf("probe_tls_endpoint: %s", host)

		result, err := tlsprobe.Probe(ctx, host, opts)
		if err != nil {
			log.Debugf("probe_tls_endpoint failed: %v", err)
			return mcp.NewToolResultError(err.Error()), nil
		}

		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(string(out)), nil
	}
}

func renderParseOutput(config *Config, format string, result *x509model.ParseResult) (string, error) {
	switch format {
	case "pem":
		return strings.Join(result.PEMBlocks(), ""), nil
	case "text":
		var sb strings.Builder
		theme := render.NewTheme().WithColors(config.Theme.Primary, config.Theme.Success, config.Theme.Error)
		render.RenderParse(&sb, theme, result)
		return sb.String(), nil
	default:
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return "", err
		}
		return string(out), nil
	}
}
