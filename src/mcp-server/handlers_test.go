// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/tls-cert-inspector/src/logger"
)

func testConfig(t *testing.T) *Config {
	t.Helper()
	t.Setenv(configEnvVar, "")
	config, err := loadConfig("")
	require.NoError(t, err)
	return config
}

func callTool(t *testing.T, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]any) *mcp.CallToolResult {
	t.Helper()
	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: args,
		},
	}
	result, err := handler(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	text, ok := mcp.AsTextContent(result.Content[0])
	require.True(t, ok, "expected text content")
	return text.Text
}

func TestCreateTools(t *testing.T) {
	defs := createTools(testConfig(t), logger.NewZapLogger(nil, false))
	require.Len(t, defs, 2)
	assert.Equal(t, "parse_certificates", defs[0].Tool.Name)
	assert.Equal(t, "probe_tls_endpoint", defs[1].Tool.Name)
	assert.NotNil(t, defs[0].Handler)
	assert.NotNil(t, defs[1].Handler)
}

func TestParseHandlerPEM(t *testing.T) {
	pemData, err := os.ReadFile(filepath.Join("..", "cli", "testdata", "chain.pem"))
	require.NoError(t, err)

	handler := newParseHandler(testConfig(t), logger.NewZapLogger(nil, false))
	result := callTool(t, handler, map[string]any{"data": string(pemData)})

	assert.False(t, result.IsError)
	text := resultText(t, result)
	assert.Contains(t, text, `"certs"`)
	assert.Contains(t, text, "example.test")
}

func TestParseHandlerBase64DER(t *testing.T) {
	der, err := os.ReadFile(filepath.Join("..", "cli", "testdata", "leaf.der"))
	require.NoError(t, err)

	handler := newParseHandler(testConfig(t), logger.NewZapLogger(nil, false))
	result := callTool(t, handler, map[string]any{
		"data":   base64.StdEncoding.EncodeToString(der),
		"format": "pem",
	})

	assert.False(t, result.IsError)
	assert.Contains(t, resultText(t, result), "-----BEGIN CERTIFICATE-----")
}

func TestParseHandlerMissingArgument(t *testing.T) {
	handler := newParseHandler(testConfig(t), logger.NewZapLogger(nil, false))
	result := callTool(t, handler, map[string]any{})
	assert.True(t, result.IsError)
}

func TestParseHandlerGarbage(t *testing.T) {
	handler := newParseHandler(testConfig(t), logger.NewZapLogger(nil, false))
	result := callTool(t, handler, map[string]any{"data": "nothing certificate shaped"})
	assert.True(t, result.IsError)
}

func TestProbeHandlerMissingHost(t *testing.T) {
	handler := newProbeHandler(testConfig(t), logger.NewZapLogger(nil, false))
	result := callTool(t, handler, map[string]any{})
	assert.True(t, result.IsError)
}

func TestProbeHandlerInvalidTarget(t *testing.T) {
	handler := newProbeHandler(testConfig(t), logger.NewZapLogger(nil, false))
	result := callTool(t, handler, map[string]any{"host": "not a host"})
	assert.True(t, result.IsError)
}
