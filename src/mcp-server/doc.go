// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package mcpserver exposes the inspector as a Model Context Protocol
// server over stdio, with tools for parsing certificate material and
// probing live TLS endpoints. Configuration is loaded from the file named
// by MCP_TLS_INSPECTOR_CONFIG_FILE (JSON or YAML).
package mcpserver
