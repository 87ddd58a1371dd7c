// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package logger provides logging for the TLS certificate inspector.
// It exposes a single Logger interface with two implementations: a
// human-readable CLI logger backed by the standard log package, and a
// zap-backed structured logger for MCP server mode where stdout carries
// protocol frames and diagnostics must stay out of band.
package logger
