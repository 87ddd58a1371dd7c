// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli implements the command-line interface: the parse command for
// extracting certificates and keys from PEM or DER input, and the connect
// command for live TLS endpoint diagnostics. Output format (text, JSON,
// PEM) is negotiated from flags and the stdout terminal state.
package cli
