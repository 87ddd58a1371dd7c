// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

// tls-cert-inspector is a command-line tool for extracting and normalizing
// X509 certificate material and diagnosing live TLS endpoints.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/tls-cert-inspector/cmd/tls-cert-inspector@latest
//
// # Usage
//
//	tls-cert-inspector parse [INPUT_FILE] [FLAGS]
//	tls-cert-inspector connect HOST [FLAGS]
//
// # Flags
//
//	    --json     Emit JSON output
//	    --text     Emit human-readable text output
//	    --pem      Emit PEM blocks
//	-v, --verbose  Enable verbose logging
//
// connect additionally accepts:
//
//	-c, --chain    Include the full presented chain, not only the leaf
//	    --rpk      Raw public key endpoint: skip certificate extraction
//	    --curves   Colon-separated key exchange groups to offer
//	    --pqc      Offer only hybrid post-quantum key exchange groups
//	    --timeout  Overall probe deadline (default: none)
//
// With no format flag, a terminal gets text and a pipe gets JSON.
//
// # Examples
//
// Normalize a PEM bundle to JSON:
//
//	tls-cert-inspector parse bundle.pem --json
//
// Extract certificates embedded in a JSON document:
//
//	cat response.json | tls-cert-inspector parse --pem
//
// Probe an endpoint and show the full chain:
//
//	tls-cert-inspector connect example.com --chain
//
// Check post-quantum key exchange support:
//
//	tls-cert-inspector connect example.com:8443 --pqc
package main
