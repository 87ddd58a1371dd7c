// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package pemscan locates PEM-armored blocks in arbitrary byte buffers and
// decodes their base64 payloads to raw DER. Unlike [encoding/pem], it
// tolerates indentation and literal `\n` escape sequences (PEM embedded in
// JSON strings) and reports the byte span of each block in the source.
package pemscan
