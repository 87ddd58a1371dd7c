// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package pemscan

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"regexp"
)

var (
	// ErrInvalidBase64 indicates that a PEM block's payload failed base64 decoding.
	ErrInvalidBase64 = errors.New("pemscan: invalid base64 payload")
)

// The BEGIN label is captured; the END label is matched lazily and ignored,
// so mismatched BEGIN/END labels are not rejected here.
var (
	blockPattern      = regexp.MustCompile(`(?s)-----BEGIN (.*?)-----(.*?)-----END .*?-----`)
	whitespacePattern = regexp.MustCompile(`(?:\s|\\n)+`)
)

var beginMarker = []byte("-----BEGIN ")

// Span is a byte range into the scanned source buffer.
type Span struct {
	Start int
	End   int
}

// RawBlock is a single PEM-armored block located in a source buffer.
// Payload holds the base64-decoded DER bytes; Raw holds the original
// armored text including both markers.
//
// RawBlock is ephemeral: it is produced by Scan and consumed immediately
// by the entity classifier.
type RawBlock struct {
	Span    Span
	Label   string
	Payload []byte
	Raw     []byte
}

// ScanResult is the per-block outcome of a scan. Exactly one of Block or
// Err is meaningful; a malformed payload fails only its own block.
type ScanResult struct {
	Block RawBlock
	Err   error
}

// HasMarkers reports whether data contains any PEM BEGIN marker.
// Buffers without markers fall back to whole-buffer DER decoding.
func HasMarkers(data []byte) bool {
	return bytes.Contains(data, beginMarker)
}

// Scan locates every PEM-armored block in data and decodes its payload.
//
// Between the markers, all whitespace and literal two-character `\n` escape
// sequences are stripped before base64 decoding, so PEM text embedded in a
// JSON string (with escaped newlines) still decodes correctly.
//
// The returned slice preserves source order. A block whose payload is not
// valid base64 yields a ScanResult with Err set; remaining blocks are
// unaffected.
func Scan(data []byte) []ScanResult {
	matches := blockPattern.FindAllSubmatchIndex(data, -1)
	if len(matches) == 0 {
		return nil
	}

	results := make([]ScanResult, 0, len(matches))
	for _, m := range matches {
		span := Span{Start: m[0], End: m[1]}
		label := string(data[m[2]:m[3]])
		body := whitespacePattern.ReplaceAll(data[m[4]:m[5]], nil)

		payload, err := base64.StdEncoding.DecodeString(string(body))
		if err != nil {
			results = append(results, ScanResult{
				Err: fmt.Errorf("%w: block %q at offset %d: %v", ErrInvalidBase64, label, span.Start, err),
			})
			continue
		}

		results = append(results, ScanResult{Block: RawBlock{
			Span:    span,
			Label:   label,
			Payload: payload,
			Raw:     data[span.Start:span.End],
		}})
	}

	return results
}
