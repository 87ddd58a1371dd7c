// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package tlsprobe

import (
	"crypto/tls"
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCurve indicates a requested group name outside the supported
// table.
var ErrUnknownCurve = errors.New("tlsprobe: unknown curve")

var curveNames = map[tls.CurveID]string{
	tls.CurveP256:      "P-256",
	tls.CurveP384:      "P-384",
	tls.CurveP521:      "P-521",
	tls.X25519:         "X25519",
	tls.X25519MLKEM768: "X25519MLKEM768",
}

// curveAliases maps accepted spellings (canonical and OpenSSL names,
// case-insensitive) to group identifiers.
var curveAliases = map[string]tls.CurveID{
	"p-256":          tls.CurveP256,
	"prime256v1":     tls.CurveP256,
	"secp256r1":      tls.CurveP256,
	"p-384":          tls.CurveP384,
	"secp384r1":      tls.CurveP384,
	"p-521":          tls.CurveP521,
	"secp521r1":      tls.CurveP521,
	"x25519":         tls.X25519,
	"x25519mlkem768": tls.X25519MLKEM768,
}

// pqcCurves is the preference list pinned by the post-quantum probe mode.
var pqcCurves = []tls.CurveID{tls.X25519MLKEM768}

// CurveName renders a negotiated group identifier for display. Identifiers
// outside the table fall back to their hex code point.
func CurveName(id tls.CurveID) string {
	if name, ok := curveNames[id]; ok {
		return name
	}
	return fmt.Sprintf("0x%04x", uint16(id))
}

// ParseCurves turns a colon-separated group list into handshake
// preferences, preserving order. An empty spec yields nil, leaving the
// library defaults in place.
func ParseCurves(spec string) ([]tls.CurveID, error) {
	if spec == "" {
		return nil, nil
	}

	parts := strings.Split(spec, ":")
	curves := make([]tls.CurveID, 0, len(parts))
	for _, part := range parts {
		id, ok := curveAliases[strings.ToLower(strings.TrimSpace(part))]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCurve, part)
		}
		curves = append(curves, id)
	}
	return curves, nil
}
