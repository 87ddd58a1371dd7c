// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package tlsprobe

import (
	"crypto/tls"
	"encoding/json"
	"strings"
	"time"

	x509model "github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/x509/model"
)

// Transport names the carrier protocol under TLS.
type Transport string

// Carrier protocols. Only TCP is dialed today; QUIC exists so the model
// does not need changing when an HTTP/3 probe lands.
const (
	TransportTCP  Transport = "tcp"
	TransportQUIC Transport = "quic"
)

// Millis is a duration that marshals as fractional milliseconds.
type Millis time.Duration

// MarshalJSON renders the duration as a millisecond float.
func (m Millis) MarshalJSON() ([]byte, error) {
	return json.Marshal(float64(time.Duration(m)) / float64(time.Millisecond))
}

// UnmarshalJSON reads a millisecond float back into a duration.
func (m *Millis) UnmarshalJSON(data []byte) error {
	var ms float64
	if err := json.Unmarshal(data, &ms); err != nil {
		return err
	}
	*m = Millis(time.Duration(ms * float64(time.Millisecond)))
	return nil
}

// Timings breaks the probe into its separately measured stages. DNSLookup
// is zero when the target was a literal IP.
type Timings struct {
	DNSLookup    Millis `json:"dns_lookup"`
	TCPConnect   Millis `json:"tcp_connect"`
	TLSHandshake Millis `json:"tls_handshake"`
}

// Connection summarizes a completed handshake.
type Connection struct {
	Host      string    `json:"host"`
	IP        string    `json:"ip"`
	Port      uint16    `json:"port"`
	Version   string    `json:"version"`
	Cipher    string    `json:"cipher"`
	Curve     string    `json:"curve"`
	PQC       bool      `json:"pqc"`
	Transport Transport `json:"transport"`
	Timings   Timings   `json:"timings"`
}

// Result pairs the connection summary with the certificates presented by
// the peer. Certs is empty in raw-public-key mode.
type Result struct {
	Connection Connection             `json:"tls"`
	Certs      []x509model.SimpleCert `json:"certs,omitempty"`
}

// tlsVersionName renders a TLS version constant for display.
func tlsVersionName(version uint16) string {
	switch version {
	case tls.VersionTLS10:
		return "TLSv1.0"
	case tls.VersionTLS11:
		return "TLSv1.1"
	case tls.VersionTLS12:
		return "TLSv1.2"
	case tls.VersionTLS13:
		return "TLSv1.3"
	default:
		return "unknown"
	}
}

// IsPQC reports whether a negotiated group name denotes a hybrid
// post-quantum key exchange. Matching is by substring so renamed draft
// variants still register.
func IsPQC(curve string) bool {
	return strings.Contains(curve, "Kyber") || strings.Contains(curve, "MLKEM")
}
