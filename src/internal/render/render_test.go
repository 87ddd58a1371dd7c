// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/tlsprobe"
	x509model "github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/x509/model"
)

func sampleCert() x509model.SimpleCert {
	ski := "bd345db7"
	valid := false
	reason := "x509: certificate signed by unknown authority"
	return x509model.SimpleCert{
		Subject: x509model.Subject{
			Name: "CN=example.test,O=Inspector Test,C=US",
			SKI:  &ski,
			Sans: x509model.Sans{DNS: []string{"example.test"}, IP: []string{"192.0.2.10"}},
		},
		Serial: "776d8a87",
		Issuer: x509model.Issuer{Name: "CN=Inspector Test Intermediate CA,O=Inspector Test,C=US"},
		Validity: x509model.Validity{
			NotBefore:    time.Date(2026, 8, 23, 12, 5, 2, 0, time.UTC),
			NotAfter:     time.Date(2046, 1, 30, 12, 5, 2, 0, time.UTC),
			ExpiresIn:    86400 * 90,
			ValidIn:      -3600,
			Valid:        &valid,
			VerifyResult: &reason,
		},
		PublicKey: x509model.SimplePublicKey{
			Bits:  2048,
			Curve: "rsaEncryption",
			Kind:  x509model.RSAKey{Size: 2048, Modulus: "ab", Exponent: "65537"},
		},
		Signature: x509model.Signature{Algorithm: "SHA256-RSA", Value: "deadbeef"},
		Fingerprints: x509model.Fingerprints{
			SHA256: "c0262c9dab1f5fc06ff04b5be9406f90df7ce05d136d8f0a8f7cf2e2f63c8e3a",
			SHA1:   "2d8b98fa1631e1451451967cd9c68b231fd25ce9",
			MD5:    "cecab9242a4f3fb10265988d87eb03a2",
		},
		PEM: "-----BEGIN CERTIFICATE-----\nMIIB\n-----END CERTIFICATE-----\n",
	}
}

func TestRenderParseText(t *testing.T) {
	result := x509model.NewParseResult()
	result.Certs = append(result.Certs, sampleCert())

	var sb strings.Builder
	RenderParse(&sb, PlainTheme(), result)

	out := sb.String()
	assert.Contains(t, out, "Certificate #1")
	assert.Contains(t, out, "CN=example.test,O=Inspector Test,C=US")
	assert.Contains(t, out, "Intermediate CA")
	assert.Contains(t, out, "rsaEncryption (2048 bit)")
	assert.Contains(t, out, "example.test, 192.0.2.10")
	assert.Contains(t, out, "unknown authority")
}

func TestRenderProbeText(t *testing.T) {
	result := &tlsprobe.Result{
		Connection: tlsprobe.Connection{
			Host:      "example.com",
			IP:        "93.184.216.34",
			Port:      443,
			Version:   "TLSv1.3",
			Cipher:    "TLS_AES_128_GCM_SHA256",
			Curve:     "X25519MLKEM768",
			PQC:       true,
			Transport: tlsprobe.TransportTCP,
			Timings: tlsprobe.Timings{
				DNSLookup:    tlsprobe.Millis(2 * time.Millisecond),
				TCPConnect:   tlsprobe.Millis(10 * time.Millisecond),
				TLSHandshake: tlsprobe.Millis(15 * time.Millisecond),
			},
		},
		Certs: []x509model.SimpleCert{sampleCert()},
	}

	var sb strings.Builder
	RenderProbe(&sb, PlainTheme(), result)

	out := sb.String()
	assert.Contains(t, out, "example.com:443 (93.184.216.34)")
	assert.Contains(t, out, "TLSv1.3")
	assert.Contains(t, out, "X25519MLKEM768")
	assert.Contains(t, out, "yes")
	assert.Contains(t, out, "dns 2.0ms, connect 10.0ms, handshake 15.0ms")
	assert.Contains(t, out, "Certificate #1")
}

func TestSummaryTable(t *testing.T) {
	certs := []x509model.SimpleCert{sampleCert(), sampleCert()}
	out := SummaryTable(certs)

	assert.Contains(t, out, "Subject")
	assert.Contains(t, out, "CN=example.test,O=Inspector Test,C=US")
	assert.Contains(t, out, "2046-01-30")
	assert.Contains(t, out, "2048-bit rsaEncryption")

	assert.Equal(t, "No certificates to display", SummaryTable(nil))
}

func TestFormatSeconds(t *testing.T) {
	assert.Equal(t, "90d", formatSeconds(86400*90))
	assert.Equal(t, "2h", formatSeconds(7200))
	assert.Equal(t, "5m", formatSeconds(300))
	assert.Equal(t, "42s", formatSeconds(42))
	assert.Equal(t, "3d ago", formatSeconds(-86400*3))
}
