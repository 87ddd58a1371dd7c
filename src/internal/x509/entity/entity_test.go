// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509entity_test

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/rsa"
	"os"
	"path/filepath"
	"testing"

	"github.com/cloudflare/circl/sign/ed448"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pemscan "github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/pem"
	x509entity "github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/x509/entity"
)

func scanOne(t *testing.T, name string) pemscan.RawBlock {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	results := pemscan.Scan(data)
	require.Len(t, results, 1, "fixture %s should contain exactly one block", name)
	require.NoError(t, results[0].Err)
	return results[0].Block
}

func TestDecodeCertificate(t *testing.T) {
	decoded, err := x509entity.Decode(scanOne(t, "leaf.pem"))
	require.NoError(t, err)

	cert, ok := decoded.(x509entity.Cert)
	require.True(t, ok, "expected Cert, got %T", decoded)
	assert.Equal(t, "example.test", cert.Cert.Subject.CommonName)
	assert.Contains(t, cert.PEMText(), "-----BEGIN CERTIFICATE-----")
}

func TestDecodeCertificateRequest(t *testing.T) {
	decoded, err := x509entity.Decode(scanOne(t, "request.csr"))
	require.NoError(t, err)

	csr, ok := decoded.(x509entity.CertRequest)
	require.True(t, ok, "expected CertRequest, got %T", decoded)
	assert.Equal(t, "csr.example.test", csr.Req.Subject.CommonName)
}

func TestDecodePublicKeys(t *testing.T) {
	tests := []struct {
		name    string
		fixture string
		label   string
		check   func(t *testing.T, key any)
	}{
		{"pkix rsa", "rsa2048-pub-pkix.pem", "PUBLIC KEY", func(t *testing.T, key any) {
			rsaKey, ok := key.(*rsa.PublicKey)
			require.True(t, ok, "expected *rsa.PublicKey, got %T", key)
			assert.Equal(t, 2048, rsaKey.N.BitLen())
		}},
		{"pkcs1 rsa", "rsa2048-pub-pkcs1.pem", "RSA PUBLIC KEY", func(t *testing.T, key any) {
			_, ok := key.(*rsa.PublicKey)
			require.True(t, ok, "expected *rsa.PublicKey, got %T", key)
		}},
		{"pkix ec", "ec-p256-pub.pem", "PUBLIC KEY", func(t *testing.T, key any) {
			_, ok := key.(*ecdsa.PublicKey)
			require.True(t, ok, "expected *ecdsa.PublicKey, got %T", key)
		}},
		{"pkix ed25519", "ed25519-pub.pem", "PUBLIC KEY", func(t *testing.T, key any) {
			_, ok := key.(ed25519.PublicKey)
			require.True(t, ok, "expected ed25519.PublicKey, got %T", key)
		}},
		{"pkix ed448", "ed448-pub.pem", "PUBLIC KEY", func(t *testing.T, key any) {
			edKey, ok := key.(ed448.PublicKey)
			require.True(t, ok, "expected ed448.PublicKey, got %T", key)
			assert.Len(t, []byte(edKey), ed448.PublicKeySize)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block := scanOne(t, tt.fixture)
			require.Equal(t, tt.label, block.Label)

			decoded, err := x509entity.Decode(block)
			require.NoError(t, err)

			pub, ok := decoded.(x509entity.PublicKey)
			require.True(t, ok, "expected PublicKey, got %T", decoded)
			tt.check(t, pub.Key)
		})
	}
}

func TestDecodePrivateKeys(t *testing.T) {
	tests := []struct {
		name    string
		fixture string
		label   string
		check   func(t *testing.T, key any)
	}{
		{"pkcs1 rsa", "rsa2048-pkcs1.pem", "RSA PRIVATE KEY", func(t *testing.T, key any) {
			rsaKey, ok := key.(*rsa.PrivateKey)
			require.True(t, ok, "expected *rsa.PrivateKey, got %T", key)
			assert.Equal(t, 2048, rsaKey.N.BitLen())
		}},
		{"sec1 ec", "ec-p256-sec1.pem", "EC PRIVATE KEY", func(t *testing.T, key any) {
			_, ok := key.(*ecdsa.PrivateKey)
			require.True(t, ok, "expected *ecdsa.PrivateKey, got %T", key)
		}},
		{"pkcs8 ec", "ec-p256-pkcs8.pem", "PRIVATE KEY", func(t *testing.T, key any) {
			_, ok := key.(*ecdsa.PrivateKey)
			require.True(t, ok, "expected *ecdsa.PrivateKey, got %T", key)
		}},
		{"pkcs8 ed25519", "ed25519-pkcs8.pem", "PRIVATE KEY", func(t *testing.T, key any) {
			_, ok := key.(ed25519.PrivateKey)
			require.True(t, ok, "expected ed25519.PrivateKey, got %T", key)
		}},
		{"pkcs8 ed448", "ed448-pkcs8.pem", "PRIVATE KEY", func(t *testing.T, key any) {
			edKey, ok := key.(ed448.PrivateKey)
			require.True(t, ok, "expected ed448.PrivateKey, got %T", key)
			assert.Len(t, edKey.Seed(), ed448.SeedSize)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			block := scanOne(t, tt.fixture)
			require.Equal(t, tt.label, block.Label)

			decoded, err := x509entity.Decode(block)
			require.NoError(t, err)

			priv, ok := decoded.(x509entity.PrivateKey)
			require.True(t, ok, "expected PrivateKey, got %T", decoded)
			tt.check(t, priv.Key)
		})
	}
}

func TestDecodeUnknownLabel(t *testing.T) {
	block := scanOne(t, "leaf.pem")
	block.Label = "OPENSSH PRIVATE KEY"

	_, err := x509entity.Decode(block)
	assert.ErrorIs(t, err, x509entity.ErrUnknownLabel)
}

func TestDecodeGarbagePayload(t *testing.T) {
	block := pemscan.RawBlock{Label: "CERTIFICATE", Payload: []byte("not der at all")}
	_, err := x509entity.Decode(block)
	assert.ErrorIs(t, err, x509entity.ErrParseCertificate)
}

// Re-scanning the canonical PEM text must yield the original DER bytes.
func TestPEMTextRoundTrip(t *testing.T) {
	block := scanOne(t, "leaf.pem")
	decoded, err := x509entity.Decode(block)
	require.NoError(t, err)

	rescanned := pemscan.Scan([]byte(decoded.PEMText()))
	require.Len(t, rescanned, 1)
	require.NoError(t, rescanned[0].Err)
	assert.Equal(t, block.Payload, rescanned[0].Block.Payload)
}

func TestDecodeDERCertificate(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "leaf.der"))
	require.NoError(t, err)

	decoded, err := x509entity.DecodeDER(data)
	require.NoError(t, err)
	require.Len(t, decoded, 1)

	cert, ok := decoded[0].(x509entity.Cert)
	require.True(t, ok, "expected Cert, got %T", decoded[0])
	assert.Equal(t, "example.test", cert.Cert.Subject.CommonName)
}

func TestDecodeDERGarbage(t *testing.T) {
	_, err := x509entity.DecodeDER([]byte("definitely not der"))
	assert.ErrorIs(t, err, x509entity.ErrParsePKCS7)
}
