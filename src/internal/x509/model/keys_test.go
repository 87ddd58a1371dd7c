// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509model_test

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pemscan "github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/pem"
	x509entity "github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/x509/entity"
	x509model "github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/x509/model"
)

func decodeFixture(t *testing.T, name string) x509entity.Decoded {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	results := pemscan.Scan(data)
	require.NotEmpty(t, results)
	require.NoError(t, results[0].Err)
	decoded, err := x509entity.Decode(results[0].Block)
	require.NoError(t, err)
	return decoded
}

func TestNewSimplePrivateKeyRSA(t *testing.T) {
	priv := decodeFixture(t, "rsa2048-pkcs1.pem").(x509entity.PrivateKey)
	simple := x509model.NewSimplePrivateKey(priv.Key, priv.PEM)

	assert.Equal(t, 2048, simple.Bits)
	assert.Equal(t, "rsaEncryption", simple.Curve)

	kind, ok := simple.Kind.(x509model.RSAPrivateKey)
	require.True(t, ok, "expected RSAPrivateKey, got %T", simple.Kind)
	assert.Equal(t, 2048, kind.Size)
	assert.Equal(t, "65537", kind.Exponent)
	assert.NotEmpty(t, kind.Modulus)
	assert.NotEmpty(t, kind.P)
	assert.NotEmpty(t, kind.Q)
	assert.NotEmpty(t, kind.Key)
}

func TestNewSimplePublicKeyEC(t *testing.T) {
	pub := decodeFixture(t, "ec-p256-pub.pem").(x509entity.PublicKey)
	simple := x509model.NewSimplePublicKey(pub.Key, pub.PEM)

	assert.Equal(t, 256, simple.Bits)
	assert.Equal(t, "prime256v1", simple.Curve)

	kind, ok := simple.Kind.(x509model.ECKey)
	require.True(t, ok, "expected ECKey, got %T", simple.Kind)
	assert.Equal(t, "prime256v1", kind.Group)
	// Compressed point: one prefix byte plus the 32-byte X coordinate.
	assert.Len(t, kind.Pub, 2*33)
}

func TestNewSimplePrivateKeyEd25519(t *testing.T) {
	priv := decodeFixture(t, "ed25519-pkcs8.pem").(x509entity.PrivateKey)
	simple := x509model.NewSimplePrivateKey(priv.Key, priv.PEM)

	assert.Equal(t, 256, simple.Bits)
	assert.Equal(t, "ED25519", simple.Curve)

	kind, ok := simple.Kind.(x509model.Ed25519PrivateKey)
	require.True(t, ok, "expected Ed25519PrivateKey, got %T", simple.Kind)
	assert.Len(t, kind.Pub, 2*ed25519.PublicKeySize)
	assert.Len(t, kind.Key, 2*ed25519.SeedSize)
}

// The JSON shape is flat: shared fields plus the kind payload plus a
// "type" discriminator, with no nested object.
func TestKeyKindJSONFlattening(t *testing.T) {
	rsaKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	simple := x509model.NewSimplePublicKey(&rsaKey.PublicKey, "")
	out, err := json.Marshal(simple)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(out, &fields))

	assert.Equal(t, "rsa", fields["type"])
	assert.Equal(t, float64(2048), fields["bits"])
	assert.Equal(t, "rsaEncryption", fields["curve"])
	assert.Contains(t, fields, "modulus")
	assert.Contains(t, fields, "exponent")
	assert.NotContains(t, fields, "kind")
	assert.NotContains(t, fields, "pem", "empty pem is omitted")
}

func TestKeyKindJSONTypeTags(t *testing.T) {
	ecKey, err := ecdsa.GenerateKey(elliptic.P384(), rand.Reader)
	require.NoError(t, err)
	edPub, _, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	tests := []struct {
		name     string
		key      x509model.SimplePublicKey
		wantType string
	}{
		{"ec", x509model.NewSimplePublicKey(&ecKey.PublicKey, ""), "ec"},
		{"ed25519", x509model.NewSimplePublicKey(edPub, ""), "ed25519"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := json.Marshal(tt.key)
			require.NoError(t, err)
			var fields map[string]any
			require.NoError(t, json.Unmarshal(out, &fields))
			assert.Equal(t, tt.wantType, fields["type"])
		})
	}
}

func TestNewSimplePublicKeyUnsupportedPanics(t *testing.T) {
	assert.Panics(t, func() {
		x509model.NewSimplePublicKey(struct{}{}, "")
	})
}
