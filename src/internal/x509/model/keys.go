// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509model

import (
	"crypto"
	"crypto/dsa"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rsa"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/cloudflare/circl/sign/ed448"
)

// KeyKind is the closed union of algorithm-specific key detail payloads.
// Marshaling a key merges the variant's fields with a "type" discriminator
// ("rsa", "dsa", "ec", "ed25519", "ed448") into one flat JSON object.
type KeyKind interface {
	isKeyKind()
	kindName() string
}

// RSAKey carries RSA public key parameters.
type RSAKey struct {
	Size     int    `json:"size"`
	Modulus  string `json:"modulus"`
	Exponent string `json:"exponent"`
}

// RSAPrivateKey extends [RSAKey] with the private exponent and primes.
type RSAPrivateKey struct {
	Size     int    `json:"size"`
	Modulus  string `json:"modulus"`
	Exponent string `json:"exponent"`
	P        string `json:"p"`
	Q        string `json:"q"`
	Key      string `json:"key"`
}

// DSAKey carries DSA domain parameters and the public value.
type DSAKey struct {
	P   string `json:"p"`
	Q   string `json:"q"`
	G   string `json:"g"`
	Pub string `json:"pub_key"`
}

// DSAPrivateKey extends [DSAKey] with the private value.
type DSAPrivateKey struct {
	P   string `json:"p"`
	Q   string `json:"q"`
	G   string `json:"g"`
	Pub string `json:"pub_key"`
	Key string `json:"priv_key"`
}

// ECKey carries the curve name and the compressed public point.
type ECKey struct {
	Group string `json:"group"`
	Pub   string `json:"pub_key"`
}

// ECPrivateKey extends [ECKey] with the private scalar.
type ECPrivateKey struct {
	Group string `json:"group"`
	Pub   string `json:"pub_key"`
	Key   string `json:"priv_key"`
}

// Ed25519Key carries the raw Ed25519 public key bytes.
type Ed25519Key struct {
	Pub string `json:"pub_key"`
}

// Ed25519PrivateKey extends [Ed25519Key] with the seed.
type Ed25519PrivateKey struct {
	Pub string `json:"pub_key"`
	Key string `json:"priv_key"`
}

// Ed448Key carries the raw Ed448 public key bytes.
type Ed448Key struct {
	Pub string `json:"pub_key"`
}

// Ed448PrivateKey extends [Ed448Key] with the seed.
type Ed448PrivateKey struct {
	Pub string `json:"pub_key"`
	Key string `json:"priv_key"`
}

func (RSAKey) isKeyKind()            {}
func (RSAPrivateKey) isKeyKind()     {}
func (DSAKey) isKeyKind()            {}
func (DSAPrivateKey) isKeyKind()     {}
func (ECKey) isKeyKind()             {}
func (ECPrivateKey) isKeyKind()      {}
func (Ed25519Key) isKeyKind()        {}
func (Ed25519PrivateKey) isKeyKind() {}
func (Ed448Key) isKeyKind()          {}
func (Ed448PrivateKey) isKeyKind()   {}

func (RSAKey) kindName() string            { return "rsa" }
func (RSAPrivateKey) kindName() string     { return "rsa" }
func (DSAKey) kindName() string            { return "dsa" }
func (DSAPrivateKey) kindName() string     { return "dsa" }
func (ECKey) kindName() string             { return "ec" }
func (ECPrivateKey) kindName() string      { return "ec" }
func (Ed25519Key) kindName() string        { return "ed25519" }
func (Ed25519PrivateKey) kindName() string { return "ed25519" }
func (Ed448Key) kindName() string          { return "ed448" }
func (Ed448PrivateKey) kindName() string   { return "ed448" }

// SimplePublicKey is the normalized projection of a public key. PEM is set
// only when the key was decoded from its own block; keys embedded in a
// certificate leave it empty.
type SimplePublicKey struct {
	Bits  int
	Curve string
	Kind  KeyKind
	PEM   string
}

// SimplePrivateKey is the normalized projection of a private key.
type SimplePrivateKey struct {
	Bits  int
	Curve string
	Kind  KeyKind
	PEM   string
}

// MarshalJSON flattens the kind payload with the shared fields and the
// "type" discriminator. Output keys are sorted, matching map marshaling.
func (k SimplePublicKey) MarshalJSON() ([]byte, error) {
	return marshalKey(k.Bits, k.Curve, k.Kind, k.PEM)
}

// MarshalJSON flattens the kind payload with the shared fields and the
// "type" discriminator.
func (k SimplePrivateKey) MarshalJSON() ([]byte, error) {
	return marshalKey(k.Bits, k.Curve, k.Kind, k.PEM)
}

func marshalKey(bits int, curve string, kind KeyKind, pemText string) ([]byte, error) {
	out := map[string]any{
		"bits":  bits,
		"curve": curve,
		"type":  kind.kindName(),
	}
	if pemText != "" {
		out["pem"] = pemText
	}

	raw, err := json.Marshal(kind)
	if err != nil {
		return nil, err
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	for name, value := range fields {
		out[name] = value
	}

	return json.Marshal(out)
}

// NewSimplePublicKey normalizes key. The union of accepted algorithms is
// fixed; an unexpected dynamic type is a programming error upstream and
// panics rather than degrading silently.
func NewSimplePublicKey(key crypto.PublicKey, pemText string) SimplePublicKey {
	switch k := key.(type) {
	case *rsa.PublicKey:
		return SimplePublicKey{
			Bits:  k.N.BitLen(),
			Curve: "rsaEncryption",
			Kind: RSAKey{
				Size:     k.Size() * 8,
				Modulus:  hex.EncodeToString(k.N.Bytes()),
				Exponent: strconv.Itoa(k.E),
			},
			PEM: pemText,
		}
	case *dsa.PublicKey:
		return SimplePublicKey{
			Bits:  k.P.BitLen(),
			Curve: "dsaEncryption",
			Kind: DSAKey{
				P:   k.P.Text(16),
				Q:   k.Q.Text(16),
				G:   k.G.Text(16),
				Pub: k.Y.Text(16),
			},
			PEM: pemText,
		}
	case *ecdsa.PublicKey:
		name := curveName(k.Curve)
		return SimplePublicKey{
			Bits:  k.Curve.Params().BitSize,
			Curve: name,
			Kind: ECKey{
				Group: name,
				Pub:   hex.EncodeToString(elliptic.MarshalCompressed(k.Curve, k.X, k.Y)),
			},
			PEM: pemText,
		}
	case ed25519.PublicKey:
		return SimplePublicKey{
			Bits:  ed25519.PublicKeySize * 8,
			Curve: "ED25519",
			Kind:  Ed25519Key{Pub: hex.EncodeToString(k)},
			PEM:   pemText,
		}
	case ed448.PublicKey:
		return SimplePublicKey{
			Bits:  ed448.PublicKeySize * 8,
			Curve: "ED448",
			Kind:  Ed448Key{Pub: hex.EncodeToString(k)},
			PEM:   pemText,
		}
	default:
		panic(fmt.Sprintf("x509model: unsupported public key type %T", key))
	}
}

// NewSimplePrivateKey normalizes key, mirroring [NewSimplePublicKey].
func NewSimplePrivateKey(key crypto.PrivateKey, pemText string) SimplePrivateKey {
	switch k := key.(type) {
	case *rsa.PrivateKey:
		return SimplePrivateKey{
			Bits:  k.N.BitLen(),
			Curve: "rsaEncryption",
			Kind: RSAPrivateKey{
				Size:     k.Size() * 8,
				Modulus:  hex.EncodeToString(k.N.Bytes()),
				Exponent: strconv.Itoa(k.E),
				P:        k.Primes[0].Text(16),
				Q:        k.Primes[1].Text(16),
				Key:      k.D.Text(16),
			},
			PEM: pemText,
		}
	case *dsa.PrivateKey:
		return SimplePrivateKey{
			Bits:  k.P.BitLen(),
			Curve: "dsaEncryption",
			Kind: DSAPrivateKey{
				P:   k.P.Text(16),
				Q:   k.Q.Text(16),
				G:   k.G.Text(16),
				Pub: k.Y.Text(16),
				Key: k.X.Text(16),
			},
			PEM: pemText,
		}
	case *ecdsa.PrivateKey:
		name := curveName(k.Curve)
		return SimplePrivateKey{
			Bits:  k.Curve.Params().BitSize,
			Curve: name,
			Kind: ECPrivateKey{
				Group: name,
				Pub:   hex.EncodeToString(elliptic.MarshalCompressed(k.Curve, k.X, k.Y)),
				Key:   k.D.Text(16),
			},
			PEM: pemText,
		}
	case ed25519.PrivateKey:
		return SimplePrivateKey{
			Bits:  ed25519.PublicKeySize * 8,
			Curve: "ED25519",
			Kind: Ed25519PrivateKey{
				Pub: hex.EncodeToString(k.Public().(ed25519.PublicKey)),
				Key: hex.EncodeToString(k.Seed()),
			},
			PEM: pemText,
		}
	case ed448.PrivateKey:
		return SimplePrivateKey{
			Bits:  ed448.PublicKeySize * 8,
			Curve: "ED448",
			Kind: Ed448PrivateKey{
				Pub: hex.EncodeToString(k.Public().(ed448.PublicKey)),
				Key: hex.EncodeToString(k.Seed()),
			},
			PEM: pemText,
		}
	default:
		panic(fmt.Sprintf("x509model: unsupported private key type %T", key))
	}
}

// curveName maps stdlib curves to their OpenSSL short names.
func curveName(c elliptic.Curve) string {
	switch c {
	case elliptic.P224():
		return "secp224r1"
	case elliptic.P256():
		return "prime256v1"
	case elliptic.P384():
		return "secp384r1"
	case elliptic.P521():
		return "secp521r1"
	default:
		return c.Params().Name
	}
}
