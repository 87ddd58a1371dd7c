// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509entity

import (
	"crypto"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"

	"github.com/cloudflare/cfssl/crypto/pkcs7"

	pemscan "github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/pem"
)

var (
	// ErrUnknownLabel indicates a PEM label outside the recognized table.
	// Callers skip and log these blocks rather than aborting the batch.
	ErrUnknownLabel = errors.New("x509entity: unknown PEM label")

	// ErrParseCertificate indicates a failure to parse a certificate from DER.
	ErrParseCertificate = errors.New("x509entity: failed to parse certificate")

	// ErrParseCertRequest indicates a failure to parse a certificate request from DER.
	ErrParseCertRequest = errors.New("x509entity: failed to parse certificate request")

	// ErrParsePublicKey indicates a failure to parse a public key from DER.
	ErrParsePublicKey = errors.New("x509entity: failed to parse public key")

	// ErrParsePrivateKey indicates a failure to parse a private key from DER.
	ErrParsePrivateKey = errors.New("x509entity: failed to parse private key")

	// ErrParsePKCS7 indicates a failure to parse PKCS7 formatted data.
	ErrParsePKCS7 = errors.New("x509entity: failed to parse PKCS7 data")

	// ErrNoCertificatesInPKCS indicates that no certificates were found in PKCS7 data.
	ErrNoCertificatesInPKCS = errors.New("x509entity: no certificates found in PKCS7 data")
)

// Decoded is the closed union of entities the classifier can produce:
// [Cert], [CertRequest], [PublicKey], and [PrivateKey]. Each variant wraps
// the library-native decoded object together with the canonical PEM text
// of the block it came from. Values are immutable once built.
type Decoded interface {
	isDecoded()
	// PEMText returns the armored encoding of the entity's DER bytes.
	PEMText() string
}

// Cert is a decoded X.509 certificate.
type Cert struct {
	Cert *x509.Certificate
	PEM  string
}

// CertRequest is a decoded PKCS#10 certificate signing request.
type CertRequest struct {
	Req *x509.CertificateRequest
	PEM string
}

// PublicKey is a decoded public key. Key is one of *rsa.PublicKey,
// *dsa.PublicKey, *ecdsa.PublicKey, ed25519.PublicKey, or ed448.PublicKey.
type PublicKey struct {
	Key crypto.PublicKey
	PEM string
}

// PrivateKey is a decoded private key. Key is one of *rsa.PrivateKey,
// *ecdsa.PrivateKey, ed25519.PrivateKey, or ed448.PrivateKey.
type PrivateKey struct {
	Key crypto.PrivateKey
	PEM string
}

func (Cert) isDecoded()        {}
func (CertRequest) isDecoded() {}
func (PublicKey) isDecoded()   {}
func (PrivateKey) isDecoded()  {}

func (c Cert) PEMText() string        { return c.PEM }
func (c CertRequest) PEMText() string { return c.PEM }
func (k PublicKey) PEMText() string   { return k.PEM }
func (k PrivateKey) PEMText() string  { return k.PEM }

// encodePEM re-armors DER bytes under the given label. The result is the
// canonical form used for PEM-mode output; re-scanning it yields the same
// DER bytes.
func encodePEM(label string, der []byte) string {
	return string(pem.EncodeToMemory(&pem.Block{Type: label, Bytes: der}))
}

// Decode classifies a scanned block by its label and hands the DER payload
// to the matching decode entry point. The label is matched verbatim against
// the fixed table; anything else yields [ErrUnknownLabel].
func Decode(block pemscan.RawBlock) (Decoded, error) {
	der := block.Payload

	switch block.Label {
	case "CERTIFICATE":
		cert, err := x509.ParseCertificate(der)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParseCertificate, err)
		}
		return Cert{Cert: cert, PEM: encodePEM(block.Label, der)}, nil

	case "CERTIFICATE REQUEST":
		req, err := x509.ParseCertificateRequest(der)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParseCertRequest, err)
		}
		return CertRequest{Req: req, PEM: encodePEM(block.Label, der)}, nil

	case "PUBLIC KEY":
		key, err := parsePublicKey(der)
		if err != nil {
			return nil, err
		}
		return PublicKey{Key: key, PEM: encodePEM(block.Label, der)}, nil

	case "RSA PUBLIC KEY":
		key, err := x509.ParsePKCS1PublicKey(der)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParsePublicKey, err)
		}
		return PublicKey{Key: key, PEM: encodePEM(block.Label, der)}, nil

	case "RSA PRIVATE KEY":
		key, err := x509.ParsePKCS1PrivateKey(der)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParsePrivateKey, err)
		}
		return PrivateKey{Key: key, PEM: encodePEM(block.Label, der)}, nil

	case "PRIVATE KEY":
		key, err := parsePrivateKey(der)
		if err != nil {
			return nil, err
		}
		return PrivateKey{Key: key, PEM: encodePEM(block.Label, der)}, nil

	case "EC PRIVATE KEY":
		key, err := x509.ParseECPrivateKey(der)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParsePrivateKey, err)
		}
		return PrivateKey{Key: key, PEM: encodePEM(block.Label, der)}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownLabel, block.Label)
	}
}

// parsePublicKey decodes a PKIX (SubjectPublicKeyInfo) public key,
// falling back to the Ed448 envelope the standard library cannot handle.
func parsePublicKey(der []byte) (crypto.PublicKey, error) {
	key, err := x509.ParsePKIXPublicKey(der)
	if err == nil {
		return key, nil
	}
	if ed, ok := parseEd448PKIX(der); ok {
		return ed, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrParsePublicKey, err)
}

// parsePrivateKey decodes a PKCS#8 private key, falling back to Ed448.
func parsePrivateKey(der []byte) (crypto.PrivateKey, error) {
	key, err := x509.ParsePKCS8PrivateKey(der)
	if err == nil {
		return key, nil
	}
	if ed, ok := parseEd448PKCS8(der); ok {
		return ed, nil
	}
	return nil, fmt.Errorf("%w: %v", ErrParsePrivateKey, err)
}

// DecodeDER implements the auto-detect path for buffers without PEM
// markers: the whole buffer is treated as DER. It first tries plain X.509
// parsing (which may yield several concatenated certificates), then PKCS7.
func DecodeDER(data []byte) ([]Decoded, error) {
	certs, err := x509.ParseCertificates(data)
	if err == nil {
		decoded := make([]Decoded, 0, len(certs))
		for _, cert := range certs {
			decoded = append(decoded, Cert{Cert: cert, PEM: encodePEM("CERTIFICATE", cert.Raw)})
		}
		return decoded, nil
	}

	p, err := pkcs7.ParsePKCS7(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParsePKCS7, err)
	}
	if len(p.Content.SignedData.Certificates) == 0 {
		return nil, ErrNoCertificatesInPKCS
	}

	decoded := make([]Decoded, 0, len(p.Content.SignedData.Certificates))
	for _, cert := range p.Content.SignedData.Certificates {
		decoded = append(decoded, Cert{Cert: cert, PEM: encodePEM("CERTIFICATE", cert.Raw)})
	}
	return decoded, nil
}
