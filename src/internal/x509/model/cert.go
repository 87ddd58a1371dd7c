// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509model

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/x509"
	"encoding/hex"
	"time"
)

// SimpleCert is the normalized projection of an X.509 certificate,
// independent of the PEM/DER framing it was decoded from.
//
// Hex-encoded fields use lowercase hex without separators. Fingerprints
// are computed over the full DER encoding of the certificate.
type SimpleCert struct {
	Subject Subject `json:"subject"`
	Serial  string  `json:"serial"`
	Issuer  Issuer  `json:"issuer"`
	Validity
	SKI          *string        `json:"ski,omitempty"`
	AKI          *string        `json:"aki,omitempty"`
	PublicKey    SimplePublicKey `json:"public_key"`
	KeyUsage     SimpleKeyUsage  `json:"key_usage"`
	Signature    Signature       `json:"signature"`
	Extensions   Extensions      `json:"extensions"`
	Fingerprints
	PEM string `json:"pem"`
}

// Subject holds the certificate subject: the library-rendered
// distinguished-name string plus partitioned subject alternative names.
type Subject struct {
	Name string  `json:"name"`
	SKI  *string `json:"ski,omitempty"`
	Sans Sans    `json:"sans"`
}

// Issuer holds the library-rendered issuer distinguished name.
type Issuer struct {
	Name string  `json:"name"`
	AKI  *string `json:"aki,omitempty"`
}

// Sans partitions a certificate's subject alternative names into four
// ordered sequences. Source-list order is preserved within each category.
type Sans struct {
	DNS   []string `json:"dns,omitempty"`
	IP    []string `json:"ip,omitempty"`
	Email []string `json:"email,omitempty"`
	URI   []string `json:"uri,omitempty"`
}

// Validity is the certificate validity window, with offsets computed
// relative to the evaluation time passed to the builder.
//
// Valid and VerifyResult are populated only after a live verification pass
// (connection diagnostic); parse-only paths leave them unset.
type Validity struct {
	NotBefore    time.Time `json:"not_before"`
	NotAfter     time.Time `json:"not_after"`
	ExpiresIn    int64     `json:"expires_in"`
	ValidIn      int64     `json:"valid_in"`
	Valid        *bool     `json:"valid,omitempty"`
	VerifyResult *string   `json:"verify_result,omitempty"`
}

// Signature is a signature algorithm name plus the raw signature value.
type Signature struct {
	Algorithm string `json:"algorithm"`
	Value     string `json:"value"`
}

// Fingerprints holds digests over the certificate's full DER encoding.
type Fingerprints struct {
	SHA256 string `json:"sha256"`
	SHA1   string `json:"sha1"`
	MD5    string `json:"md5"`
}

// Extensions carries optional certificate extensions. Absent extensions
// stay nil rather than taking default values.
type Extensions struct {
	BasicConstraints *BasicConstraints `json:"basic_constraints,omitempty"`
}

// BasicConstraints mirrors the X.509 basic constraints extension.
type BasicConstraints struct {
	CA      bool `json:"ca"`
	PathLen *int `json:"path_len,omitempty"`
}

// NewSimpleCert builds the normalized model for cert. pemText is the
// armored source text carried through for PEM-mode output; now is the
// evaluation instant for the validity offsets.
func NewSimpleCert(cert *x509.Certificate, pemText string, now time.Time) SimpleCert {
	ski := hexOpt(cert.SubjectKeyId)
	aki := hexOpt(cert.AuthorityKeyId)

	sha256Sum := sha256.Sum256(cert.Raw)
	sha1Sum := sha1.Sum(cert.Raw)
	md5Sum := md5.Sum(cert.Raw)

	return SimpleCert{
		Subject: Subject{
			Name: cert.Subject.String(),
			SKI:  ski,
			Sans: sansFromCert(cert),
		},
		Serial: cert.SerialNumber.Text(16),
		Issuer: Issuer{
			Name: cert.Issuer.String(),
			AKI:  aki,
		},
		Validity: Validity{
			NotBefore: cert.NotBefore.UTC(),
			NotAfter:  cert.NotAfter.UTC(),
			ExpiresIn: int64(cert.NotAfter.Sub(now).Seconds()),
			ValidIn:   int64(cert.NotBefore.Sub(now).Seconds()),
		},
		SKI:       ski,
		AKI:       aki,
		PublicKey: NewSimplePublicKey(cert.PublicKey, ""),
		KeyUsage:  newSimpleKeyUsage(cert),
		Signature: Signature{
			Algorithm: cert.SignatureAlgorithm.String(),
			Value:     hex.EncodeToString(cert.Signature),
		},
		Extensions: newExtensions(cert),
		Fingerprints: Fingerprints{
			SHA256: hex.EncodeToString(sha256Sum[:]),
			SHA1:   hex.EncodeToString(sha1Sum[:]),
			MD5:    hex.EncodeToString(md5Sum[:]),
		},
		PEM: pemText,
	}
}

// ApplyVerifyResult records the outcome of a post-handshake verification
// pass on the certificate's validity fields.
func (c *SimpleCert) ApplyVerifyResult(err error) {
	if err != nil {
		valid := false
		reason := err.Error()
		c.Valid = &valid
		c.VerifyResult = &reason
		return
	}
	valid := true
	c.Valid = &valid
}

func sansFromCert(cert *x509.Certificate) Sans {
	sans := Sans{
		DNS:   cert.DNSNames,
		Email: cert.EmailAddresses,
	}
	for _, ip := range cert.IPAddresses {
		sans.IP = append(sans.IP, ip.String())
	}
	for _, uri := range cert.URIs {
		sans.URI = append(sans.URI, uri.String())
	}
	return sans
}

func newExtensions(cert *x509.Certificate) Extensions {
	var ext Extensions
	if cert.BasicConstraintsValid {
		bc := &BasicConstraints{CA: cert.IsCA}
		if cert.MaxPathLen > 0 || cert.MaxPathLenZero {
			pathLen := cert.MaxPathLen
			bc.PathLen = &pathLen
		}
		ext.BasicConstraints = bc
	}
	return ext
}

// hexOpt encodes optional extension bytes, preserving absence as nil.
func hexOpt(b []byte) *string {
	if len(b) == 0 {
		return nil
	}
	s := hex.EncodeToString(b)
	return &s
}
