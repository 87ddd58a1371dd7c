// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509model

import (
	"crypto/x509"
	"encoding/asn1"
)

var (
	oidKeyUsage         = asn1.ObjectIdentifier{2, 5, 29, 15}
	oidExtendedKeyUsage = asn1.ObjectIdentifier{2, 5, 29, 37}
)

// SimpleKeyUsage expands the key usage bit string into named booleans, so
// consumers never decode bit positions. Critical reflects the extension's
// criticality flag in the source certificate.
type SimpleKeyUsage struct {
	Critical          bool                   `json:"critical"`
	DigitalSignature  bool                   `json:"digital_signature"`
	ContentCommitment bool                   `json:"content_commitment"`
	KeyEncipherment   bool                   `json:"key_encipherment"`
	DataEncipherment  bool                   `json:"data_encipherment"`
	KeyAgreement      bool                   `json:"key_agreement"`
	KeyCertSign       bool                   `json:"key_cert_sign"`
	CRLSign           bool                   `json:"crl_sign"`
	EncipherOnly      bool                   `json:"encipher_only"`
	DecipherOnly      bool                   `json:"decipher_only"`
	Extended          SimpleExtendedKeyUsage `json:"extended"`
}

// SimpleExtendedKeyUsage names the common extended key usage purposes and
// collects everything else (by dotted OID or purpose name) under Custom.
type SimpleExtendedKeyUsage struct {
	Critical        bool     `json:"critical"`
	ServerAuth      bool     `json:"server_auth"`
	ClientAuth      bool     `json:"client_auth"`
	CodeSigning     bool     `json:"code_signing"`
	EmailProtection bool     `json:"email_protection"`
	TimeStamping    bool     `json:"time_stamping"`
	OCSPSigning     bool     `json:"ocsp_signing"`
	Custom          []string `json:"custom,omitempty"`
}

func newSimpleKeyUsage(cert *x509.Certificate) SimpleKeyUsage {
	usage := SimpleKeyUsage{
		DigitalSignature:  cert.KeyUsage&x509.KeyUsageDigitalSignature != 0,
		ContentCommitment: cert.KeyUsage&x509.KeyUsageContentCommitment != 0,
		KeyEncipherment:   cert.KeyUsage&x509.KeyUsageKeyEncipherment != 0,
		DataEncipherment:  cert.KeyUsage&x509.KeyUsageDataEncipherment != 0,
		KeyAgreement:      cert.KeyUsage&x509.KeyUsageKeyAgreement != 0,
		KeyCertSign:       cert.KeyUsage&x509.KeyUsageCertSign != 0,
		CRLSign:           cert.KeyUsage&x509.KeyUsageCRLSign != 0,
		EncipherOnly:      cert.KeyUsage&x509.KeyUsageEncipherOnly != 0,
		DecipherOnly:      cert.KeyUsage&x509.KeyUsageDecipherOnly != 0,
		Extended:          newSimpleExtendedKeyUsage(cert),
	}

	// Criticality is not surfaced by the parsed fields, only by the raw
	// extension list.
	for _, ext := range cert.Extensions {
		if ext.Id.Equal(oidKeyUsage) {
			usage.Critical = ext.Critical
			break
		}
	}

	return usage
}

func newSimpleExtendedKeyUsage(cert *x509.Certificate) SimpleExtendedKeyUsage {
	var extended SimpleExtendedKeyUsage

	for _, usage := range cert.ExtKeyUsage {
		switch usage {
		case x509.ExtKeyUsageServerAuth:
			extended.ServerAuth = true
		case x509.ExtKeyUsageClientAuth:
			extended.ClientAuth = true
		case x509.ExtKeyUsageCodeSigning:
			extended.CodeSigning = true
		case x509.ExtKeyUsageEmailProtection:
			extended.EmailProtection = true
		case x509.ExtKeyUsageTimeStamping:
			extended.TimeStamping = true
		case x509.ExtKeyUsageOCSPSigning:
			extended.OCSPSigning = true
		default:
			extended.Custom = append(extended.Custom, extKeyUsageName(usage))
		}
	}
	for _, oid := range cert.UnknownExtKeyUsage {
		extended.Custom = append(extended.Custom, oid.String())
	}

	for _, ext := range cert.Extensions {
		if ext.Id.Equal(oidExtendedKeyUsage) {
			extended.Critical = ext.Critical
			break
		}
	}

	return extended
}

func extKeyUsageName(usage x509.ExtKeyUsage) string {
	switch usage {
	case x509.ExtKeyUsageAny:
		return "any"
	case x509.ExtKeyUsageIPSECEndSystem:
		return "ipsec_end_system"
	case x509.ExtKeyUsageIPSECTunnel:
		return "ipsec_tunnel"
	case x509.ExtKeyUsageIPSECUser:
		return "ipsec_user"
	case x509.ExtKeyUsageMicrosoftServerGatedCrypto:
		return "microsoft_server_gated_crypto"
	case x509.ExtKeyUsageNetscapeServerGatedCrypto:
		return "netscape_server_gated_crypto"
	case x509.ExtKeyUsageMicrosoftCommercialCodeSigning:
		return "microsoft_commercial_code_signing"
	case x509.ExtKeyUsageMicrosoftKernelCodeSigning:
		return "microsoft_kernel_code_signing"
	default:
		return "unknown"
	}
}
