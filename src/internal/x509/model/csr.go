// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509model

import (
	"crypto/x509"
	"encoding/hex"
)

// SimpleCsr is the normalized projection of a PKCS#10 certificate request.
// It reuses the certificate's subject and signature shapes; requests carry
// no validity window or fingerprints.
type SimpleCsr struct {
	Subject   Subject         `json:"subject"`
	PublicKey SimplePublicKey `json:"public_key"`
	Signature Signature       `json:"signature"`
	PEM       string          `json:"pem"`
}

// NewSimpleCsr builds the normalized model for req. pemText is the armored
// source text carried through for PEM-mode output.
func NewSimpleCsr(req *x509.CertificateRequest, pemText string) SimpleCsr {
	return SimpleCsr{
		Subject: Subject{
			Name: req.Subject.String(),
			Sans: sansFromRequest(req),
		},
		PublicKey: NewSimplePublicKey(req.PublicKey, ""),
		Signature: Signature{
			Algorithm: req.SignatureAlgorithm.String(),
			Value:     hex.EncodeToString(req.Signature),
		},
		PEM: pemText,
	}
}

func sansFromRequest(req *x509.CertificateRequest) Sans {
	sans := Sans{
		DNS:   req.DNSNames,
		Email: req.EmailAddresses,
	}
	for _, ip := range req.IPAddresses {
		sans.IP = append(sans.IP, ip.String())
	}
	for _, uri := range req.URIs {
		sans.URI = append(sans.URI, uri.String())
	}
	return sans
}
