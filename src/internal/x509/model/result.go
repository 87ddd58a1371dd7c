// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509model

import (
	"fmt"
	"time"

	x509entity "github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/x509/entity"
)

// ParseResult groups normalized entities by category in input order. All
// four slices marshal as JSON arrays even when empty, so consumers never
// branch on null.
type ParseResult struct {
	Certs       []SimpleCert       `json:"certs"`
	Csrs        []SimpleCsr        `json:"csrs"`
	PublicKeys  []SimplePublicKey  `json:"public_keys"`
	PrivateKeys []SimplePrivateKey `json:"private_keys"`
}

// NewParseResult returns an empty result with non-nil slices.
func NewParseResult() *ParseResult {
	return &ParseResult{
		Certs:       []SimpleCert{},
		Csrs:        []SimpleCsr{},
		PublicKeys:  []SimplePublicKey{},
		PrivateKeys: []SimplePrivateKey{},
	}
}

// Add normalizes a decoded entity into the matching category. now is the
// evaluation instant for certificate validity offsets.
func (r *ParseResult) Add(entity x509entity.Decoded, now time.Time) {
	switch e := entity.(type) {
	case x509entity.Cert:
		r.Certs = append(r.Certs, NewSimpleCert(e.Cert, e.PEM, now))
	case x509entity.CertRequest:
		r.Csrs = append(r.Csrs, NewSimpleCsr(e.Req, e.PEM))
	case x509entity.PublicKey:
		r.PublicKeys = append(r.PublicKeys, NewSimplePublicKey(e.Key, e.PEM))
	case x509entity.PrivateKey:
		r.PrivateKeys = append(r.PrivateKeys, NewSimplePrivateKey(e.Key, e.PEM))
	default:
		panic(fmt.Sprintf("x509model: unhandled entity type %T", entity))
	}
}

// Empty reports whether no entity of any category was added.
func (r *ParseResult) Empty() bool {
	return len(r.Certs) == 0 && len(r.Csrs) == 0 &&
		len(r.PublicKeys) == 0 && len(r.PrivateKeys) == 0
}

// PEMBlocks returns the armored text of every entity in input-category
// order (certificates, requests, public keys, private keys).
func (r *ParseResult) PEMBlocks() []string {
	blocks := make([]string, 0, len(r.Certs)+len(r.Csrs)+len(r.PublicKeys)+len(r.PrivateKeys))
	for _, c := range r.Certs {
		blocks = append(blocks, c.PEM)
	}
	for _, c := range r.Csrs {
		blocks = append(blocks, c.PEM)
	}
	for _, k := range r.PublicKeys {
		blocks = append(blocks, k.PEM)
	}
	for _, k := range r.PrivateKeys {
		blocks = append(blocks, k.PEM)
	}
	return blocks
}
