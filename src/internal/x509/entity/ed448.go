// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509entity

import (
	encasn1 "encoding/asn1"

	"github.com/cloudflare/circl/sign/ed448"
	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"
)

// RFC 8410 id-Ed448.
var oidEd448 = encasn1.ObjectIdentifier{1, 3, 101, 113}

// parseEd448PKIX recognizes an Ed448 SubjectPublicKeyInfo envelope and
// extracts the raw key for circl. Only the envelope is walked here; this
// is not a general ASN.1 parser.
func parseEd448PKIX(der []byte) (ed448.PublicKey, bool) {
	input := cryptobyte.String(der)

	var spki, algo cryptobyte.String
	var oid encasn1.ObjectIdentifier
	var bits encasn1.BitString
	if !input.ReadASN1(&spki, cbasn1.SEQUENCE) ||
		!spki.ReadASN1(&algo, cbasn1.SEQUENCE) ||
		!algo.ReadASN1ObjectIdentifier(&oid) ||
		!oid.Equal(oidEd448) ||
		!spki.ReadASN1BitString(&bits) ||
		bits.BitLength != ed448.PublicKeySize*8 {
		return nil, false
	}

	return ed448.PublicKey(bits.Bytes), true
}

// parseEd448PKCS8 recognizes an Ed448 PKCS#8 envelope: the privateKey
// OCTET STRING wraps a second OCTET STRING holding the 57-byte seed.
func parseEd448PKCS8(der []byte) (ed448.PrivateKey, bool) {
	input := cryptobyte.String(der)

	var pki, algo, keyOctets cryptobyte.String
	var version int
	var oid encasn1.ObjectIdentifier
	if !input.ReadASN1(&pki, cbasn1.SEQUENCE) ||
		!pki.ReadASN1Integer(&version) ||
		!pki.ReadASN1(&algo, cbasn1.SEQUENCE) ||
		!algo.ReadASN1ObjectIdentifier(&oid) ||
		!oid.Equal(oidEd448) ||
		!pki.ReadASN1(&keyOctets, cbasn1.OCTET_STRING) {
		return nil, false
	}

	var seed cryptobyte.String
	if !keyOctets.ReadASN1(&seed, cbasn1.OCTET_STRING) || len(seed) != ed448.SeedSize {
		return nil, false
	}

	return ed448.NewKeyFromSeed([]byte(seed)), true
}
