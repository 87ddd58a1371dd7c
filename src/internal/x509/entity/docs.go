// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509entity classifies scanned PEM blocks by label and decodes
// their DER payloads into typed entities (certificates, certificate
// requests, public keys, private keys). Decoding delegates to the standard
// crypto/x509 parsers, with a PKCS7 fallback from cfssl for bare-DER input
// and circl for Ed448 keys. A failure is always scoped to one block.
package x509entity
