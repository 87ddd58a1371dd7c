// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package tlsprobe

import (
	"crypto/tls"
	"encoding/pem"
	"time"

	x509model "github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/x509/model"
)

// ExtractCerts normalizes the peer certificates out of a handshake state,
// leaf first. With chain false only the leaf is kept. Verification runs
// either way and its outcome is recorded on the leaf.
func ExtractCerts(state *tls.ConnectionState, host string, chain bool, now time.Time) []x509model.SimpleCert {
	peers := state.PeerCertificates
	if len(peers) == 0 {
		return nil
	}

	verifyErr := VerifyPeer(peers, host)

	count := 1
	if chain {
		count = len(peers)
	}

	certs := make([]x509model.SimpleCert, 0, count)
	for _, cert := range peers[:count] {
		armored := string(pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: cert.Raw}))
		certs = append(certs, x509model.NewSimpleCert(cert, armored, now))
	}
	certs[0].ApplyVerifyResult(verifyErr)

	return certs
}
