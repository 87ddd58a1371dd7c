// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package tlsprobe

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net"
	"time"
)

// Options controls a probe.
//
// Chain includes every certificate the peer presented instead of only the
// leaf. RPK skips certificate extraction and verification entirely for raw
// public key endpoints. Curves pins the offered key exchange groups to a
// colon-separated list; PQC pins them to the hybrid post-quantum set. The
// two pinning modes are mutually exclusive, enforced by the caller's flag
// layer.
type Options struct {
	Chain  bool
	RPK    bool
	Curves string
	PQC    bool
}

// Probe dials the endpoint, completes a TLS handshake, and reports the
// negotiated parameters plus the peer's certificates with verification
// applied to the leaf. The context bounds every stage including DNS
// resolution.
//
// Verification never aborts the probe. The handshake accepts any chain,
// then a separate verification pass records its outcome on the leaf
// certificate's validity fields.
func Probe(ctx context.Context, input string, opts Options) (*Result, error) {
	target, err := ParseTarget(input)
	if err != nil {
		return nil, err
	}

	curves, err := ParseCurves(opts.Curves)
	if err != nil {
		return nil, err
	}
	if opts.PQC {
		curves = pqcCurves
	}

	var timings Timings

	start := time.Now()
	ip, err := Resolve(ctx, target.Host)
	if err != nil {
		return nil, err
	}
	if !target.IsIP() {
		timings.DNSLookup = Millis(time.Since(start))
	}

	dialer := &net.Dialer{}
	start = time.Now()
	rawConn, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(ip, fmt.Sprintf("%d", target.Port)))
	if err != nil {
		return nil, fmt.Errorf("tlsprobe: connecting to %s: %w", target.Addr(), err)
	}
	timings.TCPConnect = Millis(time.Since(start))
	defer rawConn.Close()

	// Accept whatever the peer presents so diagnostics still work against
	// endpoints with broken chains; trust is evaluated afterwards.
	conf := &tls.Config{
		ServerName:         target.Host,
		InsecureSkipVerify: true,
		CurvePreferences:   curves,
	}

	conn := tls.Client(rawConn, conf)
	start = time.Now()
	if err := conn.HandshakeContext(ctx); err != nil {
		return nil, fmt.Errorf("tlsprobe: handshake with %s: %w", target.Addr(), err)
	}
	timings.TLSHandshake = Millis(time.Since(start))
	defer conn.Close()

	state := conn.ConnectionState()
	curve := CurveName(state.CurveID)

	result := &Result{
		Connection: Connection{
			Host:      target.Host,
			IP:        ip,
			Port:      target.Port,
			Version:   tlsVersionName(state.Version),
			Cipher:    tls.CipherSuiteName(state.CipherSuite),
			Curve:     curve,
			PQC:       IsPQC(curve),
			Transport: TransportTCP,
			Timings:   timings,
		},
	}

	if !opts.RPK {
		result.Certs = ExtractCerts(&state, target.Host, opts.Chain, time.Now())
	}

	return result, nil
}

// VerifyPeer runs standard chain building and hostname verification over
// the presented certificates, using the peer's own intermediates and the
// system trust roots.
func VerifyPeer(certs []*x509.Certificate, host string) error {
	if len(certs) == 0 {
		return fmt.Errorf("tlsprobe: peer presented no certificates")
	}

	intermediates := x509.NewCertPool()
	for _, cert := range certs[1:] {
		intermediates.AddCert(cert)
	}

	_, err := certs[0].Verify(x509.VerifyOptions{
		DNSName:       host,
		Intermediates: intermediates,
	})
	return err
}
