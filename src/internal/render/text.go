// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/tlsprobe"
	x509model "github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/x509/model"
)

const timeLayout = "2006-01-02 15:04:05 MST"

// RenderProbe writes the human-readable view of a connection diagnostic:
// the negotiated parameters, per-stage timings, then each certificate.
func RenderProbe(w io.Writer, theme Theme, result *tlsprobe.Result) {
	conn := result.Connection

	fmt.Fprintln(w, theme.Title.Render(fmt.Sprintf("%s:%d (%s)", conn.Host, conn.Port, conn.IP)))
	writeField(w, theme, "Version", conn.Version)
	writeField(w, theme, "Cipher", conn.Cipher)
	writeField(w, theme, "Curve", conn.Curve)
	if conn.PQC {
		writeField(w, theme, "PQC", theme.Good.Render("yes"))
	} else {
		writeField(w, theme, "PQC", "no")
	}
	writeField(w, theme, "Transport", string(conn.Transport))
	writeField(w, theme, "Timings", fmt.Sprintf("dns %s, connect %s, handshake %s",
		formatMillis(conn.Timings.DNSLookup),
		formatMillis(conn.Timings.TCPConnect),
		formatMillis(conn.Timings.TLSHandshake)))

	for i := range result.Certs {
		fmt.Fprintln(w)
		renderCert(w, theme, &result.Certs[i], i)
	}
}

// RenderParse writes the human-readable view of a parse run: certificates
// first, then requests and keys. Multi-certificate inputs get a leading
// summary table.
func RenderParse(w io.Writer, theme Theme, result *x509model.ParseResult) {
	if len(result.Certs) > 1 {
		fmt.Fprintln(w, SummaryTable(result.Certs))
	}

	first := true
	for i := range result.Certs {
		if !first {
			fmt.Fprintln(w)
		}
		first = false
		renderCert(w, theme, &result.Certs[i], i)
	}
	for i := range result.Csrs {
		if !first {
			fmt.Fprintln(w)
		}
		first = false
		renderCsr(w, theme, &result.Csrs[i])
	}
	for i := range result.PublicKeys {
		if !first {
			fmt.Fprintln(w)
		}
		first = false
		fmt.Fprintln(w, theme.Title.Render("Public Key"))
		renderKey(w, theme, result.PublicKeys[i].Bits, result.PublicKeys[i].Curve)
	}
	for i := range result.PrivateKeys {
		if !first {
			fmt.Fprintln(w)
		}
		first = false
		fmt.Fprintln(w, theme.Title.Render("Private Key"))
		renderKey(w, theme, result.PrivateKeys[i].Bits, result.PrivateKeys[i].Curve)
	}
}

func renderCert(w io.Writer, theme Theme, cert *x509model.SimpleCert, index int) {
	fmt.Fprintln(w, theme.Title.Render(fmt.Sprintf("Certificate #%d", index+1)))
	writeField(w, theme, "Subject", cert.Subject.Name)
	writeField(w, theme, "Issuer", cert.Issuer.Name)
	writeField(w, theme, "Serial", cert.Serial)
	writeField(w, theme, "Not Before", cert.NotBefore.Format(timeLayout))
	writeField(w, theme, "Not After", cert.NotAfter.Format(timeLayout))
	writeField(w, theme, "Expires In", formatSeconds(cert.ExpiresIn))

	if sans := formatSans(cert.Subject.Sans); sans != "" {
		writeField(w, theme, "SANs", sans)
	}
	writeField(w, theme, "Key", fmt.Sprintf("%s (%d bit)", cert.PublicKey.Curve, cert.PublicKey.Bits))
	writeField(w, theme, "Signature", cert.Signature.Algorithm)
	writeField(w, theme, "SHA-256", cert.SHA256)

	if bc := cert.Extensions.BasicConstraints; bc != nil && bc.CA {
		writeField(w, theme, "CA", "yes")
	}

	if cert.Valid != nil {
		if *cert.Valid {
			writeField(w, theme, "Verified", theme.Good.Render("yes"))
		} else {
			reason := "verification failed"
			if cert.VerifyResult != nil {
				reason = *cert.VerifyResult
			}
			writeField(w, theme, "Verified", theme.Bad.Render("no: "+reason))
		}
	}
}

func renderCsr(w io.Writer, theme Theme, csr *x509model.SimpleCsr) {
	fmt.Fprintln(w, theme.Title.Render("Certificate Request"))
	writeField(w, theme, "Subject", csr.Subject.Name)
	if sans := formatSans(csr.Subject.Sans); sans != "" {
		writeField(w, theme, "SANs", sans)
	}
	writeField(w, theme, "Key", fmt.Sprintf("%s (%d bit)", csr.PublicKey.Curve, csr.PublicKey.Bits))
	writeField(w, theme, "Signature", csr.Signature.Algorithm)
}

func renderKey(w io.Writer, theme Theme, bits int, curve string) {
	writeField(w, theme, "Algorithm", curve)
	writeField(w, theme, "Bits", fmt.Sprintf("%d", bits))
}

func writeField(w io.Writer, theme Theme, label, value string) {
	fmt.Fprintf(w, "  %s %s\n", theme.Label.Render(fmt.Sprintf("%-11s", label+":")), value)
}

func formatSans(sans x509model.Sans) string {
	var parts []string
	parts = append(parts, sans.DNS...)
	parts = append(parts, sans.IP...)
	parts = append(parts, sans.Email...)
	parts = append(parts, sans.URI...)
	return strings.Join(parts, ", ")
}

func formatMillis(m tlsprobe.Millis) string {
	return fmt.Sprintf("%.1fms", float64(time.Duration(m))/float64(time.Millisecond))
}

// formatSeconds renders a second count as a coarse human duration. Negative
// values mean the window has already closed.
func formatSeconds(seconds int64) string {
	expired := seconds < 0
	if expired {
		seconds = -seconds
	}

	var out string
	switch {
	case seconds >= 86400:
		out = fmt.Sprintf("%dd", seconds/86400)
	case seconds >= 3600:
		out = fmt.Sprintf("%dh", seconds/3600)
	case seconds >= 60:
		out = fmt.Sprintf("%dm", seconds/60)
	default:
		out = fmt.Sprintf("%ds", seconds)
	}

	if expired {
		return out + " ago"
	}
	return out
}
