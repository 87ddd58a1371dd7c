// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package render

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	x509model "github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/x509/model"
)

// SummaryTable renders a one-line-per-certificate markdown table, used
// when an input yields several certificates.
func SummaryTable(certs []x509model.SimpleCert) string {
	if len(certs) == 0 {
		return "No certificates to display"
	}

	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)

	table.Header([]string{"#", "Subject", "Issuer", "Valid Until", "Key", "SHA-256"})

	var rows [][]string
	for i, cert := range certs {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			cert.Subject.Name,
			cert.Issuer.Name,
			cert.NotAfter.Format("2006-01-02"),
			fmt.Sprintf("%d-bit %s", cert.PublicKey.Bits, cert.PublicKey.Curve),
			cert.SHA256[:16],
		})
	}

	table.Bulk(rows)
	table.Render()
	return buf.String()
}
