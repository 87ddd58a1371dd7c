// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/render"
	"github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/tlsprobe"
)

var (
	fullChain    bool
	rawPublicKey bool
	curveList    string
	forcePQC     bool
	probeTimeout time.Duration
)

func newConnectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "connect HOST",
		Short: "Diagnose a live TLS endpoint",
		Long: `Connect dials the endpoint, completes a TLS handshake, and reports the
negotiated version, cipher, key exchange group, post-quantum status, and
per-stage timings together with the peer's certificates.

HOST accepts a bare hostname, hostname:port, a literal address:port, or a
URL; port 443 is assumed when omitted. Certificate verification runs after
the handshake and never aborts the probe.`,
		Args: cobra.ExactArgs(1),
		RunE: execConnect,
	}

	cmd.Flags().BoolVarP(&fullChain, "chain", "c", false, "include the full presented chain, not only the leaf")
	cmd.Flags().BoolVar(&rawPublicKey, "rpk", false, "raw public key endpoint: skip certificate extraction")
	cmd.Flags().StringVar(&curveList, "curves", "", "colon-separated key exchange groups to offer")
	cmd.Flags().BoolVar(&forcePQC, "pqc", false, "offer only hybrid post-quantum key exchange groups")
	cmd.Flags().DurationVar(&probeTimeout, "timeout", 0, "overall probe deadline (default: none)")
	cmd.MarkFlagsMutuallyExclusive("curves", "pqc")

	return cmd
}

func execConnect(cmd *cobra.Command, args []string) error {
	log := newLogger()

	ctx := cmd.Context()
	if probeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, probeTimeout)
		defer cancel()
	}

	log.Debugf("probing %s (chain=%t rpk=%t curves=%q pqc=%t)",
		args[0], fullChain, rawPublicKey, curveList, forcePQC)

	result, err := tlsprobe.Probe(ctx, args[0], tlsprobe.Options{
		Chain:  fullChain,
		RPK:    rawPublicKey,
		Curves: curveList,
		PQC:    forcePQC,
	})
	if err != nil {
		return err
	}

	return writeProbeResult(result)
}

func writeProbeResult(result *tlsprobe.Result) error {
	switch outputFormat() {
	case FormatJson:
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	case FormatPem:
		for _, cert := range result.Certs {
			fmt.Print(cert.PEM)
		}
	default:
		render.RenderProbe(os.Stdout, outputTheme(), result)
	}
	return nil
}
