// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/render"
	"github.com/H0llyW00dzZ/tls-cert-inspector/src/logger"
)

var (
	jsonOutput bool
	textOutput bool
	pemOutput  bool
	verbosity  int
)

// Execute runs the root command, handling any errors that occur during execution.
func Execute(version string) {
	rootCmd := &cobra.Command{
		Use:     "tls-cert-inspector",
		Short:   "TLS certificate and endpoint inspector",
		Version: version,
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output JSON")
	rootCmd.PersistentFlags().BoolVar(&textOutput, "text", false, "output human-readable text")
	rootCmd.PersistentFlags().BoolVar(&pemOutput, "pem", false, "output PEM blocks")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "enable verbose logging")
	rootCmd.MarkFlagsMutuallyExclusive("json", "text", "pem")

	rootCmd.AddCommand(newParseCmd(), newConnectCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger builds the CLI logger from the global verbosity flag.
func newLogger() logger.Logger {
	return logger.NewCLILogger(verbosity > 0)
}

// outputFormat resolves the active format against the stdout terminal state.
func outputFormat() Format {
	return NegotiateFormat(jsonOutput, pemOutput, textOutput, stdoutIsTerminal())
}

// outputTheme picks styled or plain rendering to match the destination.
func outputTheme() render.Theme {
	if stdoutIsTerminal() {
		return render.NewTheme()
	}
	return render.PlainTheme()
}

func stdoutIsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

func stdinIsTerminal() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}
