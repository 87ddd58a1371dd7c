// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/helper/gc"
	pemscan "github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/pem"
	"github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/render"
	x509entity "github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/x509/entity"
	x509model "github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/x509/model"
	"github.com/H0llyW00dzZ/tls-cert-inspector/src/logger"
)

// ErrNoEntities indicates input in which nothing decodable was found.
var ErrNoEntities = errors.New("no certificates, requests, or keys found in input")

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [INPUT_FILE]",
		Short: "Extract certificates, requests, and keys from PEM or DER input",
		Long: `Parse scans the input for PEM blocks anywhere in the byte stream,
including blocks embedded in JSON strings with escaped newlines, decodes
each recognized block, and reports the normalized result. Input without
PEM markers is treated as DER (plain certificates or a PKCS7 bundle).

Reads INPUT_FILE when given, stdin otherwise.`,
		Args: cobra.MaximumNArgs(1),
		RunE: execParse,
	}
}

func execParse(cmd *cobra.Command, args []string) error {
	log := newLogger()

	data, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	result, err := ParseData(log, data, time.Now())
	if err != nil {
		return err
	}

	return writeParseResult(result)
}

// ParseData runs the scan and classification pipeline over a byte buffer.
// Blocks that fail to decode are logged and skipped; only an input with no
// decodable entity at all is an error.
func ParseData(log logger.Logger, data []byte, now time.Time) (*x509model.ParseResult, error) {
	result := x509model.NewParseResult()

	if pemscan.HasMarkers(data) {
		for _, scanned := range pemscan.Scan(data) {
			if scanned.Err != nil {
				log.Printf("Warning: skipping block: %v", scanned.Err)
				continue
			}
			entity, err := x509entity.Decode(scanned.Block)
			if err != nil {
				log.Printf("Warning: skipping %q block at byte %d: %v",
					scanned.Block.Label, scanned.Block.Span.Start, err)
				continue
			}
			result.Add(entity, now)
		}
	} else {
		entities, err := x509entity.DecodeDER(data)
		if err != nil {
			return nil, err
		}
		for _, entity := range entities {
			result.Add(entity, now)
		}
	}

	if result.Empty() {
		return nil, ErrNoEntities
	}
	return result, nil
}

// readInput returns the file argument's contents, or the whole of stdin
// when no argument was given. An interactive stdin with no argument prints
// usage instead of blocking on a read that will never come.
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("reading input file: %w", err)
		}
		return data, nil
	}

	if stdinIsTerminal() {
		_ = cmd.Help()
		return nil, errors.New("no input: provide INPUT_FILE or pipe data to stdin")
	}

	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	if _, err := buf.ReadFrom(os.Stdin); err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}

	data := make([]byte, len(buf.Bytes()))
	copy(data, buf.Bytes())
	return data, nil
}

func writeParseResult(result *x509model.ParseResult) error {
	switch outputFormat() {
	case FormatJson:
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	case FormatPem:
		for _, block := range result.PEMBlocks() {
			fmt.Print(block)
		}
	default:
		render.RenderParse(os.Stdout, outputTheme(), result)
	}
	return nil
}
