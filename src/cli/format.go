// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

// Format selects an output rendering.
type Format int

// Output renderings. Text is the interactive default; Json the default
// when output is piped.
const (
	FormatText Format = iota
	FormatJson
	FormatPem
)

// String returns the flag spelling of the format.
func (f Format) String() string {
	switch f {
	case FormatJson:
		return "json"
	case FormatPem:
		return "pem"
	default:
		return "text"
	}
}

// NegotiateFormat resolves the output format from the format flags and the
// terminal state of stdout. Explicit flags win in the order json, pem,
// text; with no flag a terminal gets text and a pipe gets json. Flag
// exclusivity is enforced at flag registration, so the precedence order
// only matters for the no-flag fallthrough.
func NegotiateFormat(jsonFlag, pemFlag, textFlag, isTerminal bool) Format {
	switch {
	case jsonFlag:
		return FormatJson
	case pemFlag:
		return FormatPem
	case textFlag:
		return FormatText
	case isTerminal:
		return FormatText
	default:
		return FormatJson
	}
}
