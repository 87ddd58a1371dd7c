// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package render turns normalized parse and probe results into
// human-readable terminal output. Styling goes through a lipgloss
// [Theme]; multi-certificate inputs additionally get a tablewriter
// summary table.
package render
