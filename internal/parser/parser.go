// Package parser turns statement CSV exports into normalized row arrays with
// a stable, per-format column order. It owns dialect detection and cell-level
// cleanup only; all interpretation of the rows happens downstream.
package parser

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrUnrecognizedFormat is returned when no profile matches the header line.
var ErrUnrecognizedFormat = errors.New("unrecognized statement format")

// Detect matches the first line of a statement file against the known
// format profiles.
func Detect(header string) (*Profile, error) {
	unquoted := strings.ToLower(strings.NewReplacer(`"`, "", `'`, "").Replace(header))

	for i := range profiles {
		p := &profiles[i]

		if !strings.ContainsRune(header, p.Separator) {
			continue
		}

		if containsAll(unquoted, p.headerWords) {
			return p, nil
		}
	}

	return nil, ErrUnrecognizedFormat
}

// Parse reads a whole statement export, detects its format from the header
// line, and returns the detected profile plus the normalized data rows. The
// header row is consumed; empty lines and rows without any content are
// skipped; every cell is trimmed.
func Parse(r io.Reader) (*Profile, [][]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("reading statement: %w", err)
	}

	header, _, _ := strings.Cut(string(data), "\n")

	profile, err := Detect(header)
	if err != nil {
		return nil, nil, err
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = profile.Separator
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("reading csv: %w", err)
	}

	if len(records) == 0 {
		return profile, nil, nil
	}

	rows := make([][]string, 0, len(records)-1)

	for _, rec := range records[1:] {
		row := normalizeRow(rec, profile.dropColumns)
		if row == nil {
			continue
		}

		rows = append(rows, row)
	}

	return profile, rows, nil
}

// normalizeRow trims cells and removes the profile's dropped columns.
// Returns nil for rows with no content at all.
func normalizeRow(rec []string, drop []int) []string {
	row := make([]string, 0, len(rec))

	hasContent := false

	for i, cell := range rec {
		if dropped(drop, i) {
			continue
		}

		cell = strings.TrimSpace(cell)
		if cell != "" {
			hasContent = true
		}

		row = append(row, cell)
	}

	if !hasContent {
		return nil
	}

	return row
}

func dropped(drop []int, idx int) bool {
	for _, d := range drop {
		if d == idx {
			return true
		}
	}

	return false
}

// Cell safely gets a trimmed cell value from a row. Rows shorter than the
// format's full column count read as empty in the missing positions.
func Cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

// NormalizeAmount converts European-formatted numbers ("1 234,56", "-588,74")
// to plain decimal strings. Values already in plain form pass through.
func NormalizeAmount(s string) string {
	clean := strings.NewReplacer(" ", "", " ", "").Replace(strings.TrimSpace(s))

	if strings.Contains(clean, ",") {
		clean = strings.ReplaceAll(clean, ".", "")
		clean = strings.ReplaceAll(clean, ",", ".")
	}

	return clean
}

func containsAll(s string, words []string) bool {
	for _, w := range words {
		if !strings.Contains(s, w) {
			return false
		}
	}

	return true
}
