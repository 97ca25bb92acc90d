// Package b3 decodes the xlsx statement exports of the B3 investor portal
// into typed movement and trade records.
//
// Each workbook covers one period and carries two sheets: "Movimentação"
// (the movement feed) and "Negociação" (the negotiation feed). Rows come
// newest first; the decoder returns them in chronological order, ready for
// the ledger fold. Rows that cannot be decoded are logged and skipped;
// files that cannot be opened or lack the expected sheet are skipped whole.
package b3

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/brlima/carteira"
)

// Sheet names in the B3 export workbooks.
const (
	MovementsSheet = "Movimentação"
	TradesSheet    = "Negociação"
)

// Decoder reads statement workbooks. The zero value is not usable; create
// one with NewDecoder.
type Decoder struct {
	log zerolog.Logger
}

// NewDecoder creates a decoder logging diagnostics to log.
func NewDecoder(log zerolog.Logger) *Decoder {
	return &Decoder{log: log.With().Str("component", "b3").Logger()}
}

// ScanDir returns the xlsx workbook paths under dir, in lexical order.
// Statement exports are named per period, so lexical order is also
// chronological order across files.
func ScanDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot scan statements directory %q: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".xlsx") {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	return paths, nil
}

// LoadMovements decodes the movement feed of every workbook under dir and
// concatenates the per-file chronological sequences. Unreadable workbooks
// are logged and skipped.
func (d *Decoder) LoadMovements(dir string) ([]carteira.Movement, error) {
	paths, err := ScanDir(dir)
	if err != nil {
		return nil, err
	}

	var movements []carteira.Movement
	for _, path := range paths {
		ms, err := d.ReadMovements(path)
		if err != nil {
			d.log.Warn().Err(err).Str("file", path).Msg("skipping workbook")
			continue
		}
		d.log.Info().Str("file", path).Int("movements", len(ms)).Msg("decoded movement feed")
		movements = append(movements, ms...)
	}
	return movements, nil
}

// LoadTrades decodes the negotiation feed of every workbook under dir.
// Unreadable workbooks are logged and skipped.
func (d *Decoder) LoadTrades(dir string) ([]carteira.Trade, error) {
	paths, err := ScanDir(dir)
	if err != nil {
		return nil, err
	}

	var trades []carteira.Trade
	for _, path := range paths {
		ts, err := d.ReadTrades(path)
		if err != nil {
			d.log.Warn().Err(err).Str("file", path).Msg("skipping workbook")
			continue
		}
		d.log.Info().Str("file", path).Int("trades", len(ts)).Msg("decoded negotiation feed")
		trades = append(trades, ts...)
	}
	return trades, nil
}

// sheetRows opens a workbook and returns the raw rows of one sheet.
func sheetRows(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open workbook %q: %w", path, err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("cannot read sheet %q of %q: %w", sheet, path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q of %q is empty", sheet, path)
	}
	return rows, nil
}

// headerIndex maps header labels to their column position.
func headerIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, label := range header {
		index[strings.TrimSpace(label)] = i
	}
	return index
}

// cell returns the trimmed value of column label for a row, or "" when the
// row is shorter than the header (trailing empty cells are elided by the
// xlsx reader).
func cell(index map[string]int, row []string, label string) string {
	i, ok := index[label]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// requireColumns verifies that the sheet header carries every expected label.
func requireColumns(index map[string]int, labels ...string) error {
	for _, label := range labels {
		if _, ok := index[label]; !ok {
			return fmt.Errorf("missing column %q", label)
		}
	}
	return nil
}
