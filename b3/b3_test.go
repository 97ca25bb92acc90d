package b3

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"github.com/brlima/carteira"
)

// writeWorkbook creates an xlsx file with one sheet filled from rows.
func writeWorkbook(t *testing.T, path, sheet string, rows [][]interface{}) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		t.Fatalf("SetSheetName() failed: %v", err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("CoordinatesToCellName() failed: %v", err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			t.Fatalf("SetSheetRow() failed: %v", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("SaveAs(%q) failed: %v", path, err)
	}
}

var movementsHeader = []interface{}{
	"Entrada/Saída", "Data", "Movimentação", "Produto",
	"Instituição", "Quantidade", "Preço unitário", "Valor da Operação",
}

func TestReadMovements(t *testing.T) {
	path := filepath.Join(t.TempDir(), "2023-03.xlsx")

	// Rows newest first, as exported.
	writeWorkbook(t, path, MovementsSheet, [][]interface{}{
		movementsHeader,
		{"Credito", "10/03/2023", "Dividendo", "PETR4 - PETROLEO BRASILEIRO S.A.", "CLEAR CORRETORA", "10", "-", "5,00"},
		{"Credito", "01/03/2023", "Transferência - Liquidação", "PETR4 - PETROLEO BRASILEIRO S.A.", "CLEAR CORRETORA", "10", "25,50", "255,00"},
	})

	d := NewDecoder(zerolog.Nop())
	movements, err := d.ReadMovements(path)
	if err != nil {
		t.Fatalf("ReadMovements() returned unexpected error: %v", err)
	}
	if len(movements) != 2 {
		t.Fatalf("ReadMovements() returned %d movements, want 2", len(movements))
	}

	// Chronological order restored: settlement first, dividend second.
	first := movements[0]
	if first.Kind != carteira.TransferSettlement {
		t.Errorf("movements[0].Kind = %s, want transfer-settlement", first.Kind)
	}
	if want := carteira.NewDate(2023, time.March, 1); first.Date != want {
		t.Errorf("movements[0].Date = %s, want %s", first.Date, want)
	}
	if first.Asset != (carteira.Asset{Code: "PETR", Number: 4}) {
		t.Errorf("movements[0].Asset = %s, want PETR4", first.Asset)
	}
	if !first.HasUnitPrice || first.UnitPrice != 25.5 {
		t.Errorf("movements[0].UnitPrice = %v (present=%v), want 25.5", first.UnitPrice, first.HasUnitPrice)
	}
	if !first.HasOperationValue || first.OperationValue != 255 {
		t.Errorf("movements[0].OperationValue = %v (present=%v), want 255", first.OperationValue, first.HasOperationValue)
	}

	second := movements[1]
	if second.Kind != carteira.Dividend {
		t.Errorf("movements[1].Kind = %s, want dividend", second.Kind)
	}
	if second.HasUnitPrice {
		t.Errorf("movements[1] has a unit price, want absent for %q", "-")
	}
	if !second.HasOperationValue || second.OperationValue != 5 {
		t.Errorf("movements[1].OperationValue = %v (present=%v), want 5", second.OperationValue, second.HasOperationValue)
	}
}

func TestReadMovements_DropsUndecodableRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "2023-04.xlsx")

	writeWorkbook(t, path, MovementsSheet, [][]interface{}{
		movementsHeader,
		{"Credito", "10/04/2023", "Amortização", "PETR4", "CLEAR", "10", "-", "-"}, // unknown kind
		{"Credito", "notadate", "Dividendo", "PETR4", "CLEAR", "10", "-", "5,00"},
		{"Credito", "05/04/2023", "Dividendo", "PETR4", "CLEAR", "10", "-", "5,00"},
	})

	d := NewDecoder(zerolog.Nop())
	movements, err := d.ReadMovements(path)
	if err != nil {
		t.Fatalf("ReadMovements() returned unexpected error: %v", err)
	}
	if len(movements) != 1 {
		t.Fatalf("ReadMovements() returned %d movements, want 1 (bad rows dropped)", len(movements))
	}
	if movements[0].Kind != carteira.Dividend {
		t.Errorf("surviving row kind = %s, want dividend", movements[0].Kind)
	}
}

func TestReadMovements_MissingSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "other.xlsx")
	writeWorkbook(t, path, "Outro", [][]interface{}{{"a"}})

	d := NewDecoder(zerolog.Nop())
	if _, err := d.ReadMovements(path); err == nil {
		t.Error("ReadMovements() = nil error for workbook without the movement sheet")
	}
}

func TestReadTrades(t *testing.T) {
	path := filepath.Join(t.TempDir(), "2023-03.xlsx")

	writeWorkbook(t, path, TradesSheet, [][]interface{}{
		{"Data do Negócio", "Tipo de Movimentação", "Mercado", "Instituição",
			"Código de Negociação", "Quantidade", "Preço", "Valor"},
		{"10/03/2023", "Venda", "Mercado à Vista", "CLEAR CORRETORA", "PETR4", "50", "26,00", "1.300,00"},
		{"01/03/2023", "Compra", "Mercado Fracionário", "CLEAR CORRETORA", "PETR4F", "5", "25,20", "126,00"},
	})

	d := NewDecoder(zerolog.Nop())
	trades, err := d.ReadTrades(path)
	if err != nil {
		t.Fatalf("ReadTrades() returned unexpected error: %v", err)
	}
	if len(trades) != 2 {
		t.Fatalf("ReadTrades() returned %d trades, want 2", len(trades))
	}

	first := trades[0]
	if first.Direction != carteira.In || first.Segment != carteira.FractionalMarket {
		t.Errorf("trades[0] = %+v, want a fractional-market buy", first)
	}
	if !first.Asset.Fractional {
		t.Errorf("trades[0].Asset = %+v, want fractional PETR4F", first.Asset)
	}

	second := trades[1]
	if second.Direction != carteira.Out || second.OperationValue != 1300 {
		t.Errorf("trades[1] = %+v, want a 1300.00 sale", second)
	}
}

func TestScanDir(t *testing.T) {
	dir := t.TempDir()
	writeWorkbook(t, filepath.Join(dir, "b-2023-02.xlsx"), MovementsSheet, [][]interface{}{movementsHeader})
	writeWorkbook(t, filepath.Join(dir, "a-2023-01.xlsx"), MovementsSheet, [][]interface{}{movementsHeader})
	writeWorkbook(t, filepath.Join(dir, "notes.txt.xlsx"), MovementsSheet, [][]interface{}{movementsHeader})

	paths, err := ScanDir(dir)
	if err != nil {
		t.Fatalf("ScanDir() returned unexpected error: %v", err)
	}
	if len(paths) != 3 {
		t.Fatalf("ScanDir() returned %d paths, want 3", len(paths))
	}
	// Lexical order doubles as chronological order for period exports.
	if filepath.Base(paths[0]) != "a-2023-01.xlsx" || filepath.Base(paths[1]) != "b-2023-02.xlsx" {
		t.Errorf("ScanDir() order = %v, want lexical", paths)
	}
}

func TestLoadMovements_SkipsUnreadableWorkbooks(t *testing.T) {
	dir := t.TempDir()
	writeWorkbook(t, filepath.Join(dir, "01-good.xlsx"), MovementsSheet, [][]interface{}{
		movementsHeader,
		{"Credito", "05/01/2023", "Dividendo", "ITSA4", "CLEAR", "10", "-", "3,25"},
	})
	// A workbook without the movement sheet is skipped whole, non-fatal.
	writeWorkbook(t, filepath.Join(dir, "02-nosheet.xlsx"), "Outro", [][]interface{}{{"x"}})

	d := NewDecoder(zerolog.Nop())
	movements, err := d.LoadMovements(dir)
	if err != nil {
		t.Fatalf("LoadMovements() returned unexpected error: %v", err)
	}
	if len(movements) != 1 {
		t.Fatalf("LoadMovements() returned %d movements, want 1", len(movements))
	}
}
