package b3

import (
	"fmt"
	"slices"

	"github.com/brlima/carteira"
)

// Column labels of the movement feed.
const (
	colDirection      = "Entrada/Saída"
	colDate           = "Data"
	colKind           = "Movimentação"
	colProduct        = "Produto"
	colBroker         = "Instituição"
	colQuantity       = "Quantidade"
	colUnitPrice      = "Preço unitário"
	colOperationValue = "Valor da Operação"
)

// ReadMovements decodes the movement feed of one workbook and returns it in
// chronological order. Rows that fail to decode are logged and dropped;
// the run continues.
func (d *Decoder) ReadMovements(path string) ([]carteira.Movement, error) {
	rows, err := sheetRows(path, MovementsSheet)
	if err != nil {
		return nil, err
	}

	index := headerIndex(rows[0])
	if err := requireColumns(index, colDirection, colDate, colKind, colProduct, colQuantity); err != nil {
		return nil, fmt.Errorf("sheet %q of %q: %w", MovementsSheet, path, err)
	}

	movements := make([]carteira.Movement, 0, len(rows)-1)
	for i, row := range rows[1:] {
		m, err := decodeMovement(index, row)
		if err != nil {
			d.log.Warn().Err(err).Str("file", path).Int("row", i+2).Msg("dropping movement row")
			continue
		}
		movements = append(movements, m)
	}

	// The export lists rows newest first; the ledger needs them oldest first.
	slices.Reverse(movements)
	return movements, nil
}

// decodeMovement maps one raw row into a typed movement record.
func decodeMovement(index map[string]int, row []string) (carteira.Movement, error) {
	var m carteira.Movement
	var err error

	if m.Direction, err = carteira.ParseDirection(cell(index, row, colDirection)); err != nil {
		return carteira.Movement{}, err
	}
	if m.Date, err = carteira.ParseStatementDate(cell(index, row, colDate)); err != nil {
		return carteira.Movement{}, err
	}
	if m.Kind, err = carteira.ParseMovementKind(cell(index, row, colKind)); err != nil {
		return carteira.Movement{}, err
	}
	if m.Asset, err = carteira.ParseAsset(cell(index, row, colProduct)); err != nil {
		return carteira.Movement{}, err
	}
	if m.Quantity, err = parseNumber(cell(index, row, colQuantity)); err != nil {
		return carteira.Movement{}, fmt.Errorf("quantity: %w", err)
	}

	m.Broker = cell(index, row, colBroker)
	m.UnitPrice, m.HasUnitPrice = optionalNumber(cell(index, row, colUnitPrice))
	m.OperationValue, m.HasOperationValue = optionalNumber(cell(index, row, colOperationValue))

	return m, nil
}
