package b3

import (
	"fmt"
	"slices"

	"github.com/brlima/carteira"
)

// Column labels of the negotiation feed. All columns are required.
const (
	colTradeDate      = "Data do Negócio"
	colTradeDirection = "Tipo de Movimentação"
	colTradeMarket    = "Mercado"
	colTradeBroker    = "Instituição"
	colTradeCode      = "Código de Negociação"
	colTradeQuantity  = "Quantidade"
	colTradePrice     = "Preço"
	colTradeValue     = "Valor"
)

// ReadTrades decodes the negotiation feed of one workbook and returns it in
// chronological order. Rows that fail to decode are logged and dropped.
func (d *Decoder) ReadTrades(path string) ([]carteira.Trade, error) {
	rows, err := sheetRows(path, TradesSheet)
	if err != nil {
		return nil, err
	}

	index := headerIndex(rows[0])
	if err := requireColumns(index, colTradeDate, colTradeDirection, colTradeMarket,
		colTradeBroker, colTradeCode, colTradeQuantity, colTradePrice, colTradeValue); err != nil {
		return nil, fmt.Errorf("sheet %q of %q: %w", TradesSheet, path, err)
	}

	trades := make([]carteira.Trade, 0, len(rows)-1)
	for i, row := range rows[1:] {
		t, err := decodeTrade(index, row)
		if err != nil {
			d.log.Warn().Err(err).Str("file", path).Int("row", i+2).Msg("dropping trade row")
			continue
		}
		trades = append(trades, t)
	}

	slices.Reverse(trades)
	return trades, nil
}

// decodeTrade maps one raw row into a typed trade record. Unlike the
// movement feed, every field is required here.
func decodeTrade(index map[string]int, row []string) (carteira.Trade, error) {
	var t carteira.Trade
	var err error

	if t.Date, err = carteira.ParseStatementDate(cell(index, row, colTradeDate)); err != nil {
		return carteira.Trade{}, err
	}
	if t.Direction, err = carteira.ParseDirection(cell(index, row, colTradeDirection)); err != nil {
		return carteira.Trade{}, err
	}
	if t.Segment, err = carteira.ParseMarketSegment(cell(index, row, colTradeMarket)); err != nil {
		return carteira.Trade{}, err
	}
	if t.Asset, err = carteira.ParseAsset(cell(index, row, colTradeCode)); err != nil {
		return carteira.Trade{}, err
	}
	if t.Quantity, err = parseNumber(cell(index, row, colTradeQuantity)); err != nil {
		return carteira.Trade{}, fmt.Errorf("quantity: %w", err)
	}
	if t.UnitPrice, err = parseNumber(cell(index, row, colTradePrice)); err != nil {
		return carteira.Trade{}, fmt.Errorf("unit price: %w", err)
	}
	if t.OperationValue, err = parseNumber(cell(index, row, colTradeValue)); err != nil {
		return carteira.Trade{}, fmt.Errorf("operation value: %w", err)
	}

	t.Broker = cell(index, row, colTradeBroker)
	return t, nil
}
