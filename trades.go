package carteira

import (
	"maps"
	"slices"

	"github.com/shopspring/decimal"
)

// TradeSummary aggregates the negotiation feed for one asset. Monetary sums
// use decimals: unlike the movement fold, the trade feed has no float
// semantics to preserve, and statement values should add up exactly.
type TradeSummary struct {
	Asset       Asset
	BoughtQty   decimal.Decimal
	SoldQty     decimal.Decimal
	Bought      decimal.Decimal // total operation value of buys
	Sold        decimal.Decimal // total operation value of sells
	NetInvested decimal.Decimal // Bought - Sold
}

// SummarizeTrades aggregates trades per asset, in asset code order.
func SummarizeTrades(trades []Trade) []TradeSummary {
	byAsset := make(map[Asset]*TradeSummary)

	for _, t := range trades {
		s, ok := byAsset[t.Asset]
		if !ok {
			s = &TradeSummary{Asset: t.Asset}
			byAsset[t.Asset] = s
		}

		qty := decimal.NewFromFloat(t.Quantity)
		value := decimal.NewFromFloat(t.OperationValue)

		switch t.Direction {
		case In:
			s.BoughtQty = s.BoughtQty.Add(qty)
			s.Bought = s.Bought.Add(value)
		case Out:
			s.SoldQty = s.SoldQty.Add(qty)
			s.Sold = s.Sold.Add(value)
		}
	}

	assets := slices.Collect(maps.Keys(byAsset))
	slices.SortFunc(assets, cmpAssets)

	summaries := make([]TradeSummary, 0, len(assets))
	for _, a := range assets {
		s := byAsset[a]
		s.NetInvested = s.Bought.Sub(s.Sold)
		summaries = append(summaries, *s)
	}
	return summaries
}
