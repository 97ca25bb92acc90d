package carteira

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestSummarizeTrades(t *testing.T) {
	day := NewDate(2023, time.March, 15)
	petr := Asset{Code: "PETR", Number: 4}
	vale := Asset{Code: "VALE", Number: 3}

	trades := []Trade{
		{Date: day, Direction: In, Segment: WholeMarket, Broker: "CLEAR", Asset: petr, Quantity: 100, UnitPrice: 25.10, OperationValue: 2510},
		{Date: day, Direction: In, Segment: FractionalMarket, Broker: "CLEAR", Asset: petr, Quantity: 5, UnitPrice: 25.20, OperationValue: 126},
		{Date: day, Direction: Out, Segment: WholeMarket, Broker: "CLEAR", Asset: petr, Quantity: 50, UnitPrice: 26, OperationValue: 1300},
		{Date: day, Direction: In, Segment: WholeMarket, Broker: "XP", Asset: vale, Quantity: 10, UnitPrice: 70.33, OperationValue: 703.30},
	}

	summaries := SummarizeTrades(trades)

	if len(summaries) != 2 {
		t.Fatalf("SummarizeTrades() returned %d summaries, want 2", len(summaries))
	}

	// Sorted by asset code: PETR4 then VALE3.
	p := summaries[0]
	if p.Asset != petr {
		t.Fatalf("summaries[0].Asset = %s, want %s", p.Asset, petr)
	}
	if !p.BoughtQty.Equal(decimal.NewFromInt(105)) {
		t.Errorf("BoughtQty = %s, want 105", p.BoughtQty)
	}
	if !p.Bought.Equal(decimal.NewFromInt(2636)) {
		t.Errorf("Bought = %s, want 2636", p.Bought)
	}
	if !p.Sold.Equal(decimal.NewFromInt(1300)) {
		t.Errorf("Sold = %s, want 1300", p.Sold)
	}
	if !p.NetInvested.Equal(decimal.NewFromInt(1336)) {
		t.Errorf("NetInvested = %s, want 1336", p.NetInvested)
	}

	v := summaries[1]
	if v.Asset != vale {
		t.Fatalf("summaries[1].Asset = %s, want %s", v.Asset, vale)
	}
	if !v.NetInvested.Equal(decimal.RequireFromString("703.3")) {
		t.Errorf("NetInvested = %s, want 703.3", v.NetInvested)
	}
}

func TestSummarizeTrades_ExactDecimalSums(t *testing.T) {
	// 0.1 + 0.2 style sums must come out exact in the trade report.
	day := NewDate(2023, time.March, 15)
	a := Asset{Code: "ITSA", Number: 4}

	trades := []Trade{
		{Date: day, Direction: In, Asset: a, Quantity: 1, UnitPrice: 0.1, OperationValue: 0.1},
		{Date: day, Direction: In, Asset: a, Quantity: 1, UnitPrice: 0.2, OperationValue: 0.2},
	}

	summaries := SummarizeTrades(trades)
	if len(summaries) != 1 {
		t.Fatalf("SummarizeTrades() returned %d summaries, want 1", len(summaries))
	}
	if !summaries[0].Bought.Equal(decimal.RequireFromString("0.3")) {
		t.Errorf("Bought = %s, want exactly 0.3", summaries[0].Bought)
	}
}
