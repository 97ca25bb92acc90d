package carteira

// Position is the running holding of one asset under average-cost
// accounting: a signed unit count, the aggregate cost basis of those units,
// and the derived per-unit average cost.
//
// Invariant: AverageCost == TotalCost / Quantity after every mutation,
// except when Quantity is exactly zero, where TotalCost and AverageCost are
// both reset to zero. Totals accumulate at native float64 precision; the
// full-close reset clears residual rounding once a position is closed.
type Position struct {
	Quantity    float64
	TotalCost   float64
	AverageCost float64
}

// Acquire adds units to the position. operationValue is the total cost of
// the acquisition and may be zero for cost-free unit-count changes such as
// splits or transfers in.
func (p *Position) Acquire(quantity, unitPrice, operationValue float64) {
	p.Quantity += quantity
	p.TotalCost += operationValue
	p.AverageCost = p.TotalCost / p.Quantity
}

// Dispose removes units from the position and returns the realized profit:
// the spread between unitPrice and the current average cost, scaled by the
// units disposed. operationValue (the total proceeds) only reduces the
// remaining cost basis; it never enters the profit figure.
//
// Disposing the exact held quantity resets the cost basis to zero.
// Disposing more than is held is not guarded; the quantity goes negative.
func (p *Position) Dispose(quantity, unitPrice, operationValue float64) float64 {
	profit := (unitPrice - p.AverageCost) * quantity

	p.Quantity -= quantity

	if p.Quantity == 0.0 {
		p.TotalCost = 0.0
		p.AverageCost = 0.0
	} else {
		p.TotalCost -= operationValue
		p.AverageCost = p.TotalCost / p.Quantity
	}

	return profit
}

// AdjustUnits changes the unit count without touching the cost basis, for
// splits and transfers in: more units, same total cost, proportionally
// lower average cost.
func (p *Position) AdjustUnits(delta float64) {
	p.Acquire(delta, 0, 0)
}
