package carteira

import (
	"errors"
	"fmt"
	"iter"
	"maps"
	"slices"
)

// ErrMissingField reports a movement that violates the decoding contract:
// a settlement row without its unit price or operation value. This is a
// hard failure, not a recoverable input error.
var ErrMissingField = errors.New("missing required field")

// Ledger folds an ordered sequence of movements into per-asset positions
// and running totals. It owns the asset to position mapping exclusively for
// the lifetime of one run.
//
// The fold is strictly sequential: average cost is path dependent, so
// movements must be applied in chronological order. A Ledger is not safe
// for concurrent use.
type Ledger struct {
	positions     map[Asset]*Position
	profit        float64
	distributions float64
	reporter      Reporter
}

// NewLedger creates an empty ledger emitting events to reporter.
// A nil reporter discards events.
func NewLedger(reporter Reporter) *Ledger {
	if reporter == nil {
		reporter = nopReporter{}
	}
	return &Ledger{
		positions: make(map[Asset]*Position),
		reporter:  reporter,
	}
}

// Position returns the position for the given asset, creating an empty one
// on first reference.
func (l *Ledger) Position(a Asset) *Position {
	p, ok := l.positions[a]
	if !ok {
		p = &Position{}
		l.positions[a] = p
	}
	return p
}

// Apply folds one movement into the ledger.
//
// The (direction, kind) pair selects the accounting action from the closed
// dispatch table. Settlement rows (TransferSettlement) require both unit
// price and operation value; their absence is a contract violation reported
// as ErrMissingField. A distribution row without an operation value is
// skipped silently, since some export rows for those kinds carry no
// monetary value.
func (l *Ledger) Apply(m Movement) error {
	action, ok := Dispatch(m.Direction, m.Kind)
	if !ok {
		return fmt.Errorf("no action for %s movement of kind %s", m.Direction, m.Kind)
	}

	switch action {
	case ActionNone:
		return nil

	case ActionAcquire:
		if !m.HasUnitPrice || !m.HasOperationValue {
			return fmt.Errorf("%w: %s %s on %s needs unit price and operation value", ErrMissingField, m.Kind, m.Asset, m.Date)
		}
		l.Position(m.Asset).Acquire(m.Quantity, m.UnitPrice, m.OperationValue)
		return nil

	case ActionDispose:
		if !m.HasUnitPrice || !m.HasOperationValue {
			return fmt.Errorf("%w: %s %s on %s needs unit price and operation value", ErrMissingField, m.Kind, m.Asset, m.Date)
		}
		profit := l.Position(m.Asset).Dispose(m.Quantity, m.UnitPrice, m.OperationValue)
		l.profit += profit
		l.reporter.Disposal(DisposalEvent{
			Asset:              m.Asset,
			Date:               m.Date,
			Profit:             profit,
			TotalProfit:        l.profit,
			TotalDistributions: l.distributions,
		})
		return nil

	case ActionAdjustUnits:
		l.Position(m.Asset).AdjustUnits(m.Quantity)
		return nil

	case ActionDistribute:
		if !m.HasOperationValue {
			return nil
		}
		l.distributions += m.OperationValue
		l.reporter.Distribution(DistributionEvent{
			Asset:              m.Asset,
			Date:               m.Date,
			Amount:             m.OperationValue,
			TotalProfit:        l.profit,
			TotalDistributions: l.distributions,
		})
		return nil

	default:
		return fmt.Errorf("unsupported action %s for %s movement of kind %s", action, m.Direction, m.Kind)
	}
}

// ApplyAll folds movements in order, stopping at the first error.
func (l *Ledger) ApplyAll(movements []Movement) error {
	for _, m := range movements {
		if err := l.Apply(m); err != nil {
			return err
		}
	}
	return nil
}

// RealizedProfit returns the cumulative realized profit of the run.
func (l *Ledger) RealizedProfit() float64 { return l.profit }

// Distributions returns the cumulative distribution income of the run.
func (l *Ledger) Distributions() float64 { return l.distributions }

// Summary returns the end-of-run totals.
func (l *Ledger) Summary() Summary {
	return Summary{TotalProfit: l.profit, TotalDistributions: l.distributions}
}

// Positions iterates over all positions in asset code order.
func (l *Ledger) Positions() iter.Seq2[Asset, *Position] {
	return func(yield func(Asset, *Position) bool) {
		assets := slices.Collect(maps.Keys(l.positions))
		slices.SortFunc(assets, func(a, b Asset) int {
			return cmpAssets(a, b)
		})
		for _, a := range assets {
			if !yield(a, l.positions[a]) {
				return
			}
		}
	}
}

func cmpAssets(a, b Asset) int {
	if a.Code != b.Code {
		if a.Code < b.Code {
			return -1
		}
		return 1
	}
	if a.Number != b.Number {
		return a.Number - b.Number
	}
	switch {
	case a.Fractional == b.Fractional:
		return 0
	case b.Fractional:
		return -1
	default:
		return 1
	}
}
