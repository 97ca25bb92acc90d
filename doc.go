// Package carteira computes average-cost positions, realized profit and
// distribution income from B3 brokerage statement exports.
//
// The package owns the domain model (assets, movements, trades) and the
// ledger engine: a sequential fold of chronologically ordered movement
// records into per-asset positions and running totals. Decoding of the
// xlsx workbooks lives in the b3 subpackage, report formatting in renderer.
package carteira
