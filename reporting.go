package carteira

// DisposalEvent is emitted for every disposal folded into the ledger.
// TotalProfit and TotalDistributions are the running totals after the event.
type DisposalEvent struct {
	Asset              Asset
	Date               Date
	Profit             float64
	TotalProfit        float64
	TotalDistributions float64
}

// DistributionEvent is emitted for every recorded distribution income.
type DistributionEvent struct {
	Asset              Asset
	Date               Date
	Amount             float64
	TotalProfit        float64
	TotalDistributions float64
}

// Summary holds the end-of-run totals.
type Summary struct {
	TotalProfit        float64
	TotalDistributions float64
}

// Reporter receives ledger events as they happen. The ledger never depends
// on how events are presented; implementations format and emit them.
type Reporter interface {
	Disposal(e DisposalEvent)
	Distribution(e DistributionEvent)
}

// nopReporter discards all events.
type nopReporter struct{}

func (nopReporter) Disposal(DisposalEvent)         {}
func (nopReporter) Distribution(DistributionEvent) {}

// Recorder is a Reporter that keeps every event in memory, mostly useful in
// tests and non-interactive runs.
type Recorder struct {
	Disposals     []DisposalEvent
	Distributions []DistributionEvent
}

func (r *Recorder) Disposal(e DisposalEvent)         { r.Disposals = append(r.Disposals, e) }
func (r *Recorder) Distribution(e DistributionEvent) { r.Distributions = append(r.Distributions, e) }
