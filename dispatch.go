package carteira

// Action is the accounting effect of one (direction, movement kind) pair.
type Action int

const (
	// ActionNone records nothing. Most cells are intentional no-ops:
	// settlement rows are already captured by the negotiation feed, and
	// outgoing corporate actions carry no accounting effect here.
	ActionNone Action = iota
	// ActionAcquire adds units at cost to the position.
	ActionAcquire
	// ActionDispose removes units and realizes profit.
	ActionDispose
	// ActionAdjustUnits changes the unit count with no cost change.
	ActionAdjustUnits
	// ActionDistribute records distribution income (dividends, interest on
	// equity, yield).
	ActionDistribute
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionAcquire:
		return "acquire"
	case ActionDispose:
		return "dispose"
	case ActionAdjustUnits:
		return "adjust-units"
	case ActionDistribute:
		return "distribute"
	default:
		return "unknown"
	}
}

type moveKey struct {
	dir  Direction
	kind MovementKind
}

// dispatch is the total map from (direction, kind) to accounting action.
// Every cell of the closed set is listed explicitly, no-ops included, so a
// missing combination is a decoder bug rather than a silent default.
//
// Known gaps kept as no-ops: incoming subscription rights, receipts and
// merger credits have no accounting treatment modeled yet.
var dispatch = map[moveKey]Action{
	{In, Revaluation}:                           ActionNone,
	{In, AssetBonus}:                            ActionNone,
	{In, RightsAssignment}:                      ActionNone,
	{In, RequestedRightsAssignment}:             ActionNone,
	{In, BuySellSettlement}:                     ActionNone,
	{In, Split}:                                 ActionAdjustUnits,
	{In, SubscriptionRight}:                     ActionNone,
	{In, SubscriptionRightExercised}:            ActionNone,
	{In, SubscriptionRightNotExercised}:         ActionNone,
	{In, LeftoverSubscriptionRightNotExercised}: ActionNone,
	{In, Dividend}:                              ActionDistribute,
	{In, Loan}:                                  ActionNone,
	{In, FractionalAsset}:                       ActionNone,
	{In, ReverseSplit}:                          ActionNone,
	{In, Merger}:                                ActionNone,
	{In, EquityInterest}:                        ActionDistribute,
	{In, FractionAuction}:                       ActionNone,
	{In, SubscriptionReceipt}:                   ActionNone,
	{In, Refund}:                                ActionNone,
	{In, Yield}:                                 ActionDistribute,
	{In, SubscriptionRequest}:                   ActionNone,
	{In, Transfer}:                              ActionAdjustUnits,
	{In, TransferSettlement}:                    ActionAcquire,
	{In, Maturity}:                              ActionNone,

	{Out, Revaluation}:                           ActionNone,
	{Out, AssetBonus}:                            ActionNone,
	{Out, RightsAssignment}:                      ActionNone,
	{Out, RequestedRightsAssignment}:             ActionNone,
	{Out, BuySellSettlement}:                     ActionNone,
	{Out, Split}:                                 ActionNone,
	{Out, SubscriptionRight}:                     ActionNone,
	{Out, SubscriptionRightExercised}:            ActionNone,
	{Out, SubscriptionRightNotExercised}:         ActionNone,
	{Out, LeftoverSubscriptionRightNotExercised}: ActionNone,
	{Out, Dividend}:                              ActionNone,
	{Out, Loan}:                                  ActionNone,
	{Out, FractionalAsset}:                       ActionNone,
	{Out, ReverseSplit}:                          ActionNone,
	{Out, Merger}:                                ActionNone,
	{Out, EquityInterest}:                        ActionNone,
	{Out, FractionAuction}:                       ActionNone,
	{Out, SubscriptionReceipt}:                   ActionNone,
	{Out, Refund}:                                ActionNone,
	{Out, Yield}:                                 ActionNone,
	{Out, SubscriptionRequest}:                   ActionNone,
	{Out, Transfer}:                              ActionNone,
	{Out, TransferSettlement}:                    ActionDispose,
	{Out, Maturity}:                              ActionNone,
}

// Dispatch returns the accounting action for a (direction, kind) pair.
// ok is false only for pairs outside the closed set, which a well-behaved
// decoder never produces.
func Dispatch(dir Direction, kind MovementKind) (action Action, ok bool) {
	action, ok = dispatch[moveKey{dir, kind}]
	return action, ok
}
