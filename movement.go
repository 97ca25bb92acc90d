package carteira

import "fmt"

// Direction tells whether a movement credits (In) or debits (Out) the account.
type Direction int

const (
	In Direction = iota
	Out
)

func (d Direction) String() string {
	switch d {
	case In:
		return "in"
	case Out:
		return "out"
	default:
		return "unknown"
	}
}

// directionLabels maps the export labels to directions. The movement feed
// uses Credito/Debito, the negotiation feed uses Compra/Venda; accented
// variants appear in some exports.
var directionLabels = map[string]Direction{
	"Credito": In,
	"Crédito": In,
	"Compra":  In,
	"Debito":  Out,
	"Débito":  Out,
	"Venda":   Out,
}

// ParseDirection decodes a direction label from either feed.
func ParseDirection(label string) (Direction, error) {
	d, ok := directionLabels[label]
	if !ok {
		return 0, fmt.Errorf("unknown direction label %q", label)
	}
	return d, nil
}

// MovementKind is the categorical reason code of a ledger entry. The set is
// closed: it enumerates exactly the values the B3 movement export produces,
// and the decoder rejects anything else.
type MovementKind int

const (
	Revaluation MovementKind = iota
	AssetBonus
	RightsAssignment
	RequestedRightsAssignment
	BuySellSettlement
	Split
	SubscriptionRight
	SubscriptionRightExercised
	SubscriptionRightNotExercised
	LeftoverSubscriptionRightNotExercised
	Dividend
	Loan
	FractionalAsset
	ReverseSplit
	Merger
	EquityInterest
	FractionAuction
	SubscriptionReceipt
	Refund
	Yield
	SubscriptionRequest
	Transfer
	TransferSettlement
	Maturity

	numMovementKinds = iota
)

// movementKindLabels maps the exact export labels to kinds. Misspellings
// ("Excercído") are the export's own.
var movementKindLabels = map[string]MovementKind{
	"Atualização":                              Revaluation,
	"Bonificação em Ativos":                    AssetBonus,
	"Cessão de Direitos":                       RightsAssignment,
	"Cessão de Direitos - Solicitada":          RequestedRightsAssignment,
	"COMPRA / VENDA":                           BuySellSettlement,
	"Desdobro":                                 Split,
	"Direito de Subscrição":                    SubscriptionRight,
	"Direitos de Subscrição - Excercído":       SubscriptionRightExercised,
	"Direitos de Subscrição - Não Exercido":    SubscriptionRightNotExercised,
	"Direito Sobras de Subscrição - Não Exercido": LeftoverSubscriptionRightNotExercised,
	"Dividendo":                   Dividend,
	"Empréstimo":                  Loan,
	"Fração em Ativos":            FractionalAsset,
	"Grupamento":                  ReverseSplit,
	"Incorporação":                Merger,
	"Juros Sobre Capital Próprio": EquityInterest,
	"Leilão de Fração":            FractionAuction,
	"Recibo de Subscrição":        SubscriptionReceipt,
	"Reembolso":                   Refund,
	"Rendimento":                  Yield,
	"Solicitação de Subscrição":   SubscriptionRequest,
	"Transferência":               Transfer,
	"Transferência - Liquidação":  TransferSettlement,
	"VENCIMENTO":                  Maturity,
}

var movementKindNames = map[MovementKind]string{
	Revaluation:                           "revaluation",
	AssetBonus:                            "asset-bonus",
	RightsAssignment:                      "rights-assignment",
	RequestedRightsAssignment:             "requested-rights-assignment",
	BuySellSettlement:                     "buy-sell-settlement",
	Split:                                 "split",
	SubscriptionRight:                     "subscription-right",
	SubscriptionRightExercised:            "subscription-right-exercised",
	SubscriptionRightNotExercised:         "subscription-right-not-exercised",
	LeftoverSubscriptionRightNotExercised: "leftover-subscription-right-not-exercised",
	Dividend:                              "dividend",
	Loan:                                  "loan",
	FractionalAsset:                       "fractional-asset",
	ReverseSplit:                          "reverse-split",
	Merger:                                "merger",
	EquityInterest:                        "equity-interest",
	FractionAuction:                       "fraction-auction",
	SubscriptionReceipt:                   "subscription-receipt",
	Refund:                                "refund",
	Yield:                                 "yield",
	SubscriptionRequest:                   "subscription-request",
	Transfer:                              "transfer",
	TransferSettlement:                    "transfer-settlement",
	Maturity:                              "maturity",
}

func (k MovementKind) String() string {
	if s, ok := movementKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("movement-kind(%d)", int(k))
}

// ParseMovementKind decodes a movement kind from its export label.
func ParseMovementKind(label string) (MovementKind, error) {
	k, ok := movementKindLabels[label]
	if !ok {
		return 0, fmt.Errorf("unknown movement kind %q", label)
	}
	return k, nil
}

// MovementKinds iterates over the closed set of movement kinds.
func MovementKinds() []MovementKind {
	kinds := make([]MovementKind, 0, numMovementKinds)
	for k := MovementKind(0); k < numMovementKinds; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// Movement is one ledger event from the movement feed. UnitPrice and
// OperationValue are optional in the export; the Has flags record presence.
// A decoded movement is immutable and consumed exactly once by the ledger,
// in chronological order.
type Movement struct {
	Direction         Direction
	Date              Date
	Kind              MovementKind
	Asset             Asset
	Broker            string
	Quantity          float64
	UnitPrice         float64
	HasUnitPrice      bool
	OperationValue    float64
	HasOperationValue bool
}

// MarketSegment distinguishes the whole-lot market from the fractional one
// in the negotiation feed.
type MarketSegment int

const (
	WholeMarket MarketSegment = iota
	FractionalMarket
)

func (s MarketSegment) String() string {
	switch s {
	case WholeMarket:
		return "whole"
	case FractionalMarket:
		return "fractional"
	default:
		return "unknown"
	}
}

// ParseMarketSegment decodes a market segment from its export label.
func ParseMarketSegment(label string) (MarketSegment, error) {
	switch label {
	case "Mercado à Vista":
		return WholeMarket, nil
	case "Mercado Fracionário":
		return FractionalMarket, nil
	default:
		return 0, fmt.Errorf("unknown market segment %q", label)
	}
}

// Trade is one negotiated buy or sell from the negotiation feed. All fields
// are required; the feed carries no optional columns.
type Trade struct {
	Date           Date
	Direction      Direction
	Segment        MarketSegment
	Broker         string
	Asset          Asset
	Quantity       float64
	UnitPrice      float64
	OperationValue float64
}
