package carteira

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// AssetClass is the instrument subtype encoded in the numeric suffix of a
// B3 trading code.
type AssetClass int

const (
	ClassUnknown AssetClass = iota
	// ClassSubscriptionRight covers suffixes 1 (common) and 2 (preferred).
	ClassSubscriptionRight
	// ClassCommon is suffix 3, an ordinary share (ON).
	ClassCommon
	// ClassPreferred covers suffixes 4 to 8: plain PN plus classes A to D.
	ClassPreferred
	// ClassSubscriptionReceipt covers suffixes 9 (common) and 10 (preferred).
	ClassSubscriptionReceipt
	// ClassUnit is suffix 11, units and some BDRs.
	ClassUnit
	// ClassBDR is suffix 34.
	ClassBDR
)

func (c AssetClass) String() string {
	switch c {
	case ClassSubscriptionRight:
		return "subscription-right"
	case ClassCommon:
		return "common"
	case ClassPreferred:
		return "preferred"
	case ClassSubscriptionReceipt:
		return "subscription-receipt"
	case ClassUnit:
		return "unit"
	case ClassBDR:
		return "bdr"
	default:
		return "unknown"
	}
}

// Asset identifies a tradable instrument by its B3 trading code: a four
// letter root, a numeric suffix and an optional fractional-market marker.
//
// Asset is comparable; two labels naming the same tradable unit decode to
// equal values, so it can index a position map directly. Distinct codes for
// the same underlying company are distinct assets.
type Asset struct {
	Code       string // four letter root, e.g. "PETR"
	Number     int    // numeric suffix, e.g. 4
	Fractional bool   // trailing "F", fractional market code
}

// ParseAsset decodes a raw instrument label from a statement export.
//
// Labels come as "PETR4 - PETROLEO BRASILEIRO S.A." or as a bare code;
// only the part before the optional " - " separator matters. The code is a
// fixed four letter root followed by a numeric suffix, optionally followed
// by "F" for the fractional market.
func ParseAsset(label string) (Asset, error) {
	code, _, _ := strings.Cut(label, " - ")
	code = strings.TrimSpace(code)

	if len(code) < 5 {
		return Asset{}, fmt.Errorf("invalid asset label %q: code %q too short", label, code)
	}

	root := code[:4]
	for _, r := range root {
		if !unicode.IsLetter(r) {
			return Asset{}, fmt.Errorf("invalid asset label %q: root %q is not four letters", label, root)
		}
	}

	suffix := code[4:]
	fractional := false
	if strings.HasSuffix(suffix, "F") {
		fractional = true
		suffix = strings.TrimSuffix(suffix, "F")
	}

	number, err := strconv.Atoi(suffix)
	if err != nil {
		return Asset{}, fmt.Errorf("invalid asset label %q: suffix %q is not numeric", label, suffix)
	}

	return Asset{Code: root, Number: number, Fractional: fractional}, nil
}

// String returns the trading code, e.g. "PETR4" or "PETR4F".
func (a Asset) String() string {
	if a.Fractional {
		return fmt.Sprintf("%s%dF", a.Code, a.Number)
	}
	return fmt.Sprintf("%s%d", a.Code, a.Number)
}

// Class returns the instrument subtype encoded in the numeric suffix.
func (a Asset) Class() AssetClass {
	switch a.Number {
	case 1, 2:
		return ClassSubscriptionRight
	case 3:
		return ClassCommon
	case 4, 5, 6, 7, 8:
		return ClassPreferred
	case 9, 10:
		return ClassSubscriptionReceipt
	case 11:
		return ClassUnit
	case 34:
		return ClassBDR
	default:
		return ClassUnknown
	}
}
