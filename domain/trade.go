package domain

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/osmosis-labs/osmosis/osmomath"
)

// TradeType is the direction of a trade.
type TradeType int

const (
	// TradeTypeExactIn fixes the input amount and quotes the output.
	TradeTypeExactIn TradeType = iota
	// TradeTypeExactOut fixes the output amount and quotes the required input.
	TradeTypeExactOut
)

const (
	exactInStr  = "EXACT_IN"
	exactOutStr = "EXACT_OUT"
)

// String implements fmt.Stringer.
func (t TradeType) String() string {
	if t == TradeTypeExactOut {
		return exactOutStr
	}
	return exactInStr
}

// IsValid returns true for known trade types.
func (t TradeType) IsValid() bool {
	return t == TradeTypeExactIn || t == TradeTypeExactOut
}

// MarshalJSON renders the trade type as EXACT_IN or EXACT_OUT.
func (t TradeType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON accepts the numeric (0, 1) and string forms.
func (t *TradeType) UnmarshalJSON(bz []byte) error {
	var n int
	if err := json.Unmarshal(bz, &n); err == nil {
		parsed := TradeType(n)
		if !parsed.IsValid() {
			return InvalidTradeTypeError{TradeType: string(bz)}
		}
		*t = parsed
		return nil
	}

	var s string
	if err := json.Unmarshal(bz, &s); err != nil {
		return InvalidTradeTypeError{TradeType: string(bz)}
	}

	parsed, err := ParseTradeType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseTradeType parses the string form of a trade type.
func ParseTradeType(s string) (TradeType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case exactInStr, "EXACT_INPUT", "0":
		return TradeTypeExactIn, nil
	case exactOutStr, "EXACT_OUTPUT", "1":
		return TradeTypeExactOut, nil
	default:
		return 0, InvalidTradeTypeError{TradeType: s}
	}
}

// MaxAmountBitLen bounds requested amounts so that percent fractions of them
// stay within 256-bit integers.
const MaxAmountBitLen = 248

// AmountFraction is a percentage of the requested amount and its absolute value.
type AmountFraction struct {
	Percent int          `json:"percent"`
	Amount  osmomath.Int `json:"amount"`
}

// String implements fmt.Stringer.
func (f AmountFraction) String() string {
	return fmt.Sprintf("%d%%(%s)", f.Percent, f.Amount)
}
