package payments

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

func marshalRaw(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return b
}

// amountFromString parses a provider decimal amount; malformed input yields zero.
func amountFromString(v string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(v))
	if err != nil {
		return decimal.Zero
	}
	return d
}
