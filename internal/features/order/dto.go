package order

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

type SubmitOrderRequest struct {
	Items    []ItemRequest `json:"items"`
	Customer Customer      `json:"customer"`
}

type ItemRequest struct {
	ProductID string   `json:"productId"`
	Quantity  Quantity `json:"quantity"`
}

type SubmitOrderResponse struct {
	OK    bool   `json:"ok"`
	Order *Order `json:"order"`
}

// Quantity coerces whatever the untrusted client sent into a finite number.
// JSON numbers and numeric strings pass through; everything else, including
// NaN and the infinities ParseFloat accepts, becomes zero, which later drops
// the line instead of failing the whole submission.
type Quantity float64

func (q *Quantity) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*q = finiteOrZero(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if n, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			*q = finiteOrZero(n)
			return nil
		}
	}

	*q = 0
	return nil
}

func finiteOrZero(n float64) Quantity {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}

	return Quantity(n)
}
