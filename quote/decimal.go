package quote

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/evdnx/tulip/indicator"
)

// DecimalBar is a bar as exchanges and brokers usually report it.
type DecimalBar struct {
	Time   time.Time       `json:"time"`
	Open   decimal.Decimal `json:"open"`
	High   decimal.Decimal `json:"high"`
	Low    decimal.Decimal `json:"low"`
	Close  decimal.Decimal `json:"close"`
	Volume decimal.Decimal `json:"volume"`
}

// Bar converts d to float64 fields.
func (d DecimalBar) Bar() Bar {
	return Bar{
		Time:   d.Time,
		Open:   d.Open.InexactFloat64(),
		High:   d.High.InexactFloat64(),
		Low:    d.Low.InexactFloat64(),
		Close:  d.Close.InexactFloat64(),
		Volume: d.Volume.InexactFloat64(),
	}
}

// FromDecimal converts a decimal series and validates every bar.
func FromDecimal(ds []DecimalBar) (Bars, error) {
	out := make(Bars, len(ds))
	for i, d := range ds {
		out[i] = d.Bar()
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

// ToDecimal rounds each value to places decimal places. Indicator outputs
// may hold NaN or ±Inf, which have no decimal form; those are rejected with
// indicator.ErrInvalidInput naming the first offending index.
func ToDecimal(values []float64, places int32) ([]decimal.Decimal, error) {
	out := make([]decimal.Decimal, len(values))
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: value %d is %v", indicator.ErrInvalidInput, i, v)
		}
		out[i] = decimal.NewFromFloat(v).Round(places)
	}
	return out, nil
}
