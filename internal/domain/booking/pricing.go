package booking

import (
	"math"
	"time"

	"amenity-booking/internal/domain/space"
	"amenity-booking/internal/pkg/errs"
)

var ErrPriceOverflow = errs.BadRequest("booking total exceeds the supported price range")

type PriceCalculator interface {
	Calculate(unit space.TimeUnit, pricePerUnit *int64, iv Interval) (*int64, error)
}

// UnitPriceCalculator charges every started unit in full.
type UnitPriceCalculator struct{}

func NewUnitPriceCalculator() *UnitPriceCalculator {
	return &UnitPriceCalculator{}
}

func (UnitPriceCalculator) Calculate(unit space.TimeUnit, pricePerUnit *int64, iv Interval) (*int64, error) {
	if pricePerUnit == nil {
		return nil, nil
	}
	price := *pricePerUnit
	units := Units(unit, iv.Duration())
	if price > 0 && units > math.MaxInt64/price {
		return nil, ErrPriceOverflow
	}
	total := units * price
	return &total, nil
}

// Units is ceil(d / unit length); zero for an unknown unit or a non-positive duration.
func Units(unit space.TimeUnit, d time.Duration) int64 {
	length := unit.Length()
	if length <= 0 || d <= 0 {
		return 0
	}
	n := int64(d / length)
	if d%length != 0 {
		n++
	}
	return n
}
