package application

import (
	"math"

	"github.com/nestorahq/nestora-api/internal/domain/entity"
)

// Discount is the slice of a coupon the price calculation needs.
type Discount struct {
	Type  string
	Value float64
}

// DiscountFromCoupon maps a resolved coupon to a Discount; nil in, nil out.
func DiscountFromCoupon(c *entity.Coupon) *Discount {
	if c == nil {
		return nil
	}
	return &Discount{Type: c.DiscountType, Value: c.Value}
}

// FinalAmount derives the charge amount in the smallest currency unit from
// a base rent in major units and an optional discount.
//
// Percentage coupons subtract rent*value/100, fixed-amount coupons
// subtract value directly. A result below one major unit is treated as
// already being in minor units and passes through unscaled; anything else
// is scaled by 100 and rounded to the nearest minor unit. Rounding matters:
// truncating drops a unit whenever the percentage arithmetic lands just
// below an integer in binary floating point (501 at 33% is 335.67 on
// paper but 335.66999... as a float64).
//
// A fixed discount larger than the rent yields a negative amount. That is
// left as-is: the gateway rejects non-positive amounts and the failure
// surfaces to the caller rather than being silently clamped here.
func FinalAmount(rent float64, d *Discount) int64 {
	amount := rent
	if d != nil {
		switch d.Type {
		case entity.DiscountPercentage:
			amount -= rent * d.Value / 100
		case entity.DiscountFixedAmount:
			amount -= d.Value
		}
	}
	if amount < 1 {
		return int64(amount)
	}
	return int64(math.Round(amount * 100))
}
