package entity

import "time"

// Discount kinds accepted on coupons.
const (
	DiscountPercentage  = "percentage"
	DiscountFixedAmount = "fixed_amount"
)

// Coupon is a discount definition. CouponID is the external-facing code a
// tenant types in at payment time, distinct from the row ID.
type Coupon struct {
	ID           string    `json:"id"`
	CouponID     string    `json:"coupon_id"`
	DiscountType string    `json:"discount_type"`
	Value        float64   `json:"value"`
	Description  string    `json:"description,omitempty"`
	Available    bool      `json:"available"`
	CreatedAt    time.Time `json:"created_at"`
}
