// Package pricing computes stay quotes and loyalty discounts.
//
// Every function in this package is pure: no I/O, no clock, no shared state.
package pricing

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	day = 24 * time.Hour

	percentBase = 100
)

type discountStep struct {
	minPoints int
	percent   int
}

// discountSteps are evaluated from the highest threshold down; the first match wins.
var discountSteps = []discountStep{
	{minPoints: 1000, percent: 15},
	{minPoints: 500, percent: 10},
	{minPoints: 250, percent: 5},
}

// Quote is the price breakdown of a stay.
type Quote struct {
	Nights         int     `json:"nights"`
	Subtotal       float64 `json:"subtotal"`
	DiscountPct    int     `json:"discount_pct"`
	DiscountAmount float64 `json:"discount_amount"`
	Total          float64 `json:"total"`
	PointsEarned   int     `json:"points_earned"`
}

// IsEmpty reports whether the quote covers no night at all.
func (q Quote) IsEmpty() bool {
	return q.Nights <= 0
}

// Nights returns the number of started days between start and end, or 0 when end is not after start.
func Nights(start, end time.Time) int {
	if !start.Before(end) {
		return 0
	}

	span := end.Sub(start)

	nights := int(span / day)
	if span%day != 0 {
		nights++
	}

	return nights
}

// DiscountPercent returns the loyalty discount granted for the given point balance.
func DiscountPercent(points int) int {
	for _, step := range discountSteps {
		if points >= step.minPoints {
			return step.percent
		}
	}

	return 0
}

// Calculate prices a stay of rate per night from start to end for a customer holding loyaltyPoints.
// An empty or inverted range yields a zero Quote.
func Calculate(rate float64, start, end time.Time, loyaltyPoints int) Quote {
	nights := Nights(start, end)
	if nights == 0 {
		return Quote{}
	}

	percent := DiscountPercent(loyaltyPoints)

	subtotal := decimal.NewFromFloat(rate).Mul(decimal.NewFromInt(int64(nights)))
	discount := subtotal.Mul(decimal.NewFromInt(int64(percent))).Div(decimal.NewFromInt(percentBase))
	total := subtotal.Sub(discount)

	return Quote{
		Nights:         nights,
		Subtotal:       subtotal.InexactFloat64(),
		DiscountPct:    percent,
		DiscountAmount: discount.InexactFloat64(),
		Total:          total.InexactFloat64(),
		PointsEarned:   int(total.Floor().IntPart()),
	}
}
