package pricing_test

import (
	"math"
	"testing"
	"time"

	"hotel/internal/domains/pricing"

	"github.com/stretchr/testify/assert"
)

var dayZero = time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

func days(n int) time.Time {
	return dayZero.AddDate(0, 0, n)
}

func TestCalculate(t *testing.T) {
	tests := []struct {
		name     string
		rate     float64
		start    time.Time
		end      time.Time
		points   int
		expected pricing.Quote
	}{
		{
			name:   "three nights with silver points",
			rate:   200,
			start:  days(0),
			end:    days(3),
			points: 600,
			expected: pricing.Quote{
				Nights:         3,
				Subtotal:       600,
				DiscountPct:    10,
				DiscountAmount: 60,
				Total:          540,
				PointsEarned:   540,
			},
		},
		{
			name:   "two nights without points",
			rate:   150,
			start:  days(0),
			end:    days(2),
			points: 0,
			expected: pricing.Quote{
				Nights:       2,
				Subtotal:     300,
				DiscountPct:  0,
				Total:        300,
				PointsEarned: 300,
			},
		},
		{
			name:   "gold points",
			rate:   99.99,
			start:  days(0),
			end:    days(1),
			points: 1000,
			expected: pricing.Quote{
				Nights:         1,
				Subtotal:       99.99,
				DiscountPct:    15,
				DiscountAmount: 14.9985,
				Total:          84.9915,
				PointsEarned:   84,
			},
		},
		{
			name:   "partial day rounds up",
			rate:   100,
			start:  days(0),
			end:    days(1).Add(2 * time.Hour),
			points: 250,
			expected: pricing.Quote{
				Nights:         2,
				Subtotal:       200,
				DiscountPct:    5,
				DiscountAmount: 10,
				Total:          190,
				PointsEarned:   190,
			},
		},
		{
			name:   "free room",
			rate:   0,
			start:  days(0),
			end:    days(4),
			points: 2000,
			expected: pricing.Quote{
				Nights:      4,
				DiscountPct: 15,
			},
		},
		{
			name:     "same day",
			rate:     200,
			start:    days(2),
			end:      days(2),
			points:   600,
			expected: pricing.Quote{},
		},
		{
			name:     "end before start",
			rate:     200,
			start:    days(5),
			end:      days(2),
			points:   1200,
			expected: pricing.Quote{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quote := pricing.Calculate(tt.rate, tt.start, tt.end, tt.points)

			assert.Equal(t, tt.expected.Nights, quote.Nights)
			assert.InDelta(t, tt.expected.Subtotal, quote.Subtotal, 1e-9)
			assert.Equal(t, tt.expected.DiscountPct, quote.DiscountPct)
			assert.InDelta(t, tt.expected.DiscountAmount, quote.DiscountAmount, 1e-9)
			assert.InDelta(t, tt.expected.Total, quote.Total, 1e-9)
			assert.Equal(t, tt.expected.PointsEarned, quote.PointsEarned)
		})
	}
}

func TestCalculateIsIdempotent(t *testing.T) {
	first := pricing.Calculate(180, days(0), days(6), 720)
	second := pricing.Calculate(180, days(0), days(6), 720)

	assert.Equal(t, first, second)
}

func TestCalculateInvariants(t *testing.T) {
	rates := []float64{0, 0.01, 49.5, 120, 333.33, 1999.99}
	points := []int{-10, 0, 249, 250, 499, 500, 999, 1000, 5000}

	for _, rate := range rates {
		for nights := 1; nights <= 14; nights++ {
			for _, balance := range points {
				quote := pricing.Calculate(rate, days(0), days(nights), balance)

				assert.Equal(t, nights, quote.Nights)
				assert.InDelta(t, rate*float64(nights), quote.Subtotal, 1e-6)
				assert.InDelta(t, quote.Subtotal-quote.DiscountAmount, quote.Total, 1e-6)
				assert.GreaterOrEqual(t, quote.Total, 0.0)
				assert.Equal(t, int(math.Floor(quote.Total+1e-9)), quote.PointsEarned)
				assert.LessOrEqual(t, float64(quote.PointsEarned), quote.Total+1e-9)
			}
		}
	}
}

func TestDiscountPercent(t *testing.T) {
	tests := []struct {
		points   int
		expected int
	}{
		{points: -1, expected: 0},
		{points: 0, expected: 0},
		{points: 249, expected: 0},
		{points: 250, expected: 5},
		{points: 499, expected: 5},
		{points: 500, expected: 10},
		{points: 999, expected: 10},
		{points: 1000, expected: 15},
		{points: 100000, expected: 15},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, pricing.DiscountPercent(tt.points), "points %d", tt.points)
	}
}

func TestDiscountPercentIsMonotonic(t *testing.T) {
	allowed := []int{0, 5, 10, 15}
	previous := 0

	for points := 0; points <= 3000; points++ {
		percent := pricing.DiscountPercent(points)

		assert.Contains(t, allowed, percent)
		assert.GreaterOrEqual(t, percent, previous)

		previous = percent
	}
}

func TestNights(t *testing.T) {
	assert.Equal(t, 0, pricing.Nights(days(1), days(1)))
	assert.Equal(t, 0, pricing.Nights(days(3), days(1)))
	assert.Equal(t, 1, pricing.Nights(days(0), days(0).Add(time.Minute)))
	assert.Equal(t, 7, pricing.Nights(days(0), days(7)))
}

func TestQuoteIsEmpty(t *testing.T) {
	assert.True(t, pricing.Quote{}.IsEmpty())
	assert.False(t, pricing.Calculate(10, days(0), days(1), 0).IsEmpty())
}
