package pricing_test

import (
	"testing"

	"hotel/internal/domains/pricing"

	"github.com/stretchr/testify/assert"
)

func TestTierFor(t *testing.T) {
	tests := []struct {
		name     string
		points   int
		expected pricing.Tier
	}{
		{
			name:   "new customer",
			points: 0,
			expected: pricing.Tier{
				Name:          pricing.TierBronze,
				NextName:      pricing.TierSilver,
				NextThreshold: 500,
				PointsToNext:  500,
			},
		},
		{
			name:   "bronze with discount",
			points: 320,
			expected: pricing.Tier{
				Name:          pricing.TierBronze,
				Points:        320,
				NextName:      pricing.TierSilver,
				NextThreshold: 500,
				PointsToNext:  180,
				DiscountPct:   5,
			},
		},
		{
			name:   "silver threshold",
			points: 500,
			expected: pricing.Tier{
				Name:          pricing.TierSilver,
				Points:        500,
				NextName:      pricing.TierGold,
				NextThreshold: 1000,
				PointsToNext:  500,
				DiscountPct:   10,
			},
		},
		{
			name:   "gold",
			points: 1999,
			expected: pricing.Tier{
				Name:          pricing.TierGold,
				Points:        1999,
				NextName:      pricing.TierPlatinum,
				NextThreshold: 2000,
				PointsToNext:  1,
				DiscountPct:   15,
			},
		},
		{
			name:   "platinum has no next level",
			points: 4200,
			expected: pricing.Tier{
				Name:        pricing.TierPlatinum,
				Points:      4200,
				DiscountPct: 15,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, pricing.TierFor(tt.points))
		})
	}
}
