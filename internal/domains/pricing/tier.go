package pricing

const (
	TierBronze   = "Bronze"
	TierSilver   = "Silver"
	TierGold     = "Gold"
	TierPlatinum = "Platinum"
)

type tierStep struct {
	name      string
	minPoints int
}

// tierSteps must stay sorted by ascending minPoints.
var tierSteps = []tierStep{
	{name: TierBronze, minPoints: 0},
	{name: TierSilver, minPoints: 500},
	{name: TierGold, minPoints: 1000},
	{name: TierPlatinum, minPoints: 2000},
}

// Tier is the loyalty level shown to a customer. It is a label only and never drives the discount.
type Tier struct {
	Name          string `json:"name"`
	Points        int    `json:"points"`
	NextName      string `json:"next_name,omitempty"`
	NextThreshold int    `json:"next_threshold,omitempty"`
	PointsToNext  int    `json:"points_to_next"`
	DiscountPct   int    `json:"discount_pct"`
}

// TierFor returns the loyalty level reached with points.
func TierFor(points int) Tier {
	current := 0

	for idx, step := range tierSteps {
		if points >= step.minPoints {
			current = idx
		}
	}

	tier := Tier{
		Name:        tierSteps[current].name,
		Points:      points,
		DiscountPct: DiscountPercent(points),
	}

	if current+1 < len(tierSteps) {
		next := tierSteps[current+1]

		tier.NextName = next.name
		tier.NextThreshold = next.minPoints
		tier.PointsToNext = next.minPoints - max(points, 0)
	}

	return tier
}
