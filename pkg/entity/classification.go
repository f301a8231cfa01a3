package entity

// Tier is the severity classification of a day's total screen time,
// ordered from excellent (lowest usage) to emergency (highest).
type Tier string

const (
	TierExcellent  Tier = "excellent"  // under 2 hours
	TierGood       Tier = "good"       // 2-3 hours
	TierFair       Tier = "fair"       // 3-4 hours
	TierWarning    Tier = "warning"    // 4-6 hours
	TierConcerning Tier = "concerning" // 6-8 hours
	TierCritical   Tier = "critical"   // 8-12 hours
	TierEmergency  Tier = "emergency"  // 12+ hours
)

var tierRanks = map[Tier]int{
	TierExcellent:  0,
	TierGood:       1,
	TierFair:       2,
	TierWarning:    3,
	TierConcerning: 4,
	TierCritical:   5,
	TierEmergency:  6,
}

// Rank returns the tier's position in severity order, lower is better.
// Unknown tiers rank below excellent.
func (t Tier) Rank() int {
	rank, ok := tierRanks[t]
	if !ok {
		return -1
	}
	return rank
}

// ClassifyMinutes maps accumulated daily minutes to a severity tier.
// Boundaries are inclusive on the low side, so an exact boundary value
// lands in the stricter tier (120 minutes is already "good").
// Negative input is the caller's bug; it falls into the excellent tier.
func ClassifyMinutes(totalMinutes int) Tier {
	switch {
	case totalMinutes >= 720:
		return TierEmergency
	case totalMinutes >= 480:
		return TierCritical
	case totalMinutes >= 360:
		return TierConcerning
	case totalMinutes >= 240:
		return TierWarning
	case totalMinutes >= 180:
		return TierFair
	case totalMinutes >= 120:
		return TierGood
	default:
		return TierExcellent
	}
}
