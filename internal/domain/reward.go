package domain

const (
	// speedBonusWindowSeconds is the completion time under which the speed
	// bonus applies.
	speedBonusWindowSeconds = 60
	speedBonusRate          = 0.2
	perfectBonusRate        = 0.5
	// streakBonusPerDay is the bonus multiplier added per streak day,
	// saturating at streakBonusCap (100% of base) from streak 10.
	streakBonusPerDay = 0.1
	streakBonusCap    = 1.0
	// minStreakForBonus: a streak of 0 or 1 earns no bonus.
	minStreakForBonus = 2
)

// RewardBreakdown carries each XP component individually so callers can
// render the breakdown, plus the coin payout.
type RewardBreakdown struct {
	BaseXP       int
	StreakBonus  int
	SpeedBonus   int
	PerfectBonus int
	TotalXP      int
	Coins        int
}

// CalculateReward derives the XP/coin payout from a graded quiz. streak is
// the user's streak before this submission; timeSpentSeconds is expected to
// be clamped already.
func CalculateReward(xpReward, coinReward int, percentage float64, streak, timeSpentSeconds int, isPerfect bool) RewardBreakdown {
	base := int(float64(xpReward) * percentage / 100)

	var streakBonus int
	if streak >= minStreakForBonus {
		mult := float64(streak) * streakBonusPerDay
		if mult > streakBonusCap {
			mult = streakBonusCap
		}
		streakBonus = int(mult * float64(base))
	}

	var speedBonus int
	if timeSpentSeconds < speedBonusWindowSeconds {
		speedBonus = int(float64(base) * speedBonusRate)
	}

	var perfectBonus int
	if isPerfect {
		perfectBonus = int(float64(base) * perfectBonusRate)
	}

	return RewardBreakdown{
		BaseXP:       base,
		StreakBonus:  streakBonus,
		SpeedBonus:   speedBonus,
		PerfectBonus: perfectBonus,
		TotalXP:      base + streakBonus + speedBonus + perfectBonus,
		Coins:        int(float64(coinReward) * percentage / 100),
	}
}
