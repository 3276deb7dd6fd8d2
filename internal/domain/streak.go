package domain

// StreakUpdate is the outcome of resolving a submission against the user's
// daily streak.
type StreakUpdate struct {
	Streak        int
	LongestStreak int
	Incremented   bool
	FirstOfDay    bool
}

// ResolveStreak decides whether a submission continues, starts, or restarts
// the daily streak. quizzesToday and quizzesYesterday are the
// quizzesCompleted counters from the corresponding DailyProgress rows (zero
// when the row is absent). Only the first graded quiz of a day can move the
// streak; continuation requires activity yesterday, otherwise the streak
// restarts at 1.
func ResolveStreak(currentStreak, longestStreak, quizzesToday, quizzesYesterday int) StreakUpdate {
	if quizzesToday > 0 {
		return StreakUpdate{
			Streak:        currentStreak,
			LongestStreak: maxInt(longestStreak, currentStreak),
		}
	}

	newStreak := 1
	if quizzesYesterday > 0 {
		newStreak = currentStreak + 1
	}

	return StreakUpdate{
		Streak:        newStreak,
		LongestStreak: maxInt(longestStreak, newStreak),
		Incremented:   newStreak > currentStreak,
		FirstOfDay:    true,
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
