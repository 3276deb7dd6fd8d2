package domain

import "math"

const (
	// baseLevelXP is the XP required to clear level 1.
	baseLevelXP = 100
	// levelGrowth is the per-level multiplier on the XP requirement.
	levelGrowth = 1.5
)

// XPForLevel returns the XP needed to clear the given level. Levels below 1
// are clamped to 1.
func XPForLevel(level int) int {
	if level <= 1 {
		return baseLevelXP
	}
	return int(math.Floor(baseLevelXP * math.Pow(levelGrowth, float64(level-1))))
}

// LevelProgress is the position within the level curve for a lifetime XP
// total. CurrentXP is always strictly below NextLevelXP.
type LevelProgress struct {
	Level       int
	CurrentXP   int
	NextLevelXP int
}

// LevelFromTotalXP walks the curve from level 1, consuming totalXP until the
// next level can no longer be afforded. Negative input is clamped to 0.
func LevelFromTotalXP(totalXP int) LevelProgress {
	if totalXP < 0 {
		totalXP = 0
	}
	level := 1
	remaining := totalXP
	for remaining >= XPForLevel(level) {
		remaining -= XPForLevel(level)
		level++
	}
	return LevelProgress{
		Level:       level,
		CurrentXP:   remaining,
		NextLevelXP: XPForLevel(level),
	}
}
