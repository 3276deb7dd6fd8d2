package domain

import "testing"

func TestXPForLevel(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{-3, 100},
		{0, 100},
		{1, 100},
		{2, 150},
		{3, 225},
		{4, 337},
		{5, 506},
	}
	for _, tt := range tests {
		if got := XPForLevel(tt.level); got != tt.want {
			t.Errorf("XPForLevel(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestXPForLevel_Monotonic(t *testing.T) {
	for level := 1; level <= 40; level++ {
		if XPForLevel(level+1) <= XPForLevel(level) {
			t.Fatalf("curve not strictly increasing at level %d: %d -> %d",
				level, XPForLevel(level), XPForLevel(level+1))
		}
	}
}

func TestLevelFromTotalXP(t *testing.T) {
	tests := []struct {
		totalXP   int
		wantLevel int
		wantXP    int
		wantNext  int
	}{
		{-50, 1, 0, 100},
		{0, 1, 0, 100},
		{99, 1, 99, 100},
		{100, 2, 0, 150},
		{130, 2, 30, 150},
		{249, 2, 149, 150},
		{250, 3, 0, 225},
	}
	for _, tt := range tests {
		got := LevelFromTotalXP(tt.totalXP)
		if got.Level != tt.wantLevel || got.CurrentXP != tt.wantXP || got.NextLevelXP != tt.wantNext {
			t.Errorf("LevelFromTotalXP(%d) = %+v, want {Level:%d CurrentXP:%d NextLevelXP:%d}",
				tt.totalXP, got, tt.wantLevel, tt.wantXP, tt.wantNext)
		}
	}
}

// The within-level XP must stay strictly below the next level threshold for
// every non-negative total.
func TestLevelFromTotalXP_Invariant(t *testing.T) {
	for totalXP := 0; totalXP <= 250_000; totalXP += 7 {
		lp := LevelFromTotalXP(totalXP)
		if lp.CurrentXP >= lp.NextLevelXP {
			t.Fatalf("invariant violated at totalXP=%d: currentXP=%d nextLevelXP=%d",
				totalXP, lp.CurrentXP, lp.NextLevelXP)
		}
		if lp.Level < 1 {
			t.Fatalf("level below 1 at totalXP=%d: %+v", totalXP, lp)
		}
	}
}
