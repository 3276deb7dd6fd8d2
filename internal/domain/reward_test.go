package domain

import "testing"

func TestCalculateReward_Base(t *testing.T) {
	r := CalculateReward(50, 20, 50, 0, 300, false)
	if r.BaseXP != 25 {
		t.Errorf("BaseXP = %d, want 25", r.BaseXP)
	}
	if r.StreakBonus != 0 || r.SpeedBonus != 0 || r.PerfectBonus != 0 {
		t.Errorf("unexpected bonuses: %+v", r)
	}
	if r.TotalXP != 25 {
		t.Errorf("TotalXP = %d, want 25", r.TotalXP)
	}
	if r.Coins != 10 {
		t.Errorf("Coins = %d, want 10", r.Coins)
	}
}

func TestCalculateReward_StreakBonusSaturation(t *testing.T) {
	const base = 100

	// No bonus below streak 2.
	for _, streak := range []int{0, 1} {
		r := CalculateReward(base, 0, 100, streak, 300, false)
		if r.StreakBonus != 0 {
			t.Errorf("streak %d: bonus = %d, want 0", streak, r.StreakBonus)
		}
	}

	// Strictly increasing for 2 <= streak < 10.
	prev := 0
	for streak := 2; streak < 10; streak++ {
		r := CalculateReward(base, 0, 100, streak, 300, false)
		if r.StreakBonus <= prev {
			t.Errorf("streak %d: bonus %d not greater than %d", streak, r.StreakBonus, prev)
		}
		prev = r.StreakBonus
	}

	// Saturates at 100% of base from streak 10.
	for _, streak := range []int{10, 15, 365} {
		r := CalculateReward(base, 0, 100, streak, 300, false)
		if r.StreakBonus != base {
			t.Errorf("streak %d: bonus = %d, want %d", streak, r.StreakBonus, base)
		}
	}
}

func TestCalculateReward_SpeedBonus(t *testing.T) {
	fast := CalculateReward(100, 0, 100, 0, 30, false)
	if fast.SpeedBonus != 20 {
		t.Errorf("SpeedBonus = %d, want 20", fast.SpeedBonus)
	}
	boundary := CalculateReward(100, 0, 100, 0, 60, false)
	if boundary.SpeedBonus != 0 {
		t.Errorf("SpeedBonus at 60s = %d, want 0", boundary.SpeedBonus)
	}
	slow := CalculateReward(100, 0, 100, 0, 120, false)
	if slow.SpeedBonus != 0 {
		t.Errorf("SpeedBonus at 120s = %d, want 0", slow.SpeedBonus)
	}
}

func TestCalculateReward_PerfectBonus(t *testing.T) {
	perfect := CalculateReward(100, 40, 100, 0, 300, true)
	if perfect.PerfectBonus != 50 {
		t.Errorf("PerfectBonus = %d, want 50", perfect.PerfectBonus)
	}
	imperfect := CalculateReward(100, 40, 50, 0, 300, false)
	if imperfect.PerfectBonus != 0 {
		t.Errorf("PerfectBonus = %d, want 0", imperfect.PerfectBonus)
	}
}

func TestCalculateReward_AllBonusesStack(t *testing.T) {
	r := CalculateReward(100, 50, 100, 5, 30, true)
	// base 100, streak 50%, speed 20%, perfect 50%.
	if r.BaseXP != 100 || r.StreakBonus != 50 || r.SpeedBonus != 20 || r.PerfectBonus != 50 {
		t.Fatalf("breakdown = %+v", r)
	}
	if r.TotalXP != 220 {
		t.Errorf("TotalXP = %d, want 220", r.TotalXP)
	}
	if r.Coins != 50 {
		t.Errorf("Coins = %d, want 50", r.Coins)
	}
}

func TestCalculateReward_ZeroPercentage(t *testing.T) {
	r := CalculateReward(100, 50, 0, 9, 10, false)
	if r.TotalXP != 0 || r.Coins != 0 {
		t.Errorf("zero percentage should earn nothing, got %+v", r)
	}
}
