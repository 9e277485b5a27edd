package atbat

import (
	"testing"

	"github.com/dugoutlabs/dugout/internal/rules"
)

func TestNextCount(t *testing.T) {
	cases := []struct {
		name                   string
		balls, strikes         int
		result                 rules.PitchResult
		wantBalls, wantStrikes int
	}{
		{"ball", 0, 0, rules.PitchBall, 1, 0},
		{"third ball", 2, 1, rules.PitchBall, 3, 1},
		{"ball at three balls holds", 3, 0, rules.PitchBall, 3, 0},
		{"ball on a full count holds", 3, 2, rules.PitchBall, 3, 2},
		{"called strike", 1, 0, rules.PitchCalledStrike, 1, 1},
		{"swinging strike", 0, 1, rules.PitchSwingingStrike, 0, 2},
		{"called strike at two strikes holds", 1, 2, rules.PitchCalledStrike, 1, 2},
		{"swinging strike at two strikes holds", 0, 2, rules.PitchSwingingStrike, 0, 2},
		{"foul below two strikes", 0, 1, rules.PitchFoul, 0, 2},
		{"foul at two strikes holds", 2, 2, rules.PitchFoul, 2, 2},
		{"in play leaves count alone", 3, 2, rules.PitchInPlay, 3, 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, s := nextCount(tc.balls, tc.strikes, tc.result)
			if b != tc.wantBalls || s != tc.wantStrikes {
				t.Errorf("nextCount(%d, %d, %s) = (%d, %d), want (%d, %d)",
					tc.balls, tc.strikes, tc.result, b, s, tc.wantBalls, tc.wantStrikes)
			}
		})
	}
}

func TestCountStaysInRange(t *testing.T) {
	balls, strikes := 0, 0
	for i := 0; i < 6; i++ {
		balls, strikes = nextCount(balls, strikes, rules.PitchBall)
		if balls < 0 || balls > 3 {
			t.Fatalf("after %d balls: balls = %d, want within [0,3]", i+1, balls)
		}
	}
	if balls != 3 {
		t.Errorf("balls saturate at 3, got %d", balls)
	}

	balls, strikes = 0, 0
	for i := 0; i < 6; i++ {
		balls, strikes = nextCount(balls, strikes, rules.PitchSwingingStrike)
		if strikes < 0 || strikes > 2 {
			t.Fatalf("after %d strikes: strikes = %d, want within [0,2]", i+1, strikes)
		}
	}
	if strikes != 2 {
		t.Errorf("strikes saturate at 2, got %d", strikes)
	}
}

func TestThreeConsecutiveFouls(t *testing.T) {
	balls, strikes := 0, 1
	want := []int{2, 2, 2}
	for i := 0; i < 3; i++ {
		balls, strikes = nextCount(balls, strikes, rules.PitchFoul)
		if strikes != want[i] {
			t.Fatalf("after foul %d: strikes = %d, want %d", i+1, strikes, want[i])
		}
	}
	if balls != 0 {
		t.Errorf("fouls must not change balls, got %d", balls)
	}
}
