package rules

import "testing"

func TestOutsFor(t *testing.T) {
	cases := []struct {
		result Result
		outs   int
	}{
		{ResultDoublePlay, 2},
		{ResultTriplePlay, 3},
		{ResultStrikeout, 1},
		{ResultGroundout, 1},
		{ResultFlyout, 1},
		{ResultLineout, 1},
		{ResultPopout, 1},
		{ResultFieldersChoice, 1},
		{ResultForceOut, 1},
		{ResultTagOut, 1},
		{ResultCaughtStealing, 1},
		{ResultSacrificeFly, 1},
		{ResultSacrificeBunt, 1},
		{ResultWalk, 0},
		{ResultSingle, 0},
		{ResultDouble, 0},
		{ResultTriple, 0},
		{ResultHomeRun, 0},
		{ResultHitByPitch, 0},
		{ResultError, 0},
	}

	for _, tc := range cases {
		if got := OutsFor(tc.result); got != tc.outs {
			t.Errorf("OutsFor(%s) = %d, want %d", tc.result, got, tc.outs)
		}
		if got := IsOut(tc.result); got != (tc.outs > 0) {
			t.Errorf("IsOut(%s) = %v, want %v", tc.result, got, tc.outs > 0)
		}
	}
}

func TestOutsForUnknownResult(t *testing.T) {
	if OutsFor(Result("rain_delay")) != 0 {
		t.Error("unknown result should record zero outs")
	}
	if IsOut(Result("rain_delay")) {
		t.Error("unknown result should not be an out")
	}
}

func TestInferPitchResult(t *testing.T) {
	cases := []struct {
		x, y float64
		want PitchResult
	}{
		{0.5, 0.5, PitchCalledStrike},
		{0, 0, PitchCalledStrike},
		{1, 1, PitchCalledStrike},
		// Within one ball radius of the zone edge still counts.
		{-0.08, 0.5, PitchCalledStrike},
		{1.08, 0.5, PitchCalledStrike},
		{0.5, -0.085, PitchCalledStrike},
		{0.5, 1.085, PitchCalledStrike},
		// Clearly outside.
		{-0.2, 0.5, PitchBall},
		{1.2, 0.5, PitchBall},
		{0.5, -0.1, PitchBall},
		{0.5, 1.1, PitchBall},
	}

	for _, tc := range cases {
		if got := InferPitchResult(tc.x, tc.y); got != tc.want {
			t.Errorf("InferPitchResult(%v, %v) = %s, want %s", tc.x, tc.y, got, tc.want)
		}
	}
}
