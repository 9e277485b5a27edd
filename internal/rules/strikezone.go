package rules

// PitchResult is the outcome of a single pitch.
type PitchResult string

const (
	PitchBall           PitchResult = "ball"
	PitchCalledStrike   PitchResult = "called_strike"
	PitchSwingingStrike PitchResult = "swinging_strike"
	PitchFoul           PitchResult = "foul"
	PitchInPlay         PitchResult = "in_play"
)

// BallRadius expands the normalized strike zone on every edge; a pitch
// whose center clips the zone by less than a ball's width is still a strike.
const BallRadius = 0.085

// InferPitchResult classifies an uncalled pitch from its normalized
// location. The zone is [0,1]x[0,1] expanded by BallRadius on each edge.
func InferPitchResult(x, y float64) PitchResult {
	if x >= -BallRadius && x <= 1+BallRadius && y >= -BallRadius && y <= 1+BallRadius {
		return PitchCalledStrike
	}
	return PitchBall
}
