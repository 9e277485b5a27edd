package atbat

import "github.com/dugoutlabs/dugout/internal/rules"

// nextCount applies one pitch to the balls/strikes tally. The tally
// saturates at 3 balls and 2 strikes: ball four and strike three are
// recorded as pitches but the open count never leaves those ranges,
// the terminal walk or strikeout arrives through EndAtBat. A foul adds
// a strike only below two strikes: a foul can never end the at-bat. An
// in_play pitch leaves the count alone.
func nextCount(balls, strikes int, result rules.PitchResult) (int, int) {
	switch result {
	case rules.PitchBall:
		if balls < 3 {
			return balls + 1, strikes
		}
		return balls, strikes
	case rules.PitchCalledStrike, rules.PitchSwingingStrike, rules.PitchFoul:
		if strikes < 2 {
			return balls, strikes + 1
		}
		return balls, strikes
	default: // in_play
		return balls, strikes
	}
}
