// Package rules holds the pure scoring rules shared by the whole engine:
// the play/result classifier and strike-zone inference. No I/O, no state.
// These tables are the single source of truth; other packages must not
// re-enumerate them.
package rules

// Result is the terminal outcome of an at-bat or the label of a play.
type Result string

const (
	ResultStrikeout      Result = "strikeout"
	ResultGroundout      Result = "groundout"
	ResultFlyout         Result = "flyout"
	ResultLineout        Result = "lineout"
	ResultPopout         Result = "popout"
	ResultDoublePlay     Result = "double_play"
	ResultTriplePlay     Result = "triple_play"
	ResultFieldersChoice Result = "fielders_choice"
	ResultForceOut       Result = "force_out"
	ResultTagOut         Result = "tag_out"
	ResultCaughtStealing Result = "caught_stealing"
	ResultSacrificeFly   Result = "sacrifice_fly"
	ResultSacrificeBunt  Result = "sacrifice_bunt"

	ResultWalk       Result = "walk"
	ResultSingle     Result = "single"
	ResultDouble     Result = "double"
	ResultTriple     Result = "triple"
	ResultHomeRun    Result = "home_run"
	ResultHitByPitch Result = "hit_by_pitch"
	ResultError      Result = "error"
)

// outsByResult maps each out-producing result to the number of outs it
// records. Results absent from the table produce no outs.
var outsByResult = map[Result]int{
	ResultStrikeout:      1,
	ResultGroundout:      1,
	ResultFlyout:         1,
	ResultLineout:        1,
	ResultPopout:         1,
	ResultDoublePlay:     2,
	ResultTriplePlay:     3,
	ResultFieldersChoice: 1,
	ResultForceOut:       1,
	ResultTagOut:         1,
	ResultCaughtStealing: 1,
	ResultSacrificeFly:   1,
	ResultSacrificeBunt:  1,
}

// IsOut reports whether the result retires at least one runner or batter.
func IsOut(r Result) bool {
	_, ok := outsByResult[r]
	return ok
}

// OutsFor returns the outs recorded by the result: 2 for a double play,
// 3 for a triple play, 1 for any other out, 0 for everything else.
func OutsFor(r Result) int {
	return outsByResult[r]
}
