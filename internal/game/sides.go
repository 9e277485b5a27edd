package game

import "github.com/google/uuid"

// OpponentBatting derives which side bats in the given half. The home team
// bats in the bottom half, so the top half of a home game belongs to the
// opponent. Both StartGame and AdvanceInning must go through this one
// function; the side formula lives nowhere else.
func OpponentBatting(half InningHalf, isHomeGame bool) bool {
	return (half == HalfTop) == isHomeGame
}

// battingSides resolves the batting/pitching team pair for a half. When no
// away-team record exists (self-tracked or practice games) both sides fall
// back to the tracking team's own id.
func battingSides(g *Game, half InningHalf) (batting, pitching uuid.UUID) {
	opponent := g.TeamID
	if g.AwayTeamID != nil {
		opponent = *g.AwayTeamID
	}
	if OpponentBatting(half, g.IsHomeGame) {
		return opponent, g.TeamID
	}
	return g.TeamID, opponent
}

// nextHalfInning advances the clock: top -> bottom of the same inning,
// bottom -> top of the next.
func nextHalfInning(inning int, half InningHalf) (int, InningHalf) {
	if half == HalfTop {
		return inning, HalfBottom
	}
	return inning + 1, HalfTop
}

// newInningRow builds the append-only history row for the given state.
func newInningRow(g *Game, number int, half InningHalf) *Inning {
	batting, pitching := battingSides(g, half)
	return &Inning{
		GameID:            g.ID,
		InningNumber:      number,
		Half:              half,
		BattingTeamID:     batting,
		PitchingTeamID:    pitching,
		IsOpponentBatting: OpponentBatting(half, g.IsHomeGame),
	}
}
