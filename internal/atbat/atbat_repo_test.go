package atbat

import (
	"testing"

	"github.com/dugoutlabs/dugout/internal/rules"
	"github.com/dugoutlabs/dugout/pkg/apperr"
)

func floatPtr(v float64) *float64 { return &v }

func pitchResultPtr(r rules.PitchResult) *rules.PitchResult { return &r }

func TestResolvePitchResultExplicit(t *testing.T) {
	got, err := resolvePitchResult(PitchInput{Result: pitchResultPtr(rules.PitchFoul)})
	if err != nil {
		t.Fatalf("resolvePitchResult: %v", err)
	}
	if got != rules.PitchFoul {
		t.Errorf("got %s, want foul", got)
	}
}

func TestResolvePitchResultUnknownExplicit(t *testing.T) {
	_, err := resolvePitchResult(PitchInput{Result: pitchResultPtr("bunt_attempt")})
	if !apperr.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestResolvePitchResultInferredFromLocation(t *testing.T) {
	// Just inside the ball-radius tolerance of the zone edge.
	got, err := resolvePitchResult(PitchInput{LocationX: floatPtr(-0.08), LocationY: floatPtr(0.5)})
	if err != nil {
		t.Fatalf("resolvePitchResult: %v", err)
	}
	if got != rules.PitchCalledStrike {
		t.Errorf("location (-0.08, 0.5) inferred %s, want called_strike", got)
	}

	got, err = resolvePitchResult(PitchInput{LocationX: floatPtr(-0.2), LocationY: floatPtr(0.5)})
	if err != nil {
		t.Fatalf("resolvePitchResult: %v", err)
	}
	if got != rules.PitchBall {
		t.Errorf("location (-0.2, 0.5) inferred %s, want ball", got)
	}
}

func TestResolvePitchResultNothingToGoOn(t *testing.T) {
	_, err := resolvePitchResult(PitchInput{})
	if !apperr.IsValidation(err) {
		t.Fatalf("expected validation error without result or location, got %v", err)
	}

	// One coordinate is not enough to infer.
	_, err = resolvePitchResult(PitchInput{LocationX: floatPtr(0.5)})
	if !apperr.IsValidation(err) {
		t.Fatalf("expected validation error with partial location, got %v", err)
	}
}
