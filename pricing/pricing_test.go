package pricing

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestEstimate(t *testing.T) {
	rates := Rates{InputPerMillion: 3.0, OutputPerMillion: 15.0}
	est := Estimate("claude-sonnet-4", 1_000_000, 200_000, rates)

	if !almostEqual(est.InputCost, 3.0) {
		t.Errorf("InputCost = %f, want 3.0", est.InputCost)
	}
	if !almostEqual(est.OutputCost, 3.0) {
		t.Errorf("OutputCost = %f, want 3.0", est.OutputCost)
	}
	if !almostEqual(est.TotalCost, 6.0) {
		t.Errorf("TotalCost = %f, want 6.0", est.TotalCost)
	}
	if est.InputTokens != 1_000_000 || est.OutputTokens != 200_000 {
		t.Errorf("token counts not carried through: %+v", est)
	}
}

func TestEstimate_ZeroTokens(t *testing.T) {
	est := Estimate("claude-sonnet-4", 0, 0, RatesFor("claude-sonnet-4"))
	if est.TotalCost != 0 {
		t.Errorf("TotalCost = %f, want 0", est.TotalCost)
	}
}

func TestRatesFor_UnknownModelFallsBack(t *testing.T) {
	got := RatesFor("some-future-model")
	want := DefaultRates["default"]
	if got != want {
		t.Errorf("RatesFor(unknown) = %+v, want %+v", got, want)
	}
}

func TestEstimateWithDefaults(t *testing.T) {
	est := EstimateWithDefaults("claude-opus-4", 2_000_000, 1_000_000)
	if !almostEqual(est.InputCost, 30.0) {
		t.Errorf("InputCost = %f, want 30.0", est.InputCost)
	}
	if !almostEqual(est.OutputCost, 75.0) {
		t.Errorf("OutputCost = %f, want 75.0", est.OutputCost)
	}
	if !almostEqual(est.TotalCost, 105.0) {
		t.Errorf("TotalCost = %f, want 105.0", est.TotalCost)
	}
}
