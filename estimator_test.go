package manabench

import (
	"context"
	"testing"
)

func TestEstimateCandidateDeterministicWithSeed(t *testing.T) {
	cfg := Config{
		DeckSize:        60,
		TotalLands:      24,
		GoodLandsNeeded: 1,
		TurnAllowed:     2,
		Iterations:      20_000,
		OnPlay:          true,
		Seed:            42,
		Workers:         4,
	}

	a, err := EstimateCandidate(context.Background(), cfg, 13, ClassicMulligan{})
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	b, err := EstimateCandidate(context.Background(), cfg, 13, ClassicMulligan{})
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	if a != b {
		t.Fatalf("same seed produced different counters: %+v vs %+v", a, b)
	}
	t.Logf("13 sources: P=%.4f over %d trials", a.Probability(), a.Trials)
}

// TestEstimateZeroDenominator verifies the defined behavior for pathological
// configurations: when no trial can meet its land drops, the conditional
// probability is zero, not an error.
func TestEstimateZeroDenominator(t *testing.T) {
	// Two lands total but three drops required by turn 3.
	cfg := Config{
		DeckSize:        60,
		TotalLands:      2,
		GoodLandsNeeded: 3,
		TurnAllowed:     3,
		Iterations:      2_000,
		OnPlay:          true,
		Seed:            1,
	}

	est, err := EstimateCandidate(context.Background(), cfg, 2, ClassicMulligan{})
	if err != nil {
		t.Fatalf("EstimateCandidate failed: %v", err)
	}

	if est.LandDropsMet != 0 {
		t.Fatalf("expected zero trials meeting land drops, got %d", est.LandDropsMet)
	}
	if p := est.Probability(); p != 0 {
		t.Errorf("probability with zero denominator = %v, want 0", p)
	}
	lo, hi := est.ConfidenceInterval()
	if lo != 0 || hi != 0 {
		t.Errorf("confidence interval with zero denominator = [%v, %v], want [0, 0]", lo, hi)
	}
}

func TestEstimateCandidateRejectsBadInput(t *testing.T) {
	cfg := Config{
		DeckSize:        60,
		TotalLands:      24,
		GoodLandsNeeded: 1,
		TurnAllowed:     1,
		Iterations:      100,
		OnPlay:          true,
	}

	if _, err := EstimateCandidate(context.Background(), cfg, 25, ClassicMulligan{}); err == nil {
		t.Error("expected error for candidate above total lands")
	}
	if _, err := EstimateCandidate(context.Background(), cfg, -1, ClassicMulligan{}); err == nil {
		t.Error("expected error for negative candidate")
	}

	bad := cfg
	bad.Iterations = 0
	if _, err := EstimateCandidate(context.Background(), bad, 10, ClassicMulligan{}); err == nil {
		t.Error("expected error for invalid config")
	}
}

func TestEstimateCandidateHonorsCancellation(t *testing.T) {
	cfg := Config{
		DeckSize:        60,
		TotalLands:      24,
		GoodLandsNeeded: 1,
		TurnAllowed:     2,
		Iterations:      1_000_000,
		OnPlay:          true,
		Seed:            1,
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := EstimateCandidate(ctx, cfg, 13, ClassicMulligan{}); err == nil {
		t.Fatal("expected cancellation error")
	}
}

// TestRunSimulationMonotoneWithinTolerance checks that adding sources never
// hurts, up to Monte Carlo noise.
func TestRunSimulationMonotoneWithinTolerance(t *testing.T) {
	cfg := Config{
		DeckSize:        60,
		TotalLands:      24,
		GoodLandsNeeded: 2,
		TurnAllowed:     3,
		Iterations:      5_000,
		OnPlay:          true,
		Seed:            3,
	}

	probs, err := RunSimulation(context.Background(), cfg, ClassicMulligan{})
	if err != nil {
		t.Fatalf("RunSimulation failed: %v", err)
	}

	if len(probs) != cfg.TotalLands-defaultMinCandidate+1 {
		t.Fatalf("tested %d candidates, want %d", len(probs), cfg.TotalLands-defaultMinCandidate+1)
	}

	// Noise at 5k iterations is around 0.007 stderr; 0.03 keeps flakes out
	// while still catching a real regression.
	AssertMonotoneNondecreasing(t, probs, 0.03)
}

// TestEstimateUnconditionalOrdering verifies the conditional estimate is at
// least the unconditional success rate: dropping failed-land-drop trials from
// the denominator can only raise the ratio.
func TestEstimateUnconditionalOrdering(t *testing.T) {
	cfg := Config{
		DeckSize:        60,
		TotalLands:      24,
		GoodLandsNeeded: 2,
		TurnAllowed:     4,
		Iterations:      20_000,
		OnPlay:          true,
		Seed:            5,
	}

	est, err := EstimateCandidate(context.Background(), cfg, 12, ClassicMulligan{})
	if err != nil {
		t.Fatalf("EstimateCandidate failed: %v", err)
	}

	if est.LandDropsMet > int64(est.Trials) {
		t.Fatalf("denominator %d exceeds trials %d", est.LandDropsMet, est.Trials)
	}
	if est.Successes > est.LandDropsMet {
		t.Fatalf("successes %d exceed land-drop trials %d: success requires the drops",
			est.Successes, est.LandDropsMet)
	}

	unconditional := float64(est.Successes) / float64(est.Trials)
	if est.Probability() < unconditional {
		t.Errorf("conditional %.4f below unconditional %.4f", est.Probability(), unconditional)
	}

	lo, hi := est.ConfidenceInterval()
	if !(lo <= est.Probability() && est.Probability() <= hi) {
		t.Errorf("point estimate %.4f outside its interval [%.4f, %.4f]", est.Probability(), lo, hi)
	}
	t.Logf("12 sources: P=%.4f (95%% CI %.4f to %.4f)", est.Probability(), lo, hi)
}

func TestRunSimulationRangeClampsToTotalLands(t *testing.T) {
	cfg := Config{
		DeckSize:        60,
		TotalLands:      10,
		GoodLandsNeeded: 1,
		TurnAllowed:     1,
		Iterations:      500,
		OnPlay:          true,
		Seed:            2,
	}

	estimates, err := RunSimulationRange(context.Background(), cfg, 8, 50, ClassicMulligan{})
	if err != nil {
		t.Fatalf("RunSimulationRange failed: %v", err)
	}

	if len(estimates) != 3 {
		t.Fatalf("got %d estimates, want 3 (candidates 8 through 10)", len(estimates))
	}
	if last := estimates[len(estimates)-1].GoodLands; last != 10 {
		t.Errorf("last candidate %d, want 10", last)
	}
}
