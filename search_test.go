package manabench

import (
	"context"
	"testing"
)

// TestMinimumMeetingTarget exercises both branches of the scan on synthetic
// probability maps, independent of any simulation.
func TestMinimumMeetingTarget(t *testing.T) {
	cases := []struct {
		name   string
		probs  map[int]float64
		target float64
		want   int
	}{
		{
			name:   "first qualifying candidate",
			probs:  map[int]float64{6: 0.50, 7: 0.80, 8: 0.91, 9: 0.95},
			target: 0.90,
			want:   8,
		},
		{
			name:   "target never reached returns maximum",
			probs:  map[int]float64{6: 0.40, 7: 0.55, 8: 0.70},
			target: 0.90,
			want:   8,
		},
		{
			name:   "noisy dip before the threshold",
			probs:  map[int]float64{6: 0.89, 7: 0.88, 8: 0.90, 9: 0.93},
			target: 0.90,
			want:   8,
		},
		{
			name:   "already qualifying at the bottom",
			probs:  map[int]float64{6: 0.95, 7: 0.97},
			target: 0.90,
			want:   6,
		},
		{
			name:   "exact boundary counts",
			probs:  map[int]float64{6: 0.90},
			target: 0.90,
			want:   6,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := minimumMeetingTarget(tc.probs, tc.target)
			if err != nil {
				t.Fatalf("minimumMeetingTarget failed: %v", err)
			}
			if got != tc.want {
				t.Errorf("got %d, want %d", got, tc.want)
			}
		})
	}
}

func TestMinimumMeetingTargetEmpty(t *testing.T) {
	if _, err := minimumMeetingTarget(map[int]float64{}, 0.90); err == nil {
		t.Fatal("expected error for empty candidate map")
	}
}

// TestFindMinimumSourcesSmoke runs a small end-to-end search. A single pip on
// turn 7 is an easy ask, so the answer must sit well below the land count.
func TestFindMinimumSourcesSmoke(t *testing.T) {
	cfg := Config{
		DeckSize:        60,
		TotalLands:      24,
		GoodLandsNeeded: 1,
		TurnAllowed:     7,
		Iterations:      5_000,
		OnPlay:          true,
		Seed:            8,
	}

	got, err := FindMinimumSources(context.Background(), cfg, 0.90, ClassicMulligan{})
	if err != nil {
		t.Fatalf("FindMinimumSources failed: %v", err)
	}

	if got < defaultMinCandidate || got > cfg.TotalLands {
		t.Fatalf("result %d outside candidate range [%d, %d]", got, defaultMinCandidate, cfg.TotalLands)
	}
	if got > 15 {
		t.Errorf("turn-7 single pip needs %d sources, expected far fewer", got)
	}
	t.Logf("turn-7 single pip: %d sources", got)
}

// TestFindMinimumSourcesDefaultTarget verifies target <= 0 selects the 90%
// default rather than accepting everything.
func TestFindMinimumSourcesDefaultTarget(t *testing.T) {
	cfg := Config{
		DeckSize:        60,
		TotalLands:      24,
		GoodLandsNeeded: 3,
		TurnAllowed:     3,
		Iterations:      2_000,
		OnPlay:          true,
		Seed:            8,
	}

	defaulted, err := FindMinimumSources(context.Background(), cfg, 0, ClassicMulligan{})
	if err != nil {
		t.Fatalf("defaulted run failed: %v", err)
	}
	explicit, err := FindMinimumSources(context.Background(), cfg, DefaultTargetProbability, ClassicMulligan{})
	if err != nil {
		t.Fatalf("explicit run failed: %v", err)
	}

	if defaulted != explicit {
		t.Errorf("default target gave %d, explicit 0.90 gave %d", defaulted, explicit)
	}
}
