package manabench

import (
	"context"
	"fmt"
	"sort"
)

// DefaultTargetProbability is the consistency bar used by the reference
// tables: a 90% chance of having the colors on curve.
const DefaultTargetProbability = 0.90

// FindMinimumSources returns the smallest candidate source count whose
// estimated probability meets target. If no candidate in the tested range
// reaches the target, the maximum candidate tested is returned, which for a
// default run means "play every land as a source and accept the odds".
//
// target <= 0 selects DefaultTargetProbability.
func FindMinimumSources(ctx context.Context, cfg Config, target float64, policy MulliganPolicy) (int, error) {
	if target <= 0 {
		target = DefaultTargetProbability
	}

	probs, err := RunSimulation(ctx, cfg, policy)
	if err != nil {
		return 0, err
	}

	return minimumMeetingTarget(probs, target)
}

// minimumMeetingTarget scans candidates in ascending order and returns the
// first whose probability reaches target, falling back to the maximum
// candidate when none does.
//
// This is a linear scan on purpose. The true probability curve is
// non-decreasing in the source count, but finite-sample estimates carry noise
// that can produce local dips, and a binary search would latch onto them.
func minimumMeetingTarget(probs map[int]float64, target float64) (int, error) {
	if len(probs) == 0 {
		return 0, fmt.Errorf("no candidates tested")
	}

	candidates := make([]int, 0, len(probs))
	for c := range probs {
		candidates = append(candidates, c)
	}
	sort.Ints(candidates)

	for _, c := range candidates {
		if probs[c] >= target {
			return c, nil
		}
	}

	return candidates[len(candidates)-1], nil
}
