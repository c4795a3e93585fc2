package manabench

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"sync"
	"sync/atomic"
)

// defaultMinCandidate is where the candidate scan starts. Below six sources
// no realistic deck hits 90% on any turn, so the reference tables never look
// there.
const defaultMinCandidate = 6

// ctxCheckInterval is how many trials a worker runs between cancellation
// checks. The trial loop is pure CPU, so cancellation is cooperative.
const ctxCheckInterval = 4096

// Estimate contains the outcome counters for one candidate source count.
type Estimate struct {
	// GoodLands is the candidate number of colored sources tested.
	GoodLands int

	// Trials is the number of independent games simulated.
	Trials int

	// Successes counts trials where the player saw at least GoodLandsNeeded
	// colored sources by the target turn.
	Successes int64

	// LandDropsMet counts trials where the player saw at least
	// GoodLandsNeeded lands of any color, meaning the player could have cast
	// a same-cost colorless spell.
	LandDropsMet int64
}

// Probability returns the conditional estimate P(enough colored sources |
// enough lands). Conditioning on LandDropsMet isolates color screw from plain
// land screw. When no trial met its land drops the probability is defined as
// zero rather than an error.
func (e Estimate) Probability() float64 {
	if e.LandDropsMet == 0 {
		return 0
	}
	return float64(e.Successes) / float64(e.LandDropsMet)
}

// ConfidenceInterval returns the 95% interval for Probability under the
// normal approximation to the binomial (±1.96 standard errors), clamped to
// [0, 1].
func (e Estimate) ConfidenceInterval() (lower, upper float64) {
	n := float64(e.LandDropsMet)
	if n == 0 {
		return 0, 0
	}

	p := e.Probability()
	margin := 1.96 * math.Sqrt(p*(1-p)/n)

	return math.Max(0, p-margin), math.Min(1, p+margin)
}

// EstimateCandidate runs cfg.Iterations independent games with goodLands
// candidate sources and returns the aggregated counters.
//
// Iterations are partitioned across cfg.Workers goroutines. Each worker owns
// a PCG stream derived from (cfg.Seed, goodLands, worker index), so for a
// fixed non-zero seed the counters are identical run to run regardless of
// scheduling. Trials never share a Deck.
func EstimateCandidate(ctx context.Context, cfg Config, goodLands int, policy MulliganPolicy) (Estimate, error) {
	if err := cfg.Validate(); err != nil {
		return Estimate{}, fmt.Errorf("invalid config: %w", err)
	}
	if goodLands < 0 || goodLands > cfg.TotalLands {
		return Estimate{}, fmt.Errorf("candidate %d outside [0, %d]", goodLands, cfg.TotalLands)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	workers := cfg.workers()
	if workers > cfg.Iterations {
		workers = cfg.Iterations
	}

	perWorker := cfg.Iterations / workers
	remainder := cfg.Iterations % workers

	var (
		wg           sync.WaitGroup
		successes    atomic.Int64
		landDropsMet atomic.Int64

		errOnce sync.Once
		runErr  error
	)
	fail := func(err error) {
		errOnce.Do(func() { runErr = err })
	}

	for w := 0; w < workers; w++ {
		trials := perWorker
		if w == 0 {
			trials += remainder
		}

		wg.Add(1)
		go func(worker, trials int) {
			defer wg.Done()

			rng := rand.New(rand.NewPCG(seed, uint64(goodLands)<<32|uint64(worker)))
			deck := NewDeck(cfg.TotalLands, goodLands, cfg.DeckSize, rng)

			var localSuccess, localDrops int64

			for i := 0; i < trials; i++ {
				if i%ctxCheckInterval == 0 && ctx.Err() != nil {
					fail(ctx.Err())
					return
				}

				deck.Reset(cfg.TotalLands, goodLands, cfg.DeckSize)
				lands, good, err := SimulateGame(deck, cfg, policy)
				if err != nil {
					fail(err)
					return
				}

				if good >= cfg.GoodLandsNeeded {
					localSuccess++
				}
				if lands >= cfg.GoodLandsNeeded {
					localDrops++
				}
			}

			successes.Add(localSuccess)
			landDropsMet.Add(localDrops)
		}(w, trials)
	}

	wg.Wait()

	if runErr != nil {
		return Estimate{}, runErr
	}

	return Estimate{
		GoodLands:    goodLands,
		Trials:       cfg.Iterations,
		Successes:    successes.Load(),
		LandDropsMet: landDropsMet.Load(),
	}, nil
}

// RunSimulationRange estimates every candidate in [minGood, maxGood] in
// ascending order. Candidates above cfg.TotalLands are impossible and are
// skipped.
func RunSimulationRange(ctx context.Context, cfg Config, minGood, maxGood int, policy MulliganPolicy) ([]Estimate, error) {
	if minGood < 0 {
		minGood = 0
	}
	if maxGood > cfg.TotalLands {
		maxGood = cfg.TotalLands
	}
	if minGood > maxGood {
		return nil, fmt.Errorf("empty candidate range [%d, %d]", minGood, maxGood)
	}

	estimates := make([]Estimate, 0, maxGood-minGood+1)

	for goodLands := minGood; goodLands <= maxGood; goodLands++ {
		est, err := EstimateCandidate(ctx, cfg, goodLands, policy)
		if err != nil {
			return nil, fmt.Errorf("candidate %d: %w", goodLands, err)
		}
		estimates = append(estimates, est)
	}

	return estimates, nil
}

// RunSimulation estimates the default candidate range (6 up to the deck's
// total lands) and returns the conditional probability per candidate.
func RunSimulation(ctx context.Context, cfg Config, policy MulliganPolicy) (map[int]float64, error) {
	minGood := defaultMinCandidate
	if minGood > cfg.TotalLands {
		minGood = cfg.TotalLands
	}

	estimates, err := RunSimulationRange(ctx, cfg, minGood, cfg.TotalLands, policy)
	if err != nil {
		return nil, err
	}

	probs := make(map[int]float64, len(estimates))
	for _, est := range estimates {
		probs[est.GoodLands] = est.Probability()
	}
	return probs, nil
}
