package sim

import (
	"context"
	"fmt"
	"sync"
)

// Summary holds the terminal outcome of one run: the closing performance
// and wellbeing plus the cumulative effort stock, taken from the last
// recorded trajectory point.
type Summary struct {
	Run         int     `json:"run"`
	Performance float64 `json:"performance"`
	Wellbeing   float64 `json:"wellbeing"`
	Effort      float64 `json:"effort"`
}

// seedFunc draws base seeds for campaign runs (override in tests for
// deterministic campaigns).
var seedFunc = RandomSeed

// SetSeedFunc overrides the campaign seed source (use only in tests).
func SetSeedFunc(f func() int64) { seedFunc = f }

// Campaign repeats the engine over independent runs sharing parameters but
// not randomness, for distributional analysis of terminal outcomes.
type Campaign struct {
	params  Parameters
	numRuns int
	horizon int
}

// NewCampaign creates a campaign of numRuns independent runs over the
// given horizon.
func NewCampaign(params Parameters, numRuns, horizon int) *Campaign {
	return &Campaign{params: params, numRuns: numRuns, horizon: horizon}
}

// Run executes every run to completion and returns one Summary per run in
// run-index order. Each run is a pure function of its own base seed, so
// runs execute on parallel goroutines with no shared mutable state. The
// context is checked before each run starts; a long campaign can be
// abandoned between runs but never mid-run.
func (c *Campaign) Run(ctx context.Context) ([]Summary, error) {
	if c.numRuns <= 0 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidRunCount, c.numRuns)
	}
	if c.horizon <= 0 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidHorizon, c.horizon)
	}

	// Seeds are drawn up front on the caller's goroutine; workers then
	// touch nothing shared.
	seeds := make([]int64, c.numRuns)
	for i := range seeds {
		seeds[i] = seedFunc()
	}

	summaries := make([]Summary, c.numRuns)
	errs := make([]error, c.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < c.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				errs[idx] = ctx.Err()
				return
			default:
			}

			traj, err := Simulate(c.params, c.horizon, seeds[idx])
			if err != nil {
				errs[idx] = err
				return
			}

			last := traj[len(traj)-1]
			summaries[idx] = Summary{
				Run:         idx,
				Performance: last.Performance,
				Wellbeing:   last.Wellbeing,
				Effort:      last.CumulativeEffort,
			}
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return summaries, nil
}
