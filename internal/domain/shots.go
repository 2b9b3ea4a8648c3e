package domain

import (
	"sync"

	m "github.com/mouse-blink/bloch/internal/model"
)

// MeasureShots collapses independent copies of state shots times and counts
// the outcomes. The state itself is left untouched.
func MeasureShots(src RandomSource, state m.State, shots int) m.ShotSummary {
	summary := m.ShotSummary{
		Prepared: state,
		Expected: Probabilities(state),
		Shots:    max(shots, 0),
	}

	summary.Counts = countShots(src, state, summary.Shots)

	return summary
}

// MeasureShotsParallel spreads the shots over workers goroutines. Each worker
// draws from its own stream seeded from src, so a seeded src still gives
// reproducible counts for a fixed worker count.
func MeasureShotsParallel(src RandomSource, state m.State, shots, workers int) m.ShotSummary {
	if workers <= 1 || shots < 2 {
		return MeasureShots(src, state, shots)
	}

	workers = min(workers, shots)

	summary := m.ShotSummary{
		Prepared: state,
		Expected: Probabilities(state),
		Shots:    shots,
	}

	jobs := make(chan shotJob, workers)
	results := make(chan [2]int, workers)

	var wg sync.WaitGroup

	for range workers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for job := range jobs {
				results <- countShots(job.src, state, job.shots)
			}
		}()
	}

	// Streams are derived up front so the split does not depend on scheduling.
	for i := range workers {
		share := shots / workers
		if i < shots%workers {
			share++
		}

		jobs <- shotJob{src: NewRandomSource(deriveSeed(src)), shots: share}
	}

	close(jobs)

	wg.Wait()
	close(results)

	for counts := range results {
		summary.Counts[0] += counts[0]
		summary.Counts[1] += counts[1]
	}

	return summary
}

type shotJob struct {
	src   RandomSource
	shots int
}

func countShots(src RandomSource, state m.State, shots int) [2]int {
	var counts [2]int

	for range shots {
		basis, _, _ := Collapse(src.Float64(), state)
		counts[basis]++
	}

	return counts
}

// deriveSeed draws a non-zero seed from src.
func deriveSeed(src RandomSource) uint64 {
	return uint64(src.Float64()*(1<<53)) | 1
}
