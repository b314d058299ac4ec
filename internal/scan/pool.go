// Package scan scores batches of funds in parallel and assembles full
// comparison sets (scores, allocations, summary statistics).
package scan

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/kamalneel/agrawal-estate-sub000/internal/domain"
	"github.com/kamalneel/agrawal-estate-sub000/internal/scoring"
	"github.com/kamalneel/agrawal-estate-sub000/internal/utils"
)

// DefaultWorkers is used when a pool is created with a non-positive size.
const DefaultWorkers = 10

// ProgressFunc reports batch progress. current is 1-based and counts
// completed funds; completion order is nondeterministic.
type ProgressFunc func(current, total int, message string)

// WorkerPool scores funds concurrently. Scoring is pure, so funds are
// simply sharded across workers with no coordination beyond the job queue.
type WorkerPool struct {
	numWorkers int
	scorer     *scoring.Scorer
	log        zerolog.Logger
}

// NewWorkerPool creates a pool with the given number of workers,
// defaulting to DefaultWorkers if numWorkers is not positive.
func NewWorkerPool(numWorkers int, scorer *scoring.Scorer, log zerolog.Logger) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = DefaultWorkers
	}
	return &WorkerPool{
		numWorkers: numWorkers,
		scorer:     scorer,
		log:        log.With().Str("module", "scan").Logger(),
	}
}

// ScoreBatch scores all funds and returns results in input order. The
// progress callback, if non-nil, is invoked once per completed fund.
func (p *WorkerPool) ScoreBatch(funds []domain.FundRecord, progress ProgressFunc) []domain.ScoreResult {
	if len(funds) == 0 {
		return nil
	}

	timer := utils.NewTimer("score_batch", p.log)
	defer timer.Stop()

	results := make([]domain.ScoreResult, len(funds))
	jobs := make(chan int)

	var mu sync.Mutex
	completed := 0

	var wg sync.WaitGroup
	for w := 0; w < p.numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				// Each worker writes only its own index; no lock needed
				// for the results slice itself.
				results[i] = p.scorer.Score(funds[i])

				if progress != nil {
					mu.Lock()
					completed++
					current := completed
					mu.Unlock()
					progress(current, len(funds), fmt.Sprintf("Scoring %s", funds[i].Name))
				}
			}
		}()
	}

	for i := range funds {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	p.log.Debug().Int("funds", len(funds)).Int("workers", p.numWorkers).Msg("Batch scored")

	return results
}
