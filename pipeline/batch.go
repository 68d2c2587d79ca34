package pipeline

import (
	"sync"

	"github.com/cwbudde/algo-seis/well"
)

// WellResult pairs one well's run outcome with its name. Err is set when
// that well failed; other wells are unaffected.
type WellResult struct {
	Well   string
	Result *Result
	Err    error
}

// RunBatch runs the pipeline over every well in the project using up to
// workers goroutines. Results are returned in the project's sorted name
// order; a failing well yields a WellResult with Err set rather than
// aborting the batch.
func RunBatch(p *well.Project, cfg Config, workers int) []WellResult {
	names := p.Names()
	results := make([]WellResult, len(names))

	if workers < 1 {
		workers = 1
	}
	if workers > len(names) {
		workers = len(names)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			for i := range jobs {
				w, err := p.Well(names[i])
				if err != nil {
					results[i] = WellResult{Well: names[i], Err: err}
					continue
				}
				res, err := Run(w, cfg)
				results[i] = WellResult{Well: names[i], Result: res, Err: err}
			}
		}()
	}
	for i := range names {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}
