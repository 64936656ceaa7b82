package processors

import (
	"context"
	"fmt"
	"sync"

	"github.com/pterm/pterm"

	"github.com/callmegreg/gh-worm-hunt/internal/types"
)

// ConcurrentProcessor handles concurrent user processing with a fixed number of workers
type ConcurrentProcessor struct {
	usernames    []string
	processor    UserProcessor
	concurrency  int
	showProgress bool
}

// NewConcurrentProcessor creates a new concurrent processor
func NewConcurrentProcessor(usernames []string, processor UserProcessor, concurrency int) *ConcurrentProcessor {
	if concurrency < 1 {
		concurrency = 1
	}
	return &ConcurrentProcessor{
		usernames:   usernames,
		processor:   processor,
		concurrency: concurrency,
	}
}

// WithProgress enables the progress bar
func (cp *ConcurrentProcessor) WithProgress(show bool) *ConcurrentProcessor {
	cp.showProgress = show
	return cp
}

// Process resolves every user and returns the results in completion order. Workers stop
// picking up users once ctx is done; users never picked up have no result.
func (cp *ConcurrentProcessor) Process(ctx context.Context) []types.ProcessingResult {
	totalUsers := len(cp.usernames)
	if totalUsers == 0 {
		return nil
	}

	var progressBar *pterm.ProgressbarPrinter
	if cp.showProgress {
		progressBar, _ = pterm.DefaultProgressbar.WithTotal(totalUsers).WithTitle("Resolving memberships").Start()
	}

	// Create channels for work distribution and result collection
	userChan := make(chan string, totalUsers)
	resultChan := make(chan types.ProcessingResult, totalUsers)

	for _, username := range cp.usernames {
		userChan <- username
	}
	close(userChan)

	var wg sync.WaitGroup
	for i := 0; i < cp.concurrency; i++ {
		wg.Add(1)
		go cp.worker(ctx, &wg, userChan, resultChan)
	}

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	results := make([]types.ProcessingResult, 0, totalUsers)
	for result := range resultChan {
		results = append(results, result)
		if progressBar != nil {
			progressBar.UpdateTitle(fmt.Sprintf("Resolved %s", result.Username))
			progressBar.Increment()
		}
	}

	if progressBar != nil {
		_, _ = progressBar.Stop()
	}
	return results
}

// worker processes users from the channel
func (cp *ConcurrentProcessor) worker(ctx context.Context, wg *sync.WaitGroup, userChan <-chan string, resultChan chan<- types.ProcessingResult) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case username, ok := <-userChan:
			if !ok {
				return
			}
			resultChan <- cp.processor.ProcessUser(ctx, username)
		}
	}
}
