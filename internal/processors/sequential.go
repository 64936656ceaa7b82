package processors

import (
	"context"
	"fmt"
	"time"

	"github.com/pterm/pterm"

	"github.com/callmegreg/gh-worm-hunt/internal/types"
)

// SequentialProcessor handles sequential user processing with an optional delay between users
type SequentialProcessor struct {
	usernames    []string
	processor    UserProcessor
	delay        time.Duration
	showProgress bool
}

// NewSequentialProcessor creates a new sequential processor with optional delay
func NewSequentialProcessor(usernames []string, processor UserProcessor, delay time.Duration) *SequentialProcessor {
	return &SequentialProcessor{
		usernames: usernames,
		processor: processor,
		delay:     delay,
	}
}

// WithProgress enables the progress bar and the delay spinner
func (sp *SequentialProcessor) WithProgress(show bool) *SequentialProcessor {
	sp.showProgress = show
	return sp
}

// Process resolves users one at a time, waiting for the delay between users (not before the
// first one). It stops early when ctx is done.
func (sp *SequentialProcessor) Process(ctx context.Context) []types.ProcessingResult {
	totalUsers := len(sp.usernames)
	if totalUsers == 0 {
		return nil
	}

	var progressBar *pterm.ProgressbarPrinter
	if sp.showProgress {
		progressBar, _ = pterm.DefaultProgressbar.WithTotal(totalUsers).WithTitle("Resolving memberships").Start()
		if sp.delay > 0 {
			pterm.Info.Printf("Resolving users with %s delay between each user\n", sp.delay)
		}
	}
	defer func() {
		if progressBar != nil {
			_, _ = progressBar.Stop()
		}
	}()

	results := make([]types.ProcessingResult, 0, totalUsers)
	for i, username := range sp.usernames {
		if i > 0 && sp.delay > 0 {
			if err := sp.wait(ctx); err != nil {
				return results
			}
		}
		if ctx.Err() != nil {
			return results
		}

		if progressBar != nil {
			progressBar.UpdateTitle(fmt.Sprintf("Resolving %s", username))
		}

		results = append(results, sp.processor.ProcessUser(ctx, username))

		if progressBar != nil {
			progressBar.Increment()
		}
	}

	return results
}

// wait sleeps for the configured delay or until ctx is done
func (sp *SequentialProcessor) wait(ctx context.Context) error {
	var spinner *pterm.SpinnerPrinter
	if sp.showProgress {
		spinner, _ = pterm.DefaultSpinner.WithText(fmt.Sprintf("Waiting %s before resolving next user...", sp.delay)).Start()
	}

	timer := time.NewTimer(sp.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		if spinner != nil {
			spinner.Fail("Cancelled")
		}
		return ctx.Err()
	case <-timer.C:
		if spinner != nil {
			spinner.Success("Ready to resolve next user")
		}
		return nil
	}
}
