package utils

import "fmt"

// ValidateConcurrency validates the concurrency flag value
func ValidateConcurrency(concurrency int) error {
	if concurrency < 1 || concurrency > 20 {
		return fmt.Errorf("concurrency must be between 1 and 20, got %d", concurrency)
	}
	return nil
}

// ValidateDelay validates the delay flag value
func ValidateDelay(delay int) error {
	if delay < 0 || delay > 600 {
		return fmt.Errorf("delay must be between 0 and 600 seconds, got %d", delay)
	}
	return nil
}

// ValidateConcurrencyAndDelay rejects a delay combined with concurrent processing
func ValidateConcurrencyAndDelay(concurrency, delay int) error {
	if delay > 0 && concurrency > 1 {
		return fmt.Errorf("--delay can only be used with --concurrency 1")
	}
	return nil
}
