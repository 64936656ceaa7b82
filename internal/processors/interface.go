package processors

import (
	"context"

	"github.com/callmegreg/gh-worm-hunt/internal/types"
)

// UserProcessor defines the interface for resolving a single user
type UserProcessor interface {
	ProcessUser(ctx context.Context, username string) types.ProcessingResult
}
