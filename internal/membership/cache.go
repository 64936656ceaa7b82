package membership

import (
	"context"
	"strings"

	"github.com/callmegreg/gh-worm-hunt/internal/types"
)

// CollaboratorLister lists the outside collaborators of an organization
type CollaboratorLister interface {
	OutsideCollaborators(ctx context.Context, org string) ([]string, error)
}

// BuildCollaboratorCache drains the outside collaborator listing of org into a lower-cased
// set. The returned set is never nil: when listing fails it is empty and the failure is
// returned as a *types.ListingError so the caller can report it and carry on.
func BuildCollaboratorCache(ctx context.Context, lister CollaboratorLister, org string) (map[string]struct{}, error) {
	logins, err := lister.OutsideCollaborators(ctx, org)
	if err != nil {
		return map[string]struct{}{}, &types.ListingError{Organization: org, Err: err}
	}

	set := make(map[string]struct{}, len(logins))
	for _, login := range logins {
		set[strings.ToLower(login)] = struct{}{}
	}
	return set, nil
}
