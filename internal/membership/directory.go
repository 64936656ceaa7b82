package membership

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/callmegreg/gh-worm-hunt/internal/types"
)

// OrganizationLister lists the organization logins of an enterprise
type OrganizationLister interface {
	EnterpriseOrganizations(ctx context.Context, enterprise string) ([]string, error)
}

// Directory resolves the organizations of an enterprise together with their outside
// collaborator caches
type Directory struct {
	Organizations OrganizationLister
	Collaborators CollaboratorLister
	// Concurrency caps the number of collaborator listings in flight. Zero means no cap.
	Concurrency int
	Reporter    Reporter
}

// Resolve lists the enterprise's organizations and builds every collaborator cache
// concurrently. Organizations come back in enumeration order. Only a failure to enumerate
// the organizations is returned; collaborator listing failures leave that organization
// with an empty cache.
func (d *Directory) Resolve(ctx context.Context, enterprise string) ([]types.Organization, error) {
	reporter := reporterOrNop(d.Reporter)

	logins, err := d.Organizations.EnterpriseOrganizations(ctx, enterprise)
	if err != nil {
		return nil, &types.EnumerationError{Enterprise: enterprise, Err: err}
	}

	orgs := make([]types.Organization, len(logins))
	var g errgroup.Group
	if d.Concurrency > 0 {
		g.SetLimit(d.Concurrency)
	}
	for i, login := range logins {
		g.Go(func() error {
			set, err := BuildCollaboratorCache(ctx, d.Collaborators, login)
			orgs[i] = types.Organization{Login: login, OutsideCollaborators: set}
			reporter.CacheBuilt(login, len(set), err)
			return nil
		})
	}
	_ = g.Wait()

	reporter.DirectoryResolved(enterprise, orgs)
	return orgs, nil
}
