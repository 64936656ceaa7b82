package membership

import (
	"context"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/callmegreg/gh-worm-hunt/internal/processors"
	"github.com/callmegreg/gh-worm-hunt/internal/types"
)

// Engine resolves the organization relationships of many users at once
type Engine struct {
	Resolver *Resolver
	// Concurrency bounds both the users resolved in parallel and the organization checks in
	// flight per user. Values below 1 are treated as 1.
	Concurrency int
	// Delay switches to one user at a time with a pause between users
	Delay        time.Duration
	ShowProgress bool
	Reporter     Reporter
}

// UniqueUsernames drops case-insensitive duplicates, keeping the first-seen casing and order
func UniqueUsernames(usernames []string) []string {
	seen := make(map[string]bool, len(usernames))
	var unique []string
	for _, username := range usernames {
		key := strings.ToLower(username)
		if username == "" || seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, username)
	}
	return unique
}

// ResolveAll checks every unique user against every organization. The result is keyed by
// lower-cased username and holds exactly one entry per unique user whose checks all
// settled. An entry becomes visible only once all of its organization checks are done.
// If ctx is cancelled the entries gathered so far are returned together with ctx.Err().
func (e *Engine) ResolveAll(ctx context.Context, orgs []types.Organization, usernames []string) (map[string]types.UserMembership, error) {
	reporter := reporterOrNop(e.Reporter)
	unique := UniqueUsernames(usernames)

	unit := &userResolver{resolver: e.Resolver, orgs: orgs, concurrency: e.concurrency()}

	var results []types.ProcessingResult
	if e.Delay > 0 {
		results = processors.NewSequentialProcessor(unique, unit, e.Delay).WithProgress(e.ShowProgress).Process(ctx)
	} else {
		results = processors.NewConcurrentProcessor(unique, unit, e.concurrency()).WithProgress(e.ShowProgress).Process(ctx)
	}

	memberships := make(map[string]types.UserMembership, len(results))
	implicated := 0
	for _, result := range results {
		if result.Error != nil {
			continue
		}
		key := strings.ToLower(result.Username)
		if _, exists := memberships[key]; exists {
			continue
		}
		memberships[key] = result.Membership
		if len(result.Membership.Memberships) > 0 {
			implicated++
		}
	}

	reporter.EngineCompleted(len(memberships), implicated)
	return memberships, ctx.Err()
}

func (e *Engine) concurrency() int {
	if e.Concurrency < 1 {
		return 1
	}
	return e.Concurrency
}

// userResolver checks one user against every organization
type userResolver struct {
	resolver    *Resolver
	orgs        []types.Organization
	concurrency int
}

// ProcessUser fans the organization checks out and assembles the user's memberships in
// organization order once every check has returned
func (u *userResolver) ProcessUser(ctx context.Context, username string) types.ProcessingResult {
	checked := make([]types.MembershipType, len(u.orgs))

	var g errgroup.Group
	g.SetLimit(u.concurrency)
	for i, org := range u.orgs {
		g.Go(func() error {
			checked[i] = u.resolver.Check(ctx, org, username)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return types.ProcessingResult{Username: username, Error: err}
	}

	membership := types.UserMembership{Username: username}
	seen := make(map[string]bool, len(u.orgs))
	for i, org := range u.orgs {
		if checked[i] == types.MembershipNone || seen[org.Login] {
			continue
		}
		seen[org.Login] = true
		membership.Memberships = append(membership.Memberships, types.Membership{
			Organization: org.Login,
			Type:         checked[i],
		})
	}
	return types.ProcessingResult{Username: username, Membership: membership}
}
