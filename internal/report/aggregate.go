package report

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/callmegreg/gh-worm-hunt/internal/types"
)

// Options controls how repositories are grouped into users
type Options struct {
	// FoldOwnerCase groups owners that differ only in case into one result, displayed with
	// the first-seen casing. By default owners are grouped by their exact login string.
	FoldOwnerCase bool
}

// Owners returns the distinct repository owners in first-seen order
func Owners(repos []types.Repository) []string {
	seen := make(map[string]bool, len(repos))
	var owners []string
	for _, repo := range repos {
		if seen[repo.Owner] {
			continue
		}
		seen[repo.Owner] = true
		owners = append(owners, repo.Owner)
	}
	return owners
}

// Aggregate groups repositories by owner, attaches each owner's memberships and orders the
// result by membership count (descending) then username. memberships is keyed by lower-cased
// username, as returned by the membership engine. The inputs are not modified.
func Aggregate(repos []types.Repository, memberships map[string]types.UserMembership, opts Options) []types.UserResult {
	index := make(map[string]int)
	var results []types.UserResult

	for _, repo := range repos {
		key := repo.Owner
		if opts.FoldOwnerCase {
			key = strings.ToLower(key)
		}
		i, ok := index[key]
		if !ok {
			i = len(results)
			index[key] = i
			results = append(results, types.UserResult{Username: repo.Owner})
		}
		results[i].Repositories = append(results[i].Repositories, repo)
	}

	for i := range results {
		if m, ok := memberships[strings.ToLower(results[i].Username)]; ok && len(m.Memberships) > 0 {
			results[i].Memberships = append([]types.Membership(nil), m.Memberships...)
		}
	}

	SortResults(results)
	return results
}

// SortResults orders results by membership count, highest first, breaking ties by
// username in English collation order
func SortResults(results []types.UserResult) {
	collator := collate.New(language.English)
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if len(a.Memberships) != len(b.Memberships) {
			return len(a.Memberships) > len(b.Memberships)
		}
		return collator.CompareString(a.Username, b.Username) < 0
	})
}
