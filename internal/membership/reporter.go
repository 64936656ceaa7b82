package membership

import "github.com/callmegreg/gh-worm-hunt/internal/types"

// Reporter receives progress milestones from the directory and the engine. CacheBuilt is
// called from concurrent goroutines, so implementations must be safe for concurrent use.
type Reporter interface {
	DirectoryResolved(enterprise string, orgs []types.Organization)
	CacheBuilt(org string, collaborators int, err error)
	EngineCompleted(users int, implicated int)
}

// NopReporter discards every milestone
type NopReporter struct{}

func (NopReporter) DirectoryResolved(string, []types.Organization) {}
func (NopReporter) CacheBuilt(string, int, error)                  {}
func (NopReporter) EngineCompleted(int, int)                       {}

func reporterOrNop(r Reporter) Reporter {
	if r == nil {
		return NopReporter{}
	}
	return r
}
