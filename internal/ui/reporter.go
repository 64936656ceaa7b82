package ui

import (
	"github.com/pterm/pterm"

	"github.com/callmegreg/gh-worm-hunt/internal/membership"
	"github.com/callmegreg/gh-worm-hunt/internal/types"
)

var _ membership.Reporter = ConsoleReporter{}

// ConsoleReporter prints membership milestones with pterm. Per-organization cache
// builds are only shown as debug messages.
type ConsoleReporter struct{}

func (ConsoleReporter) DirectoryResolved(enterprise string, orgs []types.Organization) {
	pterm.Success.Printf("Found %d organizations in enterprise '%s'\n", len(orgs), enterprise)
}

func (ConsoleReporter) CacheBuilt(org string, collaborators int, err error) {
	if err != nil {
		pterm.Warning.Printf("Could not list outside collaborators for organization '%s', relying on direct membership checks: %v\n", org, err)
		return
	}
	pterm.Debug.Printf("Cached %d outside collaborators for organization '%s'\n", collaborators, org)
}

func (ConsoleReporter) EngineCompleted(users int, implicated int) {
	pterm.Success.Printf("Resolved memberships for %d accounts, %d with enterprise access\n", users, implicated)
}
