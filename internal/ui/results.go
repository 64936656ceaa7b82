package ui

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/callmegreg/gh-worm-hunt/internal/types"
)

// DisplayResults renders one table row per implicated account
func DisplayResults(results []types.UserResult) error {
	pterm.Println()
	pterm.DefaultSection.Println("Implicated Accounts")
	return pterm.DefaultTable.WithHasHeader().WithData(ResultsTable(results)).Render()
}

// ResultsTable builds the table data, header row first
func ResultsTable(results []types.UserResult) pterm.TableData {
	data := pterm.TableData{{"Account", "Repositories", "Enterprise Access"}}
	for _, result := range results {
		data = append(data, []string{
			result.Username,
			fmt.Sprintf("%d", len(result.Repositories)),
			formatMemberships(result.Memberships),
		})
	}
	return data
}

func formatMemberships(memberships []types.Membership) string {
	if len(memberships) == 0 {
		return pterm.Gray("none")
	}
	parts := make([]string, 0, len(memberships))
	for _, m := range memberships {
		switch m.Type {
		case types.MembershipMember:
			parts = append(parts, fmt.Sprintf("%s (%s)", m.Organization, pterm.Red(string(m.Type))))
		default:
			parts = append(parts, fmt.Sprintf("%s (%s)", m.Organization, pterm.Yellow(string(m.Type))))
		}
	}
	return strings.Join(parts, ", ")
}

// DisplayOrganizations renders the enterprise directory
func DisplayOrganizations(orgs []types.Organization) error {
	data := pterm.TableData{{"Organization", "Outside Collaborators"}}
	for _, org := range orgs {
		data = append(data, []string{org.Login, fmt.Sprintf("%d", len(org.OutsideCollaborators))})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
