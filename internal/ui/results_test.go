package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/callmegreg/gh-worm-hunt/internal/types"
)

func TestResultsTable(t *testing.T) {
	results := []types.UserResult{
		{
			Username:     "mallory",
			Repositories: []types.Repository{{Owner: "mallory", Name: "x"}, {Owner: "mallory", Name: "y"}},
			Memberships: []types.Membership{
				{Organization: "acme", Type: types.MembershipMember},
				{Organization: "globex", Type: types.MembershipOutsideCollaborator},
			},
		},
		{Username: "eve", Repositories: []types.Repository{{Owner: "eve", Name: "z"}}},
	}

	data := ResultsTable(results)
	require.Len(t, data, 3)
	assert.Equal(t, []string{"Account", "Repositories", "Enterprise Access"}, data[0])
	assert.Equal(t, "mallory", data[1][0])
	assert.Equal(t, "2", data[1][1])
	assert.Contains(t, data[1][2], "acme")
	assert.Contains(t, data[1][2], "globex")
	assert.Contains(t, data[1][2], "outside_collaborator")
	assert.Equal(t, "eve", data[2][0])
	assert.Contains(t, data[2][2], "none")
}
