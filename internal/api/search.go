package api

import (
	"context"
	"fmt"
	"strings"

	"github.com/callmegreg/gh-worm-hunt/internal/types"
)

// DefaultSearchQuery matches the repositories the Shai-Hulud worm creates to exfiltrate secrets
const DefaultSearchQuery = `"Sha1-Hulud: The Second Coming" in:description`

const repositoryFields = `.items[] | [.owner.login, .name, .html_url] | @tsv`

// SearchRepositories returns every repository matching query, in the order GitHub returns them
func (c *Client) SearchRepositories(ctx context.Context, query string) ([]types.Repository, error) {
	response, err := c.run(ctx, "api", "--paginate", "-X", "GET", "-H", acceptHeader, "-H", apiVersionHeader,
		"search/repositories", "-f", "q="+query, "-f", "per_page=100", "--jq", repositoryFields)
	if err != nil {
		return nil, fmt.Errorf("repository search failed: %w", err)
	}
	return parseRepositories(response.String())
}

// parseRepositories decodes tab separated owner, name and url lines
func parseRepositories(output string) ([]types.Repository, error) {
	var repos []types.Repository
	for i, line := range splitLines(output) {
		fields := strings.Split(line, "\t")
		if len(fields) != 3 {
			return nil, fmt.Errorf("unexpected search result on line %d: %q", i+1, line)
		}
		repos = append(repos, types.Repository{Owner: fields[0], Name: fields[1], URL: fields[2]})
	}
	return repos, nil
}
