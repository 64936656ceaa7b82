package api

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/cli/go-gh/v2"
)

const (
	acceptHeader     = "Accept: application/vnd.github+json"
	apiVersionHeader = "X-GitHub-Api-Version: 2022-11-28"
)

// ExecFunc runs a gh command and returns its stdout and stderr
type ExecFunc func(ctx context.Context, args ...string) (stdout, stderr bytes.Buffer, err error)

// Client talks to GitHub through the gh CLI, reusing its authentication and GH_HOST
type Client struct {
	exec ExecFunc
}

// NewClient returns a Client backed by gh
func NewClient() *Client {
	return &Client{exec: gh.ExecContext}
}

// NewClientWithExec returns a Client that runs gh commands through exec
func NewClientWithExec(exec ExecFunc) *Client {
	return &Client{exec: exec}
}

// run executes a gh command, folding stderr into the returned error
func (c *Client) run(ctx context.Context, args ...string) (bytes.Buffer, error) {
	stdout, stderr, err := c.exec(ctx, args...)
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return stdout, fmt.Errorf("%w: %s", err, msg)
		}
		return stdout, err
	}
	return stdout, nil
}

// IsMember checks whether username is a member of org. A 404, a redirect to the public
// members endpoint, or any other failure comes back as an error.
func (c *Client) IsMember(ctx context.Context, org, username string) (bool, error) {
	_, err := c.run(ctx, "api", "-H", acceptHeader, "-H", apiVersionHeader, fmt.Sprintf("/orgs/%s/members/%s", org, username))
	if err != nil {
		return false, err
	}
	return true, nil
}

// OutsideCollaborators lists every outside collaborator login of org
func (c *Client) OutsideCollaborators(ctx context.Context, org string) ([]string, error) {
	response, err := c.run(ctx, "api", "--paginate", "-H", acceptHeader, "-H", apiVersionHeader,
		fmt.Sprintf("/orgs/%s/outside_collaborators?per_page=100", org), "--jq", ".[].login")
	if err != nil {
		return nil, err
	}
	return splitLines(response.String()), nil
}

// splitLines returns the non-empty trimmed lines of s
func splitLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
