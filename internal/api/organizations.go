package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/pterm/pterm"

	"github.com/callmegreg/gh-worm-hunt/internal/utils"
)

// EnterpriseOrganizations fetches all organization logins of an enterprise using GraphQL
func (c *Client) EnterpriseOrganizations(ctx context.Context, enterprise string) ([]string, error) {
	const maxPerPage = 100
	var orgs []string
	var cursor *string

	for {
		query := fmt.Sprintf(`{
			enterprise(slug: "%s") {
				organizations(first: %d, after: %s) {
					nodes {
						login
					}
					pageInfo {
						hasNextPage
						endCursor
					}
				}
			}
		}`, enterprise, maxPerPage, formatCursor(cursor))

		response, err := c.run(ctx, "api", "graphql", "-f", "query="+query)
		if err != nil {
			return nil, err
		}

		var result struct {
			Data struct {
				Enterprise *struct {
					Organizations struct {
						Nodes []struct {
							Login string `json:"login"`
						}
						PageInfo struct {
							HasNextPage bool   `json:"hasNextPage"`
							EndCursor   string `json:"endCursor"`
						} `json:"pageInfo"`
					} `json:"organizations"`
				} `json:"enterprise"`
			} `json:"data"`
		}

		if err := json.Unmarshal(response.Bytes(), &result); err != nil {
			return nil, fmt.Errorf("failed to parse organizations data: %w", err)
		}
		if result.Data.Enterprise == nil {
			return nil, fmt.Errorf("enterprise '%s' not found or not accessible", enterprise)
		}

		page := result.Data.Enterprise.Organizations
		for _, org := range page.Nodes {
			orgs = append(orgs, org.Login)
		}

		if !page.PageInfo.HasNextPage {
			break
		}
		cursor = &page.PageInfo.EndCursor
	}

	return orgs, nil
}

// ScopedLister restricts enterprise organization listing to the organizations named in a
// CSV file. Organizations in the file that do not belong to the enterprise are reported and
// dropped.
type ScopedLister struct {
	Client      *Client
	OrgListPath string
}

// EnterpriseOrganizations returns the enterprise organizations, filtered by the CSV file when set
func (s *ScopedLister) EnterpriseOrganizations(ctx context.Context, enterprise string) ([]string, error) {
	enterpriseOrgs, err := s.Client.EnterpriseOrganizations(ctx, enterprise)
	if err != nil {
		return nil, err
	}
	if s.OrgListPath == "" {
		return enterpriseOrgs, nil
	}

	pterm.Info.Printf("Reading organizations from CSV file: %s\n", s.OrgListPath)
	csvOrgs, err := utils.ReadOrganizationsFromCSV(s.OrgListPath)
	if err != nil {
		return nil, err
	}

	validOrgs, invalidOrgs := FilterOrganizations(csvOrgs, enterpriseOrgs)
	if len(invalidOrgs) > 0 {
		pterm.Warning.Printf("Found %d organizations in CSV that do not exist in enterprise '%s':\n", len(invalidOrgs), enterprise)
		for _, org := range invalidOrgs {
			pterm.Printf("  - %s (not found in enterprise)\n", pterm.Red(org))
		}
		pterm.Println()
	}
	if len(validOrgs) == 0 {
		return nil, fmt.Errorf("no valid organizations found in CSV file that exist in enterprise '%s'", enterprise)
	}

	return validOrgs, nil
}

// FilterOrganizations splits requested into those present in enterprise and those that are not,
// keeping the order of requested
func FilterOrganizations(requested, enterprise []string) (valid, invalid []string) {
	enterpriseOrgMap := make(map[string]bool, len(enterprise))
	for _, org := range enterprise {
		enterpriseOrgMap[org] = true
	}

	for _, org := range requested {
		if enterpriseOrgMap[org] {
			valid = append(valid, org)
		} else {
			invalid = append(invalid, org)
		}
	}
	return valid, invalid
}

// formatCursor formats the cursor for GraphQL pagination
func formatCursor(cursor *string) string {
	if cursor == nil {
		return "null"
	}
	return fmt.Sprintf(`"%s"`, *cursor)
}
