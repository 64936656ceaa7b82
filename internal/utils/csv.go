package utils

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/callmegreg/gh-worm-hunt/internal/types"
)

// ReadOrganizationsFromCSV reads organization names from a CSV file
func ReadOrganizationsFromCSV(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}

	var orgs []string
	for i, record := range records {
		if len(record) == 0 {
			continue // Skip empty lines
		}
		orgName := strings.TrimSpace(record[0])
		if orgName == "" {
			continue
		}
		// Basic validation for organization name format
		if strings.Contains(orgName, " ") || strings.Contains(orgName, "/") {
			pterm.Warning.Printf("Line %d: Invalid organization name format '%s', skipping\n", i+1, orgName)
			continue
		}
		orgs = append(orgs, orgName)
	}

	return orgs, nil
}

// ResultsHeader is the header row written by WriteResultsCSV
var ResultsHeader = []string{"username", "repository_count", "repositories", "memberships"}

// WriteResultsCSV writes one row per user to filePath, repositories and memberships
// joined with ';'
func WriteResultsCSV(filePath string, results []types.UserResult) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(ResultsHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}
	for _, result := range results {
		if err := writer.Write(ResultRow(result)); err != nil {
			return fmt.Errorf("failed to write CSV row for '%s': %w", result.Username, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to write CSV file: %w", err)
	}
	return nil
}

// ResultRow flattens a result into CSV columns
func ResultRow(result types.UserResult) []string {
	urls := make([]string, 0, len(result.Repositories))
	for _, repo := range result.Repositories {
		urls = append(urls, repo.URL)
	}
	memberships := make([]string, 0, len(result.Memberships))
	for _, m := range result.Memberships {
		memberships = append(memberships, fmt.Sprintf("%s:%s", m.Organization, m.Type))
	}
	return []string{
		result.Username,
		strconv.Itoa(len(result.Repositories)),
		strings.Join(urls, ";"),
		strings.Join(memberships, ";"),
	}
}
