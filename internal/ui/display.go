package ui

import (
	"github.com/pterm/pterm"
)

// ShowNoOrganizationsWarning displays appropriate warning based on source
func ShowNoOrganizationsWarning(orgListPath string) {
	if orgListPath != "" {
		pterm.Warning.Println("No valid organizations found in the CSV file.")
	} else {
		pterm.Warning.Println("No organizations found in the enterprise.")
	}
}

// ShowNoRepositoriesFound reports an empty search
func ShowNoRepositoriesFound(query string) {
	pterm.Success.Printf("No repositories matched the search query %s\n", pterm.Cyan(query))
}

// ShowProcessingStart displays the start of processing with concurrency info
func ShowProcessingStart(userCount, orgCount, concurrency int) {
	pterm.Info.Printf("Checking %d accounts against %d organizations with concurrency %d...\n", userCount, orgCount, concurrency)
}

// ShowProcessingStartWithDelay displays the start of processing with delay info
func ShowProcessingStartWithDelay(userCount, orgCount, delay int) {
	pterm.Info.Printf("Checking %d accounts against %d organizations sequentially with %d second delay between accounts...\n", userCount, orgCount, delay)
}
