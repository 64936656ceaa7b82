package cmd

import (
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/callmegreg/gh-worm-hunt/internal/api"
	"github.com/callmegreg/gh-worm-hunt/internal/membership"
	"github.com/callmegreg/gh-worm-hunt/internal/report"
	"github.com/callmegreg/gh-worm-hunt/internal/ui"
	"github.com/callmegreg/gh-worm-hunt/internal/utils"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Search for worm repositories and resolve their owners' enterprise memberships",
	Long: `Searches GitHub for repositories matching the worm signature, then checks every repository owner
against every organization in the enterprise. Owners are reported as direct members or outside
collaborators, ordered by the number of organizations they can reach.`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().StringP("query", "q", api.DefaultSearchQuery, "Repository search query identifying the worm signature")
	scanCmd.Flags().StringP("output", "o", "", "Write the results to this CSV file")
	scanCmd.Flags().Bool("fold-owner-case", false, "Group repositories whose owners differ only in letter case")
}

func runScan(cmd *cobra.Command, args []string) error {
	pterm.DefaultHeader.WithFullWidth().WithBackgroundStyle(pterm.NewStyle(pterm.BgRed)).WithTextStyle(pterm.NewStyle(pterm.FgWhite)).Println("Supply-Chain Worm Membership Scan")
	pterm.Println()

	flags, err := utils.ExtractCommonFlags(cmd)
	if err != nil {
		return err
	}
	if err := utils.ValidateFlags(flags); err != nil {
		return err
	}

	enterprise, err := ui.GetEnterpriseInput(flags.Enterprise)
	if err != nil {
		return err
	}
	ui.SetupGitHubHost(flags.ServerURL)

	query := flags.Query
	if query == "" {
		query = api.DefaultSearchQuery
	}

	ctx := cmd.Context()
	client := api.NewClient()

	spinner, _ := pterm.DefaultSpinner.Start(fmt.Sprintf("Searching repositories matching %s...", query))
	repos, err := client.SearchRepositories(ctx, query)
	if err != nil {
		spinner.Fail("Repository search failed")
		return err
	}
	spinner.Success(fmt.Sprintf("Found %d matching repositories", len(repos)))

	if len(repos) == 0 {
		ui.ShowNoRepositoriesFound(query)
		return nil
	}

	owners := report.Owners(repos)
	pterm.Info.Printf("Repositories belong to %d accounts\n", len(owners))

	reporter := ui.ConsoleReporter{}
	directory := &membership.Directory{
		Organizations: &api.ScopedLister{Client: client, OrgListPath: flags.OrgListPath},
		Collaborators: client,
		Concurrency:   flags.Concurrency,
		Reporter:      reporter,
	}

	pterm.Info.Println("Fetching organizations and outside collaborators from enterprise...")
	orgs, err := directory.Resolve(ctx, enterprise)
	if err != nil {
		return err
	}
	if len(orgs) == 0 {
		ui.ShowNoOrganizationsWarning(flags.OrgListPath)
	}

	if flags.Delay > 0 {
		ui.ShowProcessingStartWithDelay(len(owners), len(orgs), flags.Delay)
	} else {
		ui.ShowProcessingStart(len(owners), len(orgs), flags.Concurrency)
	}

	engine := &membership.Engine{
		Resolver:     &membership.Resolver{Checker: client},
		Concurrency:  flags.Concurrency,
		Delay:        time.Duration(flags.Delay) * time.Second,
		ShowProgress: true,
		Reporter:     reporter,
	}
	memberships, err := engine.ResolveAll(ctx, orgs, owners)
	if err != nil {
		return fmt.Errorf("membership resolution interrupted: %w", err)
	}

	results := report.Aggregate(repos, memberships, report.Options{FoldOwnerCase: flags.FoldOwnerCase})
	if err := ui.DisplayResults(results); err != nil {
		return err
	}

	if flags.Output != "" {
		if err := utils.WriteResultsCSV(flags.Output, results); err != nil {
			return err
		}
		pterm.Success.Printf("Results written to %s\n", flags.Output)
	}

	implicated := 0
	for _, result := range results {
		if len(result.Memberships) > 0 {
			implicated++
		}
	}
	pterm.Println()
	utils.PrintCompletionHeader("Scan", len(results), implicated)

	utils.ShowReplicationCommand(utils.BuildReplicationCommand("scan", map[string]interface{}{
		"enterprise-slug":              enterprise,
		"github-enterprise-server-url": flags.ServerURL,
		"org-list":                     flags.OrgListPath,
		"query":                        query,
		"output":                       flags.Output,
		"fold-owner-case":              flags.FoldOwnerCase,
		"concurrency":                  flags.Concurrency,
		"delay":                        flags.Delay,
	}))

	return nil
}
