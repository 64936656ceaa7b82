package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/callmegreg/gh-worm-hunt/internal/api"
	"github.com/callmegreg/gh-worm-hunt/internal/membership"
	"github.com/callmegreg/gh-worm-hunt/internal/ui"
	"github.com/callmegreg/gh-worm-hunt/internal/utils"
)

var orgsCmd = &cobra.Command{
	Use:   "orgs",
	Short: "List enterprise organizations with their outside collaborator counts",
	Long:  "Resolves the organizations of an enterprise and the outside collaborators of each, as used by the scan command.",
	RunE:  runOrgs,
}

func runOrgs(cmd *cobra.Command, args []string) error {
	pterm.DefaultHeader.WithFullWidth().WithBackgroundStyle(pterm.NewStyle(pterm.BgBlue)).WithTextStyle(pterm.NewStyle(pterm.FgWhite)).Println("Enterprise Organization Directory")
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

	client := api.NewClient()
	directory := &membership.Directory{
		Organizations: &api.ScopedLister{Client: client, OrgListPath: flags.OrgListPath},
		Collaborators: client,
		Concurrency:   flags.Concurrency,
		Reporter:      ui.ConsoleReporter{},
	}

	orgs, err := directory.Resolve(cmd.Context(), enterprise)
	if err != nil {
		return err
	}
	if len(orgs) == 0 {
		ui.ShowNoOrganizationsWarning(flags.OrgListPath)
		return nil
	}

	return ui.DisplayOrganizations(orgs)
}
