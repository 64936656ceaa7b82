package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "worm-hunt",
	Short: "Find worm-created repositories and their owners' access to an enterprise",
	Long: `A GitHub CLI extension that searches for repositories matching a supply-chain worm signature
and reports which of their owners are members or outside collaborators of organizations in an enterprise.

Every flag can also be set through an environment variable, e.g. WORM_HUNT_ENTERPRISE_SLUG.`,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debug, _ := cmd.Flags().GetBool("debug"); debug {
			pterm.EnableDebugMessages()
		}
	},
}

func init() {
	// Add persistent flags that are common to all commands
	rootCmd.PersistentFlags().StringP("enterprise-slug", "e", "", "GitHub Enterprise slug (e.g., github)")
	rootCmd.PersistentFlags().StringP("github-enterprise-server-url", "u", "", "GitHub Enterprise Server URL (e.g., github.company.com)")
	rootCmd.PersistentFlags().StringP("org-list", "l", "", "Path to CSV file containing organization names to target (one per line, no header)")
	rootCmd.PersistentFlags().IntP("concurrency", "c", 5, "Number of concurrent requests (1-20)")
	rootCmd.PersistentFlags().IntP("delay", "d", 0, "Delay in seconds between accounts (only with --concurrency 1)")
	rootCmd.PersistentFlags().Bool("debug", false, "Show debug messages")

	// Add subcommands
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(orgsCmd)
}

// Execute runs the root command, cancelling in-flight requests on interrupt
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		pterm.Error.Printf("Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
