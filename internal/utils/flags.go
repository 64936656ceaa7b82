package utils

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every flag name to form its environment variable,
// e.g. WORM_HUNT_ENTERPRISE_SLUG
const EnvPrefix = "WORM_HUNT"

// CommonFlags holds the flag values shared by the commands
type CommonFlags struct {
	Enterprise    string
	ServerURL     string
	OrgListPath   string
	Concurrency   int
	Delay         int
	Query         string
	Output        string
	FoldOwnerCase bool
}

// ExtractCommonFlags reads the command's flags, letting WORM_HUNT_* environment variables
// supply values for flags that were not set on the command line
func ExtractCommonFlags(cmd *cobra.Command) (*CommonFlags, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("failed to bind flags: %w", err)
	}

	return &CommonFlags{
		Enterprise:    strings.TrimSpace(v.GetString("enterprise-slug")),
		ServerURL:     strings.TrimSpace(v.GetString("github-enterprise-server-url")),
		OrgListPath:   strings.TrimSpace(v.GetString("org-list")),
		Concurrency:   v.GetInt("concurrency"),
		Delay:         v.GetInt("delay"),
		Query:         v.GetString("query"),
		Output:        strings.TrimSpace(v.GetString("output")),
		FoldOwnerCase: v.GetBool("fold-owner-case"),
	}, nil
}

// ValidateFlags validates the concurrency and delay settings and the org list file if provided
func ValidateFlags(flags *CommonFlags) error {
	if err := ValidateConcurrency(flags.Concurrency); err != nil {
		return err
	}
	if err := ValidateDelay(flags.Delay); err != nil {
		return err
	}
	if err := ValidateConcurrencyAndDelay(flags.Concurrency, flags.Delay); err != nil {
		return err
	}

	if flags.OrgListPath != "" {
		orgs, err := ReadOrganizationsFromCSV(flags.OrgListPath)
		if err != nil {
			return fmt.Errorf("CSV validation failed: %w", err)
		}
		if len(orgs) == 0 {
			return fmt.Errorf("CSV file contains no valid organizations")
		}
	}

	return nil
}

// PrintCompletionHeader prints the completion header with results
func PrintCompletionHeader(operation string, users, implicated int) {
	pterm.DefaultHeader.WithFullWidth().WithBackgroundStyle(pterm.NewStyle(pterm.BgGreen)).WithTextStyle(pterm.NewStyle(pterm.FgBlack)).Printf("%s Complete! (Accounts: %d, With enterprise access: %d)", operation, users, implicated)
}
