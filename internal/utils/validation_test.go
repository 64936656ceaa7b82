package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConcurrency(t *testing.T) {
	tests := []struct {
		value   int
		wantErr bool
	}{
		{0, true},
		{1, false},
		{20, false},
		{21, true},
	}

	for _, tt := range tests {
		err := ValidateConcurrency(tt.value)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateConcurrency(%d) error = %v, wantErr %v", tt.value, err, tt.wantErr)
		}
	}
}

func TestValidateDelay(t *testing.T) {
	assert.NoError(t, ValidateDelay(0))
	assert.NoError(t, ValidateDelay(600))
	assert.Error(t, ValidateDelay(-1))
	assert.Error(t, ValidateDelay(601))
}

func TestValidateConcurrencyAndDelay(t *testing.T) {
	assert.NoError(t, ValidateConcurrencyAndDelay(5, 0))
	assert.NoError(t, ValidateConcurrencyAndDelay(1, 10))
	assert.Error(t, ValidateConcurrencyAndDelay(2, 10))
}

func TestValidateFlagsOrgList(t *testing.T) {
	empty := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, os.WriteFile(empty, []byte("\n"), 0o600))

	err := ValidateFlags(&CommonFlags{Concurrency: 1, OrgListPath: empty})
	assert.ErrorContains(t, err, "no valid organizations")

	assert.NoError(t, ValidateFlags(&CommonFlags{Concurrency: 3}))
}

func newTestCommand() *cobra.Command {
	cmd := &cobra.Command{Use: "scan"}
	cmd.Flags().StringP("enterprise-slug", "e", "", "")
	cmd.Flags().StringP("github-enterprise-server-url", "u", "", "")
	cmd.Flags().StringP("org-list", "l", "", "")
	cmd.Flags().IntP("concurrency", "c", 5, "")
	cmd.Flags().IntP("delay", "d", 0, "")
	cmd.Flags().StringP("query", "q", "default query", "")
	cmd.Flags().StringP("output", "o", "", "")
	cmd.Flags().Bool("fold-owner-case", false, "")
	return cmd
}

func TestExtractCommonFlags(t *testing.T) {
	cmd := newTestCommand()
	require.NoError(t, cmd.ParseFlags([]string{"-e", " my-enterprise ", "-c", "8", "--fold-owner-case", "-o", "out.csv"}))

	flags, err := ExtractCommonFlags(cmd)
	require.NoError(t, err)
	assert.Equal(t, &CommonFlags{
		Enterprise:    "my-enterprise",
		Concurrency:   8,
		Query:         "default query",
		Output:        "out.csv",
		FoldOwnerCase: true,
	}, flags)
}

func TestExtractCommonFlagsFromEnvironment(t *testing.T) {
	t.Setenv("WORM_HUNT_ENTERPRISE_SLUG", "env-enterprise")
	t.Setenv("WORM_HUNT_CONCURRENCY", "12")
	t.Setenv("WORM_HUNT_GITHUB_ENTERPRISE_SERVER_URL", "github.company.com")

	cmd := newTestCommand()
	require.NoError(t, cmd.ParseFlags([]string{"-c", "3"}))

	flags, err := ExtractCommonFlags(cmd)
	require.NoError(t, err)
	assert.Equal(t, "env-enterprise", flags.Enterprise)
	assert.Equal(t, "github.company.com", flags.ServerURL)
	assert.Equal(t, 3, flags.Concurrency, "command line wins over environment")
}
