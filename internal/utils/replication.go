package utils

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

// BuildReplicationCommand creates a command string that can be used to replicate the same run
func BuildReplicationCommand(command string, flags map[string]interface{}) string {
	var parts []string
	parts = append(parts, "gh worm-hunt", command)

	// Add flags in a consistent order
	flagOrder := []string{
		"enterprise-slug",
		"github-enterprise-server-url",
		"org-list",
		"query",
		"output",
		"fold-owner-case",
		"concurrency",
		"delay",
	}

	for _, flagName := range flagOrder {
		value, exists := flags[flagName]
		if !exists || value == nil {
			continue
		}
		flag := "--" + flagName
		if shortFlag := getShortFlag(flagName); shortFlag != "" {
			flag = "-" + shortFlag
		}

		switch v := value.(type) {
		case string:
			if v != "" {
				parts = append(parts, fmt.Sprintf("%s %s", flag, quoteIfNeeded(v)))
			}
		case bool:
			if v {
				parts = append(parts, flag)
			}
		case int:
			// Only include concurrency if it's not the default (1) or delay if it's not default (0)
			if v > 0 && (flagName == "concurrency" && v != 1 || flagName == "delay") {
				parts = append(parts, fmt.Sprintf("%s %d", flag, v))
			}
		}
	}

	return strings.Join(parts, " ")
}

// getShortFlag returns the short version of a flag if it exists
func getShortFlag(flagName string) string {
	shortFlags := map[string]string{
		"enterprise-slug":              "e",
		"github-enterprise-server-url": "u",
		"org-list":                     "l",
		"query":                        "q",
		"output":                       "o",
		"concurrency":                  "c",
		"delay":                        "d",
	}
	return shortFlags[flagName]
}

// quoteIfNeeded adds single quotes around a string containing spaces or double quotes
func quoteIfNeeded(s string) string {
	if strings.ContainsAny(s, " \"") {
		return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
	}
	return s
}

// ShowReplicationCommand displays the replication command to the user
func ShowReplicationCommand(command string) {
	pterm.Println()
	pterm.Info.Println("To replicate this run, use the following command:")
	pterm.Println()

	boxedCommand := pterm.DefaultBox.
		WithTitle("Replication Command").
		WithTitleTopCenter().
		WithRightPadding(2).
		WithLeftPadding(2).
		WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).
		Sprint(command)

	pterm.Println(boxedCommand)
}
