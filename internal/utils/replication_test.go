package utils

import (
	"strings"
	"testing"
)

func TestBuildReplicationCommand(t *testing.T) {
	tests := []struct {
		name       string
		command    string
		flags      map[string]interface{}
		expected   []string // Expected substrings in the command
		unexpected []string
	}{
		{
			name:    "Scan with enterprise and server url",
			command: "scan",
			flags: map[string]interface{}{
				"enterprise-slug":              "my-enterprise",
				"github-enterprise-server-url": "github.company.com",
			},
			expected: []string{
				"gh worm-hunt scan",
				"-e my-enterprise",
				"-u github.company.com",
			},
		},
		{
			name:    "Scan with org-list and output",
			command: "scan",
			flags: map[string]interface{}{
				"enterprise-slug": "my-enterprise",
				"org-list":        "orgs.csv",
				"output":          "results.csv",
			},
			expected: []string{
				"-l orgs.csv",
				"-o results.csv",
			},
		},
		{
			name:    "Query with spaces and quotes gets single quoted",
			command: "scan",
			flags: map[string]interface{}{
				"enterprise-slug": "my-enterprise",
				"query":           `"Sha1-Hulud: The Second Coming" in:description`,
			},
			expected: []string{
				`-q '"Sha1-Hulud: The Second Coming" in:description'`,
			},
		},
		{
			name:    "Default concurrency is omitted",
			command: "orgs",
			flags: map[string]interface{}{
				"enterprise-slug": "my-enterprise",
				"concurrency":     1,
				"delay":           0,
			},
			expected:   []string{"gh worm-hunt orgs"},
			unexpected: []string{"-c", "-d"},
		},
		{
			name:    "Concurrency and delay",
			command: "scan",
			flags: map[string]interface{}{
				"enterprise-slug": "my-enterprise",
				"concurrency":     5,
				"delay":           30,
			},
			expected: []string{
				"-c 5",
				"-d 30",
			},
		},
		{
			name:    "Boolean flags",
			command: "scan",
			flags: map[string]interface{}{
				"enterprise-slug": "my-enterprise",
				"fold-owner-case": true,
			},
			expected: []string{"--fold-owner-case"},
		},
		{
			name:    "String with spaces gets quoted",
			command: "scan",
			flags: map[string]interface{}{
				"enterprise-slug": "my enterprise",
			},
			expected: []string{"-e 'my enterprise'"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := BuildReplicationCommand(tt.command, tt.flags)

			for _, expected := range tt.expected {
				if !strings.Contains(result, expected) {
					t.Errorf("BuildReplicationCommand() result missing expected substring:\n  Expected: %s\n  Got: %s", expected, result)
				}
			}
			for _, unexpected := range tt.unexpected {
				if strings.Contains(result, " "+unexpected+" ") || strings.HasSuffix(result, " "+unexpected) {
					t.Errorf("BuildReplicationCommand() result should not contain %q, got %q", unexpected, result)
				}
			}

			expectedPrefix := "gh worm-hunt " + tt.command
			if !strings.HasPrefix(result, expectedPrefix) {
				t.Errorf("BuildReplicationCommand() result should start with %q, got %q", expectedPrefix, result)
			}
		})
	}
}

func TestQuoteIfNeeded(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"No spaces - no quotes", "test-org", "test-org"},
		{"With spaces - add quotes", "test org", "'test org'"},
		{"Double quotes - add quotes", `"worm"`, `'"worm"'`},
		{"Single quote is escaped", "it's here", `'it'\''s here'`},
		{"Empty string - no quotes", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := quoteIfNeeded(tt.input)
			if result != tt.expected {
				t.Errorf("quoteIfNeeded() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestGetShortFlag(t *testing.T) {
	tests := []struct {
		flagName string
		expected string
	}{
		{"enterprise-slug", "e"},
		{"github-enterprise-server-url", "u"},
		{"org-list", "l"},
		{"query", "q"},
		{"output", "o"},
		{"concurrency", "c"},
		{"delay", "d"},
		{"fold-owner-case", ""},
		{"unknown-flag", ""}, // Should return empty string for unknown flags
	}

	for _, tt := range tests {
		t.Run(tt.flagName, func(t *testing.T) {
			result := getShortFlag(tt.flagName)
			if result != tt.expected {
				t.Errorf("getShortFlag(%q) = %q, want %q", tt.flagName, result, tt.expected)
			}
		})
	}
}
