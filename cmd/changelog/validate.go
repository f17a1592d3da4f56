package main

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/spf13/cobra"
)

var (
	datePattern    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	versionPattern = regexp.MustCompile(`^\d+\.\d+\.\d+$`)
	changeTypes    = map[string]bool{
		"Added": true, "Changed": true, "Deprecated": true,
		"Removed": true, "Fixed": true, "Security": true,
	}
)

// Issue is one validation finding. Line 0 means the issue is file-wide.
type Issue struct {
	Line    int
	Message string
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a changelog follows Keep a Changelog spec",
	Long: `Validate that a changelog file follows the Keep a Changelog format:
a title, an [Unreleased] section, semver version headings with ISO 8601
dates, known change types and a link definition per version.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")

		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}

		issues := Validate(content)
		if len(issues) == 0 {
			fmt.Println("Changelog is valid")
			return nil
		}

		fmt.Printf("Found %d issue(s):\n\n", len(issues))
		for _, issue := range issues {
			if issue.Line > 0 {
				fmt.Printf("  Line %d: %s\n", issue.Line, issue.Message)
			} else {
				fmt.Printf("  %s\n", issue.Message)
			}
		}
		os.Exit(1)
		return nil
	},
}

// Validate checks a changelog against the Keep a Changelog format.
func Validate(source []byte) []Issue {
	var issues []Issue
	report := func(line int, format string, args ...interface{}) {
		issues = append(issues, Issue{Line: line, Message: fmt.Sprintf(format, args...)})
	}

	hasTitle := false
	hasUnreleased := false
	var versions []string

	for i, line := range strings.Split(string(source), "\n") {
		lineNum := i + 1
		trimmed := strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(trimmed, "### "):
			changeType := strings.TrimPrefix(trimmed, "### ")
			if !changeTypes[changeType] {
				report(lineNum, "Invalid change type '%s'. Valid types: Added, Changed, Deprecated, Removed, Fixed, Security", changeType)
			}

		case strings.HasPrefix(trimmed, "## "):
			version, date := splitHeading(strings.TrimPrefix(trimmed, "## "))
			if strings.EqualFold(version, "unreleased") {
				hasUnreleased = true
				continue
			}
			versions = append(versions, version)
			if !versionPattern.MatchString(version) {
				report(lineNum, "Version '%s' should follow semantic versioning (X.Y.Z)", version)
			}
			if date == "" {
				report(lineNum, "Version '%s' is missing a release date", version)
			} else if !datePattern.MatchString(date) {
				report(lineNum, "Date '%s' should be in ISO 8601 format (YYYY-MM-DD)", date)
			}

		case strings.HasPrefix(trimmed, "# "):
			hasTitle = true
			if !strings.Contains(strings.ToLower(trimmed), "changelog") {
				report(lineNum, "Title should contain 'Changelog'")
			}
		}
	}

	if !hasTitle {
		report(0, "Missing changelog title (# Changelog)")
	}
	if !hasUnreleased {
		report(0, "Missing [Unreleased] section")
	}

	if changelog, err := Parse(source); err == nil {
		for _, version := range versions {
			if _, ok := changelog.Links[version]; !ok {
				report(0, "Missing link definition for version [%s]", version)
			}
		}
		if hasUnreleased {
			if _, ok := changelog.Links["Unreleased"]; !ok {
				report(0, "Missing link definition for [Unreleased]")
			}
		}
	}

	return issues
}

func init() {
	validateCmd.Flags().StringP("file", "f", "CHANGELOG.md", "Path to the changelog file")
	rootCmd.AddCommand(validateCmd)
}
