package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleChangelog = `# Changelog

All notable changes to this project will be documented in this file.

## [Unreleased]

### Added

- Something new.

## [1.1.0] - 2024-03-01

### Added

- A feature.

### Fixed

- A bug.

## [1.0.0] - 2024-01-15

### Added

- Initial release.

[Unreleased]: https://example.com/compare/v1.1.0...HEAD
[1.1.0]: https://example.com/compare/v1.0.0...v1.1.0
[1.0.0]: https://example.com/releases/tag/v1.0.0
`

func TestParse(t *testing.T) {
	changelog, err := Parse([]byte(sampleChangelog))
	require.NoError(t, err)

	require.Len(t, changelog.Entries, 3)
	assert.Equal(t, "Unreleased", changelog.Entries[0].Version)
	assert.Equal(t, "1.1.0", changelog.Entries[1].Version)
	assert.Equal(t, "2024-03-01", changelog.Entries[1].Date)
	assert.Equal(t, "1.0.0", changelog.Entries[2].Version)

	assert.Contains(t, changelog.Entries[1].Body, "A feature.")
	assert.Contains(t, changelog.Entries[1].Body, "A bug.")
	assert.NotContains(t, changelog.Entries[1].Body, "Initial release.")

	assert.Equal(t, "https://example.com/releases/tag/v1.0.0", changelog.Links["1.0.0"])
}

func TestFind(t *testing.T) {
	changelog, err := Parse([]byte(sampleChangelog))
	require.NoError(t, err)

	entry := changelog.Find("v1.1.0")
	require.NotNil(t, entry)
	assert.Equal(t, "1.1.0", entry.Version)

	assert.Nil(t, changelog.Find("9.9.9"))
}

func TestValidateCleanChangelog(t *testing.T) {
	assert.Empty(t, Validate([]byte(sampleChangelog)))
}

func TestValidateFindsIssues(t *testing.T) {
	bad := `# Release notes

## [1.0] - 01/15/2024

### Tweaked

- Something.
`

	issues := Validate([]byte(bad))

	var messages []string
	for _, issue := range issues {
		messages = append(messages, issue.Message)
	}

	assert.Contains(t, messages, "Title should contain 'Changelog'")
	assert.Contains(t, messages, "Version '1.0' should follow semantic versioning (X.Y.Z)")
	assert.Contains(t, messages, "Date '01/15/2024' should be in ISO 8601 format (YYYY-MM-DD)")
	assert.Contains(t, messages, "Invalid change type 'Tweaked'. Valid types: Added, Changed, Deprecated, Removed, Fixed, Security")
	assert.Contains(t, messages, "Missing [Unreleased] section")
	assert.Contains(t, messages, "Missing link definition for version [1.0]")
}
