package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests pin the repository's own deployment pipeline.

func loadRepoPipeline(t *testing.T) *Pipeline {
	t.Helper()
	p, err := Load("../../cloudbuild.yaml")
	require.NoError(t, err)
	return p
}

func TestCloudbuildLintsClean(t *testing.T) {
	p := loadRepoPipeline(t)

	for _, problem := range p.Lint() {
		t.Errorf("cloudbuild.yaml: %s", problem)
	}
}

func TestCloudbuildPushesABuiltTag(t *testing.T) {
	p := loadRepoPipeline(t)

	built := make(map[string]bool)
	for _, tag := range p.BuiltTags() {
		built[tag] = true
	}

	pushed := p.PushedTags()
	require.NotEmpty(t, pushed)
	for _, tag := range pushed {
		assert.True(t, built[tag], "pushed tag %q is not built", tag)
	}
}

func TestCloudbuildDeploysThePushedImage(t *testing.T) {
	p := loadRepoPipeline(t)

	pushed := make(map[string]bool)
	for _, tag := range p.PushedTags() {
		pushed[tag] = true
	}

	for _, target := range p.DeployTargets() {
		assert.True(t, pushed[target.Image], "deploy %q uses unpushed image %q", target.Service, target.Image)
	}
}

func TestCloudbuildCachePullToleratesMissingImage(t *testing.T) {
	p := loadRepoPipeline(t)

	found := false
	for i := range p.Steps {
		step := &p.Steps[i]
		if !step.isCachePull() {
			continue
		}
		found = true
		assert.True(t, step.FailureTolerant(), "cache pull must not abort the build when the image is missing")
	}
	assert.True(t, found, "pipeline has no cache-warming pull step")

	// The cache image the build reads is the one the pull warms.
	assert.Contains(t, p.CacheFrom(), "gcr.io/$PROJECT_ID/rustysnake:latest")
}

func TestCloudbuildSingleRegionTwoTargets(t *testing.T) {
	p := loadRepoPipeline(t)

	assert.Equal(t, []string{"us-central1"}, p.Regions())

	targets := p.DeployTargets()
	require.Len(t, targets, 2)

	services := map[string]bool{}
	for _, target := range targets {
		services[target.Service] = true
	}
	assert.Equal(t, map[string]bool{"rustysnake": true, "rustysnake-staging": true}, services)
}
