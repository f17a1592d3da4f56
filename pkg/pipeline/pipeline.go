package pipeline

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Pipeline is a parsed build pipeline definition.
type Pipeline struct {
	Steps         []Step            `yaml:"steps"`
	Images        []string          `yaml:"images,omitempty"`
	Substitutions map[string]string `yaml:"substitutions,omitempty"`
	Timeout       string            `yaml:"timeout,omitempty"`
}

// Step is one tool invocation in the pipeline.
type Step struct {
	ID         string   `yaml:"id,omitempty"`
	Name       string   `yaml:"name"`
	Entrypoint string   `yaml:"entrypoint,omitempty"`
	Args       []string `yaml:"args,omitempty"`
	WaitFor    []string `yaml:"waitFor,omitempty"`
}

// DeployTarget is one managed-runtime deployment extracted from a deploy
// step.
type DeployTarget struct {
	StepID  string
	Service string
	Image   string
	Region  string
}

// Parse parses a pipeline definition from YAML.
func Parse(data []byte) (*Pipeline, error) {
	var p Pipeline
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse pipeline: %w", err)
	}
	if len(p.Steps) == 0 {
		return nil, fmt.Errorf("pipeline has no steps")
	}
	return &p, nil
}

// Load reads and parses a pipeline definition file.
func Load(path string) (*Pipeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(data)
}

// label identifies a step in messages: its id when set, else its index.
func (p *Pipeline) label(i int) string {
	if p.Steps[i].ID != "" {
		return p.Steps[i].ID
	}
	return fmt.Sprintf("step[%d]", i)
}

// isDocker reports whether the step runs the container-image builder.
func (s *Step) isDocker() bool {
	return strings.Contains(s.Name, "docker")
}

// isCloudSDK reports whether the step runs the cloud deployment client.
func (s *Step) isCloudSDK() bool {
	return strings.Contains(s.Name, "gcloud") || strings.Contains(s.Name, "cloud-sdk")
}

// usesShell reports whether the step runs through a shell entrypoint.
func (s *Step) usesShell() bool {
	return s.Entrypoint == "bash" || s.Entrypoint == "sh"
}

// FailureTolerant reports whether the step swallows its own failure, the
// shell `cmd || exit 0` form.
func (s *Step) FailureTolerant() bool {
	if !s.usesShell() {
		return false
	}
	for _, arg := range s.Args {
		if strings.Contains(arg, "|| exit 0") || strings.Contains(arg, "|| true") {
			return true
		}
	}
	return false
}

// isCachePull reports whether the step is a cache-warming image pull.
func (s *Step) isCachePull() bool {
	if !s.isDocker() {
		return false
	}
	if s.usesShell() {
		for _, arg := range s.Args {
			if strings.Contains(arg, "docker pull") || strings.HasPrefix(arg, "pull ") {
				return true
			}
		}
		return false
	}
	return len(s.Args) > 0 && s.Args[0] == "pull"
}

// BuiltTags returns every -t/--tag value of the build steps.
func (p *Pipeline) BuiltTags() []string {
	var tags []string
	for i := range p.Steps {
		step := &p.Steps[i]
		if !step.isDocker() || step.usesShell() || len(step.Args) == 0 || step.Args[0] != "build" {
			continue
		}
		tags = append(tags, flagValues(step.Args, "-t", "--tag")...)
	}
	return tags
}

// CacheFrom returns every --cache-from value of the build steps.
func (p *Pipeline) CacheFrom() []string {
	var images []string
	for i := range p.Steps {
		step := &p.Steps[i]
		if !step.isDocker() || step.usesShell() || len(step.Args) == 0 || step.Args[0] != "build" {
			continue
		}
		images = append(images, flagValues(step.Args, "--cache-from")...)
	}
	return images
}

// PushedTags returns the image references pushed by the push steps.
func (p *Pipeline) PushedTags() []string {
	var tags []string
	for i := range p.Steps {
		step := &p.Steps[i]
		if !step.isDocker() || step.usesShell() {
			continue
		}
		if len(step.Args) >= 2 && step.Args[0] == "push" {
			tags = append(tags, step.Args[1])
		}
	}
	return tags
}

// DeployTargets returns the managed-runtime deployments of the pipeline.
func (p *Pipeline) DeployTargets() []DeployTarget {
	var targets []DeployTarget
	for i := range p.Steps {
		step := &p.Steps[i]
		if !step.isCloudSDK() || len(step.Args) < 3 {
			continue
		}
		if step.Args[0] != "run" || step.Args[1] != "deploy" {
			continue
		}
		target := DeployTarget{
			StepID:  p.label(i),
			Service: step.Args[2],
		}
		if v := flagValues(step.Args, "--image"); len(v) > 0 {
			target.Image = v[0]
		}
		if v := flagValues(step.Args, "--region"); len(v) > 0 {
			target.Region = v[0]
		}
		targets = append(targets, target)
	}
	return targets
}

// Regions returns the distinct regions referenced by deploy steps.
func (p *Pipeline) Regions() []string {
	seen := make(map[string]bool)
	var regions []string
	for _, target := range p.DeployTargets() {
		if target.Region == "" || seen[target.Region] {
			continue
		}
		seen[target.Region] = true
		regions = append(regions, target.Region)
	}
	return regions
}

// flagValues collects the values of a flag in both the "--flag value" and
// "--flag=value" forms.
func flagValues(args []string, names ...string) []string {
	var values []string
	for i, arg := range args {
		for _, name := range names {
			if arg == name && i+1 < len(args) {
				values = append(values, args[i+1])
			}
			if strings.HasPrefix(arg, name+"=") {
				values = append(values, arg[len(name)+1:])
			}
		}
	}
	return values
}
