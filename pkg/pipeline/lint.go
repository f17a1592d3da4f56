package pipeline

import "fmt"

// Problem is one consistency violation found in a pipeline definition.
type Problem struct {
	Step    string
	Message string
}

func (p Problem) String() string {
	if p.Step == "" {
		return p.Message
	}
	return fmt.Sprintf("%s: %s", p.Step, p.Message)
}

// Lint checks a pipeline definition for internal consistency:
//
//   - every pushed image reference must be a tag produced by a build step
//   - every deployed image must match a pushed image reference
//   - every declared output artifact must be a built tag
//   - a cache-warming pull must tolerate failure (a missing prior image
//     would otherwise abort every first build)
//   - all deploy steps must agree on a single region
//   - deploy targets must have distinct service names
func (p *Pipeline) Lint() []Problem {
	var problems []Problem

	built := make(map[string]bool)
	for _, tag := range p.BuiltTags() {
		built[tag] = true
	}
	pushed := make(map[string]bool)
	for _, tag := range p.PushedTags() {
		pushed[tag] = true
	}

	for i := range p.Steps {
		step := &p.Steps[i]
		if step.isCachePull() && !step.FailureTolerant() {
			problems = append(problems, Problem{
				Step:    p.label(i),
				Message: "cache-warming pull aborts the pipeline when the image is missing; run it through a shell with `|| exit 0`",
			})
		}
	}

	for _, tag := range p.PushedTags() {
		if !built[tag] {
			problems = append(problems, Problem{
				Message: fmt.Sprintf("pushed image %q is not produced by any build step", tag),
			})
		}
	}

	for _, target := range p.DeployTargets() {
		if target.Image == "" {
			problems = append(problems, Problem{
				Step:    target.StepID,
				Message: "deploy step names no image",
			})
			continue
		}
		if !pushed[target.Image] {
			problems = append(problems, Problem{
				Step:    target.StepID,
				Message: fmt.Sprintf("deployed image %q is not pushed by any step", target.Image),
			})
		}
	}

	for _, image := range p.Images {
		if !built[image] {
			problems = append(problems, Problem{
				Message: fmt.Sprintf("declared artifact %q is not produced by any build step", image),
			})
		}
	}

	if regions := p.Regions(); len(regions) > 1 {
		problems = append(problems, Problem{
			Message: fmt.Sprintf("deploy steps reference %d regions, expected one: %v", len(regions), regions),
		})
	}

	services := make(map[string]bool)
	for _, target := range p.DeployTargets() {
		if services[target.Service] {
			problems = append(problems, Problem{
				Step:    target.StepID,
				Message: fmt.Sprintf("duplicate deploy target %q", target.Service),
			})
		}
		services[target.Service] = true
	}

	return problems
}
