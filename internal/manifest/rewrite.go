package manifest

import (
	"regexp"
	"strings"
)

// ConfirmationMessage is printed to stdout after a successful prepare pass.
const ConfirmationMessage = "Cargo.toml prepared for publish (elara-transport removed)"

// Step names reported in Result and by the inspect probes.
const (
	StepStripBlock    = "strip transport dependency block"
	StepClearFeature  = "clear transport feature"
	StepTrimAggregate = "trim aggregate elara feature"
	StepEnsureDefault = "ensure empty transport feature"
)

const (
	featureLiteral       = `elara-transport = ["dep:elara-transport"]`
	featureEmpty         = `elara-transport = []`
	aggregateLiteral     = `elara = ["elara-transport", "tokio"]`
	aggregateTrimmed     = `elara = ["tokio"]`
	aggregateWithDefault = aggregateTrimmed + "\n" + featureEmpty
)

// optionalDepBlock matches the commented elara-transport dependency entry:
// a comment line naming ELARA, any further comment lines, the dependency
// declaration, and trailing blank space up to and including the next newline.
var optionalDepBlock = regexp.MustCompile(
	`# [^\n]*ELARA[^\n]*\n(?:#[^\n]*\n)*elara-transport = \{ path = "elara/crates/elara-transport", optional = true \}\s*\n`,
)

// Step records the outcome of one transformation step.
type Step struct {
	Name    string
	Matched bool
}

// Result reports what a rewrite pass did.
type Result struct {
	Steps []Step

	// DefaultPresent is true when the empty transport feature exists in the
	// output, whether it was already there or inserted by the pass.
	DefaultPresent bool
}

// Changed reports whether any step modified the buffer.
func (r Result) Changed() bool {
	for _, step := range r.Steps {
		if step.Matched {
			return true
		}
	}
	return false
}

// Apply runs the publish transformations over the manifest text and returns
// the rewritten buffer together with per-step outcomes. It never errors:
// absent patterns leave the text untouched and surface as unmatched steps.
func Apply(content string) (string, Result) {
	var result Result

	content, stripped := stripDependencyBlock(content)
	result.Steps = append(result.Steps, Step{Name: StepStripBlock, Matched: stripped})

	cleared := strings.Contains(content, featureLiteral)
	content = strings.ReplaceAll(content, featureLiteral, featureEmpty)
	result.Steps = append(result.Steps, Step{Name: StepClearFeature, Matched: cleared})

	trimmed := strings.Contains(content, aggregateLiteral)
	content = strings.ReplaceAll(content, aggregateLiteral, aggregateTrimmed)
	result.Steps = append(result.Steps, Step{Name: StepTrimAggregate, Matched: trimmed})

	// Keep an empty transport feature around so cfg(feature = "elara-transport")
	// guards still resolve in the published build.
	inserted := false
	if !strings.Contains(content, featureEmpty) && strings.Contains(content, aggregateTrimmed) {
		content = strings.Replace(content, aggregateTrimmed, aggregateWithDefault, 1)
		inserted = true
	}
	result.Steps = append(result.Steps, Step{Name: StepEnsureDefault, Matched: inserted})
	result.DefaultPresent = strings.Contains(content, featureEmpty)

	return content, result
}

// stripDependencyBlock removes the first optional-dependency block. Further
// occurrences are left alone; a manifest only ever declares the entry once.
func stripDependencyBlock(content string) (string, bool) {
	loc := optionalDepBlock.FindStringIndex(content)
	if loc == nil {
		return content, false
	}
	return content[:loc[0]] + content[loc[1]:], true
}

// Probe reports whether one of the fixed patterns occurs in a manifest.
type Probe struct {
	Name    string
	Present bool
}

// Probes inspects manifest text without modifying it, reporting which of the
// rewrite targets are currently present.
func Probes(content string) []Probe {
	return []Probe{
		{Name: StepStripBlock, Present: optionalDepBlock.MatchString(content)},
		{Name: StepClearFeature, Present: strings.Contains(content, featureLiteral)},
		{Name: StepTrimAggregate, Present: strings.Contains(content, aggregateLiteral)},
		{Name: StepEnsureDefault, Present: strings.Contains(content, featureEmpty)},
	}
}
