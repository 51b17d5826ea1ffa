package manifest_test

import (
	"strings"
	"testing"

	"prepress/internal/manifest"
)

const fixtureManifest = `[package]
name = "b4ae"
version = "1.0.0"
edition = "2021"

[dependencies]
serde = "1"
tokio = { version = "1", optional = true }

# ELARA transport (not published)
elara-transport = { path = "elara/crates/elara-transport", optional = true }

[features]
default = []
elara-transport = ["dep:elara-transport"]
elara = ["elara-transport", "tokio"]
`

const preparedManifest = `[package]
name = "b4ae"
version = "1.0.0"
edition = "2021"

[dependencies]
serde = "1"
tokio = { version = "1", optional = true }

[features]
default = []
elara-transport = []
elara = ["tokio"]
`

func TestApplyEndToEnd(t *testing.T) {
	got, result := manifest.Apply(fixtureManifest)
	if got != preparedManifest {
		t.Fatalf("unexpected output:\n%s\nwant:\n%s", got, preparedManifest)
	}
	if !result.Changed() {
		t.Fatal("expected Changed to be true")
	}
	for _, step := range result.Steps {
		switch step.Name {
		case manifest.StepStripBlock, manifest.StepClearFeature, manifest.StepTrimAggregate:
			if !step.Matched {
				t.Fatalf("expected step %q to match", step.Name)
			}
		case manifest.StepEnsureDefault:
			if step.Matched {
				t.Fatalf("expected no insertion; step %q matched", step.Name)
			}
		}
	}
	if !result.DefaultPresent {
		t.Fatal("expected empty transport feature in output")
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	once, _ := manifest.Apply(fixtureManifest)
	twice, result := manifest.Apply(once)
	if twice != once {
		t.Fatalf("second pass changed output:\n%s\nwant:\n%s", twice, once)
	}
	if result.Changed() {
		t.Fatal("second pass reported changes")
	}
}

func TestApplyStripsBlockAndNothingElse(t *testing.T) {
	input := "before = 1\n\n# ELARA transport (not published)\nelara-transport = { path = \"elara/crates/elara-transport\", optional = true }\n\nafter = 2\n"
	got, result := manifest.Apply(input)
	want := "before = 1\n\nafter = 2\n"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
	if !result.Steps[0].Matched {
		t.Fatal("expected block strip to match")
	}
}

func TestApplyStripsMultiCommentBlock(t *testing.T) {
	input := strings.Join([]string{
		"# ELARA transport (not published)",
		"# enabled via the elara feature",
		`elara-transport = { path = "elara/crates/elara-transport", optional = true }`,
		"",
		"[features]",
		`elara-transport = []`,
		"",
	}, "\n")
	got, _ := manifest.Apply(input)
	want := "[features]\nelara-transport = []\n"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestApplyOnlyFirstBlockIsRemoved(t *testing.T) {
	block := "# ELARA transport (not published)\nelara-transport = { path = \"elara/crates/elara-transport\", optional = true }\n"
	input := block + "middle = 1\n" + block + "elara-transport = []\n"
	got, _ := manifest.Apply(input)
	want := "middle = 1\n" + block + "elara-transport = []\n"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestApplyClearsFeatureLeavingOtherLinesIntact(t *testing.T) {
	input := "[features]\ndefault = []\nelara-transport = [\"dep:elara-transport\"]\nextra = [\"serde\"]\n"
	got, result := manifest.Apply(input)
	want := "[features]\ndefault = []\nelara-transport = []\nextra = [\"serde\"]\n"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
	if !result.Steps[1].Matched {
		t.Fatal("expected feature clear to match")
	}
}

func TestApplyTrimsAggregateKeepingTokio(t *testing.T) {
	input := "[features]\nelara-transport = []\nelara = [\"elara-transport\", \"tokio\"]\n"
	got, _ := manifest.Apply(input)
	want := "[features]\nelara-transport = []\nelara = [\"tokio\"]\n"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestApplyInsertsDefaultAfterAggregate(t *testing.T) {
	input := "[features]\nelara = [\"elara-transport\", \"tokio\"]\n"
	got, result := manifest.Apply(input)
	want := "[features]\nelara = [\"tokio\"]\nelara-transport = []\n"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
	var inserted bool
	for _, step := range result.Steps {
		if step.Name == manifest.StepEnsureDefault {
			inserted = step.Matched
		}
	}
	if !inserted {
		t.Fatal("expected default insertion step to match")
	}
	if !result.DefaultPresent {
		t.Fatal("expected DefaultPresent")
	}
}

func TestApplyReportsMissingDefaultWhenNoInsertionPoint(t *testing.T) {
	input := "[package]\nname = \"b4ae\"\n"
	got, result := manifest.Apply(input)
	if got != input {
		t.Fatalf("expected passthrough, got %q", got)
	}
	if result.Changed() {
		t.Fatal("expected no changes")
	}
	if result.DefaultPresent {
		t.Fatal("expected DefaultPresent to be false")
	}
}

func TestApplyLeavesUnrelatedManifestUntouched(t *testing.T) {
	input := "[package]\nname = \"other\"\n\n[dependencies]\nserde = \"1\"\n\n[features]\nelara-transport = []\n"
	got, result := manifest.Apply(input)
	if got != input {
		t.Fatalf("expected passthrough, got %q", got)
	}
	if result.Changed() {
		t.Fatal("expected no changes")
	}
	if !result.DefaultPresent {
		t.Fatal("expected DefaultPresent")
	}
}

func TestProbes(t *testing.T) {
	probes := manifest.Probes(fixtureManifest)
	want := map[string]bool{
		manifest.StepStripBlock:    true,
		manifest.StepClearFeature:  true,
		manifest.StepTrimAggregate: true,
		manifest.StepEnsureDefault: false,
	}
	if len(probes) != len(want) {
		t.Fatalf("unexpected probe count: %d", len(probes))
	}
	for _, probe := range probes {
		expected, ok := want[probe.Name]
		if !ok {
			t.Fatalf("unexpected probe %q", probe.Name)
		}
		if probe.Present != expected {
			t.Fatalf("probe %q: got %v want %v", probe.Name, probe.Present, expected)
		}
	}

	prepared, _ := manifest.Apply(fixtureManifest)
	for _, probe := range manifest.Probes(prepared) {
		switch probe.Name {
		case manifest.StepEnsureDefault:
			if !probe.Present {
				t.Fatal("expected empty transport feature in prepared manifest")
			}
		default:
			if probe.Present {
				t.Fatalf("probe %q still present after prepare", probe.Name)
			}
		}
	}
}
