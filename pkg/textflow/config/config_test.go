package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cognicore/textflow/pkg/textflow/internalerr"
	"github.com/cognicore/textflow/pkg/textflow/pipeline"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadPipeline(t *testing.T) {
	path := writeFile(t, "pipeline.yaml", `
language: en
steps:
  - operation: CleanText
  - operation: Sentiment
    label: mood
    settings:
      language: nl
`)

	f, err := LoadPipeline(path)
	if err != nil {
		t.Fatal(err)
	}
	if f.Language != "en" {
		t.Errorf("language = %q", f.Language)
	}
	if len(f.Steps) != 2 {
		t.Fatalf("steps = %v", f.Steps)
	}

	steps := f.ToSteps()
	if steps[0].Op != "CleanText" || steps[0].Key() != "CleanText" {
		t.Errorf("step 0 = %+v", steps[0])
	}
	if steps[1].Key() != "mood" {
		t.Errorf("step 1 key = %q, want label alias", steps[1].Key())
	}
	if steps[1].Settings.String("language", "") != "nl" {
		t.Errorf("step 1 settings = %v", steps[1].Settings)
	}
}

func TestLoadPipelineRejectsMalformedYAML(t *testing.T) {
	path := writeFile(t, "bad.yaml", "steps: [unclosed")

	_, err := LoadPipeline(path)
	if !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Fatalf("expected invalid-config error, got %v", err)
	}
}

func TestLoadPipelineRejectsEmptySteps(t *testing.T) {
	path := writeFile(t, "empty.yaml", "language: en\n")

	_, err := LoadPipeline(path)
	if !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Fatalf("expected invalid-config error, got %v", err)
	}
}

func TestLoadPipelineRejectsNamelessStep(t *testing.T) {
	path := writeFile(t, "nameless.yaml", `
steps:
  - label: mystery
`)

	_, err := LoadPipeline(path)
	if !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Fatalf("expected invalid-config error, got %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	p := pipeline.New(pipeline.NewRegistry(),
		pipeline.Step{Op: "CleanText"},
		pipeline.Step{Op: "KeyTerms", Label: "terms", Settings: pipeline.Settings{"k": 5}},
	)
	p.Language = "nl"

	path := filepath.Join(t.TempDir(), "pipeline.yaml")
	if err := SavePipeline(path, FromPipeline(p)); err != nil {
		t.Fatal(err)
	}

	f, err := LoadPipeline(path)
	if err != nil {
		t.Fatal(err)
	}
	if f.Language != "nl" {
		t.Errorf("language = %q", f.Language)
	}
	steps := f.ToSteps()
	if len(steps) != 2 || steps[1].Key() != "terms" {
		t.Fatalf("steps = %+v", steps)
	}
	if steps[1].Settings.Int("k", 0) != 5 {
		t.Errorf("k = %v", steps[1].Settings["k"])
	}
}

func TestLoadLexicon(t *testing.T) {
	path := writeFile(t, "lexicon.yaml", `
language: fr
entries:
  - word: bon
    polarity: 0.7
    subjectivity: 0.6
  - word: mauvais
    polarity: -0.7
    subjectivity: 0.7
`)

	lang, lex, err := LoadLexicon(path)
	if err != nil {
		t.Fatal(err)
	}
	if lang != "fr" {
		t.Errorf("language = %q", lang)
	}
	if e, ok := lex["bon"]; !ok || e.Polarity != 0.7 {
		t.Errorf("lex[bon] = %+v, ok = %v", e, ok)
	}
	if len(lex) != 2 {
		t.Errorf("len(lex) = %d", len(lex))
	}
}

func TestLoadLexiconRequiresLanguage(t *testing.T) {
	path := writeFile(t, "nolang.yaml", `
entries:
  - word: bon
    polarity: 0.7
`)

	_, _, err := LoadLexicon(path)
	if !errors.Is(err, internalerr.ErrInvalidConfig) {
		t.Fatalf("expected invalid-config error, got %v", err)
	}
}
