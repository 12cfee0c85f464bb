// Package config loads and saves pipeline definitions and sentiment
// lexicons from YAML files.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/textflow/pkg/textflow/internalerr"
	"github.com/cognicore/textflow/pkg/textflow/pipeline"
	"github.com/cognicore/textflow/pkg/textflow/sentiment"
)

// PipelineFile is the YAML shape of a pipeline definition.
type PipelineFile struct {
	Language     string    `yaml:"language,omitempty"`
	HintLanguage string    `yaml:"hint_language,omitempty"`
	Steps        []StepDef `yaml:"steps"`
}

// StepDef defines one step within a pipeline file.
type StepDef struct {
	// Operation is the registry name of the operation.
	Operation string `yaml:"operation"`
	// Label optionally aliases the step's result key.
	Label string `yaml:"label,omitempty"`
	// Settings is the per-step configuration.
	Settings map[string]any `yaml:"settings,omitempty"`
}

// LoadPipeline reads a pipeline definition from a YAML file.
func LoadPipeline(path string) (*PipelineFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f PipelineFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", internalerr.ErrInvalidConfig, err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks that every step names an operation.
func (f *PipelineFile) Validate() error {
	if len(f.Steps) == 0 {
		return fmt.Errorf("%w: pipeline defines no steps", internalerr.ErrInvalidConfig)
	}
	for i, s := range f.Steps {
		if s.Operation == "" {
			return fmt.Errorf("%w: step %d has no operation", internalerr.ErrInvalidConfig, i)
		}
	}
	return nil
}

// ToSteps converts the file definition into pipeline steps.
func (f *PipelineFile) ToSteps() []pipeline.Step {
	steps := make([]pipeline.Step, len(f.Steps))
	for i, s := range f.Steps {
		steps[i] = pipeline.Step{
			Op:       s.Operation,
			Label:    s.Label,
			Settings: pipeline.Settings(s.Settings),
		}
	}
	return steps
}

// FromPipeline captures a pipeline's definition for saving.
func FromPipeline(p *pipeline.Pipeline) *PipelineFile {
	f := &PipelineFile{
		Language:     p.Language,
		HintLanguage: p.HintLanguage,
	}
	for _, s := range p.Steps() {
		f.Steps = append(f.Steps, StepDef{
			Operation: s.Op,
			Label:     s.Label,
			Settings:  s.Settings,
		})
	}
	return f
}

// SavePipeline writes a pipeline definition to a YAML file.
func SavePipeline(path string, f *PipelineFile) error {
	data, err := yaml.Marshal(f)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// LexiconFile is the YAML shape of a sentiment lexicon.
type LexiconFile struct {
	Language string         `yaml:"language"`
	Entries  []LexiconEntry `yaml:"entries"`
}

// LexiconEntry is one scored word.
type LexiconEntry struct {
	Word         string  `yaml:"word"`
	Polarity     float64 `yaml:"polarity"`
	Subjectivity float64 `yaml:"subjectivity"`
}

// LoadLexicon reads a sentiment lexicon from a YAML file.
func LoadLexicon(path string) (string, sentiment.Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, err
	}

	var f LexiconFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return "", nil, fmt.Errorf("%w: %v", internalerr.ErrInvalidConfig, err)
	}
	if f.Language == "" {
		return "", nil, fmt.Errorf("%w: lexicon has no language", internalerr.ErrInvalidConfig)
	}

	lex := make(sentiment.Lexicon, len(f.Entries))
	for _, e := range f.Entries {
		lex[e.Word] = sentiment.Entry{Polarity: e.Polarity, Subjectivity: e.Subjectivity}
	}
	return f.Language, lex, nil
}
