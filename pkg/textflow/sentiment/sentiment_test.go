package sentiment

import (
	"errors"
	"math"
	"testing"

	"github.com/cognicore/textflow/pkg/textflow/internalerr"
)

func TestAnalyzePositive(t *testing.T) {
	a := NewAnalyzer()

	score, err := a.Analyze("en", []string{"what", "a", "good", "and", "nice", "thing"})
	if err != nil {
		t.Fatal(err)
	}
	if score.Polarity <= 0 {
		t.Errorf("polarity = %v, want positive", score.Polarity)
	}
	if score.Subjectivity <= 0 || score.Subjectivity > 1 {
		t.Errorf("subjectivity = %v, want in (0,1]", score.Subjectivity)
	}
}

func TestAnalyzeNegative(t *testing.T) {
	a := NewAnalyzer()

	score, err := a.Analyze("en", []string{"a", "terrible", "and", "boring", "thing"})
	if err != nil {
		t.Fatal(err)
	}
	if score.Polarity >= 0 {
		t.Errorf("polarity = %v, want negative", score.Polarity)
	}
}

func TestAnalyzeNegationFlipsPolarity(t *testing.T) {
	a := NewAnalyzer()

	plain, err := a.Analyze("en", []string{"good"})
	if err != nil {
		t.Fatal(err)
	}
	negated, err := a.Analyze("en", []string{"not", "good"})
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(plain.Polarity+negated.Polarity) > 1e-9 {
		t.Errorf("negated polarity %v should mirror plain %v", negated.Polarity, plain.Polarity)
	}
}

func TestAnalyzeNegationSurvivesUnscoredWords(t *testing.T) {
	a := NewAnalyzer()

	score, err := a.Analyze("en", []string{"not", "very", "good"})
	if err != nil {
		t.Fatal(err)
	}
	if score.Polarity >= 0 {
		t.Errorf("polarity = %v, want negative", score.Polarity)
	}
}

func TestAnalyzeDutch(t *testing.T) {
	a := NewAnalyzer()

	score, err := a.Analyze("nl", []string{"dit", "is", "een", "leuke", "zin"})
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(score.Polarity-0.6) > 1e-9 {
		t.Errorf("polarity = %v, want 0.6", score.Polarity)
	}
}

func TestAnalyzeNoMatchesIsNeutral(t *testing.T) {
	a := NewAnalyzer()

	score, err := a.Analyze("en", []string{"purely", "factual", "statement"})
	if err != nil {
		t.Fatal(err)
	}
	if score.Polarity != 0 || score.Subjectivity != 0 {
		t.Errorf("score = %+v, want zero", score)
	}
}

func TestAnalyzeMissingLexicon(t *testing.T) {
	a := NewAnalyzer()

	_, err := a.Analyze("fi", []string{"hyvä"})
	if !errors.Is(err, internalerr.ErrMissingResource) {
		t.Fatalf("expected missing-resource error, got %v", err)
	}
	if errors.Is(err, internalerr.ErrUnknownOperation) {
		t.Error("missing lexicon must not match unknown operation")
	}
}

func TestAddLexicon(t *testing.T) {
	a := NewAnalyzer()
	a.AddLexicon("fr", Lexicon{
		"bon":     {Polarity: 0.7, Subjectivity: 0.6},
		"mauvais": {Polarity: -0.7, Subjectivity: 0.7},
	})

	score, err := a.Analyze("fr", []string{"un", "bon", "exemple"})
	if err != nil {
		t.Fatal(err)
	}
	if score.Polarity <= 0 {
		t.Errorf("polarity = %v, want positive", score.Polarity)
	}
}

func TestAnalyzeCanonicalizesLanguage(t *testing.T) {
	a := NewAnalyzer()

	if _, err := a.Analyze("en-US", []string{"good"}); err != nil {
		t.Errorf("en-US should resolve to the English lexicon: %v", err)
	}
}
