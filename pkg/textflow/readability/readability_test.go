package readability

import (
	"math"
	"testing"
)

func TestFleschReadingEase(t *testing.T) {
	got := FleschReadingEase("Test sentence for testing text")
	if math.Abs(got-83.32) > 0.01 {
		t.Errorf("score = %v, want ~83.32", got)
	}
}

func TestFleschEmptyTextScoresEasiest(t *testing.T) {
	for _, text := range []string{"", "...", "123"} {
		if got := FleschReadingEase(text); got != 100 {
			t.Errorf("FleschReadingEase(%q) = %v, want 100", text, got)
		}
	}
}

func TestFleschHarderTextScoresLower(t *testing.T) {
	simple := FleschReadingEase("The cat sat. The dog ran. We had fun.")
	hard := FleschReadingEase("Institutional heterogeneity complicates multilateral intergovernmental negotiations considerably.")
	if hard >= simple {
		t.Errorf("hard %v should score below simple %v", hard, simple)
	}
}

func TestSyllables(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"test", 1},
		{"sentence", 2},
		{"testing", 2},
		{"text", 1},
		{"for", 1},
		{"readable", 3},
		{"banana", 3},
	}
	for _, tc := range tests {
		if got := Syllables(tc.word); got != tc.want {
			t.Errorf("Syllables(%q) = %d, want %d", tc.word, got, tc.want)
		}
	}
}
