package token

import (
	"reflect"
	"testing"
)

func TestWordsWithOffsets(t *testing.T) {
	got := Words("Test sentence for testing text.")
	want := []Word{
		{Text: "Test", Offset: 0},
		{Text: "sentence", Offset: 5},
		{Text: "for", Offset: 14},
		{Text: "testing", Offset: 18},
		{Text: "text", Offset: 26},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Words = %v, want %v", got, want)
	}
}

func TestWordsPunctuationIsNotAWord(t *testing.T) {
	if got := Words("Sample text!"); len(got) != 2 {
		t.Errorf("Words = %v, want 2 words", got)
	}
	if got := Words("... !!! ???"); len(got) != 0 {
		t.Errorf("Words = %v, want none", got)
	}
}

func TestWordsJoiners(t *testing.T) {
	got := Words("machine-learning isn't plain")
	want := []string{"machine-learning", "isn't", "plain"}
	if len(got) != len(want) {
		t.Fatalf("Words = %v", got)
	}
	for i, w := range want {
		if got[i].Text != w {
			t.Errorf("word[%d] = %q, want %q", i, got[i].Text, w)
		}
	}
}

func TestWordsTrailingHyphenStaysOutside(t *testing.T) {
	got := Words("well- spoken")
	if len(got) != 2 || got[0].Text != "well" || got[1].Text != "spoken" {
		t.Errorf("Words = %v", got)
	}
}

func TestWordsEmpty(t *testing.T) {
	if got := Words(""); len(got) != 0 {
		t.Errorf("Words(\"\") = %v", got)
	}
}

func TestWordsUnicodeOffsetsAreBytes(t *testing.T) {
	got := Words("héllo wörld")
	if len(got) != 2 {
		t.Fatalf("Words = %v", got)
	}
	// "héllo " is 7 bytes: h(1) é(2) l l o(3) space(1).
	if got[1].Offset != 7 {
		t.Errorf("second word offset = %d, want 7", got[1].Offset)
	}
}

func TestTerms(t *testing.T) {
	got := Terms("BERT and GPT-4 Transformers")
	want := []string{"bert", "and", "gpt-4", "transformers"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Terms = %v, want %v", got, want)
	}
}

func TestNormalizer(t *testing.T) {
	n := NewNormalizer([]string{"the", "and"})
	n.AddSynonym("gaming", "game")

	got := n.Normalize([]string{"the", "gaming", "industry", "and", "123", "x", "gpt-4"})
	want := []string{"game", "industry", "gpt-4"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Normalize = %v, want %v", got, want)
	}
}

func TestNormalizerStopwordMutation(t *testing.T) {
	n := NewNormalizer([]string{"the"})

	if got := n.Normalize([]string{"the", "cat"}); len(got) != 1 || got[0] != "cat" {
		t.Errorf("Normalize = %v", got)
	}

	n.RemoveStopword("the")
	if got := n.Normalize([]string{"the", "cat"}); len(got) != 2 {
		t.Errorf("after removal: %v", got)
	}

	n.AddStopword("the")
	if got := n.Normalize([]string{"the", "cat"}); len(got) != 1 {
		t.Errorf("after re-adding: %v", got)
	}
}

func TestSentences(t *testing.T) {
	got := Sentences("Test sentence for testing text. And another sentence for testing!")
	if len(got) != 2 {
		t.Fatalf("Sentences = %v", got)
	}
	if got[0].Text != "Test sentence for testing text." || got[0].Offset != 0 {
		t.Errorf("first = %+v", got[0])
	}
	if got[1].Text != "And another sentence for testing!" || got[1].Offset != 32 {
		t.Errorf("second = %+v", got[1])
	}
}

func TestSentencesSingleAndEmpty(t *testing.T) {
	if got := Sentences("No terminator here"); len(got) != 1 {
		t.Errorf("Sentences = %v", got)
	}
	if got := Sentences(""); len(got) != 0 {
		t.Errorf("Sentences(\"\") = %v", got)
	}
}

func TestSentencesAbbreviation(t *testing.T) {
	got := Sentences("Dr. Smith arrived today. He was late.")
	if len(got) != 2 {
		t.Fatalf("Sentences = %v", got)
	}
	if got[0].Text != "Dr. Smith arrived today." {
		t.Errorf("first = %q", got[0].Text)
	}
}

func TestSentencesEllipsis(t *testing.T) {
	got := Sentences("Wait for it... Here it comes!")
	if len(got) != 2 {
		t.Fatalf("Sentences = %v", got)
	}
	if got[0].Text != "Wait for it..." {
		t.Errorf("first = %q", got[0].Text)
	}
}

func TestSentencesNoSplitMidAbbreviationlessLowercase(t *testing.T) {
	// A period followed by a lowercase continuation is not a boundary.
	got := Sentences("The file is named main.go and it compiles.")
	if len(got) != 1 {
		t.Errorf("Sentences = %v", got)
	}
}
