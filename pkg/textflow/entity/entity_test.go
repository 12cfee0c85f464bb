package entity

import "testing"

func TestExtractSimple(t *testing.T) {
	got := Extract("Sentence for testing Google text")
	if len(got) != 1 {
		t.Fatalf("Extract = %v", got)
	}
	if got[0].Text != "Google" || got[0].Label != LabelMisc {
		t.Errorf("entity = %+v", got[0])
	}
}

func TestExtractMultiWordSpan(t *testing.T) {
	got := Extract("They visited New York City last week")
	if len(got) != 1 || got[0].Text != "New York City" {
		t.Fatalf("Extract = %v", got)
	}
}

func TestExtractAcronymLabeledOrg(t *testing.T) {
	got := Extract("She works at NASA these days")
	if len(got) != 1 {
		t.Fatalf("Extract = %v", got)
	}
	if got[0].Label != LabelOrg {
		t.Errorf("label = %q, want %q", got[0].Label, LabelOrg)
	}
}

func TestExtractSkipsSentenceOpeners(t *testing.T) {
	got := Extract("Testing is fun. Nothing else matters here.")
	if len(got) != 0 {
		t.Errorf("Extract = %v, want none", got)
	}
}

func TestExtractSkipsPronounI(t *testing.T) {
	got := Extract("Yesterday I walked home")
	if len(got) != 0 {
		t.Errorf("Extract = %v, want none", got)
	}
}

func TestExtractDeduplicates(t *testing.T) {
	got := Extract("We asked Google twice and Google answered once")
	if len(got) != 1 {
		t.Errorf("Extract = %v, want one Google", got)
	}
}

func TestExtractEmpty(t *testing.T) {
	if got := Extract(""); len(got) != 0 {
		t.Errorf("Extract = %v", got)
	}
}
