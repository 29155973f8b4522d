package vocab

import (
	"strings"
	"testing"
)

func TestParsePartOfSpeech(t *testing.T) {
	cases := map[string]PartOfSpeech{
		"noun":    Noun,
		"n.":      Noun,
		"V.":      Verb,
		"adj.":    Adjective,
		"adv":     Adverb,
		"prep.":   Preposition,
		"conj.":   Conjunction,
		"interj.": Interjection,
		"pron.":   Pronoun,
		"":        Undecided,
		"???":     Undecided,
	}
	for in, want := range cases {
		if got := ParsePartOfSpeech(in); got != want {
			t.Errorf("ParsePartOfSpeech(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseCSV(t *testing.T) {
	src := strings.Join([]string{
		"id,name,tag,description",
		"1,apple,n.,사과",
		"2,run,v.,달리다",
		"3,,adj.,ignored blank name",
		"4,bright,adj.,밝은",
	}, "\n")

	entries, err := ParseCSV(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Name != "apple" || entries[0].Tag != Noun || entries[0].Description != "사과" {
		t.Fatalf("bad first entry: %+v", entries[0])
	}
	if entries[1].Tag != Verb || entries[2].Tag != Adjective {
		t.Fatalf("tags not parsed: %+v %+v", entries[1], entries[2])
	}
	if entries[2].ID != 4 {
		t.Fatalf("blank-name row not skipped: %+v", entries[2])
	}
}

func TestParseCSVMissingColumn(t *testing.T) {
	_, err := ParseCSV(strings.NewReader("id,name,tag\n1,apple,n."))
	if err == nil || !strings.Contains(err.Error(), "description") {
		t.Fatalf("expected missing-column error, got %v", err)
	}
}

func TestParseCSVBadID(t *testing.T) {
	_, err := ParseCSV(strings.NewReader("id,name,tag,description\nx,apple,n.,사과"))
	if err == nil || !strings.Contains(err.Error(), "bad id") {
		t.Fatalf("expected bad-id error, got %v", err)
	}
}
