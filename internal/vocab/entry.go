package vocab

import "strings"

// PartOfSpeech tags a vocabulary entry with its grammatical role.
type PartOfSpeech string

const (
	Noun         PartOfSpeech = "noun"
	Pronoun      PartOfSpeech = "pronoun"
	Verb         PartOfSpeech = "verb"
	Adjective    PartOfSpeech = "adjective"
	Adverb       PartOfSpeech = "adverb"
	Preposition  PartOfSpeech = "preposition"
	Conjunction  PartOfSpeech = "conjunction"
	Interjection PartOfSpeech = "interjection"
	Undecided    PartOfSpeech = "undecided"
)

// ParsePartOfSpeech maps a tag string to a PartOfSpeech. It accepts both the
// canonical names and the dictionary abbreviations used in bank files
// ("n.", "v.", "adj.", ...). Anything unrecognized becomes Undecided.
func ParsePartOfSpeech(s string) PartOfSpeech {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "noun", "n.", "n":
		return Noun
	case "pronoun", "pron.", "pron":
		return Pronoun
	case "verb", "v.", "v":
		return Verb
	case "adjective", "adj.", "adj", "a.":
		return Adjective
	case "adverb", "adv.", "adv":
		return Adverb
	case "preposition", "prep.", "prep":
		return Preposition
	case "conjunction", "conj.", "conj":
		return Conjunction
	case "interjection", "interj.", "interj", "int.":
		return Interjection
	default:
		return Undecided
	}
}

// Entry is one vocabulary item: a word and its translation. Entries are
// reference data, imported once and read-only afterwards.
type Entry struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Tag         PartOfSpeech `json:"tag"`
	Description string       `json:"description"`
}
