package quiz

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/vocaquiz/vocaquiz/internal/vocab"
)

// Difficulty weights a problem for scoring.
type Difficulty string

const (
	Easy     Difficulty = "easy"
	Moderate Difficulty = "moderate"
	Hard     Difficulty = "hard"
)

// Weight returns the scoring weight. Unknown values weigh like Moderate.
func (d Difficulty) Weight() int {
	switch d {
	case Easy:
		return 1
	case Hard:
		return 3
	default:
		return 2
	}
}

// Direction decides which side of an entry is the prompt and which is the
// expected response, so one stored problem serves both "translate this word"
// and "which word means this" modes.
type Direction string

const (
	// SourceToTranslation prompts with the word, options are translations.
	SourceToTranslation Direction = "source_to_translation"
	// TranslationToSource prompts with the translation, options are words.
	TranslationToSource Direction = "translation_to_source"
)

// Candidate is one selectable option inside a problem. LocalID is unique and
// contiguous within its problem only; UID is the durable identity used on
// the wire. IsAnswer is assigned exactly once at generation time. IsChecked
// records the student's selection and is the only field the submit-merge
// step mutates.
type Candidate struct {
	LocalID   int         `json:"id"`
	UID       uuid.UUID   `json:"uid"`
	Entry     vocab.Entry `json:"entry"`
	IsAnswer  bool        `json:"is_answer"`
	IsChecked bool        `json:"is_checked"`
}

func (c Candidate) prompt(d Direction) string {
	if d == SourceToTranslation {
		return c.Entry.Name
	}
	return c.Entry.Description
}

func (c Candidate) response(d Direction) string {
	if d == SourceToTranslation {
		return c.Entry.Description
	}
	return c.Entry.Name
}

// Problem is one multiple-choice question.
type Problem struct {
	ID         int         `json:"id"`
	UID        uuid.UUID   `json:"uid"`
	Difficulty Difficulty  `json:"difficulty"`
	Direction  Direction   `json:"direction"`
	Candidates []Candidate `json:"candidates"`
}

// Validate enforces the structural invariants: no duplicate local ids, local
// ids contiguous from min to max, exactly one answer candidate.
func (p *Problem) Validate() error {
	if len(p.Candidates) == 0 {
		return fmt.Errorf("%w: problem %d has no candidates", ErrInvalidProblem, p.ID)
	}
	seen := make(map[int]bool, len(p.Candidates))
	minID, maxID := p.Candidates[0].LocalID, p.Candidates[0].LocalID
	answers := 0
	for _, c := range p.Candidates {
		if seen[c.LocalID] {
			return fmt.Errorf("%w: problem %d has duplicate candidate id %d", ErrInvalidProblem, p.ID, c.LocalID)
		}
		seen[c.LocalID] = true
		if c.LocalID < minID {
			minID = c.LocalID
		}
		if c.LocalID > maxID {
			maxID = c.LocalID
		}
		if c.IsAnswer {
			answers++
		}
	}
	if answers != 1 {
		return fmt.Errorf("%w: problem %d has %d answer candidates", ErrInvalidProblem, p.ID, answers)
	}
	if maxID-minID+1 != len(p.Candidates) {
		return fmt.Errorf("%w: problem %d candidate ids are not contiguous", ErrInvalidProblem, p.ID)
	}
	return nil
}

// AnswerCandidate returns the single correct candidate, or ErrNoAnswer on a
// corrupted problem.
func (p *Problem) AnswerCandidate() (*Candidate, error) {
	for i := range p.Candidates {
		if p.Candidates[i].IsAnswer {
			return &p.Candidates[i], nil
		}
	}
	return nil, fmt.Errorf("%w: problem %d", ErrNoAnswer, p.ID)
}

// WrongCandidates returns every non-answer candidate in stored order.
func (p *Problem) WrongCandidates() []*Candidate {
	var wrong []*Candidate
	for i := range p.Candidates {
		if !p.Candidates[i].IsAnswer {
			wrong = append(wrong, &p.Candidates[i])
		}
	}
	return wrong
}

// Question is the prompt text rendered to the student.
func (p *Problem) Question() (string, error) {
	ans, err := p.AnswerCandidate()
	if err != nil {
		return "", err
	}
	return ans.prompt(p.Direction), nil
}

// Answer is the correct option text.
func (p *Problem) Answer() (string, error) {
	ans, err := p.AnswerCandidate()
	if err != nil {
		return "", err
	}
	return ans.response(p.Direction), nil
}

// Wrong lists the option texts for every non-answer candidate.
func (p *Problem) Wrong() []string {
	wrong := p.WrongCandidates()
	out := make([]string, 0, len(wrong))
	for _, c := range wrong {
		out = append(out, c.response(p.Direction))
	}
	return out
}

// Corrected reports whether the student selected the actual answer. Read off
// the answer candidate specifically, never off whichever candidate happens
// to be checked.
func (p *Problem) Corrected() (bool, error) {
	ans, err := p.AnswerCandidate()
	if err != nil {
		return false, err
	}
	return ans.IsChecked, nil
}

// SetChecked marks the candidate with the given UID as the selection and
// clears every sibling, so a resubmission overwrites cleanly. A UID matching
// no candidate leaves the problem with no selection.
func (p *Problem) SetChecked(uid uuid.UUID) {
	for i := range p.Candidates {
		p.Candidates[i].IsChecked = p.Candidates[i].UID == uid
	}
}
