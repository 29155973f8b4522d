package quiz

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
)

// UserRef is the opaque identity a paper is bound to.
type UserRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Status records whether a paper has received a submission.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusSubmitted Status = "submitted"
)

// Paper is the canonical, answer-bearing quiz record. It is server-private:
// every candidate carries the real vocabulary entry and the true answer
// flag, and it is never sent to a student verbatim.
type Paper struct {
	ID        uuid.UUID         `json:"id"`
	Owner     UserRef           `json:"owner"`
	Status    Status            `json:"status"`
	AnswerMap IdentityAnswerMap `json:"answer_map"`
	Problems  []Problem         `json:"problems"`
}

// Prompt is the question side of a QA.
type Prompt struct {
	UID     uuid.UUID `json:"uid"`
	Content string    `json:"content"`
}

// Choice is one selectable answer in a QA. Only IsChecked is writable by the
// student; correctness never appears in this representation.
type Choice struct {
	UID       uuid.UUID `json:"uid"`
	Content   string    `json:"content"`
	IsChecked bool      `json:"is_checked"`
}

// QA pairs one rendered question with its shuffled answer options.
type QA struct {
	Question Prompt   `json:"question"`
	Answers  []Choice `json:"answers"`
}

// TestPaper is the redacted, student-facing rendering of a paper for one
// attempt. It is derived and regenerable; TestID distinguishes independent
// attempts against the same paper.
type TestPaper struct {
	PaperID uuid.UUID `json:"paper_id"`
	TestID  uuid.UUID `json:"test_id"`
	Owner   UserRef   `json:"owner"`
	QASet   []QA      `json:"qa_set"`
}

// TestView renders the paper for one fresh attempt. Each problem becomes one
// QA whose answer options carry candidate UIDs only and are shuffled, so
// position never implies correctness. The transform is lossy: without the
// paper's answer map a selection cannot be graded.
func (p *Paper) TestView() (*TestPaper, error) {
	qaSet := make([]QA, 0, len(p.Problems))
	for i := range p.Problems {
		pr := &p.Problems[i]
		ans, err := pr.AnswerCandidate()
		if err != nil {
			return nil, err
		}
		choices := make([]Choice, 0, len(pr.Candidates))
		choices = append(choices, Choice{UID: ans.UID, Content: ans.response(pr.Direction)})
		for _, wc := range pr.WrongCandidates() {
			choices = append(choices, Choice{UID: wc.UID, Content: wc.response(pr.Direction)})
		}
		rand.Shuffle(len(choices), func(i, j int) { choices[i], choices[j] = choices[j], choices[i] })

		qaSet = append(qaSet, QA{
			Question: Prompt{UID: pr.UID, Content: ans.prompt(pr.Direction)},
			Answers:  choices,
		})
	}
	return &TestPaper{
		PaperID: p.ID,
		TestID:  uuid.New(),
		Owner:   p.Owner,
		QASet:   qaSet,
	}, nil
}

// ApplyTo merges the student's selections back into the canonical paper and
// marks it submitted. A question with no checked answer contributes nothing.
// A question with more than one checked answer fails the whole merge with
// ErrAmbiguousSelection before anything is mutated. Problems absent from the
// submission keep their flags; matched problems get their sibling flags
// cleared, so a resubmission overwrites a prior selection. The canonical
// paper stays the source of truth; the student's rendering only steers this
// mutation.
func (tp *TestPaper) ApplyTo(paper *Paper) (*Paper, error) {
	selected := make(map[uuid.UUID]uuid.UUID, len(tp.QASet))
	for _, qa := range tp.QASet {
		found := false
		for _, c := range qa.Answers {
			if !c.IsChecked {
				continue
			}
			if found {
				return nil, fmt.Errorf("%w: question %s", ErrAmbiguousSelection, qa.Question.UID)
			}
			found = true
			selected[qa.Question.UID] = c.UID
		}
	}

	for i := range paper.Problems {
		if uid, ok := selected[paper.Problems[i].UID]; ok {
			paper.Problems[i].SetChecked(uid)
		}
	}
	paper.Status = StatusSubmitted
	return paper, nil
}
