package quiz_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vocaquiz/vocaquiz/internal/quiz"
	"github.com/vocaquiz/vocaquiz/internal/vocab"
)

// newProblem builds a three-option problem whose middle candidate is the
// answer. Entry i has name word-i and description meaning-i.
func newProblem(direction quiz.Direction) quiz.Problem {
	entries := testEntries(3)
	p := quiz.Problem{
		ID:         0,
		UID:        uuid.New(),
		Difficulty: quiz.Moderate,
		Direction:  direction,
	}
	for i, e := range entries {
		p.Candidates = append(p.Candidates, quiz.Candidate{
			LocalID:  i,
			UID:      uuid.New(),
			Entry:    e,
			IsAnswer: i == 1,
		})
	}
	return p
}

func TestProblemValidate(t *testing.T) {
	p := newProblem(quiz.TranslationToSource)
	require.NoError(t, p.Validate())

	dup := newProblem(quiz.TranslationToSource)
	dup.Candidates[2].LocalID = 0
	require.ErrorIs(t, dup.Validate(), quiz.ErrInvalidProblem)

	two := newProblem(quiz.TranslationToSource)
	two.Candidates[0].IsAnswer = true
	require.ErrorIs(t, two.Validate(), quiz.ErrInvalidProblem)

	none := newProblem(quiz.TranslationToSource)
	none.Candidates[1].IsAnswer = false
	require.ErrorIs(t, none.Validate(), quiz.ErrInvalidProblem)

	gap := newProblem(quiz.TranslationToSource)
	gap.Candidates[2].LocalID = 5
	require.ErrorIs(t, gap.Validate(), quiz.ErrInvalidProblem)

	empty := quiz.Problem{ID: 3}
	require.ErrorIs(t, empty.Validate(), quiz.ErrInvalidProblem)
}

func TestProblemViewsTranslationToSource(t *testing.T) {
	p := newProblem(quiz.TranslationToSource)

	q, err := p.Question()
	require.NoError(t, err)
	assert.Equal(t, "meaning-1", q)

	a, err := p.Answer()
	require.NoError(t, err)
	assert.Equal(t, "word-1", a)

	assert.Equal(t, []string{"word-0", "word-2"}, p.Wrong())
}

func TestProblemViewsSourceToTranslation(t *testing.T) {
	p := newProblem(quiz.SourceToTranslation)

	q, err := p.Question()
	require.NoError(t, err)
	assert.Equal(t, "word-1", q)

	a, err := p.Answer()
	require.NoError(t, err)
	assert.Equal(t, "meaning-1", a)

	assert.Equal(t, []string{"meaning-0", "meaning-2"}, p.Wrong())
}

func TestProblemNoAnswer(t *testing.T) {
	p := newProblem(quiz.TranslationToSource)
	p.Candidates[1].IsAnswer = false

	_, err := p.AnswerCandidate()
	require.ErrorIs(t, err, quiz.ErrNoAnswer)
	_, err = p.Question()
	require.ErrorIs(t, err, quiz.ErrNoAnswer)
	_, err = p.Corrected()
	require.ErrorIs(t, err, quiz.ErrNoAnswer)
}

func TestSetCheckedOverwrites(t *testing.T) {
	p := newProblem(quiz.TranslationToSource)

	p.SetChecked(p.Candidates[0].UID)
	assert.True(t, p.Candidates[0].IsChecked)
	assert.False(t, p.Candidates[1].IsChecked)
	assert.False(t, p.Candidates[2].IsChecked)

	corrected, err := p.Corrected()
	require.NoError(t, err)
	assert.False(t, corrected)

	// A later selection replaces the earlier one.
	p.SetChecked(p.Candidates[1].UID)
	assert.False(t, p.Candidates[0].IsChecked)
	assert.True(t, p.Candidates[1].IsChecked)

	corrected, err = p.Corrected()
	require.NoError(t, err)
	assert.True(t, corrected)

	// An unknown UID clears the selection.
	p.SetChecked(uuid.New())
	for _, c := range p.Candidates {
		assert.False(t, c.IsChecked)
	}
}

func TestPartOfSpeechDoesNotAffectViews(t *testing.T) {
	p := newProblem(quiz.TranslationToSource)
	p.Candidates[1].Entry.Tag = vocab.Verb
	q, err := p.Question()
	require.NoError(t, err)
	assert.Equal(t, "meaning-1", q)
}
