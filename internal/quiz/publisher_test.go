package quiz_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vocaquiz/vocaquiz/internal/quiz"
	"github.com/vocaquiz/vocaquiz/internal/store"
)

func putPaper(t *testing.T, st store.Store, paper *quiz.Paper, testID uuid.UUID) {
	t.Helper()
	blob, err := json.Marshal(paper)
	require.NoError(t, err)
	ns := store.Namespace(paper.Owner.ID.String(), paper.ID.String())
	require.NoError(t, st.Put(context.Background(), ns, testID.String(), blob))
}

func TestPapersByUserModes(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemStore()
	pub := quiz.NewPublisher(mem)

	draft := newPaper(t, 3)
	putPaper(t, mem, draft, uuid.New())

	done := newPaper(t, 3)
	done.Owner = draft.Owner
	view, err := done.TestView()
	require.NoError(t, err)
	checkChoice(t, &view.QASet[0], done.AnswerMap[done.Problems[0].UID])
	_, err = view.ApplyTo(done)
	require.NoError(t, err)
	putPaper(t, mem, done, view.TestID)

	// Value: raw records, drafts included.
	res, err := pub.PapersByUser(ctx, draft.Owner.ID, quiz.SearchValue)
	require.NoError(t, err)
	assert.Len(t, res.Records, 2)

	// All: only submitted attempts, decoded.
	res, err = pub.PapersByUser(ctx, draft.Owner.ID, quiz.SearchAll)
	require.NoError(t, err)
	require.Len(t, res.Papers, 1)
	assert.Equal(t, done.ID, res.Papers[0].ID)
	assert.Equal(t, quiz.StatusSubmitted, res.Papers[0].Status)

	// Meta: scored summaries for submitted attempts.
	res, err = pub.PapersByUser(ctx, draft.Owner.ID, quiz.SearchMeta)
	require.NoError(t, err)
	require.Len(t, res.Meta, 1)
	assert.Equal(t, done.ID.String(), res.Meta[0].PaperID)
	assert.Equal(t, view.TestID.String(), res.Meta[0].TestID)
	// 3 moderate problems, one corrected: 2/6*100.
	assert.InDelta(t, 100.0/3, res.Meta[0].Score, 1e-9)

	_, err = pub.PapersByUser(ctx, draft.Owner.ID, quiz.SearchMode("bogus"))
	require.Error(t, err)
}

func TestPapersByUserLegacyHeuristic(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemStore()
	pub := quiz.NewPublisher(mem)

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	mem.SetClock(func() time.Time { return base })

	// Records written before the status field existed.
	stale := newPaper(t, 2)
	stale.Status = ""
	putPaper(t, mem, stale, uuid.New())

	old := newPaper(t, 2)
	old.Status = ""
	old.Owner = stale.Owner
	oldTest := uuid.New()
	putPaper(t, mem, old, oldTest)

	// Re-put the second record well after creation: counts as submitted.
	mem.SetClock(func() time.Time { return base.Add(5 * time.Second) })
	putPaper(t, mem, old, oldTest)

	res, err := pub.PapersByUser(ctx, stale.Owner.ID, quiz.SearchMeta)
	require.NoError(t, err)
	require.Len(t, res.Meta, 1)
	assert.Equal(t, old.ID.String(), res.Meta[0].PaperID)

	// The raw view still surfaces both.
	res, err = pub.PapersByUser(ctx, stale.Owner.ID, quiz.SearchValue)
	require.NoError(t, err)
	assert.Len(t, res.Records, 2)
}

func TestPapersByPaper(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemStore()
	pub := quiz.NewPublisher(mem)

	paper := newPaper(t, 2)
	putPaper(t, mem, paper, uuid.New())
	putPaper(t, mem, paper, uuid.New())

	other := newPaper(t, 2)
	putPaper(t, mem, other, uuid.New())

	papers, err := pub.PapersByPaper(ctx, paper.ID)
	require.NoError(t, err)
	require.Len(t, papers, 2)
	for _, p := range papers {
		assert.Equal(t, paper.ID, p.ID)
	}
}
