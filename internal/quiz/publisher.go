package quiz

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vocaquiz/vocaquiz/internal/store"
)

// SearchMode selects the shape query helpers return. A closed enum: unknown
// modes are an error, never a silent default.
type SearchMode string

const (
	// SearchValue returns the raw stored records, unfiltered.
	SearchValue SearchMode = "value"
	// SearchAll returns decoded papers for submitted attempts.
	SearchAll SearchMode = "all"
	// SearchMeta returns scored summaries for submitted attempts.
	SearchMeta SearchMode = "meta"
)

// PaperMeta is the summary row for one stored attempt.
type PaperMeta struct {
	PaperID   string    `json:"paper_id"`
	TestID    string    `json:"test_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Score     float64   `json:"score"`
}

// SearchResult carries the per-mode payload; exactly one field is set.
type SearchResult struct {
	Records []store.Record `json:"records,omitempty"`
	Papers  []*Paper       `json:"papers,omitempty"`
	Meta    []PaperMeta    `json:"meta,omitempty"`
}

// Publisher turns factory runs into papers bound to a user and answers
// queries over previously stored attempts.
type Publisher struct {
	store store.Store
}

func NewPublisher(st store.Store) *Publisher { return &Publisher{store: st} }

// PublishPaper runs the generation pipeline and binds the result to the
// owner. A pipeline failure is fatal for the request; there is no fallback
// to an empty paper.
func (pb *Publisher) PublishPaper(f *Factory, owner UserRef) (*Paper, error) {
	exported, err := f.Run()
	if err != nil {
		return nil, fmt.Errorf("publish paper: %w", err)
	}
	return &Paper{
		ID:        uuid.New(),
		Owner:     owner,
		Status:    StatusDraft,
		AnswerMap: exported.AnswerMap,
		Problems:  exported.Problems,
	}, nil
}

// PapersByUser returns the user's stored attempts in the requested shape.
func (pb *Publisher) PapersByUser(ctx context.Context, userID uuid.UUID, mode SearchMode) (*SearchResult, error) {
	records, err := pb.store.Search(ctx, userID.String())
	if err != nil {
		return nil, err
	}

	switch mode {
	case SearchValue:
		return &SearchResult{Records: records}, nil

	case SearchAll:
		papers := make([]*Paper, 0, len(records))
		for _, rec := range records {
			paper, err := decodePaper(rec.Value)
			if err != nil {
				return nil, err
			}
			if !submitted(paper, rec) {
				continue
			}
			papers = append(papers, paper)
		}
		return &SearchResult{Papers: papers}, nil

	case SearchMeta:
		meta := make([]PaperMeta, 0, len(records))
		for _, rec := range records {
			paper, err := decodePaper(rec.Value)
			if err != nil {
				return nil, err
			}
			if !submitted(paper, rec) {
				continue
			}
			score, err := Score(paper)
			if err != nil {
				return nil, err
			}
			meta = append(meta, PaperMeta{
				PaperID:   paperIDFromNamespace(rec.Namespace),
				TestID:    rec.Key,
				CreatedAt: rec.CreatedAt,
				UpdatedAt: rec.UpdatedAt,
				Score:     score,
			})
		}
		return &SearchResult{Meta: meta}, nil

	default:
		return nil, fmt.Errorf("quiz: unknown search mode %q", mode)
	}
}

// PapersByPaper returns every stored attempt against one paper, regardless
// of owner or submission state.
func (pb *Publisher) PapersByPaper(ctx context.Context, paperID uuid.UUID) ([]*Paper, error) {
	records, err := pb.store.Search(ctx, paperID.String())
	if err != nil {
		return nil, err
	}
	papers := make([]*Paper, 0, len(records))
	for _, rec := range records {
		paper, err := decodePaper(rec.Value)
		if err != nil {
			return nil, err
		}
		papers = append(papers, paper)
	}
	return papers, nil
}

func decodePaper(blob json.RawMessage) (*Paper, error) {
	var paper Paper
	if err := json.Unmarshal(blob, &paper); err != nil {
		return nil, fmt.Errorf("decode stored paper: %w", err)
	}
	return &paper, nil
}

// submitted reports whether a stored attempt ever received a submission.
// Papers carry an explicit status; records stored before that field existed
// fall back to the timestamp heuristic (an attempt updated within one second
// of creation was never submitted).
func submitted(paper *Paper, rec store.Record) bool {
	switch paper.Status {
	case StatusSubmitted:
		return true
	case StatusDraft:
		return false
	}
	return rec.UpdatedAt.Sub(rec.CreatedAt) > time.Second
}

// paperIDFromNamespace pulls the paper id out of the owner.paper prefix.
func paperIDFromNamespace(namespace string) string {
	parts := strings.Split(namespace, ".")
	return parts[len(parts)-1]
}
