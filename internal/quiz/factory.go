package quiz

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/vocaquiz/vocaquiz/internal/vocab"
)

const (
	DefaultCandidateLimit = 4
	DefaultProblemsCount  = 20
)

// IndexAnswerMap keys the correct candidate by position (problem index →
// candidate local id). It only exists during generation, before durable
// identities mean anything.
type IndexAnswerMap map[int]int

// IdentityAnswerMap keys the correct candidate by durable identity (problem
// UID → candidate UID). This is the form persisted with a paper.
type IdentityAnswerMap map[uuid.UUID]uuid.UUID

// Exportation is the transient carrier a pipeline run hands to the
// publisher; it is never persisted as-is.
type Exportation struct {
	ID        uuid.UUID         `json:"id"`
	AnswerMap IdentityAnswerMap `json:"answer_map"`
	Problems  []Problem         `json:"problems"`
}

// Factory assembles one paper's worth of validated multiple-choice problems
// from a vocabulary pool. Every dependency is passed in explicitly; there is
// no shared default instance.
type Factory struct {
	pool           []vocab.Entry
	candidateLimit int
	problemsCount  int
	direction      Direction
	rng            *rand.Rand
	answerKey      IndexAnswerMap
}

type Option func(*Factory)

// WithCandidateLimit sets the number of options per problem.
func WithCandidateLimit(n int) Option { return func(f *Factory) { f.candidateLimit = n } }

// WithProblemsCount sets the number of problems per paper.
func WithProblemsCount(n int) Option { return func(f *Factory) { f.problemsCount = n } }

// WithDirection sets the prompt direction for generated problems.
func WithDirection(d Direction) Option { return func(f *Factory) { f.direction = d } }

// WithRand injects the RNG, for deterministic tests.
func WithRand(r *rand.Rand) Option { return func(f *Factory) { f.rng = r } }

// NewFactory validates the pool against the requested paper size and
// precomputes the index-keyed answer map, one uniformly random local id per
// problem. Fails with ErrInsufficientPool when the pool cannot cover
// problemsCount*candidateLimit draws.
func NewFactory(pool []vocab.Entry, opts ...Option) (*Factory, error) {
	f := &Factory{
		pool:           pool,
		candidateLimit: DefaultCandidateLimit,
		problemsCount:  DefaultProblemsCount,
		direction:      TranslationToSource,
	}
	for _, o := range opts {
		o(f)
	}
	if f.candidateLimit < 2 {
		return nil, fmt.Errorf("quiz: candidate limit %d is below 2", f.candidateLimit)
	}
	if f.problemsCount < 1 {
		return nil, fmt.Errorf("quiz: problems count %d is below 1", f.problemsCount)
	}
	if f.rng == nil {
		f.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	need := f.problemsCount * f.candidateLimit
	if len(pool) < need {
		return nil, fmt.Errorf("%w: have %d entries, need %d", ErrInsufficientPool, len(pool), need)
	}
	f.answerKey = make(IndexAnswerMap, f.problemsCount)
	for i := 0; i < f.problemsCount; i++ {
		f.answerKey[i] = f.rng.Intn(f.candidateLimit)
	}
	return f, nil
}

// Run is the pipeline entry point: create → inject answers → prepare →
// export. Either every problem comes out validated or the run fails whole;
// a partially valid paper is never returned.
func (f *Factory) Run() (*Exportation, error) {
	problems := f.create()
	f.injectAnswers(problems)
	answerMap, err := f.prepare(problems)
	if err != nil {
		return nil, err
	}
	return &Exportation{ID: uuid.New(), AnswerMap: answerMap, Problems: problems}, nil
}

// create samples problemsCount*candidateLimit entries with replacement,
// shuffles the draw and partitions it sequentially. Local ids are contiguous
// and unique per problem by construction.
func (f *Factory) create() []Problem {
	need := f.problemsCount * f.candidateLimit
	drawn := make([]vocab.Entry, 0, need)
	for i := 0; i < need; i++ {
		drawn = append(drawn, f.pool[f.rng.Intn(len(f.pool))])
	}
	f.rng.Shuffle(len(drawn), func(i, j int) { drawn[i], drawn[j] = drawn[j], drawn[i] })

	problems := make([]Problem, 0, f.problemsCount)
	for pi := 0; pi < f.problemsCount; pi++ {
		candidates := make([]Candidate, 0, f.candidateLimit)
		for ci := 0; ci < f.candidateLimit; ci++ {
			candidates = append(candidates, Candidate{
				LocalID: ci,
				UID:     uuid.New(),
				Entry:   drawn[pi*f.candidateLimit+ci],
			})
		}
		problems = append(problems, Problem{
			ID:         pi,
			UID:        uuid.New(),
			Difficulty: Moderate,
			Direction:  f.direction,
			Candidates: candidates,
		})
	}
	return problems
}

// injectAnswers marks the precomputed candidate of each problem. Exactly one
// answer per problem by construction; never re-derived later.
func (f *Factory) injectAnswers(problems []Problem) {
	for i := range problems {
		problems[i].Candidates[f.answerKey[i]].IsAnswer = true
	}
}

// prepare re-keys the answer map onto durable identities and validates every
// problem. Any violation aborts the run.
func (f *Factory) prepare(problems []Problem) (IdentityAnswerMap, error) {
	answerMap := make(IdentityAnswerMap, len(problems))
	for i := range problems {
		if err := problems[i].Validate(); err != nil {
			return nil, err
		}
		ans, err := problems[i].AnswerCandidate()
		if err != nil {
			return nil, err
		}
		answerMap[problems[i].UID] = ans.UID
	}
	return answerMap, nil
}
