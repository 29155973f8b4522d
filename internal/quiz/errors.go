package quiz

import "errors"

var (
	// ErrInsufficientPool means the vocabulary pool cannot cover one paper
	// without pathological repetition. Not retryable with the same inputs.
	ErrInsufficientPool = errors.New("quiz: vocabulary pool too small for requested paper")

	// ErrInvalidProblem means a generated problem broke a structural
	// invariant. The whole pipeline run is aborted; no partial paper exists.
	ErrInvalidProblem = errors.New("quiz: problem failed validation")

	// ErrNoAnswer means a problem carries no answer candidate. Generation
	// never produces this; seeing it on a stored paper is a data-integrity
	// fault.
	ErrNoAnswer = errors.New("quiz: problem has no answer candidate")

	// ErrAmbiguousSelection means a submitted question had more than one
	// checked answer. The submission is rejected without mutating anything.
	ErrAmbiguousSelection = errors.New("quiz: more than one checked answer in a question")
)
