package quiz

// Score grades a canonical paper. Each problem weighs 1/2/3 for
// easy/moderate/hard (unknown difficulties weigh like moderate), weights are
// normalized to sum to 100, and the score is the sum of normalized weights
// over corrected problems. The result lands in [0, 100] regardless of
// problem count, tilted toward harder problems.
//
// A paper with zero problems scores 0 with no error. A problem lacking an
// answer candidate is a data-integrity fault and fails the call.
func Score(paper *Paper) (float64, error) {
	type graded struct {
		weight    int
		corrected bool
	}

	total := 0
	rows := make([]graded, 0, len(paper.Problems))
	for i := range paper.Problems {
		corrected, err := paper.Problems[i].Corrected()
		if err != nil {
			return 0, err
		}
		w := paper.Problems[i].Difficulty.Weight()
		total += w
		rows = append(rows, graded{weight: w, corrected: corrected})
	}
	if total == 0 {
		return 0, nil
	}

	score := 0.0
	for _, row := range rows {
		if row.corrected {
			score += float64(row.weight) / float64(total) * 100
		}
	}
	return score, nil
}
