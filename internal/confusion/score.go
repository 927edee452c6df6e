package confusion

// Comprehensive confusion scores fuse a metrics record into one scalar in
// [0,1], higher meaning more language-mismatch. Three alternative fusion
// policies are provided; all are pure functions of an already-computed
// Metrics and mutate nothing.

// Fixed fusion weights per component, in confusion direction.
const (
	weightLineAccuracy       = 0.4
	weightLanguageConfidence = 0.3
	weightLinePassRate       = 0.2
	weightWordPassRate       = 0.1
)

// componentScores converts m into its confusion-direction components:
// 1-line_accuracy, 1-language_confidence, 1-line_pass_rate and, when
// evaluated, 1-word_pass_rate.
func componentScores(m *Metrics) []float64 {
	scores := []float64{
		1 - m.LineAccuracy,
		1 - m.LanguageConfidence,
		1 - m.LinePassRate,
	}
	if m.WordPassRate != nil {
		scores = append(scores, 1-*m.WordPassRate)
	}
	return scores
}

// WeightedScore fuses the components with fixed weights. When the word
// pass rate was not evaluated, its weight is redistributed 60/40 onto the
// line-accuracy and language-confidence components. The split is an
// embedded compatibility constant, not a derived quantity.
func WeightedScore(m *Metrics) float64 {
	wAcc := weightLineAccuracy
	wConf := weightLanguageConfidence
	wWord := weightWordPassRate

	wordComponent := 0.0
	if m.WordPassRate != nil {
		wordComponent = 1 - *m.WordPassRate
	} else {
		wAcc += weightWordPassRate * 0.6
		wConf += weightWordPassRate * 0.4
		wWord = 0
	}

	return wAcc*(1-m.LineAccuracy) +
		wConf*(1-m.LanguageConfidence) +
		weightLinePassRate*(1-m.LinePassRate) +
		wWord*wordComponent
}

// SimpleScore is the arithmetic mean of the applicable components.
func SimpleScore(m *Metrics) float64 {
	scores := componentScores(m)
	sum := 0.0
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores))
}

// MaxScore is the single worst applicable component.
func MaxScore(m *Metrics) float64 {
	worst := 0.0
	for _, s := range componentScores(m) {
		if s > worst {
			worst = s
		}
	}
	return worst
}
