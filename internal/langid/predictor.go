// Package langid wraps the statistical language-identification model behind
// a small predictor interface so the scoring engine never touches the model
// library directly.
package langid

import (
	"strings"
	"sync"

	"github.com/pemistahl/lingua-go"
)

// Predictor is the statistical language-identification boundary. Predict
// returns a lowercase ISO-639-1 label and a confidence in [0,1]. The error
// return exists for implementations backed by external model assets; the
// caller treats any error as an unknown-language result.
type Predictor interface {
	Predict(text string) (label string, confidence float64, err error)
}

// The registry languages, in lingua terms.
var modelLanguages = []lingua.Language{
	lingua.Korean,
	lingua.English,
	lingua.Chinese,
	lingua.Japanese,
	lingua.Spanish,
	lingua.French,
	lingua.German,
	lingua.Italian,
	lingua.Portuguese,
}

type linguaPredictor struct {
	detector lingua.LanguageDetector
}

// The detector is expensive to build, so the process shares one instance.
var (
	buildOnce sync.Once
	shared    *linguaPredictor
)

// Default returns the process-wide lingua-backed predictor, building it on
// first use. Safe for concurrent first access.
func Default() Predictor {
	buildOnce.Do(func() {
		detector := lingua.NewLanguageDetectorBuilder().
			FromLanguages(modelLanguages...).
			Build()
		shared = &linguaPredictor{detector: detector}
	})
	return shared
}

func (p *linguaPredictor) Predict(text string) (string, float64, error) {
	values := p.detector.ComputeLanguageConfidenceValues(text)
	if len(values) == 0 {
		return "unknown", 0, nil
	}
	top := values[0]
	code := strings.ToLower(top.Language().IsoCode639_1().String())
	return code, top.Value(), nil
}
