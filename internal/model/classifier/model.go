package classifier

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/yumiuse/lexilevel/internal/model/entity"
)

// artifact is the on-disk JSON export of the trained pipeline: one bias
// and one weight vector entry per class, categorical weight tables for
// the three string features, and a standardized coefficient for the
// average frequency. Tokens unseen at training time carry zero weight.
type artifact struct {
	Version int                  `json:"version"`
	Classes int                  `json:"classes"`
	Bias    []float64            `json:"bias"`
	Weights map[string]weightMap `json:"weights"`
	Freq    freqTerm             `json:"freq"`
}

type weightMap map[string][]float64

type freqTerm struct {
	Mean float64   `json:"mean"`
	Std  float64   `json:"std"`
	Coef []float64 `json:"coef"`
}

// LinearModel scores feature records against the exported pipeline
// weights and returns the argmax class index.
type LinearModel struct {
	art artifact
}

// Load reads the classifier artifact. A missing or malformed file is a
// startup failure; no prediction may run without the model.
func Load(path string) (*LinearModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("classifier: read %s: %w", path, err)
	}

	var art artifact
	if err := json.Unmarshal(data, &art); err != nil {
		return nil, fmt.Errorf("classifier: decode %s: %w", path, err)
	}
	if err := validate(art); err != nil {
		return nil, fmt.Errorf("classifier: %s: %w", path, err)
	}

	return &LinearModel{art: art}, nil
}

func validate(art artifact) error {
	if art.Classes < 2 {
		return fmt.Errorf("artifact declares %d classes", art.Classes)
	}
	if len(art.Bias) != art.Classes {
		return fmt.Errorf("bias length %d != %d classes", len(art.Bias), art.Classes)
	}
	if len(art.Freq.Coef) != art.Classes {
		return fmt.Errorf("freq coef length %d != %d classes", len(art.Freq.Coef), art.Classes)
	}
	if art.Freq.Std == 0 {
		return fmt.Errorf("freq std is zero")
	}
	for feat, wm := range art.Weights {
		for tok, w := range wm {
			if len(w) != art.Classes {
				return fmt.Errorf("weights[%s][%s] length %d != %d classes", feat, tok, len(w), art.Classes)
			}
		}
	}
	return nil
}

// Predict scores every class and returns the winning label code. Ties
// break toward the lowest index so prediction stays deterministic.
func (m *LinearModel) Predict(f entity.FeatureRecord) (int, error) {
	scores := make([]float64, m.art.Classes)
	copy(scores, m.art.Bias)

	m.addCategorical(scores, "lemme", f.Lemma)
	m.addCategorical(scores, "cgram", f.CGram)
	m.addCategorical(scores, "genre", f.Genre)

	standardized := (f.AvgFreq - m.art.Freq.Mean) / m.art.Freq.Std
	for c := range scores {
		scores[c] += m.art.Freq.Coef[c] * standardized
	}

	best := 0
	for c := 1; c < len(scores); c++ {
		if scores[c] > scores[best] {
			best = c
		}
	}
	return best, nil
}

func (m *LinearModel) addCategorical(scores []float64, feat, token string) {
	wm, ok := m.art.Weights[feat]
	if !ok {
		return
	}
	w, ok := wm[token]
	if !ok {
		return
	}
	for c := range scores {
		scores[c] += w[c]
	}
}

// NumClasses returns the size of the model's output space.
func (m *LinearModel) NumClasses() int {
	return m.art.Classes
}
