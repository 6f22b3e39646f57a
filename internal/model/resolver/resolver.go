package resolver

import (
	"fmt"

	"github.com/yumiuse/lexilevel/internal/corpus"
	"github.com/yumiuse/lexilevel/internal/model/entity"
	"github.com/yumiuse/lexilevel/internal/model/feature"
)

// Fallback labels for words absent from the corpus. The numbering is
// frequency-based (1 = most frequent) and independent of the
// classifier's own label vocabulary.
const (
	fallbackCommon = "Level 1"
	fallbackMid    = "Level 2"
	fallbackRare   = "Level 3"
)

// Resolver routes each word to either the trained classifier (corpus
// members) or the frequency-quantile fallback (everything else).
type Resolver struct {
	builder    *feature.Builder
	clf        entity.Classifier
	enc        entity.LabelEncoder
	thresholds corpus.Thresholds
}

// New wires a resolver and verifies that the encoder can decode every
// code the classifier may emit. A mismatch means the two artifacts come
// from different training runs and is rejected before any word is
// processed.
func New(builder *feature.Builder, clf entity.Classifier, enc entity.LabelEncoder, thresholds corpus.Thresholds) (*Resolver, error) {
	if clf.NumClasses() != enc.NumClasses() {
		return nil, fmt.Errorf("resolver: classifier emits %d classes but encoder decodes %d",
			clf.NumClasses(), enc.NumClasses())
	}
	return &Resolver{
		builder:    builder,
		clf:        clf,
		enc:        enc,
		thresholds: thresholds,
	}, nil
}

// Resolve predicts one label per input word, preserving input order.
// Corpus membership and feature construction share a single trimmed
// lookup contract, so a word can never be "unknown" for routing yet
// "known" for its features.
func (r *Resolver) Resolve(words []string) ([]entity.Prediction, error) {
	results := make([]entity.Prediction, 0, len(words))

	for _, word := range words {
		feat := r.builder.Build(word)

		var label string
		if r.builder.Known(word) {
			code, err := r.clf.Predict(feat)
			if err != nil {
				return nil, fmt.Errorf("resolver: predict %q: %w", word, err)
			}
			name, err := r.enc.Decode(code)
			if err != nil {
				return nil, fmt.Errorf("resolver: decode %q: %w", word, err)
			}
			label = "Level " + name
		} else {
			label = r.fallbackLabel(feat.AvgFreq)
		}

		results = append(results, entity.Prediction{Word: word, Label: label})
	}

	return results, nil
}

// fallbackLabel buckets an average frequency against the batch
// thresholds. Boundaries are closed below: exactly Q2 is Level 1,
// exactly Q1 is Level 2.
func (r *Resolver) fallbackLabel(avgFreq float64) string {
	switch {
	case avgFreq >= r.thresholds.Q2:
		return fallbackCommon
	case avgFreq >= r.thresholds.Q1:
		return fallbackMid
	default:
		return fallbackRare
	}
}

// Thresholds returns the cutoffs this resolver applies to unknown
// words.
func (r *Resolver) Thresholds() corpus.Thresholds {
	return r.thresholds
}
