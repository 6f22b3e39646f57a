package feature

import (
	"strings"

	"github.com/yumiuse/lexilevel/internal/corpus"
	"github.com/yumiuse/lexilevel/internal/model/entity"
)

// Sentinel values for words absent from the corpus, matching what the
// classifier saw during training.
const (
	UnknownCGram = "unknown"
	NoGenre      = "none"
)

// Builder turns a raw query word into the feature record the classifier
// expects. Absence from the corpus is a normal case, never an error.
type Builder struct {
	index *corpus.Index
	// globalAvg is the skip-missing corpus-wide mean assigned to
	// unknown words.
	globalAvg float64
}

func NewBuilder(index *corpus.Index) *Builder {
	return &Builder{
		index:     index,
		globalAvg: corpus.GlobalMeanFrequency(index.Records()),
	}
}

// Build constructs the feature record for one word. The word is trimmed
// before lookup; the trimmed form is also what ends up in Lemma for
// unknown words.
func (b *Builder) Build(word string) entity.FeatureRecord {
	trimmed := strings.TrimSpace(word)

	rec, ok := b.index.Lookup(trimmed)
	if !ok {
		return entity.FeatureRecord{
			Lemma:   trimmed,
			CGram:   UnknownCGram,
			Genre:   NoGenre,
			AvgFreq: b.globalAvg,
		}
	}

	genre := rec.Genre
	if genre == "" {
		genre = NoGenre
	}
	return entity.FeatureRecord{
		Lemma:   rec.Lemma,
		CGram:   rec.CGram,
		Genre:   genre,
		AvgFreq: rec.MeanFrequency(),
	}
}

// Known reports whether the word resolves to a corpus entry. This is
// the single membership contract shared with the resolver.
func (b *Builder) Known(word string) bool {
	return b.index.Contains(strings.TrimSpace(word))
}

// GlobalAvg exposes the unknown-word fallback average.
func (b *Builder) GlobalAvg() float64 {
	return b.globalAvg
}
