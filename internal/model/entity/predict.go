package entity

// FeatureRecord is the normalized attribute set the classifier was
// trained on. CGram is "unknown" and Genre "none" for words absent from
// the corpus.
type FeatureRecord struct {
	Lemma   string
	CGram   string
	Genre   string
	AvgFreq float64
}

// Prediction pairs an input word with its resolved difficulty label.
// Label carries the "Level " prefix, e.g. "Level A2".
type Prediction struct {
	Word  string
	Label string
}

// Classifier maps a feature record to a numeric label code. The trained
// artifact behind it is opaque to the rest of the program.
type Classifier interface {
	Predict(f FeatureRecord) (int, error)
	NumClasses() int
}

// LabelEncoder maps numeric label codes back to level names.
type LabelEncoder interface {
	Decode(code int) (string, error)
	NumClasses() int
}
