package encoder

import (
	"encoding/json"
	"fmt"
	"os"
)

// Encoder maps the classifier's numeric label codes back to the level
// names seen at training time. The artifact is an ordered class list:
// code i decodes to Classes[i].
type Encoder struct {
	classes []string
}

type artifact struct {
	Classes []string `json:"classes"`
}

// Load reads the label encoder artifact. Missing or empty artifacts are
// startup failures.
func Load(path string) (*Encoder, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("encoder: read %s: %w", path, err)
	}

	var art artifact
	if err := json.Unmarshal(data, &art); err != nil {
		return nil, fmt.Errorf("encoder: decode %s: %w", path, err)
	}
	if len(art.Classes) == 0 {
		return nil, fmt.Errorf("encoder: %s declares no classes", path)
	}

	return &Encoder{classes: art.Classes}, nil
}

// Decode maps a label code to its level name.
func (e *Encoder) Decode(code int) (string, error) {
	if code < 0 || code >= len(e.classes) {
		return "", fmt.Errorf("encoder: code %d outside class range [0,%d)", code, len(e.classes))
	}
	return e.classes[code], nil
}

// NumClasses returns the size of the encoder's code space.
func (e *Encoder) NumClasses() int {
	return len(e.classes)
}
