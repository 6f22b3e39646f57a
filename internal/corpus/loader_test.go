package corpus_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yumiuse/lexilevel/internal/corpus"
)

func writeCorpusFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lexique.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write corpus file: %v", err)
	}
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeCorpusFile(t, `lemme,cgram,genre,freqlemfilms2,freqlemlivres
chat,NOM,m,120,80
aller,VER,,543.21,601.5
fluctuer,VER,,0.12,
`)

	records, err := corpus.LoadCSV(path)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "chat", records[0].Lemma)
	assert.Equal(t, "NOM", records[0].CGram)
	assert.Equal(t, "m", records[0].Genre)
	assert.Equal(t, 120.0, records[0].FreqFilms)
	assert.Equal(t, 80.0, records[0].FreqBooks)

	assert.Equal(t, "", records[1].Genre)

	// empty frequency cell loads as NaN, not zero
	assert.Equal(t, 0.12, records[2].FreqFilms)
	assert.True(t, math.IsNaN(records[2].FreqBooks))
}

func TestLoadCSV_MissingFile(t *testing.T) {
	_, err := corpus.LoadCSV(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestLoadCSV_MissingRequiredColumn(t *testing.T) {
	path := writeCorpusFile(t, `lemme,cgram,genre,freqlemfilms2
chat,NOM,m,120
`)

	_, err := corpus.LoadCSV(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "freqlemlivres")
}

func TestLoadCSV_NoDataRows(t *testing.T) {
	path := writeCorpusFile(t, "lemme,cgram,genre,freqlemfilms2,freqlemlivres\n")

	_, err := corpus.LoadCSV(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no data rows")
}

func TestLoadCSV_UnparseableFrequency(t *testing.T) {
	path := writeCorpusFile(t, `lemme,cgram,genre,freqlemfilms2,freqlemlivres
chat,NOM,m,abc,80
`)

	records, err := corpus.LoadCSV(path)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(records[0].FreqFilms))
	assert.Equal(t, 80.0, records[0].FreqBooks)
}
