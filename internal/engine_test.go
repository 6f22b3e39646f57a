package internal_test

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "github.com/tursodatabase/go-libsql"
	"github.com/yumiuse/lexilevel/internal"
	"github.com/yumiuse/lexilevel/internal/config"
	"github.com/yumiuse/lexilevel/internal/store"
)

const testCorpusCSV = `lemme,cgram,genre,freqlemfilms2,freqlemlivres
chat,NOM,m,120,80
aller,VER,,30,
`

const testClassifier = `{
	"version": 1,
	"classes": 2,
	"bias": [0.0, 0.0],
	"weights": {"lemme": {"chat": [1.0, 0.0]}},
	"freq": {"mean": 0.0, "std": 1.0, "coef": [0.0, 0.0]}
}`

const testEncoder = `{"classes": ["A1", "B1"]}`

func writeFixtures(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()

	cfg := &config.Config{}
	cfg.Corpus.Path = filepath.Join(dir, "lexique.csv")
	cfg.Model.ClassifierPath = filepath.Join(dir, "level_model.json")
	cfg.Model.EncoderPath = filepath.Join(dir, "label_encoder.json")

	require.NoError(t, os.WriteFile(cfg.Corpus.Path, []byte(testCorpusCSV), 0644))
	require.NoError(t, os.WriteFile(cfg.Model.ClassifierPath, []byte(testClassifier), 0644))
	require.NoError(t, os.WriteFile(cfg.Model.EncoderPath, []byte(testEncoder), 0644))
	return cfg
}

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("libsql", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, store.Migrate(db))
	return db
}

func TestGenerateResolver_EndToEnd(t *testing.T) {
	cfg := writeFixtures(t)

	rsv, err := internal.GenerateResolver(cfg, nil, false)
	require.NoError(t, err)

	results, err := rsv.Resolve([]string{"chat", "xyzzy123"})
	require.NoError(t, err)
	require.Len(t, results, 2)

	// known word: classifier picks class 0, encoder decodes A1
	assert.Equal(t, "Level A1", results[0].Label)
	// unknown word: global mean 65 lands between Q1 and Q2
	assert.Equal(t, "Level 2", results[1].Label)
}

func TestGenerateResolver_MissingCorpusFailsBeforePrediction(t *testing.T) {
	cfg := writeFixtures(t)
	require.NoError(t, os.Remove(cfg.Corpus.Path))

	_, err := internal.GenerateResolver(cfg, nil, false)
	assert.Error(t, err)
}

func TestGenerateResolver_MissingArtifacts(t *testing.T) {
	for _, remove := range []func(cfg *config.Config) string{
		func(cfg *config.Config) string { return cfg.Model.ClassifierPath },
		func(cfg *config.Config) string { return cfg.Model.EncoderPath },
	} {
		cfg := writeFixtures(t)
		require.NoError(t, os.Remove(remove(cfg)))

		_, err := internal.GenerateResolver(cfg, nil, false)
		assert.Error(t, err)
	}
}

func TestGenerateResolver_ArtifactMismatch(t *testing.T) {
	cfg := writeFixtures(t)
	require.NoError(t, os.WriteFile(cfg.Model.EncoderPath, []byte(`{"classes": ["A1", "A2", "B1"]}`), 0644))

	_, err := internal.GenerateResolver(cfg, nil, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "classes")
}

func TestLoadCorpus_UsesFreshCache(t *testing.T) {
	cfg := writeFixtures(t)
	db := openTestDB(t)

	records, err := internal.LoadCorpus(cfg, db, false)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// rewrite the CSV but backdate its mtime: the cache stays
	// authoritative and the extra row is not visible
	extended := testCorpusCSV + "chien,NOM,m,50,40\n"
	require.NoError(t, os.WriteFile(cfg.Corpus.Path, []byte(extended), 0644))
	past := time.Now().Add(-24 * time.Hour)
	require.NoError(t, os.Chtimes(cfg.Corpus.Path, past, past))

	records, err = internal.LoadCorpus(cfg, db, false)
	require.NoError(t, err)
	assert.Len(t, records, 2)

	// forced refresh reparses regardless of mtime
	records, err = internal.LoadCorpus(cfg, db, true)
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestLoadCorpus_StaleCacheReparses(t *testing.T) {
	cfg := writeFixtures(t)
	db := openTestDB(t)

	_, err := internal.LoadCorpus(cfg, db, false)
	require.NoError(t, err)

	// newer mtime invalidates the cache
	extended := testCorpusCSV + "chien,NOM,m,50,40\n"
	require.NoError(t, os.WriteFile(cfg.Corpus.Path, []byte(extended), 0644))
	future := time.Now().Add(2 * time.Hour)
	require.NoError(t, os.Chtimes(cfg.Corpus.Path, future, future))

	records, err := internal.LoadCorpus(cfg, db, false)
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestLoadCorpus_NoCacheDB(t *testing.T) {
	cfg := writeFixtures(t)

	records, err := internal.LoadCorpus(cfg, nil, false)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}
