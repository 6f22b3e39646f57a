package corpus_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yumiuse/lexilevel/internal/corpus"
)

func TestIndex_Lookup(t *testing.T) {
	index := corpus.NewIndex([]corpus.Record{
		{Lemma: "chat", CGram: "NOM", Genre: "m", FreqFilms: 120, FreqBooks: 80},
		{Lemma: "aller", CGram: "VER", FreqFilms: 500, FreqBooks: 600},
	})

	rec, ok := index.Lookup("chat")
	require.True(t, ok)
	assert.Equal(t, "NOM", rec.CGram)

	_, ok = index.Lookup("xyzzy123")
	assert.False(t, ok)

	// exact match only, no trimming or case folding here
	_, ok = index.Lookup(" chat ")
	assert.False(t, ok)
	_, ok = index.Lookup("Chat")
	assert.False(t, ok)
}

func TestIndex_FirstMatchWins(t *testing.T) {
	index := corpus.NewIndex([]corpus.Record{
		{Lemma: "poste", CGram: "NOM", Genre: "m", FreqFilms: 10, FreqBooks: 10},
		{Lemma: "poste", CGram: "NOM", Genre: "f", FreqFilms: 20, FreqBooks: 20},
	})

	rec, ok := index.Lookup("poste")
	require.True(t, ok)
	assert.Equal(t, "m", rec.Genre)
	assert.Equal(t, 2, index.Len())
}

func TestIndex_Contains(t *testing.T) {
	index := corpus.NewIndex([]corpus.Record{
		{Lemma: "chat", CGram: "NOM"},
	})

	assert.True(t, index.Contains("chat"))
	assert.False(t, index.Contains("chien"))
}
