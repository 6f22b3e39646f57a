package corpus

// Index is an immutable lemma lookup over the loaded corpus. Duplicate
// lemmas keep the first row in load order.
type Index struct {
	records []Record
	byLemma map[string]int
}

func NewIndex(records []Record) *Index {
	byLemma := make(map[string]int, len(records))
	for i, r := range records {
		if _, ok := byLemma[r.Lemma]; !ok {
			byLemma[r.Lemma] = i
		}
	}
	return &Index{records: records, byLemma: byLemma}
}

// Lookup returns the authoritative record for a lemma, exact match only.
func (ix *Index) Lookup(word string) (Record, bool) {
	i, ok := ix.byLemma[word]
	if !ok {
		return Record{}, false
	}
	return ix.records[i], true
}

// Contains reports corpus membership for a lemma.
func (ix *Index) Contains(word string) bool {
	_, ok := ix.byLemma[word]
	return ok
}

// Records returns the corpus rows in load order. Callers must not
// mutate the returned slice.
func (ix *Index) Records() []Record {
	return ix.records
}

// Len returns the number of corpus rows, duplicates included.
func (ix *Index) Len() int {
	return len(ix.records)
}
