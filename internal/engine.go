package internal

import (
	"database/sql"
	"fmt"

	"github.com/yumiuse/lexilevel/internal/config"
	"github.com/yumiuse/lexilevel/internal/corpus"
	"github.com/yumiuse/lexilevel/internal/logger"
	"github.com/yumiuse/lexilevel/internal/model/classifier"
	"github.com/yumiuse/lexilevel/internal/model/encoder"
	"github.com/yumiuse/lexilevel/internal/model/feature"
	"github.com/yumiuse/lexilevel/internal/model/resolver"
	"github.com/yumiuse/lexilevel/internal/store"
	"github.com/yumiuse/lexilevel/internal/utils"
)

// GenerateResolver loads every required artifact and wires the level
// resolver. All fatal conditions (missing corpus, classifier or
// encoder, artifact mismatch) surface here, before any word is
// processed. db may be nil when the cache is disabled.
func GenerateResolver(cfg *config.Config, db *sql.DB, refresh bool) (*resolver.Resolver, error) {
	records, err := LoadCorpus(cfg, db, refresh)
	if err != nil {
		return nil, err
	}

	clf, err := classifier.Load(cfg.Model.ClassifierPath)
	if err != nil {
		return nil, err
	}
	enc, err := encoder.Load(cfg.Model.EncoderPath)
	if err != nil {
		return nil, err
	}

	index := corpus.NewIndex(records)
	builder := feature.NewBuilder(index)
	thresholds := corpus.EstimateThresholds(records)

	return resolver.New(builder, clf, enc, thresholds)
}

// LoadCorpus returns the reference corpus, preferring the cache when it
// is enabled and fresh. Cache failures degrade to a direct CSV parse:
// the cache is an accelerator, never a correctness dependency.
func LoadCorpus(cfg *config.Config, db *sql.DB, refresh bool) ([]corpus.Record, error) {
	if db == nil {
		return corpus.LoadCSV(cfg.Corpus.Path)
	}

	metaStore := store.NewMetaStore(db)
	corpusStore := store.NewCorpusStore(db)
	metaKey := "corpus:" + utils.Hash(cfg.Corpus.Path)

	if !refresh && !metaStore.Stale(metaKey, cfg.Corpus.Path) {
		records, err := corpusStore.Load()
		if err == nil && len(records) > 0 {
			logger.Debug("loaded %d corpus rows from cache", len(records))
			return records, nil
		}
		if err != nil {
			logger.Warn("corpus cache read failed, reparsing: %v", err)
		}
	}

	records, err := corpus.LoadCSV(cfg.Corpus.Path)
	if err != nil {
		return nil, err
	}

	if err := corpusStore.Replace(records); err != nil {
		logger.Warn("corpus cache write failed: %v", err)
		return records, nil
	}
	if err := metaStore.Touch(metaKey, cfg.Corpus.Path); err != nil {
		logger.Warn("corpus cache meta update failed: %v", err)
		return records, nil
	}
	logger.Debug("cached %d corpus rows", len(records))

	return records, nil
}

// OpenCacheDB opens and migrates the cache database when the cache is
// enabled. It returns nil (no error) when the configuration disables
// caching.
func OpenCacheDB(cfg *config.Config) (*sql.DB, error) {
	if !cfg.Cache.Enabled {
		return nil, nil
	}

	db, err := store.OpenDB(cfg.Cache.DBPath)
	if err != nil {
		return nil, err
	}
	if err := store.Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate cache db: %w", err)
	}
	return db, nil
}
