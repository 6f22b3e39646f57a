package config

// Config is the root application configuration.
type Config struct {
	Corpus CorpusConfig `yaml:"corpus"`
	Model  ModelConfig  `yaml:"model"`
	Cache  CacheConfig  `yaml:"cache"`
	Log    LogConfig    `yaml:"log"`
}

// CorpusConfig locates the reference corpus.
type CorpusConfig struct {
	Path string `yaml:"path" env:"LEXILEVEL_CORPUS_PATH" env-default:"data/lexique.csv"`
}

// ModelConfig locates the trained classifier and label encoder artifacts.
type ModelConfig struct {
	ClassifierPath string `yaml:"classifier_path" env:"LEXILEVEL_MODEL_PATH" env-default:"level_model.json"`
	EncoderPath    string `yaml:"encoder_path"    env:"LEXILEVEL_ENCODER_PATH" env-default:"label_encoder.json"`
}

// CacheConfig controls the parsed-corpus cache. An empty DB path means
// the default location under the user cache dir.
type CacheConfig struct {
	Enabled bool   `yaml:"enabled" env:"LEXILEVEL_CACHE_ENABLED" env-default:"true"`
	DBPath  string `yaml:"db_path" env:"LEXILEVEL_CACHE_DB"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	File  string `yaml:"file"  env:"LEXILEVEL_LOG_FILE"`
	Level string `yaml:"level" env:"LEXILEVEL_LOG_LEVEL" env-default:"info"`
}
