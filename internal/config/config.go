package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/katalvlaran/lvedit/editdist"
	"github.com/katalvlaran/lvedit/tokenize"
)

//go:embed sample_config.toml
var sampleConfig string

// EnvPath names the environment variable consulted when no path is given.
const EnvPath = "LVEDIT_CONFIG"

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Cost holds transformation weights.
type Cost struct {
	Deletion     float64 `toml:"deletion"`
	Insertion    float64 `toml:"insertion"`
	Substitution float64 `toml:"substitution"`
}

// Selection holds tie-break preferences.
type Selection struct {
	Match      float64 `toml:"match"`
	Substitute float64 `toml:"substitute"`
	Delete     float64 `toml:"delete"`
	Insert     float64 `toml:"insert"`
}

// Tokenize configures how text inputs become sequences.
type Tokenize struct {
	Mode      string `toml:"mode"`
	Normalize string `toml:"normalize"`
	FoldCase  bool   `toml:"fold_case"`
}

// Batch configures the pair runner.
type Batch struct {
	Workers int   `toml:"workers"`
	Seed    int64 `toml:"seed"`
}

// Log configures the slog logger.
type Log struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Config is the whole file.
type Config struct {
	Cost      Cost      `toml:"cost"`
	Selection Selection `toml:"selection"`
	Tokenize  Tokenize  `toml:"tokenize"`
	Batch     Batch     `toml:"batch"`
	Log       Log       `toml:"log"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Cost: Cost{
			Deletion:     editdist.DefaultWeight,
			Insertion:    editdist.DefaultWeight,
			Substitution: editdist.DefaultWeight,
		},
		Selection: Selection{
			Match:      editdist.DefaultSelectionWeight,
			Substitute: editdist.DefaultSelectionWeight,
			Delete:     editdist.DefaultSelectionWeight,
			Insert:     editdist.DefaultSelectionWeight,
		},
		Tokenize: Tokenize{Mode: string(tokenize.Chars), Normalize: string(tokenize.NFC)},
		Batch:    Batch{Workers: 0, Seed: editdist.DefaultSeed},
		Log:      Log{Level: "info", Format: "console"},
	}
}

// SampleConfig returns the annotated default file.
func SampleConfig() string {
	return sampleConfig
}

// Load reads path (or $LVEDIT_CONFIG when path is empty) over the defaults.
// With neither set, Default() is returned.
func Load(path string) (*Config, string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		path = strings.TrimSpace(os.Getenv(EnvPath))
	}
	if path == "" {
		cfg := Default()
		return &cfg, "", nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, path, fmt.Errorf("load config %s: %w", path, err)
	}

	return cfg, path, nil
}

// Parse decodes TOML over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("%w: %s", ErrInvalid, strict.String())
		}
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Encode renders cfg as TOML.
func (c *Config) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}

	return buf.Bytes(), nil
}

// Validate checks weights, enumerations and the batch/log sections.
func (c *Config) Validate() error {
	weights := map[string]float64{
		"cost.deletion":        c.Cost.Deletion,
		"cost.insertion":       c.Cost.Insertion,
		"cost.substitution":    c.Cost.Substitution,
		"selection.match":      c.Selection.Match,
		"selection.substitute": c.Selection.Substitute,
		"selection.delete":     c.Selection.Delete,
		"selection.insert":     c.Selection.Insert,
	}
	for key, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
			return fmt.Errorf("%w: %s must be finite and >= 0, got %v", ErrInvalid, key, w)
		}
	}
	if err := c.TokenizeOptions().Validate(); err != nil {
		return fmt.Errorf("%w: tokenize: %v", ErrInvalid, err)
	}
	if c.Batch.Workers < 0 {
		return fmt.Errorf("%w: batch.workers must be >= 0, got %d", ErrInvalid, c.Batch.Workers)
	}
	switch strings.ToLower(strings.TrimSpace(c.Log.Format)) {
	case "", "console", "json":
	default:
		return fmt.Errorf("%w: log.format must be console or json, got %q", ErrInvalid, c.Log.Format)
	}
	switch strings.ToLower(strings.TrimSpace(c.Log.Level)) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level must be debug, info, warn or error, got %q", ErrInvalid, c.Log.Level)
	}

	return nil
}

// CostModel builds the editdist model described by [cost] and [selection].
func (c *Config) CostModel() (*editdist.CostModel, error) {
	return editdist.NewCostModel(
		editdist.WithWeights(c.Cost.Deletion, c.Cost.Insertion, c.Cost.Substitution),
		editdist.WithSelectionWeights(c.Selection.Match, c.Selection.Substitute, c.Selection.Delete, c.Selection.Insert),
	)
}

// TokenizeOptions converts [tokenize] to tokenize.Options.
func (c *Config) TokenizeOptions() tokenize.Options {
	return tokenize.Options{
		Mode:      tokenize.Mode(strings.ToLower(strings.TrimSpace(c.Tokenize.Mode))),
		Normalize: tokenize.Normalization(strings.ToLower(strings.TrimSpace(c.Tokenize.Normalize))),
		FoldCase:  c.Tokenize.FoldCase,
	}
}
