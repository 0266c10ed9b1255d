package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvedit/editdist"
	"github.com/katalvlaran/lvedit/internal/config"
	"github.com/katalvlaran/lvedit/internal/logging"
	"github.com/katalvlaran/lvedit/tokenize"
)

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	configPath   string
	logLevel     string
	logFormat    string
	tokens       string
	normalize    string
	foldCase     bool
	deletion     float64
	insertion    float64
	substitution float64
	seed         int64
}

// commandContext resolves configuration once per invocation.
type commandContext struct {
	flags globalFlags

	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger
}

func newCommandContext() *commandContext {
	return &commandContext{}
}

// bind registers the persistent flags on root.
func (c *commandContext) bind(root *cobra.Command) {
	pf := root.PersistentFlags()
	pf.StringVarP(&c.flags.configPath, "config", "c", "", "Configuration file path (default $"+config.EnvPath+")")
	pf.StringVar(&c.flags.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	pf.StringVar(&c.flags.logFormat, "log-format", "", "Log format: console, json")
	pf.StringVarP(&c.flags.tokens, "tokens", "t", "", "Tokenization: chars, graphemes, words")
	pf.StringVar(&c.flags.normalize, "normalize", "", "Unicode normalization: none, nfc, nfd, nfkc, nfkd")
	pf.BoolVar(&c.flags.foldCase, "fold-case", false, "Case-fold inputs before comparing")
	pf.Float64Var(&c.flags.deletion, "deletion", editdist.DefaultWeight, "Deletion weight")
	pf.Float64Var(&c.flags.insertion, "insertion", editdist.DefaultWeight, "Insertion weight")
	pf.Float64Var(&c.flags.substitution, "substitution", editdist.DefaultWeight, "Substitution weight")
	pf.Int64Var(&c.flags.seed, "seed", editdist.DefaultSeed, "Seed for tie-breaking")
}

// load reads the config file and applies flags the user actually set.
func (c *commandContext) load(cmd *cobra.Command) error {
	cfg, path, err := config.Load(c.flags.configPath)
	if err != nil {
		return err
	}

	changed := func(name string) bool { return cmd.Flags().Changed(name) }
	if changed("log-level") {
		cfg.Log.Level = c.flags.logLevel
	}
	if changed("log-format") {
		cfg.Log.Format = c.flags.logFormat
	}
	if changed("tokens") {
		cfg.Tokenize.Mode = c.flags.tokens
	}
	if changed("normalize") {
		cfg.Tokenize.Normalize = c.flags.normalize
	}
	if changed("fold-case") {
		cfg.Tokenize.FoldCase = c.flags.foldCase
	}
	if changed("deletion") {
		cfg.Cost.Deletion = c.flags.deletion
	}
	if changed("insertion") {
		cfg.Cost.Insertion = c.flags.insertion
	}
	if changed("substitution") {
		cfg.Cost.Substitution = c.flags.substitution
	}
	if changed("seed") {
		cfg.Batch.Seed = c.flags.seed
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.NewFromConfig(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	c.cfg, c.cfgPath, c.logger = cfg, path, logger
	c.logger.Debug("configuration loaded", "path", path, "tokens", cfg.Tokenize.Mode)

	return nil
}

// costModel builds the resolved cost model.
func (c *commandContext) costModel() (*editdist.CostModel, error) {
	cm, err := c.cfg.CostModel()
	if err != nil {
		return nil, err
	}
	c.logger.Debug("cost model", "model", cm.String())

	return cm, nil
}

// tokenPair splits the two positional arguments.
func (c *commandContext) tokenPair(args []string) ([]string, []string, error) {
	opts := c.cfg.TokenizeOptions()
	src, err := tokenize.Split(args[0], opts)
	if err != nil {
		return nil, nil, fmt.Errorf("tokenize source: %w", err)
	}
	tgt, err := tokenize.Split(args[1], opts)
	if err != nil {
		return nil, nil, fmt.Errorf("tokenize target: %w", err)
	}

	return src, tgt, nil
}

// seed returns the seed used for single-pair commands.
func (c *commandContext) seed() int64 {
	return c.cfg.Batch.Seed
}

// writeLine prints s followed by a newline.
func writeLine(w io.Writer, s string) error {
	_, err := fmt.Fprintln(w, s)
	return err
}
