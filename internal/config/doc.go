// Package config loads, defaults and validates lvedit configuration.
//
// Configuration is a TOML file with [cost], [selection], [tokenize], [batch]
// and [log] tables. Missing tables keep their defaults; unknown keys are
// rejected so typos do not silently fall back to unit costs. The path comes
// from the --config flag or the LVEDIT_CONFIG environment variable.
//
// Always build the edit-distance cost model through Config.CostModel so the
// weights go through editdist validation.
package config
