package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// ApplyOverrides merges dotted-path key=value pairs into cfg, e.g.
// "optim.base_lr=0.001" or "gnn.layer_skip=[3,4,5]". Values are parsed
// as YAML scalars or sequences, so ints, floats, bools, strings, and
// lists all work. A typo in the key path fails with UnknownKeyError.
// Callers re-run Validate and ResolveDerived afterwards; Load does so.
func ApplyOverrides(cfg *RunConfig, overrides []string) error {
	for _, ov := range overrides {
		key, raw, ok := strings.Cut(ov, "=")
		if !ok {
			return fmt.Errorf("invalid override %q, expected key=value", ov)
		}
		if err := applyOverride(cfg, strings.TrimSpace(key), raw); err != nil {
			return err
		}
	}
	return nil
}

// applyOverride rebuilds the override as a minimal YAML document and
// strictly decodes it over cfg, so overrides reuse the exact same
// merge and unknown-key semantics as file parsing.
func applyOverride(cfg *RunConfig, key, raw string) error {
	parts := strings.Split(key, ".")
	for _, p := range parts {
		if p == "" {
			return fmt.Errorf("invalid override key %q", key)
		}
	}

	var value interface{}
	if err := yaml.Unmarshal([]byte(raw), &value); err != nil {
		return &ParseError{Err: fmt.Errorf("override %s: %w", key, err)}
	}

	doc := value
	for i := len(parts) - 1; i >= 0; i-- {
		doc = map[string]interface{}{parts[i]: doc}
	}
	buf, err := yaml.Marshal(doc)
	if err != nil {
		return &ParseError{Err: fmt.Errorf("override %s: %w", key, err)}
	}

	dec := yaml.NewDecoder(bytes.NewReader(buf))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		if yamlUnknownField.MatchString(err.Error()) {
			return &UnknownKeyError{Key: key}
		}
		return &ParseError{Err: fmt.Errorf("override %s: %w", key, err)}
	}
	return nil
}
