package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Common errors for configuration loading/saving.
var (
	ErrFileNotFound     = errors.New("configuration file not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrEmptyDocument    = errors.New("configuration document is empty")
)

// ConfigDiscoveryOrder defines the priority order for finding a run
// config in the current directory when no path is given.
var ConfigDiscoveryOrder = []string{
	"config.yaml",
	"config.yml",
}

// yamlUnknownField extracts the field name out of yaml.v3's strict
// decoding error ("line N: field xyz not found in type ...").
var yamlUnknownField = regexp.MustCompile(`field (\S+) not found in type`)

// envVarPattern matches ${VAR_NAME} or ${VAR_NAME:-default}.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?::-([^}]*))?\}`)

// Load runs the full pipeline: read the file, check the document
// against the embedded schema, parse, apply defaults and overrides,
// validate every option, and resolve derived fields. It either returns
// a fully validated RunConfig or fails; no partial config escapes.
func Load(path string, overrides []string) (*RunConfig, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, err
	}

	// Expand before the schema pass so an env reference in a typed
	// option is checked as its value, not as the literal ${...}.
	data = []byte(ExpandEnvVars(string(data)))

	if err := ValidateDocument(data); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	cfg, err := parseDocument(data)
	if err != nil {
		attachPath(err, path)
		return nil, err
	}

	ApplyDefaults(cfg)

	if err := ApplyOverrides(cfg, overrides); err != nil {
		return nil, err
	}

	if err := Validate(cfg).Err(); err != nil {
		return nil, err
	}

	if err := ResolveDerived(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFile reads and strictly parses a run config file without
// applying defaults or validation. Most callers want Load instead.
func LoadFile(path string) (*RunConfig, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, err
	}

	cfg, err := Parse(data)
	if err != nil {
		attachPath(err, path)
		return nil, err
	}
	return cfg, nil
}

// Parse strictly decodes a YAML document into a RunConfig.
// ${VAR:-default} references are expanded from the environment first.
// Unknown sections or options are rejected with UnknownKeyError.
func Parse(data []byte) (*RunConfig, error) {
	return parseDocument([]byte(ExpandEnvVars(string(data))))
}

// parseDocument decodes an already-expanded document. Load expands
// before its schema pass, so expansion must not run again here: an
// environment value containing a literal ${...} stays literal.
func parseDocument(data []byte) (*RunConfig, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyDocument
	}

	var cfg RunConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		if m := yamlUnknownField.FindStringSubmatch(err.Error()); m != nil {
			return nil, &UnknownKeyError{Key: m[1]}
		}
		return nil, &ParseError{Err: err}
	}
	return &cfg, nil
}

// ToYAML serializes a RunConfig. A serialized config reloads to an
// equal RunConfig.
func ToYAML(cfg *RunConfig) ([]byte, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	return yaml.Marshal(cfg)
}

// SaveFile writes a RunConfig to path using an atomic tmp+rename.
// Parent directories are created if missing.
func SaveFile(path string, cfg *RunConfig) error {
	data, err := ToYAML(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}
	return nil
}

// Discover finds a run config via the S2GNN_CONFIG env var or the
// discovery order in the current directory.
func Discover() (string, error) {
	if envPath := os.Getenv("S2GNN_CONFIG"); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath, nil
		}
		return "", fmt.Errorf("S2GNN_CONFIG points to non-existent file: %s", envPath)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting current directory: %w", err)
	}
	for _, name := range ConfigDiscoveryOrder {
		path := filepath.Join(cwd, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no run config found, specify one with --config")
}

// ExpandEnvVars expands ${VAR_NAME} and ${VAR_NAME:-default}
// references in the input. Unset variables without a default expand to
// the empty string.
func ExpandEnvVars(input string) string {
	return envVarPattern.ReplaceAllStringFunc(input, func(match string) string {
		submatch := envVarPattern.FindStringSubmatch(match)
		if len(submatch) < 2 {
			return match
		}
		if val := os.Getenv(submatch[1]); val != "" {
			return val
		}
		if len(submatch) >= 3 {
			return submatch[2]
		}
		return ""
	})
}

// readConfigFile reads path with descriptive sentinel errors for the
// common failure cases.
func readConfigFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		if os.IsPermission(err) {
			return nil, fmt.Errorf("%w: %s", ErrPermissionDenied, path)
		}
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsPermission(err) {
			return nil, fmt.Errorf("%w: %s", ErrPermissionDenied, path)
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyDocument, path)
	}
	return data, nil
}

// attachPath annotates parse errors with their source file.
func attachPath(err error, path string) {
	var pe *ParseError
	if errors.As(err, &pe) && pe.Path == "" {
		pe.Path = path
	}
}
