package config

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed runconfig.schema.json
var runConfigSchemaJSON string

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

// additionalPropPattern extracts the property names from jsonschema's
// additionalProperties violation message.
var additionalPropPattern = regexp.MustCompile(`'([^']+)'`)

func compiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource("runconfig.schema.json", strings.NewReader(runConfigSchemaJSON)); err != nil {
			schemaErr = err
			return
		}
		schema, schemaErr = c.Compile("runconfig.schema.json")
	})
	return schema, schemaErr
}

// ValidateDocument checks a raw YAML document against the embedded
// JSON Schema: option types, enumerations, and unknown keys, before
// any typed decoding happens. Violations come back as a Result of
// ValidationError/UnknownKeyError values with dotted key paths.
func ValidateDocument(data []byte) error {
	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return &ParseError{Err: err}
	}
	if raw == nil {
		return ErrEmptyDocument
	}

	// Round-trip through encoding/json so the schema validator sees
	// JSON-typed values rather than YAML-typed ones.
	jsonBytes, err := json.Marshal(raw)
	if err != nil {
		return &ParseError{Err: err}
	}
	var doc interface{}
	if err := json.Unmarshal(jsonBytes, &doc); err != nil {
		return &ParseError{Err: err}
	}

	sch, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compiling embedded schema: %w", err)
	}

	if err := sch.Validate(doc); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			r := &Result{}
			collectSchemaErrors(ve, r)
			return r.Err()
		}
		return err
	}
	return nil
}

// collectSchemaErrors flattens the validator's error tree into leaf
// errors keyed by dotted path.
func collectSchemaErrors(ve *jsonschema.ValidationError, r *Result) {
	if len(ve.Causes) > 0 {
		for _, cause := range ve.Causes {
			collectSchemaErrors(cause, r)
		}
		return
	}

	key := dottedPath(ve.InstanceLocation)
	if strings.Contains(ve.Message, "additionalProperties") {
		for _, m := range additionalPropPattern.FindAllStringSubmatch(ve.Message, -1) {
			prop := m[1]
			if key != "" {
				prop = key + "." + prop
			}
			r.Errors = append(r.Errors, &UnknownKeyError{Key: prop})
		}
		return
	}
	r.Errors = append(r.Errors, &ValidationError{Key: key, Message: ve.Message})
}

// dottedPath converts a JSON pointer like /gnn/spectral/window to the
// dotted form used everywhere else.
func dottedPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}
	parts := strings.Split(ptr, "/")
	for i, p := range parts {
		p = strings.ReplaceAll(p, "~1", "/")
		parts[i] = strings.ReplaceAll(p, "~0", "~")
	}
	return strings.Join(parts, ".")
}
