package config

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"gopkg.in/yaml.v3"
)

// Filter selects run configs by a boolean expression over the config
// document, e.g.
//
//	dataset.name == "QM9" && optim.base_lr < 0.001
//	posenc_MagLapPE.enable and gnn.spectral.window != "none"
//
// Section and option names are addressed exactly as they appear in the
// YAML document.
type Filter struct {
	src  string
	prog *vm.Program
}

// CompileFilter compiles a selection expression. The expression must
// evaluate to a boolean.
func CompileFilter(src string) (*Filter, error) {
	prog, err := expr.Compile(src, expr.AsBool(), expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}
	return &Filter{src: src, prog: prog}, nil
}

// String returns the original expression source.
func (f *Filter) String() string { return f.src }

// Match evaluates the filter against one run config.
func (f *Filter) Match(cfg *RunConfig) (bool, error) {
	env, err := documentEnv(cfg)
	if err != nil {
		return false, err
	}
	out, err := expr.Run(f.prog, env)
	if err != nil {
		return false, fmt.Errorf("evaluating filter %q: %w", f.src, err)
	}
	b, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("filter %q did not evaluate to a boolean", f.src)
	}
	return b, nil
}

// documentEnv exposes the config under its document key names, so
// filters read like the YAML they select over.
func documentEnv(cfg *RunConfig) (map[string]interface{}, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, err
	}
	var env map[string]interface{}
	if err := yaml.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	return env, nil
}
