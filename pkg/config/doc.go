// Package config loads, validates, and serializes training-run
// configurations for spectral GNN experiments.
//
// A run configuration is a YAML document with a fixed set of sections
// (dataset, positional encodings, model, gnn, optim, share, ...). The
// package provides:
//
//   - Strict parsing with unknown-key rejection (LoadFile, Parse)
//   - Documented defaults for every optional option (ApplyDefaults)
//   - Per-option domain validation with dotted key paths (Validate)
//   - Derived-field resolution, e.g. share.dim_in (ResolveDerived)
//   - Dotted-path command line overrides (ApplyOverrides)
//   - Document-level JSON Schema validation (ValidateDocument)
//   - Grid loading of whole config directories (GridLoader)
//
// Load runs the full pipeline and is what the CLI uses. Each load is
// self-contained: no global state, no side effects beyond reading the
// input file. The resulting RunConfig is treated as immutable for the
// duration of a training run.
//
// Error taxonomy: ParseError (malformed document), UnknownKeyError
// (unrecognized section or option; the policy is to reject, not to
// warn), ValidationError (value outside its declared domain), and
// ConsistencyError (a stated value contradicts its derivation). All of
// them are fatal to the load; no partial configuration is ever
// returned.
package config
