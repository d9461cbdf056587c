package orbitals

import "errors"

var (
	// ErrInvalidQuantumNumbers indicates an (n, l, m) triple outside n >= 1, 0 <= l < n, |m| <= l.
	ErrInvalidQuantumNumbers = errors.New("orbitals: invalid quantum numbers")
	// ErrInvalidConfig indicates a config that failed schema validation.
	ErrInvalidConfig = errors.New("orbitals: invalid config")
	// ErrConfigFormat indicates a config file extension that is not .json, .toml, .yaml or .yml.
	ErrConfigFormat = errors.New("orbitals: unsupported config format")
)
