package regexnfa

import (
	_ "embed"
)

// DefaultScenariosBin is the built-in scenario suite the driver runs
// when no scenario file is given. It mirrors the reference test set.
//
//go:embed scenarios_default.yaml
var DefaultScenariosBin []byte
