package model

// Metadata is the declarative description of one pipeline step. Class
// selects the parser and the primitive builder; the remaining fields are
// consumed by the selected parser.
type Metadata struct {
	Name    string         `json:"name" yaml:"name"`
	Class   string         `json:"class" yaml:"class"`
	Fixed   map[string]any `json:"fixed_hyperparameters" yaml:"fixed_hyperparameters"`
	Tunable map[string]any `json:"tunable_hyperparameters" yaml:"tunable_hyperparameters"`
	// Layers describes the network topology of neural primitives. Ignored by
	// the generic parser.
	Layers []map[string]any `json:"layers" yaml:"layers"`
}
