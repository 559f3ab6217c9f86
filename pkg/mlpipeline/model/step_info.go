package model

// StepKind tells which parser family produced a step.
type StepKind string

const (
	GenericStepKind StepKind = "generic"
	NeuralStepKind  StepKind = "neural"
)

// StepInfo carries the displayable facts about one step. It is what the
// dataflow graph stores for each vertex.
type StepInfo struct {
	Name    string
	Kind    StepKind
	Fixed   int
	Tunable int
}
