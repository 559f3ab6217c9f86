package model

// Hyperparam identifies one tunable hyperparameter of one step together with
// its current value. The (StepName, ParamName) pair is unique within the
// tunable set of a pipeline.
type Hyperparam struct {
	StepName  string
	ParamName string
	Value     any
}

// ParamKey addresses one hyperparameter of one specific step. It is the map
// key used for fixed hyperparameters and per-step fit parameters.
type ParamKey struct {
	Step  string
	Param string
}
