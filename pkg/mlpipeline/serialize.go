package mlpipeline

import "fmt"

// ToDict flattens the tunable hyperparameters into a map keyed by
// "<step>__<param>". It is meant for display and logging; fixed
// hyperparameters and the dataflow are not included, so it does not
// round-trip into a full pipeline on its own.
func (p *Pipeline) ToDict() map[string]any {
	tunable := p.GetTunableHyperparams()

	out := make(map[string]any, len(tunable))
	for _, hp := range tunable {
		out[fmt.Sprintf("%s__%s", hp.StepName, hp.ParamName)] = hp.Value
	}

	return out
}

// String implements fmt.Stringer.
func (p *Pipeline) String() string {
	return fmt.Sprintf("%v", p.ToDict())
}
