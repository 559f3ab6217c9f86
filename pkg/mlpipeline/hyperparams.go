package mlpipeline

import (
	"github.com/pkg/errors"

	"github.com/deepmining/go-mlpipeline/pkg/mlpipeline/model"
)

// UpdateFixedHyperparams overwrites the given fixed hyperparameters and
// rebuilds the model of every touched step from its full fixed and tunable
// configuration. All step names are validated upfront, so an unknown step
// leaves the pipeline untouched. A step targeted by several entries is
// rebuilt once per entry.
func (p *Pipeline) UpdateFixedHyperparams(fixed map[model.ParamKey]any) error {
	for key := range fixed {
		if _, ok := p.steps[key.Step]; !ok {
			return errors.Wrap(ErrUnknownStep, key.Step)
		}
	}

	for key, value := range fixed {
		step := p.steps[key.Step]
		step.FixedHyperparams[key.Param] = value

		err := step.RebuildModel(step.FixedHyperparams, step.TunableHyperparams)
		if err != nil {
			return err
		}
		p.logger.Debug("updated fixed hyperparameter", "step", key.Step, "param", key.Param)
	}

	return nil
}

// UpdateTunableHyperparams overwrites the given tunable hyperparameters and
// rebuilds the model of every step in the pipeline from its tunable values
// only. Unspecified hyperparameters keep their value; the rebuild still
// covers all steps, which is a no-op for the unaffected ones.
func (p *Pipeline) UpdateTunableHyperparams(tunable []model.Hyperparam) error {
	for _, hp := range tunable {
		if _, ok := p.steps[hp.StepName]; !ok {
			return errors.Wrap(ErrUnknownStep, hp.StepName)
		}
	}

	for _, hp := range tunable {
		hp := hp
		p.steps[hp.StepName].TunableHyperparams[hp.ParamName] = &hp
	}

	for _, step := range p.steps {
		err := step.rebuildFromTunable()
		if err != nil {
			return err
		}
	}

	return nil
}

// GetFixedHyperparams returns the fixed hyperparameters of all steps, keyed
// by (step, param).
func (p *Pipeline) GetFixedHyperparams() map[model.ParamKey]any {
	out := make(map[model.ParamKey]any)
	for _, step := range p.steps {
		for name, value := range step.FixedHyperparams {
			out[model.ParamKey{Step: step.Name, Param: name}] = value
		}
	}

	return out
}

// GetTunableHyperparams returns the tunable hyperparameters of all steps, in
// no particular order.
func (p *Pipeline) GetTunableHyperparams() []model.Hyperparam {
	out := make([]model.Hyperparam, 0)
	for _, step := range p.steps {
		for _, hp := range step.TunableHyperparams {
			out = append(out, *hp)
		}
	}

	return out
}

// SetFromHyperparamDict sets tunable hyperparameters by bare parameter name
// and rebuilds through the tunable update path. A name shared by several
// steps updates all of them with the same value.
func (p *Pipeline) SetFromHyperparamDict(values map[string]any) error {
	tunable := p.GetTunableHyperparams()
	for i := range tunable {
		if value, ok := values[tunable[i].ParamName]; ok {
			tunable[i].Value = value
		}
	}

	return p.UpdateTunableHyperparams(tunable)
}
