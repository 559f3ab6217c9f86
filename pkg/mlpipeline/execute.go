package mlpipeline

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/deepmining/go-mlpipeline/pkg/mlpipeline/model"
)

// Fit trains every step in dataflow order. Each step is fitted on the data
// transformed by the previous steps, then its own produce output becomes the
// input of the next step. The labels are passed to every step unchanged.
//
// fitParams carries extra keyword arguments for individual steps, keyed by
// (step, param). The first failing step aborts the whole fit; steps that
// already ran keep their side effects.
func (p *Pipeline) Fit(ctx context.Context, x, y any, fitParams map[model.ParamKey]any) error {
	extra := make(map[string]map[string]any, len(p.dataflow))
	for _, name := range p.dataflow {
		extra[name] = make(map[string]any)
	}
	for key, value := range fitParams {
		args, ok := extra[key.Step]
		if !ok {
			return errors.Wrap(ErrUnknownStep, key.Step)
		}
		args[key.Param] = value
	}

	transformed := x
	for _, name := range p.dataflow {
		step := p.steps[name]

		start := time.Now()
		err := step.Fit(ctx, transformed, y, extra[name])
		if err != nil {
			return err
		}
		if p.measure != nil {
			p.measure.step(name).addFit(time.Since(start))
		}

		start = time.Now()
		transformed, err = step.Produce(ctx, transformed)
		if err != nil {
			return err
		}
		if p.measure != nil {
			p.measure.step(name).addProduce(time.Since(start))
		}

		p.logger.Debug("fitted step", "step", name)
	}

	return nil
}

// Predict runs the produce chain in dataflow order and returns the final
// transformed value. Fit must have been called before; the behaviour on an
// unfitted pipeline is whatever the underlying primitives do.
func (p *Pipeline) Predict(ctx context.Context, x any) (any, error) {
	transformed := x
	for _, name := range p.dataflow {
		step := p.steps[name]

		start := time.Now()
		out, err := step.Produce(ctx, transformed)
		if err != nil {
			return nil, err
		}
		if p.measure != nil {
			p.measure.step(name).addProduce(time.Since(start))
		}
		transformed = out
	}

	return transformed, nil
}
