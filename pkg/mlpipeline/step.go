package mlpipeline

import (
	"context"

	"github.com/pkg/errors"

	"github.com/deepmining/go-mlpipeline/pkg/mlpipeline/model"
)

// Step wraps one machine-learning primitive under a pipeline-unique name. It
// owns the fixed and tunable hyperparameter state of the primitive and the
// primitive instance itself. The model is never mutated in place: every
// hyperparameter commit replaces it with a fresh instance built from the
// current configuration.
type Step struct {
	Name               string
	Kind               model.StepKind
	FixedHyperparams   map[string]any
	TunableHyperparams map[string]*model.Hyperparam
	Model              model.Primitive

	builder model.ModelBuilder
}

// NewStep creates a step and builds its initial model from the given
// hyperparameters.
func NewStep(name string, builder model.ModelBuilder, fixed map[string]any, tunable []model.Hyperparam) (*Step, error) {
	if builder == nil {
		return nil, ErrBuilderMustBeSet
	}

	step := &Step{
		Name:               name,
		Kind:               model.GenericStepKind,
		FixedHyperparams:   make(map[string]any, len(fixed)),
		TunableHyperparams: make(map[string]*model.Hyperparam, len(tunable)),
		builder:            builder,
	}
	for name, value := range fixed {
		step.FixedHyperparams[name] = value
	}
	for _, hp := range tunable {
		hp := hp
		hp.StepName = step.Name
		step.TunableHyperparams[hp.ParamName] = &hp
	}

	err := step.RebuildModel(step.FixedHyperparams, step.TunableHyperparams)
	if err != nil {
		return nil, err
	}

	return step, nil
}

// RebuildModel replaces the owned model with a fresh instance built from the
// given fixed and tunable hyperparameters. Tunable values override fixed
// ones on name collision. This is the rebuild used after a fixed update.
func (s *Step) RebuildModel(fixed map[string]any, tunable map[string]*model.Hyperparam) error {
	params := make(map[string]any, len(fixed)+len(tunable))
	for name, value := range fixed {
		params[name] = value
	}
	for name, hp := range tunable {
		params[name] = hp.Value
	}

	return s.replaceModel(params)
}

// rebuildFromTunable replaces the owned model with a fresh instance built
// from the tunable hyperparameter values only. This is the rebuild used
// after a tunable update and deliberately leaves the fixed hyperparameters
// out, matching the fixed/tunable rebuild asymmetry of RebuildModel.
func (s *Step) rebuildFromTunable() error {
	params := make(map[string]any, len(s.TunableHyperparams))
	for name, hp := range s.TunableHyperparams {
		params[name] = hp.Value
	}

	return s.replaceModel(params)
}

func (s *Step) replaceModel(params map[string]any) error {
	mdl, err := s.builder(params)
	if err != nil {
		return errors.Wrapf(err, "unable to rebuild model for step %s", s.Name)
	}
	s.Model = mdl

	return nil
}

// Fit trains the underlying model on the given data and labels. Extra
// arguments are forwarded to the model untouched.
func (s *Step) Fit(ctx context.Context, data, labels any, extra map[string]any) error {
	err := s.Model.Fit(ctx, data, labels, extra)
	if err != nil {
		return errors.Wrapf(err, "unable to fit step %s", s.Name)
	}

	return nil
}

// Produce transforms the given data with the underlying model.
func (s *Step) Produce(ctx context.Context, data any) (any, error) {
	out, err := s.Model.Produce(ctx, data)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to produce step %s", s.Name)
	}

	return out, nil
}

// clone returns a step with copied hyperparameter maps sharing the same
// builder and model. Pipelines clone their steps on construction so that two
// pipelines never alias the same mutable hyperparameter state.
func (s *Step) clone() *Step {
	out := &Step{
		Name:               s.Name,
		Kind:               s.Kind,
		FixedHyperparams:   make(map[string]any, len(s.FixedHyperparams)),
		TunableHyperparams: make(map[string]*model.Hyperparam, len(s.TunableHyperparams)),
		Model:              s.Model,
		builder:            s.builder,
	}
	for name, value := range s.FixedHyperparams {
		out.FixedHyperparams[name] = value
	}
	for name, hp := range s.TunableHyperparams {
		cp := *hp
		out.TunableHyperparams[name] = &cp
	}

	return out
}

func (s *Step) info() *model.StepInfo {
	return &model.StepInfo{
		Name:    s.Name,
		Kind:    s.Kind,
		Fixed:   len(s.FixedHyperparams),
		Tunable: len(s.TunableHyperparams),
	}
}
