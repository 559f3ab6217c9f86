package mlpipeline

import (
	"log/slog"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"

	"github.com/deepmining/go-mlpipeline/internal/store"
	"github.com/deepmining/go-mlpipeline/pkg/mlpipeline/model"
)

// Pipeline chains named steps into a linear dataflow and keeps their
// hyperparameter state in sync with the underlying models.
type Pipeline struct {
	steps    map[string]*Step
	dataflow []string

	flow      graph.Graph[string, *model.StepInfo]
	flowStore store.CustomStore[string, *model.StepInfo]
	logger    *slog.Logger
	measure   *measure

	parsers       *ParserRegistry
	resolve       model.BuilderResolver
	primitivesDir string
}

// New creates a pipeline from the given steps. The execution order defaults
// to the declaration order and can be overridden with WithDataflow.
//
// Step names must be unique; on a duplicate the later step silently replaces
// the earlier one and the name appears twice in the default dataflow, so the
// surviving step runs twice. A warning is logged when this happens.
//
// Hyperparameter state is copied from the given steps, so a step can be
// reused to build a second pipeline without the two pipelines interfering.
func New(steps []*Step, opts ...Option) (*Pipeline, error) {
	pipe := &Pipeline{
		steps:  make(map[string]*Step, len(steps)),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(pipe)
	}

	declared := make([]string, 0, len(steps))
	for _, step := range steps {
		if step == nil {
			return nil, ErrStepMustBeSet
		}
		if _, ok := pipe.steps[step.Name]; ok {
			pipe.logger.Warn("duplicate step name, later step replaces the earlier one", "step", step.Name)
		}
		pipe.steps[step.Name] = step.clone()
		declared = append(declared, step.Name)
	}

	if pipe.dataflow == nil {
		pipe.dataflow = declared
	}
	for _, name := range pipe.dataflow {
		if _, ok := pipe.steps[name]; !ok {
			return nil, errors.Wrap(ErrDataflowUnknownStep, name)
		}
	}

	err := pipe.buildFlow()
	if err != nil {
		return nil, errors.Wrap(err, "unable to build dataflow graph")
	}

	return pipe, nil
}

func (p *Pipeline) buildFlow() error {
	p.flowStore = store.NewMemoryStore[string, *model.StepInfo]()
	p.flow = graph.NewWithStore(stepInfoHash, p.flowStore, graph.Directed())

	for _, step := range p.steps {
		err := p.flow.AddVertex(step.info())
		if err != nil {
			return err
		}
	}
	for i := 1; i < len(p.dataflow); i++ {
		err := p.flow.AddEdge(p.dataflow[i-1], p.dataflow[i])
		if err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
			return err
		}
	}

	return nil
}

func stepInfoHash(info *model.StepInfo) string {
	return info.Name
}

// Step returns the step registered under the given name.
func (p *Pipeline) Step(name string) (*Step, bool) {
	step, ok := p.steps[name]

	return step, ok
}

// Dataflow returns a copy of the execution order.
func (p *Pipeline) Dataflow() []string {
	out := make([]string, len(p.dataflow))
	copy(out, p.dataflow)

	return out
}
