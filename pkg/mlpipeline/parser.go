package mlpipeline

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/deepmining/go-mlpipeline/pkg/mlpipeline/model"
)

// Parser builds one step from one metadata description. Implementations
// must fail on malformed metadata rather than return a partially
// initialised step.
type Parser interface {
	BuildStep(md model.Metadata) (*Step, error)
}

type parserEntry struct {
	prefix string
	parser Parser
}

// ParserRegistry selects a parser by matching the primitive class identifier
// against registered prefixes. The longest matching prefix wins; the
// fallback parser handles everything else.
type ParserRegistry struct {
	entries  []parserEntry
	fallback Parser
}

// NewParserRegistry creates an empty registry with the given fallback
// parser.
func NewParserRegistry(fallback Parser) *ParserRegistry {
	return &ParserRegistry{fallback: fallback}
}

// Register maps a class identifier prefix to a parser.
func (r *ParserRegistry) Register(prefix string, parser Parser) {
	r.entries = append(r.entries, parserEntry{prefix: prefix, parser: parser})
}

// Lookup returns the parser for the given class identifier.
func (r *ParserRegistry) Lookup(class string) Parser {
	best := r.fallback
	bestLen := -1
	for _, entry := range r.entries {
		if strings.HasPrefix(class, entry.prefix) && len(entry.prefix) > bestLen {
			best = entry.parser
			bestLen = len(entry.prefix)
		}
	}

	return best
}

// DefaultParsers returns the registry used when none is provided: the
// generic parser as fallback and the neural parser for the usual
// deep-learning class families.
func DefaultParsers(resolve model.BuilderResolver) *ParserRegistry {
	if resolve == nil {
		resolve = DefaultResolver
	}

	registry := NewParserRegistry(&GenericParser{Resolve: resolve})
	neural := &NeuralParser{Resolve: resolve}
	registry.Register("keras.", neural)
	registry.Register("torch.", neural)

	return registry
}

// GenericParser builds a step for any primitive described by a flat
// hyperparameter configuration.
type GenericParser struct {
	Resolve model.BuilderResolver
}

func (p *GenericParser) BuildStep(md model.Metadata) (*Step, error) {
	builder, err := resolveMetadata(p.Resolve, md)
	if err != nil {
		return nil, err
	}

	return NewStep(md.Name, builder, md.Fixed, tunableFromMetadata(md))
}

// NeuralParser builds a step for layered neural-network primitives. The
// layer configurations are flattened into fixed hyperparameters so that a
// single builder call receives the whole network description.
type NeuralParser struct {
	Resolve model.BuilderResolver
}

func (p *NeuralParser) BuildStep(md model.Metadata) (*Step, error) {
	builder, err := resolveMetadata(p.Resolve, md)
	if err != nil {
		return nil, err
	}

	fixed := make(map[string]any, len(md.Fixed)+len(md.Layers))
	for name, value := range md.Fixed {
		fixed[name] = value
	}
	for i, layer := range md.Layers {
		for name, value := range layer {
			fixed[fmt.Sprintf("layer_%d_%s", i+1, name)] = value
		}
	}

	step, err := NewStep(md.Name, builder, fixed, tunableFromMetadata(md))
	if err != nil {
		return nil, err
	}
	step.Kind = model.NeuralStepKind

	return step, nil
}

func resolveMetadata(resolve model.BuilderResolver, md model.Metadata) (model.ModelBuilder, error) {
	if md.Name == "" {
		return nil, errors.Wrap(ErrMalformedMetadata, "missing step name")
	}
	if md.Class == "" {
		return nil, errors.Wrapf(ErrMalformedMetadata, "step %s has no class", md.Name)
	}

	builder, err := resolve(md.Class)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to resolve class for step %s", md.Name)
	}

	return builder, nil
}

func tunableFromMetadata(md model.Metadata) []model.Hyperparam {
	tunable := make([]model.Hyperparam, 0, len(md.Tunable))
	for name, value := range md.Tunable {
		tunable = append(tunable, model.Hyperparam{
			StepName:  md.Name,
			ParamName: name,
			Value:     value,
		})
	}

	return tunable
}
