package mlpipeline

import (
	"log/slog"

	"github.com/deepmining/go-mlpipeline/pkg/mlpipeline/model"
)

// Option configures a pipeline at construction time.
type Option func(p *Pipeline)

// WithDataflow overrides the execution order of the pipeline. Every name
// must reference a declared step.
func WithDataflow(names ...string) Option {
	return func(p *Pipeline) {
		p.dataflow = names
	}
}

// WithLogger sets the logger used by the pipeline.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// WithParsers sets the parser registry used when building a pipeline from
// metadata.
func WithParsers(registry *ParserRegistry) Option {
	return func(p *Pipeline) {
		p.parsers = registry
	}
}

// WithBuilderResolver sets the resolver mapping primitive class identifiers
// to model builders. It is consulted by the default parser registry when
// building from metadata.
func WithBuilderResolver(resolve model.BuilderResolver) Option {
	return func(p *Pipeline) {
		p.resolve = resolve
	}
}

// WithPrimitivesDir sets the directory searched by FromNamed for metadata
// files. It defaults to the MLPIPE_PRIMITIVES_DIR environment variable, then
// to DefaultPrimitivesDir.
func WithPrimitivesDir(dir string) Option {
	return func(p *Pipeline) {
		p.primitivesDir = dir
	}
}

// WithMeasure enables per-step fit and produce duration measurement.
func WithMeasure() Option {
	return func(p *Pipeline) {
		p.measure = newMeasure()
	}
}
