package mlpipeline

import "github.com/pkg/errors"

var (
	ErrStepMustBeSet       = errors.New("step must be set")
	ErrBuilderMustBeSet    = errors.New("builder must be set")
	ErrUnknownStep         = errors.New("unknown step")
	ErrUnknownClass        = errors.New("unknown primitive class")
	ErrUnknownReference    = errors.New("no metadata for reference")
	ErrDataflowUnknownStep = errors.New("dataflow references unknown step")
	ErrMalformedMetadata   = errors.New("malformed step metadata")
)
