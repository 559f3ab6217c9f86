package cli

import (
	"context"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/deepmining/go-mlpipeline/pkg/mlpipeline"
	"github.com/deepmining/go-mlpipeline/pkg/mlpipeline/model"
)

// inertPrimitive stands in for a real primitive when the CLI only needs the
// hyperparameter bookkeeping of a pipeline, not its compute.
type inertPrimitive struct{}

func (inertPrimitive) Fit(context.Context, any, any, map[string]any) error {
	return errors.New("inert primitive cannot fit")
}

func (inertPrimitive) Produce(context.Context, any) (any, error) {
	return nil, errors.New("inert primitive cannot produce")
}

func inertResolver(string) (model.ModelBuilder, error) {
	return func(map[string]any) (model.Primitive, error) {
		return inertPrimitive{}, nil
	}, nil
}

// buildPipeline loads the given references as metadata files when they carry
// a known extension, and as named primitives otherwise.
func (a *app) buildPipeline(refs []string) (*mlpipeline.Pipeline, error) {
	opts := []mlpipeline.Option{
		mlpipeline.WithBuilderResolver(inertResolver),
		mlpipeline.WithPrimitivesDir(a.cfg.PrimitivesDir),
		mlpipeline.WithLogger(a.logger),
	}

	files := make([]string, 0, len(refs))
	names := make([]string, 0, len(refs))
	for _, ref := range refs {
		switch filepath.Ext(ref) {
		case ".json", ".yaml", ".yml":
			files = append(files, ref)
		default:
			names = append(names, ref)
		}
	}
	if len(files) > 0 && len(names) > 0 {
		return nil, errors.New("mixing metadata files and named references is not supported")
	}
	if len(files) > 0 {
		return mlpipeline.FromFiles(files, opts...)
	}

	return mlpipeline.FromNamed(names, opts...)
}
