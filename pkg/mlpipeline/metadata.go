package mlpipeline

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/deepmining/go-mlpipeline/internal/env"
	"github.com/deepmining/go-mlpipeline/pkg/mlpipeline/model"
)

// DefaultPrimitivesDir is the fallback directory for named metadata
// references when MLPIPE_PRIMITIVES_DIR is not set.
const DefaultPrimitivesDir = "components/primitives"

const primitivesDirEnv = "MLPIPE_PRIMITIVES_DIR"

var metadataExtensions = []string{".json", ".yaml", ".yml"}

// FromMetadata builds a pipeline from declarative step metadata. The parser
// for each description is selected from the registry by its class
// identifier, and the resulting steps are assembled in declaration order.
func FromMetadata(mds []model.Metadata, opts ...Option) (*Pipeline, error) {
	settings := applyOptions(opts)
	registry := settings.parsers
	if registry == nil {
		registry = DefaultParsers(settings.resolve)
	}

	steps := make([]*Step, len(mds))
	for i, md := range mds {
		step, err := registry.Lookup(md.Class).BuildStep(md)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to build step %d", i)
		}
		steps[i] = step
	}

	return New(steps, opts...)
}

// FromFiles builds a pipeline from metadata files. JSON and YAML files are
// supported, decided by extension. Files are loaded concurrently; the step
// order follows the argument order.
func FromFiles(paths []string, opts ...Option) (*Pipeline, error) {
	mds := make([]model.Metadata, len(paths))

	grp := errgroup.Group{}
	for i, path := range paths {
		i, path := i, path
		grp.Go(func() error {
			md, err := loadMetadataFile(path)
			if err != nil {
				return err
			}
			mds[i] = md

			return nil
		})
	}
	err := grp.Wait()
	if err != nil {
		return nil, err
	}

	return FromMetadata(mds, opts...)
}

// FromNamed builds a pipeline from logical primitive names. Each name must
// resolve to a metadata file inside the primitives directory; a name that
// does not resolve fails, naming the reference, before anything is built.
func FromNamed(names []string, opts ...Option) (*Pipeline, error) {
	dir := applyOptions(opts).primitivesDir
	if dir == "" {
		dir = env.Lookup(primitivesDirEnv, DefaultPrimitivesDir)
	}

	paths := make([]string, 0, len(names))
	for _, name := range names {
		path, err := resolveReference(dir, name)
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}

	return FromFiles(paths, opts...)
}

// applyOptions runs the options against a throwaway pipeline so that the
// package-level constructors can read settings before any step exists.
func applyOptions(opts []Option) *Pipeline {
	settings := &Pipeline{}
	for _, opt := range opts {
		opt(settings)
	}

	return settings
}

func resolveReference(dir, name string) (string, error) {
	for _, ext := range metadataExtensions {
		path := filepath.Join(dir, name+ext)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	return "", errors.Wrapf(ErrUnknownReference, "%s in %s", name, dir)
}

func loadMetadataFile(path string) (model.Metadata, error) {
	var md model.Metadata

	raw, err := os.ReadFile(path)
	if err != nil {
		return md, errors.Wrapf(err, "unable to read metadata file %s", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, &md)
	default:
		err = json.Unmarshal(raw, &md)
	}
	if err != nil {
		return md, errors.Wrapf(err, "unable to decode metadata file %s", path)
	}

	return md, nil
}
