package mlpipeline

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/deepmining/go-mlpipeline/pkg/mlpipeline/model"
)

// Primitive builders registered by the host application, keyed by the fully
// qualified class identifier found in step metadata.
var (
	primitivesMu sync.RWMutex
	primitives   = make(map[string]model.ModelBuilder)
)

// RegisterPrimitive makes a primitive class available to the metadata
// parsers. Registering the same class twice replaces the previous builder.
func RegisterPrimitive(class string, builder model.ModelBuilder) {
	primitivesMu.Lock()
	defer primitivesMu.Unlock()
	primitives[class] = builder
}

// DefaultResolver resolves a class identifier against the registered
// primitives.
func DefaultResolver(class string) (model.ModelBuilder, error) {
	primitivesMu.RLock()
	defer primitivesMu.RUnlock()

	builder, ok := primitives[class]
	if !ok {
		return nil, errors.Wrap(ErrUnknownClass, class)
	}

	return builder, nil
}
