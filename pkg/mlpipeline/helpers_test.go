package mlpipeline_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/deepmining/go-mlpipeline/pkg/mlpipeline"
	"github.com/deepmining/go-mlpipeline/pkg/mlpipeline/model"
)

// recorder tracks the order of fit and produce calls across a pipeline.
type recorder struct {
	mu    sync.Mutex
	calls []string
}

func (r *recorder) add(call string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, call)
}

func (r *recorder) all() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, len(r.calls))
	copy(out, r.calls)

	return out
}

// fakePrimitive applies transform to its input and records its calls.
type fakePrimitive struct {
	name      string
	params    map[string]any
	transform func(x any) any
	rec       *recorder

	fitCalls  int
	lastExtra map[string]any
	fitErr    error
	prodErr   error
}

func (f *fakePrimitive) Fit(_ context.Context, _, _ any, extra map[string]any) error {
	f.fitCalls++
	f.lastExtra = extra
	if f.rec != nil {
		f.rec.add("fit:" + f.name)
	}

	return f.fitErr
}

func (f *fakePrimitive) Produce(_ context.Context, data any) (any, error) {
	if f.rec != nil {
		f.rec.add("produce:" + f.name)
	}
	if f.prodErr != nil {
		return nil, f.prodErr
	}
	if f.transform == nil {
		return data, nil
	}

	return f.transform(data), nil
}

// builtLog keeps every primitive a builder created, in creation order.
type builtLog struct {
	mu    sync.Mutex
	prims []*fakePrimitive
}

func (b *builtLog) add(prim *fakePrimitive) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.prims = append(b.prims, prim)
}

func (b *builtLog) last() *fakePrimitive {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.prims) == 0 {
		return nil
	}

	return b.prims[len(b.prims)-1]
}

func (b *builtLog) count() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.prims)
}

func builderFor(name string, transform func(any) any, rec *recorder, log *builtLog) model.ModelBuilder {
	return func(params map[string]any) (model.Primitive, error) {
		prim := &fakePrimitive{name: name, params: params, transform: transform, rec: rec}
		if log != nil {
			log.add(prim)
		}

		return prim, nil
	}
}

func mustStep(t *testing.T, name string, transform func(any) any, rec *recorder, log *builtLog, fixed map[string]any, tunable []model.Hyperparam) *mlpipeline.Step {
	t.Helper()

	step, err := mlpipeline.NewStep(name, builderFor(name, transform, rec, log), fixed, tunable)
	require.NoError(t, err)

	return step
}

func addOne(x any) any { return x.(int) + 1 }

func double(x any) any { return x.(int) * 2 }

func triple(x any) any { return x.(int) * 3 }
