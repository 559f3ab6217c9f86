package model

import "context"

// Primitive is the contract implemented by the underlying machine-learning
// primitives wrapped by pipeline steps.
//
// Fit is side-effect only. Produce is a pure transformation from the
// pipeline's point of view, although the primitive itself may hold fitted
// state.
type Primitive interface {
	// Fit trains the primitive on the given data and labels. Extra keyword
	// arguments are forwarded verbatim to the primitive.
	Fit(ctx context.Context, data, labels any, extra map[string]any) error
	// Produce transforms the given data.
	Produce(ctx context.Context, data any) (any, error)
}

// ModelBuilder constructs a fresh primitive instance from a flat
// hyperparameter configuration. A step keeps its builder for its whole
// lifetime and calls it again on every rebuild.
type ModelBuilder func(params map[string]any) (Primitive, error)

// BuilderResolver maps a fully qualified primitive class identifier to the
// builder able to instantiate it.
type BuilderResolver func(class string) (ModelBuilder, error)
