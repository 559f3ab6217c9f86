// Package mlpipeline composes machine-learning primitives into a linear
// pipeline of named steps.
//
// A pipeline owns its steps and an explicit dataflow, the ordered list of
// step names that fit and predict walk through. Each step wraps one
// primitive and keeps two kinds of hyperparameters: fixed ones, set once and
// not meant for tuning, and tunable ones, exposed for external search.
// Updating hyperparameters rebuilds the affected models from their current
// configuration, so the primitive instances always reflect the values the
// pipeline reports.
//
// Pipelines can be assembled directly from steps or from declarative step
// metadata. Metadata parsing is dispatched through a registry keyed by the
// primitive class identifier, so new primitive families can plug in their
// own parser without touching the dispatch logic.
//
// Execution is synchronous and strictly ordered: a step's fit and produce
// both complete before the next step starts, and the first error aborts the
// run. This layer adds no retries and no error translation; failures of the
// underlying primitives reach the caller as they are.
package mlpipeline
