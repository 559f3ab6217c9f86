// Package model provides the data structures and contracts shared across the
// mlpipeline package: the primitive contract, hyperparameter value objects
// and the declarative step metadata.
package model
