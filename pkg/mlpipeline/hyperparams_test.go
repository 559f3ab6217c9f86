package mlpipeline_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deepmining/go-mlpipeline/pkg/mlpipeline"
	"github.com/deepmining/go-mlpipeline/pkg/mlpipeline/model"
)

func twoStepPipe(t *testing.T, log1, log2 *builtLog) *mlpipeline.Pipeline {
	t.Helper()

	pipe, err := mlpipeline.New([]*mlpipeline.Step{
		mustStep(t, "step1", addOne, nil, log1,
			map[string]any{"depth": 3},
			[]model.Hyperparam{{ParamName: "alpha", Value: 0.5}},
		),
		mustStep(t, "step2", double, nil, log2,
			map[string]any{"kernel": "rbf"},
			[]model.Hyperparam{{ParamName: "lr", Value: 0.1}},
		),
	})
	require.NoError(t, err)

	return pipe
}

func TestUpdateFixedHyperparams(t *testing.T) {
	t.Parallel()

	log1 := &builtLog{}
	pipe := twoStepPipe(t, log1, nil)

	err := pipe.UpdateFixedHyperparams(map[model.ParamKey]any{
		{Step: "step1", Param: "depth"}: 5,
	})
	require.NoError(t, err)

	fixed := pipe.GetFixedHyperparams()
	assert.Equal(t, 5, fixed[model.ParamKey{Step: "step1", Param: "depth"}])
	assert.Equal(t, "rbf", fixed[model.ParamKey{Step: "step2", Param: "kernel"}])

	// The rebuild after a fixed update sees the full configuration.
	want := map[string]any{"depth": 5, "alpha": 0.5}
	assert.Empty(t, cmp.Diff(want, log1.last().params))
}

func TestUpdateFixedHyperparamsUnknownStep(t *testing.T) {
	t.Parallel()

	log1 := &builtLog{}
	pipe := twoStepPipe(t, log1, nil)
	builds := log1.count()

	err := pipe.UpdateFixedHyperparams(map[model.ParamKey]any{
		{Step: "step1", Param: "depth"}: 5,
		{Step: "ghost", Param: "depth"}: 5,
	})
	require.ErrorIs(t, err, mlpipeline.ErrUnknownStep)
	assert.ErrorContains(t, err, "ghost")

	// No partial changes, no rebuilds.
	fixed := pipe.GetFixedHyperparams()
	assert.Equal(t, 3, fixed[model.ParamKey{Step: "step1", Param: "depth"}])
	assert.Equal(t, builds, log1.count())
}

func TestUpdateTunableHyperparamsRebuildsAllStepsFromTunableOnly(t *testing.T) {
	t.Parallel()

	log1 := &builtLog{}
	log2 := &builtLog{}
	pipe := twoStepPipe(t, log1, log2)
	builds2 := log2.count()

	err := pipe.UpdateTunableHyperparams([]model.Hyperparam{
		{StepName: "step1", ParamName: "alpha", Value: 0.9},
	})
	require.NoError(t, err)

	// Every step is rebuilt, from its tunable values only: the fixed
	// hyperparameters do not reach this rebuild.
	assert.Empty(t, cmp.Diff(map[string]any{"alpha": 0.9}, log1.last().params))
	assert.Greater(t, log2.count(), builds2)
	assert.Empty(t, cmp.Diff(map[string]any{"lr": 0.1}, log2.last().params))
}

func TestUpdateTunableHyperparamsUnknownStep(t *testing.T) {
	t.Parallel()

	pipe := twoStepPipe(t, nil, nil)

	err := pipe.UpdateTunableHyperparams([]model.Hyperparam{
		{StepName: "ghost", ParamName: "alpha", Value: 0.9},
	})
	require.ErrorIs(t, err, mlpipeline.ErrUnknownStep)
	assert.ErrorContains(t, err, "ghost")
}

func TestUpdateTunableHyperparamsIdempotent(t *testing.T) {
	t.Parallel()

	log1 := &builtLog{}
	pipe := twoStepPipe(t, log1, nil)

	before := pipe.GetTunableHyperparams()
	err := pipe.UpdateTunableHyperparams(before)
	require.NoError(t, err)

	assert.ElementsMatch(t, before, pipe.GetTunableHyperparams())
	assert.Empty(t, cmp.Diff(map[string]any{"alpha": 0.5}, log1.last().params))
}

func TestSetFromHyperparamDictBroadcast(t *testing.T) {
	t.Parallel()

	pipe, err := mlpipeline.New([]*mlpipeline.Step{
		mustStep(t, "step1", nil, nil, nil, nil, []model.Hyperparam{{ParamName: "lr", Value: 0.1}}),
		mustStep(t, "step2", nil, nil, nil, nil, []model.Hyperparam{{ParamName: "lr", Value: 0.2}}),
	})
	require.NoError(t, err)

	err = pipe.SetFromHyperparamDict(map[string]any{"lr": 0.01})
	require.NoError(t, err)

	assert.ElementsMatch(t, []model.Hyperparam{
		{StepName: "step1", ParamName: "lr", Value: 0.01},
		{StepName: "step2", ParamName: "lr", Value: 0.01},
	}, pipe.GetTunableHyperparams())
}

func TestGetTunableHyperparams(t *testing.T) {
	t.Parallel()

	pipe := twoStepPipe(t, nil, nil)

	assert.ElementsMatch(t, []model.Hyperparam{
		{StepName: "step1", ParamName: "alpha", Value: 0.5},
		{StepName: "step2", ParamName: "lr", Value: 0.1},
	}, pipe.GetTunableHyperparams())
}

func TestToDict(t *testing.T) {
	t.Parallel()

	pipe, err := mlpipeline.New([]*mlpipeline.Step{
		mustStep(t, "step1", nil, nil, nil, nil, []model.Hyperparam{{ParamName: "alpha", Value: 0.5}}),
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"step1__alpha": 0.5}, pipe.ToDict())
	assert.Contains(t, pipe.String(), "step1__alpha")
}
