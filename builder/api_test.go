package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/peertopo/builder"
	"github.com/katalvlaran/peertopo/topology"
)

func TestGenerate_Dispatch(t *testing.T) {
	t.Parallel()

	sym, err := builder.Generate(builder.Params{
		Strategy: builder.StrategyRandomSymmetric,
		Nodes:    40,
		MinPeers: 2,
		MaxPeers: 6,
	}, builder.WithSeed(9))
	require.NoError(t, err)
	direct, err := builder.RandomSymmetric(40, 2, 6, builder.WithSeed(9))
	require.NoError(t, err)
	assert.True(t, sym.Equal(direct))

	sw, err := builder.Generate(builder.Params{
		Strategy:    builder.StrategySmallWorld,
		Nodes:       40,
		Density:     0.3,
		Propagation: 0.2,
		MaxDistance: 10,
		Trial:       builder.TrialSingle,
	}, builder.WithSeed(9))
	require.NoError(t, err)
	direct, err = builder.SmallWorld(40, 0.3, 0.2, 10, builder.WithSeed(9), builder.WithTrialMode(builder.TrialSingle))
	require.NoError(t, err)
	assert.True(t, sw.Equal(direct))
}

func TestGenerate_SmallWorldCeiling(t *testing.T) {
	t.Parallel()

	_, err := builder.Generate(builder.Params{
		Strategy:    builder.StrategySmallWorld,
		Nodes:       12,
		MaxPeers:    4,
		Density:     1,
		Propagation: 0,
		MaxDistance: 6,
	}, builder.WithSeed(1))
	require.ErrorIs(t, err, builder.ErrDegreeBound)
}

func TestGenerate_SmallWorldBoundsChecked(t *testing.T) {
	t.Parallel()

	base := builder.Params{
		Strategy:    builder.StrategySmallWorld,
		Nodes:       10,
		Density:     0.3,
		Propagation: 0.2,
		MaxDistance: 3,
	}
	for _, tc := range []struct{ min, max int }{
		{0, 9},
		{0, 200000},
		{5, 3},
	} {
		p := base
		p.MinPeers, p.MaxPeers = tc.min, tc.max
		g, err := builder.Generate(p, builder.WithSeed(1))
		require.ErrorIs(t, err, builder.ErrInvalidParameters, "min=%d max=%d", tc.min, tc.max)
		assert.Nil(t, g)
	}
}

func TestGenerate_UnknownStrategy(t *testing.T) {
	t.Parallel()

	_, err := builder.Generate(builder.Params{Strategy: "lattice", Nodes: 10})
	require.ErrorIs(t, err, builder.ErrInvalidParameters)
}

func TestParams_Bounds(t *testing.T) {
	t.Parallel()

	g := topology.New(4)
	require.NoError(t, g.Connect(0, 1))
	require.NoError(t, g.Connect(0, 2))

	minP, maxP := builder.Params{}.Bounds(g)
	assert.Equal(t, 0, minP)
	assert.Equal(t, 2, maxP)

	minP, maxP = builder.Params{MinPeers: 1, MaxPeers: 5}.Bounds(g)
	assert.Equal(t, 1, minP)
	assert.Equal(t, 5, maxP)

	_, maxP = builder.Params{}.Bounds(topology.New(3))
	assert.Equal(t, 1, maxP)
}
