package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveStrategy_Defaults(t *testing.T) {
	s, err := ResolveStrategy("")
	assert.NoError(t, err)
	assert.Equal(t, StrategyAllRoutines, s)
}

func TestResolveStrategy_Canonical(t *testing.T) {
	for _, name := range []string{
		"all-routines",
		"no-benchmarks",
		"only-benchmarks",
		"active-benchmarks",
		"liked-routines",
		"beginner-recommendations",
	} {
		s, err := ResolveStrategy(name)
		assert.NoError(t, err, name)
		assert.Equal(t, Strategy(name), s)
	}
}

func TestResolveStrategy_LegacyAliases(t *testing.T) {
	s, err := ResolveStrategy("benchmarks")
	assert.NoError(t, err)
	assert.Equal(t, StrategyOnlyBenchmarks, s)

	s, err = ResolveStrategy("recommend-beginners")
	assert.NoError(t, err)
	assert.Equal(t, StrategyBeginners, s)
}

func TestResolveStrategy_Unknown(t *testing.T) {
	_, err := ResolveStrategy("most-liked")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Unknown strategy")
}

func TestRequiresIdentity(t *testing.T) {
	assert.True(t, StrategyActiveBenchmarks.RequiresIdentity())
	assert.True(t, StrategyLikedRoutines.RequiresIdentity())
	assert.False(t, StrategyAllRoutines.RequiresIdentity())
	assert.False(t, StrategyOnlyBenchmarks.RequiresIdentity())
	assert.False(t, StrategyBeginners.RequiresIdentity())
}
