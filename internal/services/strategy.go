package services

import (
	"gorm.io/gorm"

	"github.com/shishigami87/aimroutines/pkg/errors"
)

// Strategy is a named filter preset applied when listing routines.
type Strategy string

const (
	StrategyAllRoutines      Strategy = "all-routines"
	StrategyNoBenchmarks     Strategy = "no-benchmarks"
	StrategyOnlyBenchmarks   Strategy = "only-benchmarks"
	StrategyBenchmarks       Strategy = "benchmarks" // legacy name for only-benchmarks
	StrategyActiveBenchmarks Strategy = "active-benchmarks"
	StrategyLikedRoutines    Strategy = "liked-routines"
	StrategyBeginners        Strategy = "beginner-recommendations"
	StrategyBeginnersLegacy  Strategy = "recommend-beginners" // legacy name from the old dropdown
)

// ResolveStrategy maps a raw strategy name to its canonical value. An empty
// name means the default view. Unknown names are rejected instead of being
// silently treated as all-routines, so typos in shared URLs surface.
func ResolveStrategy(name string) (Strategy, error) {
	switch Strategy(name) {
	case "":
		return StrategyAllRoutines, nil
	case StrategyAllRoutines, StrategyNoBenchmarks, StrategyOnlyBenchmarks,
		StrategyActiveBenchmarks, StrategyLikedRoutines, StrategyBeginners:
		return Strategy(name), nil
	case StrategyBenchmarks:
		return StrategyOnlyBenchmarks, nil
	case StrategyBeginnersLegacy:
		return StrategyBeginners, nil
	default:
		return "", errors.BadRequest("Unknown strategy: " + name)
	}
}

// RequiresIdentity reports whether the strategy is scoped to the caller.
func (s Strategy) RequiresIdentity() bool {
	return s == StrategyActiveBenchmarks || s == StrategyLikedRoutines
}

// matchNothing is the scope for identity-scoped strategies called without an
// identity: anonymous callers get an empty result, never an error.
func matchNothing(db *gorm.DB) *gorm.DB {
	return db.Where("1 = 0")
}

// Scope turns the strategy into a query filter over the routine table.
// callerID may be empty; beginnerIDs is the deployment's curated list.
func (s Strategy) Scope(callerID string, beginnerIDs []string) func(*gorm.DB) *gorm.DB {
	switch s {
	case StrategyOnlyBenchmarks:
		return func(db *gorm.DB) *gorm.DB {
			return db.Where(`"isBenchmark" = ?`, true)
		}
	case StrategyActiveBenchmarks:
		if callerID == "" {
			return matchNothing
		}
		return func(db *gorm.DB) *gorm.DB {
			return db.Where(`"isBenchmark" = ?`, true).
				Where(`id IN (SELECT "routineId" FROM "RoutineBenchmark" WHERE "userId" = ?)`, callerID)
		}
	case StrategyLikedRoutines:
		if callerID == "" {
			return matchNothing
		}
		return func(db *gorm.DB) *gorm.DB {
			return db.Where(`id IN (SELECT "routineId" FROM "RoutineLiked" WHERE "userId" = ?)`, callerID)
		}
	case StrategyBeginners:
		if len(beginnerIDs) == 0 {
			return matchNothing
		}
		return func(db *gorm.DB) *gorm.DB {
			return db.Where("id IN ?", beginnerIDs)
		}
	default:
		// all-routines and no-benchmarks: benchmarks live in their own views
		return func(db *gorm.DB) *gorm.DB {
			return db.Where(`"isBenchmark" = ?`, false)
		}
	}
}
