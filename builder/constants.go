// Package builder defines shared constants used by the topology generators.
package builder

//-----------------------------------------------------------------------------
// Method names, used to prefix errors with the generator name.
//-----------------------------------------------------------------------------

const (
	// MethodRandomSymmetric is the canonical name for the RandomSymmetric generator.
	MethodRandomSymmetric = "RandomSymmetric"
	// MethodSmallWorld is the canonical name for the SmallWorld generator.
	MethodSmallWorld = "SmallWorld"
)

//-----------------------------------------------------------------------------
// Peer-bound arithmetic
//-----------------------------------------------------------------------------

// TargetRatioNum and TargetRatioDen express the 0.9 cap on a node's drawn
// connection target as an exact ratio: target ≤ floor(max·9/10) and
// min ≤ 0.9·max ⇔ 10·min ≤ 9·max. Integer math keeps the boundary exact.
const (
	TargetRatioNum = 9
	TargetRatioDen = 10
)

// MinPeers is the smallest accepted lower peer bound for RandomSymmetric.
const MinPeers = 1

// MinNodes is the smallest accepted node count for every generator.
const MinNodes = 1

//-----------------------------------------------------------------------------
// Probability bounds (density, propagation)
//-----------------------------------------------------------------------------

// MinProbability is the inclusive lower bound of density and propagation.
const MinProbability = 0.0

// MaxProbability is the inclusive upper bound of density and propagation.
const MaxProbability = 1.0

//-----------------------------------------------------------------------------
// Defaults
//-----------------------------------------------------------------------------

// DefaultAttemptFactor bounds RandomSymmetric candidate draws per node to
// DefaultAttemptFactor·n before ErrGenerationStarvation is returned.
const DefaultAttemptFactor = 64

// DefaultWorkers is the number of goroutines evaluating SmallWorld rows.
const DefaultWorkers = 1

// NoPeerCeiling disables the optional SmallWorld degree ceiling.
const NoPeerCeiling = -1
