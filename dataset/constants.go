// Package dataset defines shared constants used by the generators,
// ensuring consistent names, boundaries, and defaults across the package.
package dataset

//-----------------------------------------------------------------------------
// Generator Method Name Constants
//   used to prefix errors with the generator name for context.
//-----------------------------------------------------------------------------

const (
	// MethodSimple is the canonical name for the Simple generator.
	MethodSimple = "Simple"
	// MethodDiag is the canonical name for the Diag generator.
	MethodDiag = "Diag"
	// MethodSplit is the canonical name for the Split generator.
	MethodSplit = "Split"
	// MethodXor is the canonical name for the Xor generator.
	MethodXor = "Xor"
	// MethodCircle is the canonical name for the Circle generator.
	MethodCircle = "Circle"
	// MethodSpiral is the canonical name for the Spiral generator.
	MethodSpiral = "Spiral"
	// MethodLookup is the context token for registry lookups.
	MethodLookup = "Lookup"
	// MethodGenerate is the context token for the Generate entry point.
	MethodGenerate = "Generate"
)

//-----------------------------------------------------------------------------
// Class Labels
//-----------------------------------------------------------------------------

// ClassNegative is the label of the "0" class, assigned when a point fails
// its generator's membership rule.
const ClassNegative = 0

// ClassPositive is the label of the "1" class, assigned when a point
// satisfies its generator's membership rule.
const ClassPositive = 1

//-----------------------------------------------------------------------------
// Decision Boundaries
//   every threshold is named; generators contain no numeric literals.
//-----------------------------------------------------------------------------

// SimpleBoundary is the vertical decision line of the Simple rule:
// points with X1 < SimpleBoundary belong to the positive class.
const SimpleBoundary = 0.5

// DiagBoundary is the diagonal decision line of the Diag rule:
// points with X1 + X2 < DiagBoundary belong to the positive class.
const DiagBoundary = 0.5

// SplitLow is the left vertical boundary of the Split rule; points with
// X1 < SplitLow belong to the positive class.
const SplitLow = 0.2

// SplitHigh is the right vertical boundary of the Split rule; points with
// X1 > SplitHigh belong to the positive class.
const SplitHigh = 0.8

// XorBoundary splits each axis for the Xor rule; a point is positive when
// exactly one coordinate strictly exceeds it.
const XorBoundary = 0.5

// CircleCenter is the common X1/X2 coordinate of the Circle rule's center.
const CircleCenter = 0.5

// CircleRadiusSq is the squared radius of the Circle rule: points strictly
// outside the circle of radius √CircleRadiusSq around
// (CircleCenter, CircleCenter) belong to the positive class.
const CircleRadiusSq = 0.1

//-----------------------------------------------------------------------------
// Spiral Parameters
//-----------------------------------------------------------------------------

// SpiralArms is the number of interleaved spiral arms (one per class).
const SpiralArms = 2

// SpiralTurns scales the parametric angle: t = SpiralTurns·(i/half).
const SpiralTurns = 10.0

// SpiralScale divides the parametric radius, keeping arms near the unit square.
const SpiralScale = 20.0

// SpiralIndexOffset is the first arm index; starting at 5 skips the tight,
// visually indistinct center of both arms.
const SpiralIndexOffset = 5

// SpiralShift recenters both arms from the origin onto (0.5, 0.5).
const SpiralShift = 0.5

//-----------------------------------------------------------------------------
// Determinism Defaults
//-----------------------------------------------------------------------------

// DefaultSeed seeds the per-call RNG when neither WithSeed nor WithRand is
// supplied, so every generator is reproducible out of the box.
const DefaultSeed int64 = 1

// MinCount is the smallest valid point count for every generator.
// A count of 0 is valid and yields an empty Dataset.
const MinCount = 0
