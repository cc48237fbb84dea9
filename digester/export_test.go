package digester

// Exported aliases for testing internal functions from the
// digester_test package.

// PercentForTest exposes percent.
var PercentForTest = percent

// NewTrackerForTest builds a progressTracker with the given
// size and step that forwards reports to fn.
func NewTrackerForTest(
	size int64,
	step int,
	fn ProgressFunc,
) func(consumed int64) {
	pt := &progressTracker{size: size, step: step, report: fn}

	return pt.advance
}
