package digester

import "math"

// DefaultStep is the minimum advance, in percentage points,
// between two streaming progress reports.
const DefaultStep = 10

// ProgressFunc receives a progress percentage in [0, 100].
type ProgressFunc func(percent int)

// percent returns floor(consumed/size*100). An empty file is
// complete as soon as it is opened.
func percent(consumed, size int64) int {
	if size <= 0 {
		return 100
	}

	return int(math.Floor(
		float64(consumed) / float64(size) * 100,
	))
}

// progressTracker decides which streaming percentages are
// reported. It is owned by a single Calculate call.
type progressTracker struct {
	size   int64
	step   int
	last   int
	report ProgressFunc
}

// advance records that consumed bytes have been hashed and
// reports the new percentage when it has moved at least step
// points past the last report. 100 is never reported here.
func (pt *progressTracker) advance(consumed int64) {
	pc := percent(consumed, pt.size)

	if pc >= pt.last+pt.step && pc < 100 {
		pt.last = pc
		pt.report(pc)
	}
}
