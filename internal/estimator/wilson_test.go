package estimator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWilsonKnownValue(t *testing.T) {
	// 50 wins in 100 trials: the Wilson 95% interval is [0.4038, 0.5962].
	lower, upper := wilson(0.5, 100)
	assert.InDelta(t, 0.4038, lower, 0.0005)
	assert.InDelta(t, 0.5962, upper, 0.0005)
}

func TestWilsonExtremes(t *testing.T) {
	// Unlike the normal approximation, Wilson bounds stay inside [0,1]
	// even at p=0 or p=1 with a single trial.
	lower, upper := wilson(0.0, 1)
	assert.InDelta(t, 0.0, lower, 1e-12)
	assert.Less(t, upper, 1.0)

	lower, upper = wilson(1.0, 1)
	assert.Greater(t, lower, 0.0)
	assert.InDelta(t, 1.0, upper, 1e-12)
}

func TestWilsonNarrowsWithTrials(t *testing.T) {
	lowerSmall, upperSmall := wilson(0.5, 100)
	lowerBig, upperBig := wilson(0.5, 10000)
	assert.Less(t, upperBig-lowerBig, upperSmall-lowerSmall)
}

func TestZQuantile(t *testing.T) {
	assert.InDelta(t, 1.959964, z975, 1e-5)
}
