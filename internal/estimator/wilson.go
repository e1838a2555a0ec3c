package estimator

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// z975 is the standard normal 97.5th percentile, giving a two-sided 95%
// interval.
var z975 = distuv.UnitNormal.Quantile(0.975)

// wilson returns the 95% Wilson score interval for a binomial proportion p
// observed over n trials. No continuity correction is applied; at extreme
// proportions the bounds still land inside [0,1], which is the reason this
// interval is used over the normal approximation.
func wilson(p float64, n int) (lower, upper float64) {
	z := z975
	nf := float64(n)

	denom := 1 + z*z/nf
	centre := p + z*z/(2*nf)
	spread := z * math.Sqrt((p*(1-p)+z*z/(4*nf))/nf)

	return (centre - spread) / denom, (centre + spread) / denom
}
