// Package finance provides helpers for basic financial calculations over
// equity and return series. Everything works in float64, so the standard
// disclaimers about rounding floating-point money apply.
//
// A "return" throughout is fractional: 0.05 means 5% growth, -0.5 means
// losing half.
package finance

import (
	"math"
	"slices"

	"github.com/Areteos/arete-utilities/seq"
)

// Return calculates the fractional return between an initial and final
// equity.
func Return(initialEquity, finalEquity float64) float64 {
	return (finalEquity - initialEquity) / initialEquity
}

// ReturnsFromEquities returns the effective return between each consecutive
// pair of equities, in recording order.
func ReturnsFromEquities(equities []float64) []float64 {
	returns := make([]float64, 0, max(len(equities)-1, 0))
	for pair := range seq.InPairs(slices.Values(equities)) {
		returns = append(returns, Return(pair.First, pair.Second))
	}
	return returns
}

// OverallReturn calculates the return from the first equity in the series to
// the last.
func OverallReturn(equities []float64) float64 {
	return Return(equities[0], equities[len(equities)-1])
}

// GeometricAverageReturn finds the consistent per-period return that would
// produce the same overall growth as the given sequence of actual returns.
func GeometricAverageReturn(returns []float64) float64 {
	finalEquity := 1.0
	for _, r := range returns {
		finalEquity *= 1 + r
	}
	return ExpressReturnOverDifferentPeriod(Return(1, finalEquity), float64(len(returns)))
}

// ExpressReturnOverDifferentPeriod converts an overall return for some period
// into the equivalent compounding return over a different period, specified
// as the ratio of the old period's length to the new one's.
func ExpressReturnOverDifferentPeriod(returnForPeriod, ratioOfOldPeriodToNew float64) float64 {
	return math.Pow(1+returnForPeriod, 1/ratioOfOldPeriodToNew) - 1
}

// DownsideDeviation calculates the downside deviation of the returns against
// a minimum acceptable return: the root mean square of each shortfall below
// the minimum, counting on-target returns as zero.
func DownsideDeviation(returns []float64, minimumAcceptableReturn float64) float64 {
	sumSquare := 0.0
	for _, r := range returns {
		if r < minimumAcceptableReturn {
			shortfall := r - minimumAcceptableReturn
			sumSquare += shortfall * shortfall
		}
	}
	return math.Sqrt(sumSquare / float64(len(returns)))
}

// SortinoRatio calculates the Sortino ratio of the returns: the geometric
// average return in excess of the minimum acceptable return, divided by the
// downside deviation.
func SortinoRatio(returns []float64, minimumAcceptableReturn float64) float64 {
	downsideDeviation := DownsideDeviation(returns, minimumAcceptableReturn)
	averageReturn := GeometricAverageReturn(returns)
	return (averageReturn - minimumAcceptableReturn) / downsideDeviation
}

// AbsoluteEarningPotential works out the maximum growth multiple achievable
// by a perfect trader over the given price series: one who may go long or
// short with their full equity at each listed price, and always chooses
// correctly. Every price move therefore compounds as an absolute return.
func AbsoluteEarningPotential(prices []float64) float64 {
	absoluteEarnings := 1.0
	for pair := range seq.InPairs(slices.Values(prices)) {
		absoluteEarnings *= 1 + math.Abs(Return(pair.First, pair.Second))
	}
	return absoluteEarnings
}
