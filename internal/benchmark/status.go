package benchmark

import (
	"math"

	"github.com/crelens/dealsense/internal/model"
)

// Classify places a metric value against its band.
//
// A band declared with min > max marks a lower-is-better metric: at or below
// preferred is OK, at or below the swapped lower bound is Borderline, above
// is Offside. Otherwise a preferred pair is treated as the OK range, and a
// preferred point gets a 10% tolerance around it.
func Classify(value float64, band Band) model.BenchStatus {
	if len(band.Preferred) == 0 {
		return model.StatusUnknown
	}

	min, max := band.Min, band.Max
	if min > max {
		min, max = max, min
		preferred := band.Preferred[0]
		switch {
		case value <= preferred:
			return model.StatusOK
		case value <= min:
			return model.StatusBorderline
		default:
			return model.StatusOffside
		}
	}

	if len(band.Preferred) >= 2 {
		lo, hi := band.Preferred[0], band.Preferred[1]
		switch {
		case lo <= value && value <= hi:
			return model.StatusOK
		case (min <= value && value < lo) || (hi < value && value <= max):
			return model.StatusBorderline
		default:
			return model.StatusOffside
		}
	}

	preferred := band.Preferred[0]
	tolerance := math.Abs(preferred * 0.1)
	switch {
	case math.Abs(value-preferred) <= tolerance:
		return model.StatusOK
	case min <= value && value <= max:
		return model.StatusBorderline
	default:
		return model.StatusOffside
	}
}

// Compare looks up a metric's band and classifies the value against it in
// one step. Metrics with no band come back as Unknown with empty bounds.
func Compare(repo *Repository, assetClass, subclass, metric string, value float64) model.BenchComparison {
	band, ok := repo.Lookup(assetClass, subclass, metric)
	if !ok {
		return model.BenchComparison{Metric: metric, Value: value, Status: model.StatusUnknown}
	}
	target := 0.0
	if len(band.Preferred) > 0 {
		target = band.Preferred[0]
	}
	return model.BenchComparison{
		Metric: metric,
		Value:  value,
		Status: Classify(value, band),
		Min:    band.Min,
		Target: target,
		Max:    band.Max,
		Source: band.Source,
	}
}
