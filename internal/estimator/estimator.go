package estimator

import (
	"math"
)

const (
	// CoverageRate is the area in square meters covered by one liter of paint.
	CoverageRate = 6.0
	// SmallJobLimit is the volume up to which a single large can competes with small cans.
	SmallJobLimit = 18.0

	// maxCost bounds the price of any single can line so counts and their
	// sum stay exact in both float64 and int.
	maxCost = 1 << 52
)

var (
	// LargeCan is the 20 liter offer.
	LargeCan = Can{Liters: 20, Price: 350}
	// SmallCan is the 3.6 liter offer.
	SmallCan = Can{Liters: 3.6, Price: 89}
)

type canEstimator struct {
	large Can
	small Can
}

// New creates an Estimator that buys from the fixed can catalogue.
func New() Estimator {
	return &canEstimator{
		large: LargeCan,
		small: SmallCan,
	}
}

// RequiredLiters returns the paint volume needed to give area the requested number of coats.
func RequiredLiters(area float64, coats int) float64 {
	return area * float64(coats) / CoverageRate
}

func (e *canEstimator) Estimate(area float64, coats int) (Estimate, error) {
	if area < 0 || math.IsNaN(area) || math.IsInf(area, 0) {
		return Estimate{}, ErrInvalidArea
	}
	if coats < 1 {
		return Estimate{}, ErrInvalidCoats
	}

	liters := RequiredLiters(area, coats)
	if !e.priceable(liters) {
		return Estimate{}, ErrAreaTooLarge
	}

	var plan PurchasePlan
	if liters <= SmallJobLimit {
		plan = e.compare(liters)
	} else {
		plan = e.mix(liters)
	}

	return Estimate{
		Area:   area,
		Coats:  coats,
		Liters: liters,
		Plan:   plan,
	}, nil
}

// priceable reports whether covering liters with either can size alone stays under maxCost.
func (e *canEstimator) priceable(liters float64) bool {
	for _, c := range []Can{e.large, e.small} {
		if math.Ceil(liters/c.Liters)*float64(c.Price) > maxCost {
			return false
		}
	}
	return true
}

// compare prices one large can against enough small cans to cover liters.
func (e *canEstimator) compare(liters float64) PurchasePlan {
	smallCans := canCount(liters, e.small.Liters)
	largeOnly := e.large.Price
	smallOnly := smallCans * e.small.Price

	if largeOnly < smallOnly {
		return PurchasePlan{
			Strategy:      StrategySingleLarge,
			LargeCans:     1,
			Cost:          largeOnly,
			LargeOnlyCost: largeOnly,
			SmallOnlyCost: smallOnly,
			Savings:       smallOnly - largeOnly,
			Leftover:      e.large.Liters - liters,
			LargeLeftover: e.large.Liters - liters,
		}
	}

	return PurchasePlan{
		Strategy:      StrategySmallOnly,
		SmallCans:     smallCans,
		Cost:          smallOnly,
		LargeOnlyCost: largeOnly,
		SmallOnlyCost: smallOnly,
		Savings:       largeOnly - smallOnly,
		Leftover:      float64(smallCans)*e.small.Liters - liters,
		LargeLeftover: e.large.Liters - liters,
	}
}

// mix fills liters with as many large cans as fit and tops up with small cans.
func (e *canEstimator) mix(liters float64) PurchasePlan {
	largeCans := int(math.Floor(liters / e.large.Liters))
	remaining := liters - float64(largeCans)*e.large.Liters

	smallCans := 0
	if remaining > 0 {
		smallCans = canCount(remaining, e.small.Liters)
	}

	bought := float64(largeCans)*e.large.Liters + float64(smallCans)*e.small.Liters
	return PurchasePlan{
		Strategy:  StrategyMixed,
		LargeCans: largeCans,
		SmallCans: smallCans,
		Cost:      largeCans*e.large.Price + smallCans*e.small.Price,
		Leftover:  bought - liters,
	}
}

func canCount(liters, size float64) int {
	return int(math.Ceil(liters / size))
}
