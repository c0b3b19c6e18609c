package estimator

// Can is a paint can offer: its volume in liters and unit price in whole currency units.
type Can struct {
	Liters float64
	Price  int
}

// Strategy names the purchase recommendation.
type Strategy int

const (
	// StrategySingleLarge buys one large can for a small job.
	StrategySingleLarge Strategy = iota + 1
	// StrategySmallOnly buys only small cans for a small job.
	StrategySmallOnly
	// StrategyMixed buys large cans and covers the remainder with small cans.
	StrategyMixed
)

func (s Strategy) String() string {
	switch s {
	case StrategySingleLarge:
		return "single_large"
	case StrategySmallOnly:
		return "small_only"
	case StrategyMixed:
		return "mixed"
	default:
		return "unknown"
	}
}

// PurchasePlan describes which cans to buy and what they cost.
//
// Leftover is the paint remaining after the recommended purchase, whatever
// the strategy. LargeOnlyCost, SmallOnlyCost, Savings and LargeLeftover are
// only populated for small jobs, where one large can is compared with small
// cans: Savings is what the recommended option saves over the other and
// LargeLeftover is what a single large can would leave over.
type PurchasePlan struct {
	Strategy      Strategy
	LargeCans     int
	SmallCans     int
	Cost          int
	LargeOnlyCost int
	SmallOnlyCost int
	Savings       int
	Leftover      float64
	LargeLeftover float64
}

// Compared reports whether the plan came from the small-job comparison.
func (p PurchasePlan) Compared() bool {
	return p.Strategy == StrategySingleLarge || p.Strategy == StrategySmallOnly
}

// Estimate is the outcome of a paint calculation.
type Estimate struct {
	Area   float64
	Coats  int
	Liters float64
	Plan   PurchasePlan
}

// Estimator describes the behaviour required from a paint estimator.
type Estimator interface {
	Estimate(area float64, coats int) (Estimate, error)
}
