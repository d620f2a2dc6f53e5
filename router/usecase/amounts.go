package usecase

import (
	"fmt"

	"github.com/osmosis-labs/osmosis/osmomath"

	"github.com/riverdex/sor/domain"
)

var oneHundred = osmomath.NewInt(100)

// GetAmountDistribution splits amount into fractions of distributionPercent,
// 2*distributionPercent and so on up to 100 percent.
// Amounts are truncated, the 100 percent fraction is always the full amount.
func GetAmountDistribution(amount osmomath.Int, distributionPercent int) ([]domain.AmountFraction, error) {
	if distributionPercent <= 0 || 100%distributionPercent != 0 {
		return nil, fmt.Errorf("distribution percent (%d) must be a positive divisor of 100", distributionPercent)
	}

	numFractions := 100 / distributionPercent
	fractions := make([]domain.AmountFraction, 0, numFractions)
	for i := 1; i <= numFractions; i++ {
		percent := i * distributionPercent
		fractions = append(fractions, domain.AmountFraction{
			Percent: percent,
			Amount:  amount.MulRaw(int64(percent)).Quo(oneHundred),
		})
	}

	return fractions, nil
}

// ReconcileSplitAmounts assigns the amounts of the chosen splits so that they sum to
// exactly total. The rounding residual goes to the split with the largest percent,
// the first one on ties.
func ReconcileSplitAmounts(total osmomath.Int, percents []int) []osmomath.Int {
	amounts := make([]osmomath.Int, len(percents))
	if len(percents) == 0 {
		return amounts
	}

	sum := osmomath.ZeroInt()
	largest := 0
	for i, percent := range percents {
		amounts[i] = total.MulRaw(int64(percent)).Quo(oneHundred)
		sum = sum.Add(amounts[i])

		if percent > percents[largest] {
			largest = i
		}
	}

	amounts[largest] = amounts[largest].Add(total.Sub(sum))
	return amounts
}
