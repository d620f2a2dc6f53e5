package usecase_test

import (
	"github.com/osmosis-labs/osmosis/osmomath"

	routerusecase "github.com/riverdex/sor/router/usecase"
)

func (s *RouterTestSuite) TestGetAmountDistribution() {
	tests := []struct {
		name                string
		amount              osmomath.Int
		distributionPercent int

		expectedPercents []int
		expectedAmounts  []string
		expectErr        bool
	}{
		{
			name:                "quarters",
			amount:              osmomath.NewInt(100),
			distributionPercent: 25,
			expectedPercents:    []int{25, 50, 75, 100},
			expectedAmounts:     []string{"25", "50", "75", "100"},
		},
		{
			name:                "truncated fractions keep the full amount at 100 percent",
			amount:              osmomath.NewInt(1_001),
			distributionPercent: 50,
			expectedPercents:    []int{50, 100},
			expectedAmounts:     []string{"500", "1001"},
		},
		{
			name:                "single fraction",
			amount:              osmomath.NewInt(7),
			distributionPercent: 100,
			expectedPercents:    []int{100},
			expectedAmounts:     []string{"7"},
		},
		{
			name:                "small amount truncates to zero",
			amount:              osmomath.NewInt(3),
			distributionPercent: 20,
			expectedPercents:    []int{20, 40, 60, 80, 100},
			expectedAmounts:     []string{"0", "1", "1", "2", "3"},
		},
		{
			name:                "not a divisor of 100",
			amount:              osmomath.NewInt(100),
			distributionPercent: 30,
			expectErr:           true,
		},
		{
			name:                "zero",
			amount:              osmomath.NewInt(100),
			distributionPercent: 0,
			expectErr:           true,
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			fractions, err := routerusecase.GetAmountDistribution(tc.amount, tc.distributionPercent)
			if tc.expectErr {
				s.Require().Error(err)
				return
			}

			s.Require().NoError(err)
			s.Require().Len(fractions, len(tc.expectedPercents))
			for i, fraction := range fractions {
				s.Require().Equal(tc.expectedPercents[i], fraction.Percent)
				s.Require().Equal(tc.expectedAmounts[i], fraction.Amount.String())
			}
		})
	}
}

func (s *RouterTestSuite) TestReconcileSplitAmounts() {
	tests := []struct {
		name     string
		total    osmomath.Int
		percents []int
		expected []string
	}{
		{
			name:     "exact split",
			total:    osmomath.NewInt(100),
			percents: []int{70, 30},
			expected: []string{"70", "30"},
		},
		{
			name:     "residual goes to the first largest split",
			total:    osmomath.NewInt(1_001),
			percents: []int{50, 50},
			expected: []string{"501", "500"},
		},
		{
			name:     "residual goes to the largest split",
			total:    osmomath.NewInt(10),
			percents: []int{35, 65},
			expected: []string{"3", "7"},
		},
		{
			name:     "single split takes everything",
			total:    osmomath.NewInt(999),
			percents: []int{100},
			expected: []string{"999"},
		},
		{
			name:     "no splits",
			total:    osmomath.NewInt(999),
			percents: []int{},
			expected: []string{},
		},
	}

	for _, tc := range tests {
		s.Run(tc.name, func() {
			amounts := routerusecase.ReconcileSplitAmounts(tc.total, tc.percents)

			actual := make([]string, len(amounts))
			sum := osmomath.ZeroInt()
			for i, amount := range amounts {
				actual[i] = amount.String()
				sum = sum.Add(amount)
			}

			s.Require().Equal(tc.expected, actual)
			if len(tc.percents) > 0 {
				s.Require().Equal(tc.total.String(), sum.String())
			}
		})
	}
}
