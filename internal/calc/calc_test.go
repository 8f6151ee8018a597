package calc

import (
	"testing"

	"github.com/jduncan017/pourcost/internal/units"
	"github.com/stretchr/testify/require"
)

func TestCostPerOunce(t *testing.T) {
	cost, err := CostPerOunce(25, 750)
	require.NoError(t, err)
	require.InDelta(t, 25/(750/units.MlPerOunce), cost, 1e-9)
	require.InDelta(t, 0.9858, cost, 0.0001)

	cost, err = CostPerOunce(0, 750)
	require.NoError(t, err)
	require.Zero(t, cost)

	for _, size := range []float64{0, -5} {
		_, err := CostPerOunce(25, size)
		require.ErrorIs(t, err, ErrInvalidArgument)
	}

	_, err = CostPerOunce(-1, 750)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestPourCost(t *testing.T) {
	cost, err := PourCost(0.9858, 1.5)
	require.NoError(t, err)
	require.InDelta(t, 1.4787, cost, 0.0001)

	_, err = PourCost(-0.01, 1.5)
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = PourCost(1, 0)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestSuggestedPrice(t *testing.T) {
	price, err := SuggestedPrice(2.45, 20)
	require.NoError(t, err)
	require.InDelta(t, 12.25, price, 1e-9)

	for _, target := range []float64{0, -1, 100.01} {
		_, err := SuggestedPrice(2.45, target)
		require.ErrorIs(t, err, ErrInvalidArgument)
	}

	// 100% target means selling at cost.
	price, err = SuggestedPrice(2.45, 100)
	require.NoError(t, err)
	require.InDelta(t, 2.45, price, 1e-9)

	_, err = SuggestedPrice(-0.5, 20)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestPourCostPercentage(t *testing.T) {
	pct, err := PourCostPercentage(1.4787, 8)
	require.NoError(t, err)
	require.InDelta(t, 18.48, pct, 0.01)

	_, err = PourCostPercentage(-1, 8)
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = PourCostPercentage(1, 0)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestPourCostPercentageMonotonicity(t *testing.T) {
	prev := 0.0
	for _, cost := range []float64{0.5, 1, 2, 4} {
		pct, err := PourCostPercentage(cost, 10)
		require.NoError(t, err)
		require.Greater(t, pct, prev)
		prev = pct
	}

	prev = 1000.0
	for _, price := range []float64{5, 8, 12, 20} {
		pct, err := PourCostPercentage(2, price)
		require.NoError(t, err)
		require.Less(t, pct, prev)
		prev = pct
	}
}

func TestProfitMargin(t *testing.T) {
	margin, err := ProfitMargin(8, 1.4787)
	require.NoError(t, err)
	require.InDelta(t, 6.5213, margin, 0.0001)

	_, err = ProfitMargin(-1, 1)
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = ProfitMargin(8, -1)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestCocktailTotalCost(t *testing.T) {
	lines := []CocktailIngredientLine{
		{Name: "Rum", AmountOz: 2, Cost: 1.60},
		{Name: "Lime", AmountOz: 1, Cost: 0.15},
		{Name: "Curacao", AmountOz: 0.5, Cost: 0.70},
	}
	total, err := CocktailTotalCost(lines)
	require.NoError(t, err)
	require.InDelta(t, 2.45, total, 1e-9)

	total, err = CocktailTotalCost(nil)
	require.NoError(t, err)
	require.Zero(t, total)

	_, err = CocktailTotalCost([]CocktailIngredientLine{{Cost: -0.1}})
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestLevelForPercentage(t *testing.T) {
	tests := []struct {
		pct  float64
		want PerformanceLevel
	}{
		{0, LevelExcellent},
		{15, LevelExcellent},
		{15.01, LevelGood},
		{20, LevelGood},
		{20.01, LevelWarning},
		{25, LevelWarning},
		{25.01, LevelPoor},
		{80, LevelPoor},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, LevelForPercentage(tt.pct), "pct %v", tt.pct)
	}
}

func TestStandardBottleScenario(t *testing.T) {
	costPerOz, err := CostPerOunce(25, 750)
	require.NoError(t, err)
	pourCost, err := PourCost(costPerOz, 1.5)
	require.NoError(t, err)
	pct, err := PourCostPercentage(pourCost, 8)
	require.NoError(t, err)
	margin, err := ProfitMargin(8, pourCost)
	require.NoError(t, err)

	require.InDelta(t, 0.9858, costPerOz, 0.0001)
	require.InDelta(t, 1.4787, pourCost, 0.0001)
	require.InDelta(t, 18.48, pct, 0.01)
	require.Equal(t, LevelGood, LevelForPercentage(pct))
	require.InDelta(t, 6.5213, margin, 0.0001)
}

func TestOptimalPricing(t *testing.T) {
	rec, err := OptimalPricing(1.4787, 8, 20)
	require.NoError(t, err)
	require.Equal(t, LevelGood, rec.Level)
	require.InDelta(t, 7.3935, rec.RecommendedPrice, 0.0001)
	require.InDelta(t, 6.5213, rec.PotentialProfit, 0.0001)
	require.Contains(t, rec.Message, "Good pour cost")

	// Overpriced cost relative to price: message keys off the current
	// percentage, not the recommendation.
	rec, err = OptimalPricing(3, 8, 20)
	require.NoError(t, err)
	require.Equal(t, LevelPoor, rec.Level)
	require.Contains(t, rec.Message, "37.5")

	_, err = OptimalPricing(1, 0, 20)
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = OptimalPricing(1, 8, 0)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestRound2(t *testing.T) {
	require.Equal(t, 1.48, Round2(1.4787))
	require.Equal(t, 2.45, Round2(2.45))
	require.Equal(t, -1.48, Round2(-1.4787))
}
