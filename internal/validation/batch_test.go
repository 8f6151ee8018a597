package validation

import (
	"context"
	"testing"

	"github.com/jduncan017/pourcost/internal/models"
	"github.com/stretchr/testify/require"
)

func TestValidateBatchOrderAndProgress(t *testing.T) {
	bad := validIngredient()
	bad.Name = ""
	items := []*models.Ingredient{validIngredient(), bad, validIngredient()}

	var calls [][2]int
	results, err := ValidateBatch(context.Background(), items,
		func(_ context.Context, in *models.Ingredient) Result {
			return ValidateIngredient(in)
		},
		func(done, total int) {
			calls = append(calls, [2]int{done, total})
		})
	require.NoError(t, err)
	require.Len(t, results, 3)

	require.True(t, results[0].IsValid)
	require.False(t, results[1].IsValid)
	require.True(t, results[2].IsValid)

	require.Equal(t, [][2]int{{1, 3}, {2, 3}, {3, 3}}, calls)
}

func TestValidateBatchNilProgress(t *testing.T) {
	items := []*models.Ingredient{validIngredient()}
	results, err := ValidateBatch(context.Background(), items,
		func(_ context.Context, in *models.Ingredient) Result {
			return ValidateIngredient(in)
		}, nil)
	require.NoError(t, err)
	require.Len(t, results, 1)
}

func TestValidateBatchEmpty(t *testing.T) {
	results, err := ValidateBatch(context.Background(), []*models.Ingredient{},
		func(_ context.Context, in *models.Ingredient) Result {
			return ValidateIngredient(in)
		}, nil)
	require.NoError(t, err)
	require.Empty(t, results)
}

func TestValidateBatchCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	items := []*models.Ingredient{validIngredient(), validIngredient(), validIngredient()}

	processed := 0
	results, err := ValidateBatch(ctx, items,
		func(_ context.Context, in *models.Ingredient) Result {
			processed++
			if processed == 1 {
				cancel()
			}
			return ValidateIngredient(in)
		}, nil)
	require.ErrorIs(t, err, context.Canceled)
	require.Len(t, results, 1)
	require.Equal(t, 1, processed)
}
