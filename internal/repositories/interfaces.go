package repositories

import (
	"context"

	"github.com/jduncan017/pourcost/internal/models"
)

type IngredientRepository interface {
	BulkCreate(ctx context.Context, ingredients []*models.Ingredient) error
	Create(ctx context.Context, ingredient *models.Ingredient) error
	Update(ctx context.Context, ingredient *models.Ingredient) error
	GetByID(ctx context.Context, id string) (*models.Ingredient, error)
	GetAll(ctx context.Context) ([]*models.Ingredient, error)
	Count(ctx context.Context) (int, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}

type CocktailRepository interface {
	BulkCreate(ctx context.Context, cocktails []*models.Cocktail) error
	Create(ctx context.Context, cocktail *models.Cocktail) error
	Update(ctx context.Context, cocktail *models.Cocktail) error
	GetByID(ctx context.Context, id string) (*models.Cocktail, error)
	GetAll(ctx context.Context) ([]*models.Cocktail, error)
	Count(ctx context.Context) (int, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}
