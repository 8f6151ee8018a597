package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jduncan017/pourcost/internal/models"
	"github.com/jduncan017/pourcost/internal/units"
)

// IngredientRepository persists ingredients together with their derived
// pricing fields. Derived columns are recomputed from the base fields on
// every write so they can never go stale.
type IngredientRepository struct {
	pool      *pgxpool.Pool
	targetPct float64
}

func NewIngredientRepository(pool *pgxpool.Pool, targetPct float64) *IngredientRepository {
	return &IngredientRepository{pool: pool, targetPct: targetPct}
}

var ingredientColumns = []string{
	"id", "name", "category", "bottle_size_ml", "bottle_price",
	"pour_size_oz", "retail_price", "measurement_system", "description",
	"cost_per_oz", "pour_cost", "pour_cost_pct", "suggested_price",
	"profit_margin", "performance_level", "created_at", "updated_at",
}

func ingredientRow(in *models.Ingredient, p models.IngredientPricing) []interface{} {
	return []interface{}{
		in.ID,
		in.Name,
		string(in.Category),
		in.BottleSizeMl,
		in.BottlePrice,
		in.PourSizeOz,
		in.RetailPrice,
		string(in.System),
		in.Description,
		p.CostPerOz,
		p.PourCost,
		p.PourCostPct,
		p.SuggestedPrice,
		p.ProfitMargin,
		string(p.Level),
		in.CreatedAt,
		in.UpdatedAt,
	}
}

func (r *IngredientRepository) BulkCreate(ctx context.Context, ingredients []*models.Ingredient) error {
	pricings := make([]models.IngredientPricing, len(ingredients))
	for i, in := range ingredients {
		p, err := in.Pricing(r.targetPct)
		if err != nil {
			return fmt.Errorf("failed to price ingredient for insert: %w", err)
		}
		pricings[i] = p
	}

	_, err := r.pool.CopyFrom(
		ctx,
		pgx.Identifier{"ingredients"},
		ingredientColumns,
		pgx.CopyFromSlice(len(ingredients), func(i int) ([]interface{}, error) {
			return ingredientRow(ingredients[i], pricings[i]), nil
		}),
	)
	return err
}

func (r *IngredientRepository) Create(ctx context.Context, ingredient *models.Ingredient) error {
	pricing, err := ingredient.Pricing(r.targetPct)
	if err != nil {
		return fmt.Errorf("failed to price ingredient for insert: %w", err)
	}

	query := `
        INSERT INTO ingredients (
            id, name, category, bottle_size_ml, bottle_price, pour_size_oz,
            retail_price, measurement_system, description, cost_per_oz,
            pour_cost, pour_cost_pct, suggested_price, profit_margin,
            performance_level, created_at, updated_at
        ) VALUES (
            $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17
        )
    `

	_, err = r.pool.Exec(ctx, query, ingredientRow(ingredient, pricing)...)
	return err
}

func (r *IngredientRepository) Update(ctx context.Context, ingredient *models.Ingredient) error {
	ingredient.UpdatedAt = time.Now()
	pricing, err := ingredient.Pricing(r.targetPct)
	if err != nil {
		return fmt.Errorf("failed to price ingredient for update: %w", err)
	}

	query := `
        UPDATE ingredients SET
            name = $2, category = $3, bottle_size_ml = $4, bottle_price = $5,
            pour_size_oz = $6, retail_price = $7, measurement_system = $8,
            description = $9, cost_per_oz = $10, pour_cost = $11,
            pour_cost_pct = $12, suggested_price = $13, profit_margin = $14,
            performance_level = $15, updated_at = $16
        WHERE id = $1
    `

	row := ingredientRow(ingredient, pricing)
	tag, err := r.pool.Exec(ctx, query, row[0], row[1], row[2], row[3], row[4], row[5], row[6], row[7], row[8], row[9], row[10], row[11], row[12], row[13], row[14], row[16])
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("ingredient %s not found", ingredient.ID)
	}
	return nil
}

func (r *IngredientRepository) GetByID(ctx context.Context, id string) (*models.Ingredient, error) {
	query := `
        SELECT id, name, category, bottle_size_ml, bottle_price, pour_size_oz,
               retail_price, measurement_system, description, created_at, updated_at
        FROM ingredients
        WHERE id = $1
    `
	row := r.pool.QueryRow(ctx, query, id)
	return scanIngredient(row)
}

func (r *IngredientRepository) GetAll(ctx context.Context) ([]*models.Ingredient, error) {
	query := `
        SELECT id, name, category, bottle_size_ml, bottle_price, pour_size_oz,
               retail_price, measurement_system, description, created_at, updated_at
        FROM ingredients
        ORDER BY name
    `
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ingredients []*models.Ingredient
	for rows.Next() {
		in, err := scanIngredient(rows)
		if err != nil {
			return nil, err
		}
		ingredients = append(ingredients, in)
	}
	return ingredients, rows.Err()
}

func (r *IngredientRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM ingredients").Scan(&count)
	return count, err
}

func (r *IngredientRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM ingredients WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("ingredient %s not found", id)
	}
	return nil
}

func (r *IngredientRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "DELETE FROM ingredients")
	return err
}

func scanIngredient(row pgx.Row) (*models.Ingredient, error) {
	var in models.Ingredient
	var category, system string
	err := row.Scan(
		&in.ID, &in.Name, &category, &in.BottleSizeMl, &in.BottlePrice,
		&in.PourSizeOz, &in.RetailPrice, &system, &in.Description,
		&in.CreatedAt, &in.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	in.Category, err = models.ParseIngredientCategory(category)
	if err != nil {
		return nil, fmt.Errorf("ingredient %s: %w", in.ID, err)
	}
	parsedSystem, err := units.ParseMeasurementSystem(system)
	if err != nil {
		return nil, fmt.Errorf("ingredient %s: %w", in.ID, err)
	}
	in.System = parsedSystem
	return &in, nil
}
