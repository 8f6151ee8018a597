package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jduncan017/pourcost/internal/models"
)

// CocktailRepository persists cocktails with their recipe lines as a
// JSONB column and derived pricing fields recomputed on every write.
type CocktailRepository struct {
	pool      *pgxpool.Pool
	targetPct float64
}

func NewCocktailRepository(pool *pgxpool.Pool, targetPct float64) *CocktailRepository {
	return &CocktailRepository{pool: pool, targetPct: targetPct}
}

var cocktailColumns = []string{
	"id", "name", "category", "description", "notes", "retail_price",
	"ingredients", "total_cost", "pour_cost_pct", "suggested_price",
	"profit_margin", "performance_level", "created_at", "updated_at",
}

func cocktailRow(ck *models.Cocktail, p models.CocktailPricing) ([]interface{}, error) {
	lines, err := json.Marshal(ck.Ingredients)
	if err != nil {
		return nil, fmt.Errorf("failed to encode recipe lines: %w", err)
	}
	return []interface{}{
		ck.ID,
		ck.Name,
		string(ck.Category),
		ck.Description,
		ck.Notes,
		ck.RetailPrice,
		lines,
		p.TotalCost,
		p.PourCostPct,
		p.SuggestedPrice,
		p.ProfitMargin,
		string(p.Level),
		ck.CreatedAt,
		ck.UpdatedAt,
	}, nil
}

func (r *CocktailRepository) BulkCreate(ctx context.Context, cocktails []*models.Cocktail) error {
	rows := make([][]interface{}, len(cocktails))
	for i, ck := range cocktails {
		p, err := ck.Pricing(r.targetPct)
		if err != nil {
			return fmt.Errorf("failed to price cocktail for insert: %w", err)
		}
		row, err := cocktailRow(ck, p)
		if err != nil {
			return err
		}
		rows[i] = row
	}

	_, err := r.pool.CopyFrom(
		ctx,
		pgx.Identifier{"cocktails"},
		cocktailColumns,
		pgx.CopyFromRows(rows),
	)
	return err
}

func (r *CocktailRepository) Create(ctx context.Context, cocktail *models.Cocktail) error {
	pricing, err := cocktail.Pricing(r.targetPct)
	if err != nil {
		return fmt.Errorf("failed to price cocktail for insert: %w", err)
	}
	row, err := cocktailRow(cocktail, pricing)
	if err != nil {
		return err
	}

	query := `
        INSERT INTO cocktails (
            id, name, category, description, notes, retail_price, ingredients,
            total_cost, pour_cost_pct, suggested_price, profit_margin,
            performance_level, created_at, updated_at
        ) VALUES (
            $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
        )
    `

	_, err = r.pool.Exec(ctx, query, row...)
	return err
}

func (r *CocktailRepository) Update(ctx context.Context, cocktail *models.Cocktail) error {
	cocktail.UpdatedAt = time.Now()
	pricing, err := cocktail.Pricing(r.targetPct)
	if err != nil {
		return fmt.Errorf("failed to price cocktail for update: %w", err)
	}
	row, err := cocktailRow(cocktail, pricing)
	if err != nil {
		return err
	}

	query := `
        UPDATE cocktails SET
            name = $2, category = $3, description = $4, notes = $5,
            retail_price = $6, ingredients = $7, total_cost = $8,
            pour_cost_pct = $9, suggested_price = $10, profit_margin = $11,
            performance_level = $12, updated_at = $13
        WHERE id = $1
    `

	tag, err := r.pool.Exec(ctx, query, row[0], row[1], row[2], row[3], row[4], row[5], row[6], row[7], row[8], row[9], row[10], row[11], row[13])
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("cocktail %s not found", cocktail.ID)
	}
	return nil
}

func (r *CocktailRepository) GetByID(ctx context.Context, id string) (*models.Cocktail, error) {
	query := `
        SELECT id, name, category, description, notes, retail_price,
               ingredients, created_at, updated_at
        FROM cocktails
        WHERE id = $1
    `
	row := r.pool.QueryRow(ctx, query, id)
	return scanCocktail(row)
}

func (r *CocktailRepository) GetAll(ctx context.Context) ([]*models.Cocktail, error) {
	query := `
        SELECT id, name, category, description, notes, retail_price,
               ingredients, created_at, updated_at
        FROM cocktails
        ORDER BY name
    `
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cocktails []*models.Cocktail
	for rows.Next() {
		ck, err := scanCocktail(rows)
		if err != nil {
			return nil, err
		}
		cocktails = append(cocktails, ck)
	}
	return cocktails, rows.Err()
}

func (r *CocktailRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM cocktails").Scan(&count)
	return count, err
}

func (r *CocktailRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM cocktails WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("cocktail %s not found", id)
	}
	return nil
}

func (r *CocktailRepository) DeleteAll(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, "DELETE FROM cocktails")
	return err
}

func scanCocktail(row pgx.Row) (*models.Cocktail, error) {
	var ck models.Cocktail
	var category string
	var lines []byte
	err := row.Scan(
		&ck.ID, &ck.Name, &category, &ck.Description, &ck.Notes,
		&ck.RetailPrice, &lines, &ck.CreatedAt, &ck.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	ck.Category, err = models.ParseCocktailCategory(category)
	if err != nil {
		return nil, fmt.Errorf("cocktail %s: %w", ck.ID, err)
	}
	if err := json.Unmarshal(lines, &ck.Ingredients); err != nil {
		return nil, fmt.Errorf("cocktail %s: failed to decode recipe lines: %w", ck.ID, err)
	}
	return &ck, nil
}
