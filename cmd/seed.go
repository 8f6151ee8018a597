package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jduncan017/pourcost/internal/factories"
	"github.com/jduncan017/pourcost/internal/models"
	"github.com/jduncan017/pourcost/internal/repositories/postgres"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generate a fake library and load it into postgres",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		if cfg.DatabaseURL == "" {
			fmt.Fprintln(os.Stderr, "seed requires --database-url or database_url in config")
			os.Exit(1)
		}

		ctx := context.Background()
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to postgres: %v", err)
		}
		defer pool.Close()

		ingredientRepo := postgres.NewIngredientRepository(pool, cfg.TargetPourCostPct)
		cocktailRepo := postgres.NewCocktailRepository(pool, cfg.TargetPourCostPct)

		nIngredients := viper.GetInt("seed_ingredients")
		nCocktails := viper.GetInt("seed_cocktails")

		bar := progressbar.Default(int64(nIngredients+nCocktails), "seeding")

		ingredientFactory := &factories.IngredientFactory{}
		ingredients := ingredientFactory.CreateIngredients(nIngredients)
		if err := ingredientRepo.BulkCreate(ctx, ingredients); err != nil {
			log.Fatalf("Failed to insert ingredients: %v", err)
		}
		bar.Add(nIngredients)

		cocktailFactory := &factories.CocktailFactory{}
		cocktails := cocktailFactory.CreateCocktails(nCocktails, ingredients)
		if err := cocktailRepo.BulkCreate(ctx, cocktails); err != nil {
			log.Fatalf("Failed to insert cocktails: %v", err)
		}
		bar.Add(nCocktails)

		log.Printf("Seeded %d ingredients and %d cocktails", nIngredients, nCocktails)
	},
}

func init() {
	seedCmd.Flags().Int("ingredients", 100, "Number of ingredients to generate")
	seedCmd.Flags().Int("cocktails", 25, "Number of cocktails to generate")

	viper.BindPFlag("seed_ingredients", seedCmd.Flags().Lookup("ingredients"))
	viper.BindPFlag("seed_cocktails", seedCmd.Flags().Lookup("cocktails"))

	rootCmd.AddCommand(seedCmd)
}
