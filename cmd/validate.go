package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/jduncan017/pourcost/internal/models"
	"github.com/jduncan017/pourcost/internal/validation"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var validateCmd = &cobra.Command{
	Use:   "validate <library.json>",
	Short: "Validate an ingredient and cocktail library file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		lib, err := models.LoadLibrary(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading library: %v\n", err)
			os.Exit(1)
		}

		strict := viper.GetBool("validate_business_rules")
		ctx := context.Background()
		total := len(lib.Ingredients) + len(lib.Cocktails)
		bar := progressbar.Default(int64(total), "validating")
		progress := func(done, totalItems int) {
			bar.Add(1)
		}

		failed := 0

		ingredientResults, err := validation.ValidateBatch(ctx, lib.Ingredients,
			func(ctx context.Context, in models.Ingredient) validation.Result {
				if strict {
					return validation.ValidateIngredientBusiness(&in, cfg.TargetPourCostPct).Result
				}
				return validation.ValidateIngredient(&in)
			}, progress)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		for i, res := range ingredientResults {
			failed += printResult("ingredient", lib.Ingredients[i].Name, res)
		}

		cocktailResults, err := validation.ValidateBatch(ctx, lib.Cocktails,
			func(ctx context.Context, ck models.Cocktail) validation.Result {
				if strict {
					return validation.ValidateCocktailBusiness(&ck, cfg.TargetPourCostPct).Result
				}
				return validation.ValidateCocktail(&ck)
			}, progress)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		for i, res := range cocktailResults {
			failed += printResult("cocktail", lib.Cocktails[i].Name, res)
		}

		fmt.Printf("\nValidated %d items, %d with errors\n", total, failed)
		if failed > 0 {
			os.Exit(1)
		}
	},
}

func printResult(kind, name string, res validation.Result) int {
	for _, msg := range res.Errors {
		fmt.Printf("ERROR   %s %q: %s\n", kind, name, msg)
	}
	for _, msg := range res.Warnings {
		fmt.Printf("WARNING %s %q: %s\n", kind, name, msg)
	}
	for _, msg := range res.Suggestions {
		fmt.Printf("NOTE    %s %q: %s\n", kind, name, msg)
	}
	if !res.IsValid {
		return 1
	}
	return 0
}

func init() {
	validateCmd.Flags().Bool("business-rules", false, "Also apply the stricter profitability rules")
	viper.BindPFlag("validate_business_rules", validateCmd.Flags().Lookup("business-rules"))

	rootCmd.AddCommand(validateCmd)
}
