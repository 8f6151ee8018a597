package cmd

import (
	"fmt"
	"os"

	"github.com/jduncan017/pourcost/internal/calc"
	"github.com/jduncan017/pourcost/internal/models"
	"github.com/jduncan017/pourcost/internal/units"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var priceCmd = &cobra.Command{
	Use:   "price",
	Short: "Calculate pour cost and pricing for a single bottle",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}

		bottlePrice := viper.GetFloat64("bottle_price")
		bottleSize := viper.GetFloat64("bottle_size_ml")
		pourSize := viper.GetFloat64("pour_size_oz")
		retailPrice := viper.GetFloat64("retail_price")

		system, err := units.ParseMeasurementSystem(cfg.MeasurementSystem)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		costPerOz, err := calc.CostPerOunce(bottlePrice, bottleSize)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		pourCost, err := calc.PourCost(costPerOz, pourSize)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		suggested, err := calc.SuggestedPrice(pourCost, cfg.TargetPourCostPct)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		fmt.Printf("Bottle:          %s at %.2f\n", units.FormatVolume(bottleSize, system), bottlePrice)
		fmt.Printf("Cost per ounce:  %.4f\n", costPerOz)
		fmt.Printf("Pour cost:       %.4f for a %.2f oz pour\n", pourCost, pourSize)
		fmt.Printf("Suggested price: %.2f at a %.0f%% target\n", suggested, cfg.TargetPourCostPct)

		if retailPrice > 0 {
			rec, err := calc.OptimalPricing(pourCost, retailPrice, cfg.TargetPourCostPct)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			fmt.Printf("At %.2f retail:  %.2f profit per pour [%s]\n", retailPrice, calc.Round2(rec.PotentialProfit), rec.Level)
			fmt.Println(rec.Message)
		}
	},
}

func init() {
	priceCmd.Flags().Float64("bottle-price", 0, "Bottle price")
	priceCmd.Flags().Float64("bottle-size-ml", 750, "Bottle size in milliliters")
	priceCmd.Flags().Float64("pour-size-oz", 1.5, "Pour size in ounces")
	priceCmd.Flags().Float64("retail-price", 0, "Current retail price of the pour (optional)")

	viper.BindPFlag("bottle_price", priceCmd.Flags().Lookup("bottle-price"))
	viper.BindPFlag("bottle_size_ml", priceCmd.Flags().Lookup("bottle-size-ml"))
	viper.BindPFlag("pour_size_oz", priceCmd.Flags().Lookup("pour-size-oz"))
	viper.BindPFlag("retail_price", priceCmd.Flags().Lookup("retail-price"))

	rootCmd.AddCommand(priceCmd)
}
