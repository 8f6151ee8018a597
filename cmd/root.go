package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "pourcost",
	Short: "Drink costing and pricing for bartenders and bar owners",
	Long:  `pourcost calculates ingredient cost per ounce, pour cost, suggested pricing and profit margins for single pours and full cocktail recipes, validates ingredient and cocktail libraries, and exports pricing reports.`,
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.pourcost.yaml)")

	rootCmd.PersistentFlags().Float64("target-pour-cost-pct", 20, "Target pour cost percentage")
	rootCmd.PersistentFlags().String("measurement-system", "us", "Measurement system for volume display (metric or us)")
	rootCmd.PersistentFlags().String("database-url", "", "Postgres connection string for the library store")

	viper.BindPFlag("target_pour_cost_pct", rootCmd.PersistentFlags().Lookup("target-pour-cost-pct"))
	viper.BindPFlag("measurement_system", rootCmd.PersistentFlags().Lookup("measurement-system"))
	viper.BindPFlag("database_url", rootCmd.PersistentFlags().Lookup("database-url"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".pourcost")
	}

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
