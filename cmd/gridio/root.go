package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "gridio",
	Short: "TextGrid conversion toolkit",
	Long:  "gridio parses, validates, and converts Praat TextGrid annotation files between the long, short, and CSV representations.",
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("format", "f", "auto", "Input format: auto, long, or short")
	rootCmd.PersistentFlags().Bool("strict", false, "Validate TextGrid invariants after parsing")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")

	_ = viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	_ = viper.BindPFlag("strict", rootCmd.PersistentFlags().Lookup("strict"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	viper.SetEnvPrefix("GRIDIO")
	viper.AutomaticEnv()
}
