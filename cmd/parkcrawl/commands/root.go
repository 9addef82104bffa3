// Package commands implements the CLI commands for parkcrawl.
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/parkcrawl/parkcrawl/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "parkcrawl",
	Short: "Bilingual carpark-listing crawler and normalizer",
	Long: `Parkcrawl crawls carpark listing pages, fetches per-listing detail
pages in English and Chinese, extracts structured fields, deduplicates
photo assets and writes a resumable JSON dataset.

Examples:
  # Crawl up to 100 listings in both languages
  parkcrawl crawl --max 100 --dual-lang -o listings.json

  # Resume a prior run, retrying failed listings only
  parkcrawl crawl --resume -o listings.json

  # Keep a CSV projection and raw HTML snapshots for drift diagnosis
  parkcrawl crawl -o listings.json --csv listings.csv --dump-html`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Full())
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(versionCmd)

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config file (default $HOME/.parkcrawl.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress progress output")

	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
}

func initConfig() {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".parkcrawl")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("PARKCRAWL")
	viper.AutomaticEnv()

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
