// Package main provides the entry point for the CV matcher CLI and API server.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jonathan/cv-matcher/internal/config"
	"github.com/jonathan/cv-matcher/internal/matching"
)

const app = "cv-matcher"

var (
	cfgFile   string
	flagDebug bool
	flagJSON  bool
)

var rootCmd = &cobra.Command{
	Use:   "cv_matcher",
	Short: "CV-to-job matching and ranking engine",
	Long:  "cv_matcher scores structured candidate profiles against structured job requirement profiles, producing weighted match scores, gap analyses and ranked candidate batches.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is cv-matcher.yaml in current directory)")
	rootCmd.PersistentFlags().BoolVarP(&flagDebug, "debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json-logs", false, "json format for logging")
}

func initConfig() {
	config.SetDefaults(viper.GetViper())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	// A missing config file is fine; defaults cover everything. An explicit
	// --config that cannot be read is not.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

// getConfig unmarshals the merged configuration.
func getConfig() (*config.Config, error) {
	return config.Load(viper.GetViper())
}

// buildEngine constructs the matching engine from the scoring section.
func buildEngine(cfg *config.Config) (*matching.Engine, error) {
	engine, err := matching.New(cfg.Matching())
	if err != nil {
		return nil, fmt.Errorf("failed to create matching engine: %w", err)
	}
	return engine, nil
}
