package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/solarbyte-dev/fuzzyfont/internal/catalog"
	"github.com/solarbyte-dev/fuzzyfont/internal/classify"
	"github.com/solarbyte-dev/fuzzyfont/internal/config"
	"github.com/solarbyte-dev/fuzzyfont/internal/discovery"
	"github.com/solarbyte-dev/fuzzyfont/internal/log"
)

var (
	cfgFile string
	debug   bool
	cfg     *config.Config
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fuzzyfont",
		Short: "Browse and classify the fonts installed on your system",
		Long: `FuzzyFont catalogs the fonts on your machine and sorts them into
categories like monospace, serif, and display. Filter, search, and page
through the catalog from the command line, or open the interactive
browser with 'fuzzyfont tui'.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetDebug(debug)

			var configErr error
			if cfgFile != "" {
				cfg, configErr = config.LoadConfigFile(cfgFile)
			} else {
				cfg, configErr = config.LoadConfig()
			}
			if configErr != nil {
				fmt.Println(warningText(fmt.Sprintf("Warning: %v", configErr)))
				fmt.Println(infoText("Using default settings."))
				cfg = config.New()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/fuzzyfont/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(NewListCmd())
	rootCmd.AddCommand(NewStatsCmd())
	rootCmd.AddCommand(NewExportCmd())
	rootCmd.AddCommand(NewTuiCmd())
	rootCmd.AddCommand(NewWatchCmd())

	return rootCmd
}

// newClassifier builds the classifier with any user overrides from the
// loaded configuration applied on top of the built-in ones.
func newClassifier() (*classify.Classifier, error) {
	overrides, err := cfg.OverrideSets()
	if err != nil {
		return nil, err
	}
	if len(overrides) == 0 {
		return classify.New(), nil
	}
	return classify.NewWithOverrides(overrides), nil
}

// buildCatalog discovers fonts and classifies them into a fresh catalog.
func buildCatalog() (*catalog.Catalog, error) {
	classifier, err := newClassifier()
	if err != nil {
		return nil, err
	}
	scanner, err := discovery.New(cfg)
	if err != nil {
		return nil, err
	}
	records, err := scanner.Records()
	if err != nil {
		return nil, err
	}
	return catalog.Build(records, classifier)
}
