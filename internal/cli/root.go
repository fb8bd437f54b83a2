// Package cli implements the mdsite command line interface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/roboco-io/mdsite/internal/config"
	"github.com/roboco-io/mdsite/internal/site"
)

var version = "dev"

var (
	configPath string
	verbose    bool
	quiet      bool
)

var rootCmd = &cobra.Command{
	Use:   "mdsite [basepath]",
	Short: "Generate a static site from Markdown content",
	Long: `mdsite copies static assets into the output directory and renders every
Markdown file of the content directory into the HTML template.

The optional basepath argument is the URL prefix the site is served under
(default "/"). Root-relative href and src attributes are rewritten to it.

Examples:
  mdsite
  mdsite /my-repo/
  mdsite convert content/index.md`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runBuild,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "mdsite %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default: ~/.mdsite/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "quiet mode")

	rootCmd.AddCommand(versionCmd)
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func newLoader() (*config.Loader, error) {
	if configPath != "" {
		return config.NewLoaderWithPath(configPath), nil
	}
	return config.NewLoader()
}

// loadConfig reads the configuration and applies command line overrides.
func loadConfig() (*config.Config, error) {
	loader, err := newLoader()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config loader: %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	switch {
	case quiet:
		cfg.Logging.Level = config.LevelNone
	case verbose:
		cfg.Logging.Level = config.LevelDebug
	}
	return cfg, nil
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if len(args) == 1 {
		cfg.BasePath = args[0]
	}

	log, err := cfg.Logging.Prepare()
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	log.Debug("Building site",
		zap.String("static", cfg.StaticDir),
		zap.String("content", cfg.ContentDir),
		zap.String("template", cfg.Template),
		zap.String("output", cfg.OutputDir),
		zap.String("basepath", cfg.BasePath))

	// errors are reported once, by main
	_, err = site.New(cfg.SiteOptions(), log).Build()
	return err
}
