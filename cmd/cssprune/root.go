package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/styletools/cssprune"
)

var rootCmd = &cobra.Command{
	Use:   "cssprune <stylesheet>... -- <search-file>...",
	Short: "Find style rules with no reference in a source tree",
	Long: `Scan stylesheet files for rules whose selectors never appear in the
given search files, as a first step toward removing unused styles.

Stylesheet and search file lists are separated by a mandatory "--":

  cssprune 'styles/**/*.css' -- 'src/**/*.html' 'src/**/*.js'`,
	RunE:          runScan,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress progress output")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", ".cssprune.yaml", "Config file path")

	f := rootCmd.Flags()
	f.Int64("max-index-size", cssprune.DefaultMaxIndexSize, "Ceiling on scanned token bytes")
	f.String("format", "text", "Output format: text|json")
	f.Bool("respect-gitignore", true, "Skip gitignored files when expanding globs")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

// runScan handles the root invocation. Misuse (missing "--" separator or
// an empty list on either side) prints help and exits 0: that is a usage
// slip, not a failure.
func runScan(cmd *cobra.Command, args []string) error {
	if err := loadConfig(cmd); err != nil {
		return err
	}

	dash := cmd.ArgsLenAtDash()
	if dash < 0 {
		return cmd.Help()
	}

	stylesheets := args[:dash]
	searchFiles := args[dash:]
	if len(stylesheets) == 0 || len(searchFiles) == 0 {
		return cmd.Help()
	}

	config := buildConfig(stylesheets, searchFiles)

	result, err := cssprune.Run(config)
	if err != nil {
		return err
	}

	quiet := getBoolWithFallback("quiet", "quiet", false)
	format := getStringWithFallback("format", "scan.format", "text")

	if format == "json" {
		return cssprune.WriteJSON(os.Stdout, result)
	}

	useColors := cssprune.ShouldUseColors(getBoolWithFallback("color", "color", false))
	reporter := cssprune.NewReporter(os.Stdout, useColors)
	reporter.PrintUnused(result.Unused)
	if !quiet {
		reporter.PrintSummary(result)
	}

	return nil
}

// buildConfig constructs the library's Config struct from koanf state and
// the positional file lists.
func buildConfig(stylesheets, searchFiles []string) cssprune.Config {
	config := cssprune.Config{
		Stylesheets:      stylesheets,
		SearchPaths:      searchFiles,
		MaxIndexSize:     getInt64WithFallback("max-index-size", "scan.max-index-size", cssprune.DefaultMaxIndexSize),
		RespectGitignore: getBoolWithFallback("respect-gitignore", "scan.respect-gitignore", true),
		Verbose:          getBoolWithFallback("verbose", "verbose", false),
	}

	if !getBoolWithFallback("quiet", "quiet", false) {
		config.Progress = os.Stderr
	}

	return config
}
