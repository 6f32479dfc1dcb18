// Command treecat concatenates a directory tree's text files into a single
// artifact, applying .gitignore rules and configurable filters.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"treecat/internal/app"
	"treecat/internal/config"
)

// version is set via ldflags at release time.
var version = "dev"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "treecat [DIRECTORY]",
	Short: "Concatenate a directory tree's text files into one artifact",
	Long: `treecat walks a directory tree and concatenates its text files into a
single output, honoring .gitignore rules, extension and filename filters,
and one of four output formats (list, normal, verbose, minify).`,
	Version: version,
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.ReadConfigFile(cfgFile); err != nil {
			return err
		}
		cfg := config.FromViper(version)
		cfg.RootDir = "."
		if len(args) == 1 {
			cfg.RootDir = args[0]
		}
		return app.New(cfg).Run()
	},
	SilenceUsage: true,
}

func init() {
	config.SetDefaults()

	rootCmd.Flags().StringVar(&cfgFile, "config", "", "config file (default: ~/.config/treecat/treecat.toml)")

	rootCmd.Flags().StringP("format", "F", "normal", "Output format: list, normal, verbose, or minify")
	rootCmd.Flags().StringP("output", "o", "", "Write the artifact to this file instead of stdout")
	rootCmd.Flags().BoolP("clipboard", "c", false, "Copy the artifact to the clipboard instead of stdout")
	rootCmd.Flags().Int("top", 10, "Report the N largest kept files after the run (0 disables)")

	rootCmd.Flags().StringSlice("ext", nil, "Allowed extensions (replaces the default set)")
	rootCmd.Flags().StringSlice("allow-file", nil, "Filenames that bypass the extension check (replaces the default set)")
	rootCmd.Flags().StringSlice("skip-dir", nil, "Directory names to skip (replaces the default set)")
	rootCmd.Flags().StringSlice("skip-dir-pattern", nil, "Directory name regexes to skip (replaces the default set)")
	rootCmd.Flags().StringSlice("skip-file", nil, "Filenames to skip (replaces the default set)")
	rootCmd.Flags().StringSlice("skip-pattern", nil, "Filename regexes to skip (replaces the default set)")

	rootCmd.Flags().String("log-level", "info", "Log level: debug, info, warn, error, none")
	rootCmd.Flags().Bool("no-color", false, "Disable colored log output")
	rootCmd.Flags().Bool("show-skipped", false, "List skipped entries with reasons after the run")
	rootCmd.Flags().BoolP("quiet", "q", false, "Suppress informational messages")
	rootCmd.Flags().String("language-file", "", "Custom language definitions (YAML)")

	bindings := map[string]string{
		"format":                  "format",
		"output":                  "output",
		"clipboard":               "clipboard",
		"top":                     "top",
		"allowed_extensions":      "ext",
		"allowed_filenames":       "allow-file",
		"skip_directories":        "skip-dir",
		"skip_directory_patterns": "skip-dir-pattern",
		"skip_filenames":          "skip-file",
		"skip_patterns":           "skip-pattern",
		"log_level":               "log-level",
		"no_color":                "no-color",
		"show_skipped":            "show-skipped",
		"quiet":                   "quiet",
		"language_file":           "language-file",
	}
	for key, flag := range bindings {
		if err := viper.BindPFlag(key, rootCmd.Flags().Lookup(flag)); err != nil {
			panic(err)
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
