// Package config builds the per-run configuration: defaults, an optional
// config file, environment variables, and command-line flags, layered in that
// order via viper. A non-empty override replaces the corresponding default
// list wholesale rather than merging with it.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/viper"

	"treecat/internal/filter"
	"treecat/internal/utils"
)

// Config holds all application settings for one run.
type Config struct {
	RootDir string

	// Output
	Format     string
	OutputFile string
	Clipboard  bool
	TopFiles   int

	// Filtering
	AllowedExtensions     []string
	AllowedFilenames      []string
	SkipDirectories       []string
	SkipDirectoryPatterns []string
	SkipFilenames         []string
	SkipPatterns          []string

	// Presentation / logging
	LogLevel    string
	NoColor     bool
	UseColors   bool
	ShowSkipped bool
	Quiet       bool

	LanguageFile string

	Version string
}

// SetDefaults registers every default with viper. Call once before binding
// flags so flag defaults and config-file values layer correctly.
func SetDefaults() {
	viper.SetDefault("format", "normal")
	viper.SetDefault("output", "")
	viper.SetDefault("clipboard", false)
	viper.SetDefault("top", 10)
	viper.SetDefault("log_level", "info")
	viper.SetDefault("show_skipped", false)
	viper.SetDefault("quiet", false)
	viper.SetDefault("language_file", "")

	viper.SetDefault("allowed_extensions", defaultAllowedExtensions)
	viper.SetDefault("allowed_filenames", defaultAllowedFilenames)
	viper.SetDefault("skip_directories", defaultSkipDirectories)
	viper.SetDefault("skip_directory_patterns", defaultSkipDirectoryPatterns)
	viper.SetDefault("skip_filenames", defaultSkipFilenames)
	viper.SetDefault("skip_patterns", defaultSkipPatterns)
}

// ReadConfigFile locates and reads the optional config file. Search order:
// an explicit path, then ~/.config/treecat/, then the working directory.
// A missing file is not an error.
func ReadConfigFile(explicit string) error {
	if explicit != "" {
		viper.SetConfigFile(explicit)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "treecat"))
		}
		viper.AddConfigPath(".")
		viper.SetConfigName("treecat")
		viper.SetConfigType("toml")
	}

	viper.SetEnvPrefix("TREECAT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); notFound {
			return nil
		}
		if explicit == "" && os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("config: reading config file: %w", err)
	}
	return nil
}

// FromViper materializes the layered settings into a Config.
func FromViper(version string) *Config {
	c := &Config{
		Format:                viper.GetString("format"),
		OutputFile:            viper.GetString("output"),
		Clipboard:             viper.GetBool("clipboard"),
		TopFiles:              viper.GetInt("top"),
		LogLevel:              viper.GetString("log_level"),
		ShowSkipped:           viper.GetBool("show_skipped"),
		Quiet:                 viper.GetBool("quiet"),
		NoColor:               viper.GetBool("no_color"),
		LanguageFile:          viper.GetString("language_file"),
		AllowedExtensions:     viper.GetStringSlice("allowed_extensions"),
		AllowedFilenames:      viper.GetStringSlice("allowed_filenames"),
		SkipDirectories:       viper.GetStringSlice("skip_directories"),
		SkipDirectoryPatterns: viper.GetStringSlice("skip_directory_patterns"),
		SkipFilenames:         viper.GetStringSlice("skip_filenames"),
		SkipPatterns:          viper.GetStringSlice("skip_patterns"),
		Version:               version,
	}
	c.UseColors = !c.NoColor && isatty.IsTerminal(os.Stderr.Fd())
	return c
}

// FilterConfig compiles the list settings into the filter's immutable form.
// Malformed regex patterns are recoverable: they are logged and dropped.
func (c *Config) FilterConfig(log utils.Logger) (*filter.Config, error) {
	if log == nil {
		log = utils.NoopLogger{}
	}

	fc := &filter.Config{
		AllowedExtensions: make(map[string]struct{}, len(c.AllowedExtensions)),
		AllowedFilenames:  make(map[string]struct{}, len(c.AllowedFilenames)),
		SkipDirectories:   make(map[string]struct{}, len(c.SkipDirectories)),
		SkipFilenames:     make(map[string]struct{}, len(c.SkipFilenames)),
	}

	for _, ext := range c.AllowedExtensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		fc.AllowedExtensions[ext] = struct{}{}
	}
	for _, name := range c.AllowedFilenames {
		if name = strings.ToLower(strings.TrimSpace(name)); name != "" {
			fc.AllowedFilenames[name] = struct{}{}
		}
	}
	for _, dir := range c.SkipDirectories {
		if dir = strings.TrimSpace(dir); dir != "" {
			fc.SkipDirectories[dir] = struct{}{}
		}
	}
	for _, name := range c.SkipFilenames {
		if name = strings.ToLower(strings.TrimSpace(name)); name != "" {
			fc.SkipFilenames[name] = struct{}{}
		}
	}
	fc.SkipDirectoryPatterns = compilePatterns(c.SkipDirectoryPatterns, log)
	fc.SkipPatterns = compilePatterns(c.SkipPatterns, log)

	if c.OutputFile != "" {
		abs, err := filepath.Abs(c.OutputFile)
		if err != nil {
			return nil, fmt.Errorf("config: resolving output path %q: %w", c.OutputFile, err)
		}
		if resolved, err := filepath.EvalSymlinks(abs); err == nil {
			abs = resolved
		}
		fc.OutputPath = abs
	}
	return fc, nil
}

func compilePatterns(patterns []string, log utils.Logger) []*regexp.Regexp {
	var out []*regexp.Regexp
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		re, err := regexp.Compile(p)
		if err != nil {
			log.Warn("config: ignoring invalid pattern %q: %v", p, err)
			continue
		}
		out = append(out, re)
	}
	return out
}
