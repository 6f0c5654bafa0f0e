package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/lehigh-university-libraries/linkedart/extract"
	"github.com/lehigh-university-libraries/linkedart/lang"
	"github.com/lehigh-university-libraries/linkedart/vocab"
)

// Config is the effective CLI configuration.
type Config struct {
	Language          string `mapstructure:"language" yaml:"language"`
	FallbackLanguage  string `mapstructure:"fallback_language" yaml:"fallback_language"`
	IncludeNoLanguage bool   `mapstructure:"include_no_language" yaml:"include_no_language"`
	Vocab             string `mapstructure:"vocab" yaml:"vocab"`
	VocabFile         string `mapstructure:"vocab_file" yaml:"vocab_file"`
	Output            string `mapstructure:"output" yaml:"output"`
	StripHTML         bool   `mapstructure:"strip_html" yaml:"strip_html"`
	Workers           int    `mapstructure:"workers" yaml:"workers"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		IncludeNoLanguage: true,
		Output:            "json",
		Workers:           4,
	}
}

// app carries state shared by the commands of one root.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     Config
	table   *vocab.Table
}

func (a *app) bindFlags(root *cobra.Command) {
	defaults := DefaultConfig()
	flags := root.PersistentFlags()

	flags.StringVar(&a.cfgFile, "config", "", "config file (default: $HOME/.linkedart/config.yaml)")
	flags.String("language", defaults.Language, "Only return values in this language (ISO code or identifier)")
	flags.String("fallback-language", defaults.FallbackLanguage, "Language accepted when the requested one is missing")
	flags.Bool("include-no-language", defaults.IncludeNoLanguage, "Treat values without a language as matching")
	flags.String("vocab", defaults.Vocab, "User vocabulary table name (from ~/.linkedart/vocab)")
	flags.String("vocab-file", defaults.VocabFile, "Vocabulary table YAML file layered over the bundled table")
	flags.StringP("output", "o", defaults.Output, "Output format: json, yaml, protojson, text")
	flags.Bool("strip-html", defaults.StripHTML, "Strip HTML from text values")
	flags.Int("workers", defaults.Workers, "Concurrent documents for batch runs")

	for key, flag := range map[string]string{
		"language":            "language",
		"fallback_language":   "fallback-language",
		"include_no_language": "include-no-language",
		"vocab":               "vocab",
		"vocab_file":          "vocab-file",
		"output":              "output",
		"strip_html":          "strip-html",
		"workers":             "workers",
	} {
		_ = a.v.BindPFlag(key, flags.Lookup(flag))
	}
}

// initConfig reads in config file and ENV variables
func (a *app) initConfig(cmd *cobra.Command) error {
	if a.cfgFile != "" {
		// Use config file from the flag
		a.v.SetConfigFile(a.cfgFile)
	} else if dir, err := vocab.ConfigDir(); err == nil {
		a.v.AddConfigPath(dir)
		a.v.SetConfigType("yaml")
		a.v.SetConfigName("config")
	}

	// Read in environment variables that match LINKEDART_*
	a.v.SetEnvPrefix("LINKEDART")
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	} else {
		slog.Debug("using config file", "path", a.v.ConfigFileUsed())
	}

	a.cfg = DefaultConfig()
	if err := a.v.Unmarshal(&a.cfg); err != nil {
		return fmt.Errorf("decoding config: %w", err)
	}
	return nil
}

// vocabulary returns the table selected by the configuration: the bundled
// table, with a named user table and then a table file layered over it.
func (a *app) vocabulary() (*vocab.Table, error) {
	if a.table != nil {
		return a.table, nil
	}

	t := vocab.Default()
	if a.cfg.Vocab != "" {
		user, err := vocab.LoadUser(a.cfg.Vocab)
		if err != nil {
			return nil, err
		}
		t = user
		slog.Debug("merged user vocabulary", "name", a.cfg.Vocab)
	}
	if a.cfg.VocabFile != "" {
		custom, err := vocab.Load(a.cfg.VocabFile)
		if err != nil {
			return nil, err
		}
		t = vocab.Merge(t, custom)
		slog.Debug("merged vocabulary file", "path", a.cfg.VocabFile)
	}
	a.table = t
	return t, nil
}

func (a *app) languageOptions() *lang.Options {
	return &lang.Options{
		FallbackLanguage:           a.cfg.FallbackLanguage,
		IncludeItemsWithNoLanguage: lang.Bool(a.cfg.IncludeNoLanguage),
	}
}

func (a *app) extractOptions() extract.Options {
	return extract.Options{
		Language:        a.cfg.Language,
		LanguageOptions: a.languageOptions(),
	}
}

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage linkedart configuration",
		Long: `Manage linkedart configuration files and settings.

Configuration hierarchy (highest to lowest priority):
1. CLI flags
2. Environment variables (LINKEDART_*)
3. Config file (~/.linkedart/config.yaml)
4. Defaults`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if used := a.v.ConfigFileUsed(); used != "" {
				fmt.Fprintf(cmd.ErrOrStderr(), "Configuration file: %s\n\n", used)
			}
			out, err := yaml.Marshal(a.cfg)
			if err != nil {
				return fmt.Errorf("marshaling config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := vocab.ConfigDir()
			if err != nil {
				return err
			}
			path := filepath.Join(dir, "config.yaml")
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("config file already exists: %s", path)
			}
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("creating config directory: %w", err)
			}
			out, err := yaml.Marshal(DefaultConfig())
			if err != nil {
				return fmt.Errorf("marshaling config: %w", err)
			}
			header := "# linkedart configuration\n# Environment variables (LINKEDART_*) and flags override these values.\n\n"
			if err := os.WriteFile(path, append([]byte(header), out...), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			return nil
		},
	})

	return cmd
}
