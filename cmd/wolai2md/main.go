// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the wolai2md CLI, which converts the
// children of a wolai block into a single Markdown file.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/wolai2md/internal/convert"
	"github.com/pdiddy/wolai2md/internal/secrets"
	"github.com/pdiddy/wolai2md/internal/transform"
	"github.com/pdiddy/wolai2md/internal/wolai"
	"github.com/pdiddy/wolai2md/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// log is the CLI logger; all diagnostics go to stderr.
var log = logrus.New()

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns fallback if it is set, or the secret value for key
// otherwise.
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd converts one wolai page.
var rootCmd = &cobra.Command{
	Use:   "wolai2md [token] <block-id> <output-dir>",
	Short: "Convert a wolai page into Markdown",
	Long: `wolai2md fetches the children of a wolai block through the open API and
writes them as a single Markdown file (index.md) in the output directory.
The output directory is created if it does not exist.

The token may be omitted when it is set in the config file, in the
WOLAI2MD_TOKEN environment variable (a .env file is honoured), or in
.secrets/wolai-token.`,
	Args:          cobra.MatchAll(cobra.RangeArgs(2, 3), nonEmptyArgs),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runConvert,
}

func init() {
	// Assigned here rather than in the literal to avoid an initialization
	// cycle (configureLogger refers to rootCmd).
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := configureLogger(); err != nil {
			return err
		}
		s, err := secrets.Load(".secrets/", log)
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			log.WithField("keys", keys).Debug("loaded secrets")
		}
		return nil
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./wolai2md.yaml or ~/.config/wolai2md/wolai2md.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log debug output")
	rootCmd.Flags().Bool("frontmatter", false, "prepend a YAML frontmatter block describing the run")
	rootCmd.Flags().Bool("html", false, "also write an HTML preview next to the Markdown file")

	viper.BindPFlag("output.frontmatter", rootCmd.Flags().Lookup("frontmatter"))
	viper.BindPFlag("output.html", rootCmd.Flags().Lookup("html"))

	viper.SetDefault("token", "")
	viper.SetDefault("api.base_url", wolai.DefaultBaseURL)
	viper.SetDefault("api.timeout", 30*time.Second)
	viper.SetDefault("api.user_agent", "wolai2md/"+version)
	viper.SetDefault("api.max_retries", 0)
	viper.SetDefault("output.filename", convert.DefaultFilename)
	viper.SetDefault("log_level", "info")
}

func initConfig() {
	// Variables already present in the environment win over .env.
	_ = godotenv.Load()

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("wolai2md")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "wolai2md"))
		}
	}

	viper.SetEnvPrefix("WOLAI2MD")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		log.WithField("file", viper.ConfigFileUsed()).Debug("using config file")
	}
}

func configureLogger() error {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	level, err := logrus.ParseLevel(viper.GetString("log_level"))
	if err != nil {
		return fmt.Errorf("invalid log_level: %w", err)
	}
	if verbose, _ := rootCmd.PersistentFlags().GetBool("verbose"); verbose {
		level = logrus.DebugLevel
	}
	log.SetLevel(level)
	return nil
}

// loadConfig reads the typed configuration from viper and resolves the
// token from the positional arguments, viper, or the secrets directory.
func loadConfig(args []string) (types.Config, string, string, error) {
	var cfg types.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return cfg, "", "", fmt.Errorf("reading configuration: %w", err)
	}

	var token, blockID, outDir string
	if len(args) == 3 {
		token, blockID, outDir = args[0], args[1], args[2]
	} else {
		blockID, outDir = args[0], args[1]
	}
	cfg.Token = secretDefault(secrets.TokenKey, firstNonEmpty(token, cfg.Token))
	if cfg.Token == "" {
		return cfg, "", "", errors.New("no wolai token: pass it as the first argument, set WOLAI2MD_TOKEN, or write .secrets/wolai-token")
	}
	return cfg, blockID, outDir, nil
}

// nonEmptyArgs rejects blank positional arguments before any work is done.
func nonEmptyArgs(cmd *cobra.Command, args []string) error {
	names := []string{"block id", "output directory"}
	if len(args) == 3 {
		names = append([]string{"token"}, names...)
	}
	for i, arg := range args {
		if i < len(names) && strings.TrimSpace(arg) == "" {
			return fmt.Errorf("the %s must not be empty (usage: %s)", names[i], cmd.UseLine())
		}
	}
	return nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, blockID, outDir, err := loadConfig(args)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	conv := &convert.Converter{
		Fetcher: wolai.NewClient(cfg.API, cfg.Token, log),
		Output:  cfg.Output,
		Log:     log,
	}
	_, err = conv.ConvertPage(ctx, blockID, outDir)
	return err
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// describe turns a run error into one actionable line.
func describe(err error) string {
	var apiErr *wolai.APIError
	switch {
	case errors.As(err, &apiErr):
		return "the wolai API rejected the request (check the token and block id): " + err.Error()
	case errors.Is(err, wolai.ErrEmptyBlockID):
		return "no block id given (pass the id of the wolai page to convert): " + err.Error()
	case errors.Is(err, wolai.ErrTransport):
		return "could not reach the wolai API or read its response: " + err.Error()
	case errors.Is(err, transform.ErrSchema):
		return "the page contains a block that cannot be converted: " + err.Error()
	case errors.Is(err, convert.ErrFilesystem):
		return "could not write the output (check the directory and permissions): " + err.Error()
	case errors.Is(err, context.Canceled):
		return "interrupted"
	default:
		return err.Error()
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(describe(err))
		os.Exit(1)
	}
}
