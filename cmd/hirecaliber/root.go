package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/jonathan/hire-caliber/internal/apiclient"
	"github.com/jonathan/hire-caliber/internal/config"
	"github.com/jonathan/hire-caliber/internal/jobs"
	"github.com/jonathan/hire-caliber/internal/logging"
	"github.com/jonathan/hire-caliber/internal/notify"
	"github.com/jonathan/hire-caliber/internal/render"
)

// globalFlags holds the persistent flags shared by every command.
type globalFlags struct {
	configPath string
	apiURL     string
	timeout    time.Duration
	verbose    bool
	noColor    bool
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "hirecaliber",
		Short: "Hire Caliber recruiting console",
		Long: `Manage job postings, screen candidates and upload resumes against a Hire Caliber backend.

Configuration is read from --config (JSON or YAML), then HIRECALIBER_* environment variables. Command-line flags override both.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags.register(rootCmd)
	rootCmd.AddCommand(newJobsCmd(flags))
	rootCmd.AddCommand(newResumesCmd(flags))
	return rootCmd
}

func (f *globalFlags) register(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "Path to a config file (.json, .yaml or .yml)")
	pf.StringVar(&f.apiURL, "api-url", "", "Backend URL without the /api prefix (default "+config.DefaultAPIURL+")")
	pf.DurationVar(&f.timeout, "timeout", 0, "Request timeout (default 30s)")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "Print debug logs")
	pf.BoolVar(&f.noColor, "no-color", false, "Disable colored output")
}

// app bundles the collaborators a command needs once configuration is resolved.
type app struct {
	cfg      config.Config
	logger   *slog.Logger
	service  *jobs.Service
	notifier notify.Notifier
	printer  *render.Printer
}

// resolveConfig layers configuration: flags over file over environment over
// defaults.
func resolveConfig(cmd *cobra.Command, flags *globalFlags) (config.Config, error) {
	var cfg config.Config
	if flags.configPath != "" {
		loaded, err := config.LoadConfig(flags.configPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return config.Config{}, err
		}
		cfg = *loaded
	}

	env, err := config.FromEnv()
	if err != nil {
		return config.Config{}, err
	}
	cfg = cfg.MergeWithDefaults(*env)
	cfg.Verbose = cfg.Verbose || env.Verbose

	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("api-url") {
		cfg.APIURL = flags.apiURL
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout = config.Duration(flags.timeout)
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = flags.verbose
	}
	if cmd.Flags().Changed("no-color") {
		cfg.NoColor = flags.noColor
	}

	cfg = cfg.MergeWithDefaults(config.Config{
		APIURL:  config.DefaultAPIURL,
		Timeout: config.Duration(config.DefaultTimeout),
	})
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newApp(cmd *cobra.Command, flags *globalFlags) (*app, error) {
	cfg, err := resolveConfig(cmd, flags)
	if err != nil {
		return nil, err
	}
	if cfg.NoColor {
		color.NoColor = true
	}

	logger := logging.New(cmd.ErrOrStderr(), cfg.Verbose)
	client, err := apiclient.New(apiclient.Config{
		ServerURL: cfg.APIURL,
		Timeout:   cfg.Timeout.Std(),
		Headers:   cfg.Headers,
		Logger:    logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create API client: %w", err)
	}
	logger.Debug("using backend", "url", cfg.APIURL+apiclient.BasePath, "timeout", cfg.Timeout.String())

	return &app{
		cfg:      cfg,
		logger:   logger,
		service:  jobs.NewService(client),
		notifier: notify.NewConsole(cmd.OutOrStdout()),
		printer:  render.NewPrinter(cmd.OutOrStdout()),
	}, nil
}
