package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/R167/tlscheck/checks"
	"github.com/R167/tlscheck/internal/check"
	"github.com/R167/tlscheck/internal/config"
	"github.com/R167/tlscheck/internal/report"
	"github.com/R167/tlscheck/internal/runner"
	"github.com/R167/tlscheck/internal/scan"
	"github.com/R167/tlscheck/internal/security"
)

// Version is set at build time via ldflags.
var Version = "dev"

var (
	flagURL          string
	flagTests        []string
	flagWorkers      int
	flagJSON         bool
	flagInput        string
	flagCheckTimeout time.Duration
	flagList         bool
	flagVerbose      bool
	flagConfig       string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagURL, "url", "u", "", "Target URL to scan")
	rootCmd.Flags().StringSliceVar(&flagTests, "tests", nil, "Checks to run (default: all)")
	rootCmd.Flags().IntVarP(&flagWorkers, "workers", "w", config.DefaultWorkers, "Concurrent check workers")
	rootCmd.PersistentFlags().BoolVarP(&flagJSON, "json", "j", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVarP(&flagInput, "input", "i", "", "Read an existing testssl JSON report instead of scanning")
	rootCmd.Flags().DurationVar(&flagCheckTimeout, "check-timeout", 0, "Per-check execution deadline (0 = none)")
	rootCmd.Flags().BoolVar(&flagList, "list", false, "List available checks and exit")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file")
}

var rootCmd = &cobra.Command{
	Use:     "tlscheck",
	Short:   "tlscheck audits a server's TLS configuration",
	Long:    "tlscheck runs a suite of check modules against testssl.sh scan output and reports weak ciphers, deprecated protocols, certificate problems and known TLS vulnerabilities.",
	Version: Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagList {
			for _, name := range checks.Names() {
				fmt.Printf("  %-8s %s\n", name, checks.Describe(name))
			}
			return nil
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		if cfg.Verbose {
			log.SetLevel(log.DebugLevel)
		}

		var target string
		if cfg.Input == "" {
			if cfg.URL == "" {
				return fmt.Errorf("a target URL (-u) or an input report (-i) is required")
			}
			target, err = security.NormalizeTargetURL(cfg.URL)
			if err != nil {
				return err
			}
		}

		var result scan.Result
		if cfg.Input != "" {
			result, err = scan.LoadFile(cfg.Input)
		} else {
			result, err = scan.RunTestssl(cmd.Context(), target)
		}
		if err != nil {
			return err
		}

		// Text output goes nowhere in JSON mode; the report is the output.
		writer := io.Writer(os.Stdout)
		if cfg.JSON {
			writer = io.Discard
		} else {
			fmt.Fprintf(writer, "tlscheck %s\n", Version)
		}

		rep := report.New()
		base := check.NewContext(cmd.Context()).
			WithConfig(cfg).
			WithReport(rep).
			WithHelpers(check.NewHelpers(target)).
			WithResult(result)

		names := cfg.Tests
		if len(names) == 0 {
			names = checks.Names()
		}

		r := runner.New(checks.Lookup, base, runner.Options{
			Workers:      cfg.Workers,
			CheckTimeout: cfg.CheckTimeout,
			Writer:       writer,
		})
		r.Run(cmd.Context(), names)

		if cfg.JSON {
			doc, err := rep.JSON()
			if err != nil {
				return fmt.Errorf("serializing report: %w", err)
			}
			fmt.Println(doc)
		}
		return nil
	},
}

// loadConfig layers the run configuration: defaults, then config file,
// then environment, then any flag the user explicitly set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("url") {
		cfg.URL = flagURL
	}
	if cmd.Flags().Changed("tests") {
		cfg.Tests = flagTests
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = flagWorkers
	}
	if cmd.Flags().Changed("json") {
		cfg.JSON = flagJSON
	}
	if cmd.Flags().Changed("input") {
		cfg.Input = flagInput
	}
	if cmd.Flags().Changed("check-timeout") {
		cfg.CheckTimeout = flagCheckTimeout
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = flagVerbose
	}

	cfg.Normalize()
	return cfg, nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
