package cmd

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/R167/tlscheck/internal/check"
	"github.com/R167/tlscheck/internal/mcp"
	"github.com/R167/tlscheck/internal/scan"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the checks as MCP tools over stdio",
	Long:  "Loads a testssl JSON report and exposes list_checks, run_check and run_all_checks as Model Context Protocol tools.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if cfg.Verbose {
			log.SetLevel(log.DebugLevel)
		}
		if cfg.Input == "" {
			return fmt.Errorf("an input report (-i) is required in MCP mode")
		}

		result, err := scan.LoadFile(cfg.Input)
		if err != nil {
			return err
		}

		base := check.NewContext(cmd.Context()).
			WithConfig(cfg).
			WithHelpers(check.NewHelpers(cfg.URL)).
			WithResult(result)

		return mcp.RunServer(base)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
