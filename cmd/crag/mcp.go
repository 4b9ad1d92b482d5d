// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs a stdio-based MCP server exposing the calculators and the climbing log.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/crag/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

The server communicates via stdin/stdout; logs go to stderr.

CLAUDE DESKTOP CONFIGURATION:

  {
    "mcpServers": {
      "crag": {
        "command": "crag",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  parse_grade         Parse a V-scale or YDS grade
  convert_grade       Convert between V-scale and YDS
  add_send            Log a benchmark send
  list_sends          List recent sends
  log_session         Journal a climbing session
  training_load       Load score and success rate
  progress            Progress toward a target grade
  nutrition_targets   Daily targets from the saved profile
  nutrition_insights  Intake analysis and supplement priorities

AVAILABLE RESOURCES:

  crag://report        Full coaching report (Markdown)
  crag://sends/recent  Last 10 sends
  crag://profile       Saved profile with targets`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(repo, mcp.Options{
			TargetGrade: cfg.TargetGrade,
			LoadWeeks:   cfg.GetLoadWeeks(),
			Logger:      logger,
		})
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			logger.Debug("shutting down mcp server")
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
