// ABOUTME: Root Cobra command for the crag CLI.
// ABOUTME: Loads config, builds the logger, and manages the storage lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/harperreed/crag/internal/config"
	"github.com/harperreed/crag/internal/storage"
	"github.com/spf13/cobra"
)

// noStorage marks commands that never touch the climbing log.
const noStorage = "no-storage"

var (
	repo    storage.Repository
	cfg     *config.Config
	logger  = log.NewWithOptions(os.Stderr, log.Options{Prefix: "crag"})
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "crag",
	Short: "Climbing coach: grades, progress, training load, and nutrition",
	Long: `Crag is a personal climbing coach for the command line.

WHAT IT DOES:

  Grades      parse and convert V-scale and YDS grades
  Sends       log benchmark sends by wall style and significance
  Sessions    journal sessions with grades attempted and completed
  Progress    measure progress toward a target grade
  Load        volume, intensity, and density of recent training
  Nutrition   calorie, macro, and hydration targets from your profile

QUICK START:

  $ crag send add V5 --style overhang          # Log a send
  $ crag session add gym --duration 90 \
      --attempted V4,V5,V5 --completed V4,V5   # Journal a session
  $ crag progress V7                           # How close is V7?
  $ crag load                                  # Training load, last 4 weeks
  $ crag profile set --weight 150 --height 70 --age 30
  $ crag nutrition targets                     # Daily targets
  $ crag report                                # Everything at once

MCP INTEGRATION:

  Run 'crag mcp' to start the Model Context Protocol server for use with
  Claude Desktop or other MCP-compatible AI assistants:

  {
    "mcpServers": {
      "crag": { "command": "crag", "args": ["mcp"] }
    }
  }

CONFIGURATION:

  ~/.config/crag/config.json holds data_dir, default_system, target_grade,
  load_weeks, and log_level. CRAG_DATA_DIR, CRAG_DEFAULT_SYSTEM,
  CRAG_TARGET_GRADE, CRAG_LOAD_WEEKS, and CRAG_LOG_LEVEL override it.

DATA STORAGE:

  Data is stored in SQLite at ~/.local/share/crag/crag.db.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		level, err := log.ParseLevel(cfg.GetLogLevel())
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", cfg.GetLogLevel(), err)
		}
		if verbose {
			level = log.DebugLevel
		}
		logger.SetLevel(level)

		if !needsStorage(cmd) {
			return nil
		}

		repo, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}
		logger.Debug("storage opened", "dir", cfg.GetDataDir())
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if repo != nil {
			err := repo.Close()
			repo = nil
			return err
		}
		return nil
	},
}

// needsStorage reports whether cmd or any parent is not marked noStorage.
func needsStorage(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[noStorage] == "true" {
			return false
		}
	}
	return cmd.Name() != "help" && cmd.Name() != "version"
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging to stderr")
}
