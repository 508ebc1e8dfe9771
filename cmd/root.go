package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Trevorton27/tokuWebDev-sub003/internal/config"
	"github.com/Trevorton27/tokuWebDev-sub003/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "toku",
	Short: "Web development skill assessment and learning roadmaps",
	Long:  "toku — terminal app that assesses your web development skills and builds a personalized learning roadmap.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides TOKU_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default: XDG config dir)")

	rootCmd.AddCommand(roadmapCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// defaultUserID identifies the local learner. The schema is keyed by
// user so a multi-profile mode can be added without a migration.
const defaultUserID = "local"

// resolveDBPath returns the database path using --db flag (highest
// priority), then the config file, then TOKU_DB, then the default XDG
// path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, nil
	}
	if cfg != nil && cfg.DBPath != "" {
		return cfg.DBPath, nil
	}
	return store.DefaultDBPath()
}

// loadConfig reads the config file named by --config, or the default
// location when the flag is unset.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
