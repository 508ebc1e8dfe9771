package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	intakesvc "github.com/Trevorton27/tokuWebDev-sub003/internal/intake"
	"github.com/Trevorton27/tokuWebDev-sub003/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the assessed skill profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		dbPath, err := resolveDBPath(cmd, cfg)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		svc := intakesvc.NewService(st.Sessions(), st.Responses(), st.Mastery(), nil, nil)
		sum, err := svc.SessionSummary(context.Background(), defaultUserID, cfg.Roadmap.WeakThreshold)
		if err != nil {
			return err
		}

		assessed := false
		fmt.Printf("%-24s %-8s %s\n", "Dimension", "Score", "")
		fmt.Println(strings.Repeat("─", 44))
		for _, line := range sum.Dimensions {
			flag := ""
			if line.Score.AssessedCount == 0 {
				flag = "(not assessed)"
			} else {
				assessed = true
				if line.Weak {
					flag = "weak"
				}
			}
			fmt.Printf("%-24s %6.0f%%  %s\n", line.Name, line.Score.Score*100, flag)
		}
		fmt.Println(strings.Repeat("─", 44))
		fmt.Printf("%-24s %6.0f%%\n", "Overall", sum.Overall*100)

		if !assessed {
			fmt.Println("\nNo assessment yet. Run `toku` and start one.")
		}
		return nil
	},
}
