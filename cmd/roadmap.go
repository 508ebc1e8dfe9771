package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Trevorton27/tokuWebDev-sub003/internal/planner"
	"github.com/Trevorton27/tokuWebDev-sub003/internal/roadmap"
	"github.com/Trevorton27/tokuWebDev-sub003/internal/store"
	"github.com/Trevorton27/tokuWebDev-sub003/internal/taxonomy"
)

var roadmapCmd = &cobra.Command{
	Use:   "roadmap",
	Short: "Show or regenerate the learning roadmap",
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

		gen := roadmap.NewGenerator(cfg.Roadmap.Weights.ToWeights(), cfg.Roadmap.WeakThreshold)
		svc := planner.NewService(st.Mastery(), st.Roadmap(), gen, nil)

		opts := planDefaults(cfg)
		if weeks, _ := cmd.Flags().GetInt("weeks"); weeks > 0 {
			opts.MaxWeeks = weeks
		}
		if hours, _ := cmd.Flags().GetInt("hours"); hours > 0 {
			opts.HoursPerWeek = hours
		}
		if role, _ := cmd.Flags().GetString("role"); role != "" {
			opts.TargetRole = taxonomy.TargetRole(role)
		}
		opts.Regenerate, _ = cmd.Flags().GetBool("regenerate")

		ctx := context.Background()
		items, err := svc.GenerateForUser(ctx, defaultUserID, opts)
		if err != nil {
			return err
		}
		if len(items) == 0 {
			fmt.Println("No roadmap could be generated. Try a larger time budget.")
			return nil
		}

		printRoadmap(items)
		return nil
	},
}

func printRoadmap(items []planner.Item) {
	var total float64
	var lastPhase roadmap.Phase
	for _, it := range items {
		if it.Resource.Phase != lastPhase {
			lastPhase = it.Resource.Phase
			fmt.Printf("\n%s\n%s\n", roadmap.PhaseName(lastPhase), strings.Repeat("─", 40))
		}
		marker := " "
		switch it.Status {
		case roadmap.StatusInProgress:
			marker = "~"
		case roadmap.StatusCompleted:
			marker = "x"
		}
		fmt.Printf("  [%s] %-42s %-9s %4.0fh\n",
			marker, it.Resource.Title, strings.ToLower(string(it.Resource.Type)), it.Resource.EstimatedHours)
		total += it.Resource.EstimatedHours
	}
	fmt.Printf("\n%d resources, %.0f hours total\n", len(items), total)
}

func init() {
	roadmapCmd.Flags().Int("weeks", 0, "Plan horizon in weeks (default from config)")
	roadmapCmd.Flags().Int("hours", 0, "Hours per week (default from config)")
	roadmapCmd.Flags().String("role", "", "Target role (frontend, backend, junior_fullstack)")
	roadmapCmd.Flags().Bool("regenerate", false, "Rebuild the roadmap from the current skill profile")
}
