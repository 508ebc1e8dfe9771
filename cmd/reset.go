package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Trevorton27/tokuWebDev-sub003/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all assessment data and the roadmap",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			fmt.Print("This deletes your skill profile, sessions and roadmap. Continue? [y/N] ")
			var answer string
			_, _ = fmt.Scanln(&answer)
			if answer != "y" && answer != "Y" {
				fmt.Println("Aborted.")
				return nil
			}
		}

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

		ctx := context.Background()
		if err := st.Mastery().DeleteForUser(ctx, defaultUserID); err != nil {
			return err
		}
		if err := st.Roadmap().DeleteForUser(ctx, defaultUserID); err != nil {
			return err
		}
		if err := st.Sessions().DeleteForUser(ctx, defaultUserID); err != nil {
			return err
		}
		// Responses hang off sessions; with the sessions gone, clear the
		// whole log.
		if _, err := st.Client().AssessmentResponse.Delete().Exec(ctx); err != nil {
			return fmt.Errorf("delete responses: %w", err)
		}

		fmt.Println("All learner data deleted.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
}
