package cmd

import (
	"github.com/spf13/cobra"
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Jump straight into the skill assessment",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAppWith(cmd, true)
	},
}

func init() {
	rootCmd.AddCommand(assessCmd)
}
