package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sproutfi/sprout/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "sprout",
	Short: "Gamified investing education in your terminal",
	Long:  "Sprout — a playful terminal app that teaches investing basics through a quiz, personas, and bite-size challenges.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("journal", "", "Path to the session journal database (overrides SPROUT_JOURNAL; default is in-memory)")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(coachCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveJournalDSN returns the journal DSN using the --journal flag
// (highest priority), then the SPROUT_JOURNAL env var, then in-memory.
func resolveJournalDSN(cmd *cobra.Command) (string, error) {
	p, _ := cmd.Flags().GetString("journal")
	return store.ResolveDSN(p)
}
