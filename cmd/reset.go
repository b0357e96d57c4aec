package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sproutfi/sprout/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the session journal",
	RunE: func(cmd *cobra.Command, args []string) error {
		dsn, err := resolveJournalDSN(cmd)
		if err != nil {
			return fmt.Errorf("resolve journal path: %w", err)
		}
		if dsn == store.MemoryDSN {
			fmt.Println("Journal is in-memory — nothing to reset.")
			return nil
		}

		if err := os.Remove(dsn); err != nil {
			if os.IsNotExist(err) {
				fmt.Println("No journal found at", dsn)
				return nil
			}
			return fmt.Errorf("remove journal: %w", err)
		}
		fmt.Println("Journal deleted:", dsn)
		return nil
	},
}
