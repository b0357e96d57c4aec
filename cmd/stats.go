package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sproutfi/sprout/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show journal statistics",
	Long:  "Summarizes the session journal: challenge completions by type and recent sessions. Only useful with an on-disk journal (--journal or SPROUT_JOURNAL).",
	RunE: func(cmd *cobra.Command, args []string) error {
		dsn, err := resolveJournalDSN(cmd)
		if err != nil {
			return fmt.Errorf("resolve journal path: %w", err)
		}
		if dsn == store.MemoryDSN {
			fmt.Println("No journal configured — stats need an on-disk journal (--journal or SPROUT_JOURNAL).")
			return nil
		}

		st, err := store.Open(dsn)
		if err != nil {
			return fmt.Errorf("open journal: %w", err)
		}
		defer st.Close()

		repo, err := st.EventRepo()
		if err != nil {
			return fmt.Errorf("open event repo: %w", err)
		}

		ctx := cmd.Context()

		byType, total, err := repo.ChallengeCounts(ctx)
		if err != nil {
			return fmt.Errorf("count challenges: %w", err)
		}

		fmt.Printf("Challenges completed: %d\n", total)
		for _, kind := range []string{"learning", "action"} {
			if n, ok := byType[kind]; ok {
				fmt.Printf("  %-10s %d\n", kind, n)
			}
		}

		summaries, err := repo.QuerySessionSummaries(ctx, store.QueryOpts{Limit: 10})
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}
		if len(summaries) == 0 {
			fmt.Println("\nNo finished sessions yet.")
			return nil
		}

		fmt.Println("\nRecent sessions:")
		for _, s := range summaries {
			persona := s.Persona
			if persona == "" {
				persona = "—"
			}
			fmt.Printf("  %s  %-12s  %4d XP  %3d coins  %d challenges  %dm%02ds\n",
				s.Timestamp.Format("2006-01-02 15:04"),
				persona, s.XP, s.Coins, s.ChallengesCompleted,
				s.DurationSecs/60, s.DurationSecs%60)
		}
		return nil
	},
}
