package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sproutfi/sprout/internal/catalog"
	"github.com/sproutfi/sprout/internal/coach"
)

var coachCmd = &cobra.Command{
	Use:   "coach [challenge-id]",
	Short: "Print a coach tip for a challenge",
	Long:  "Asks the configured LLM coach for a tip. With no argument, lists the challenge ids.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.Load()
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}

		if len(args) == 0 {
			for _, c := range cat.Challenges {
				fmt.Printf("  %-24s %s\n", c.ID, c.Title)
			}
			return nil
		}

		c, ok := cat.ChallengeByID(args[0])
		if !ok {
			return fmt.Errorf("unknown challenge %q", args[0])
		}

		svc, err := coach.NewServiceFromEnv()
		if err != nil {
			return fmt.Errorf("configure coach: %w", err)
		}
		if svc == nil {
			return fmt.Errorf("no coach configured — set SPROUT_ANTHROPIC_API_KEY (or another provider key)")
		}

		tip, err := svc.TipForChallenge(cmd.Context(), c, nil)
		if err != nil {
			return err
		}

		fmt.Println(tip.Headline)
		fmt.Println()
		fmt.Println(tip.Body)
		return nil
	},
}
