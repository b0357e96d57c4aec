package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sproutfi/sprout/internal/app"
	"github.com/sproutfi/sprout/internal/catalog"
	"github.com/sproutfi/sprout/internal/coach"
	"github.com/sproutfi/sprout/internal/purchase"
	"github.com/sproutfi/sprout/internal/store"
)

// runApp opens the journal, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	dsn, err := resolveJournalDSN(cmd)
	if err != nil {
		return fmt.Errorf("resolve journal path: %w", err)
	}
	st, err := store.Open(dsn)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer st.Close()

	eventRepo, err := st.EventRepo()
	if err != nil {
		return fmt.Errorf("open event repo: %w", err)
	}

	opts := app.Options{
		Catalog:   cat,
		EventRepo: eventRepo,
		Purchaser: &purchase.MockPurchaser{},
	}

	// A nil service just means no coach was configured; an error means a
	// configured coach failed to initialize.
	coachSvc, err := coach.NewServiceFromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Coach unavailable:", err)
		fmt.Fprintln(os.Stderr, "Challenge tips will be disabled for this session.")
	} else {
		opts.Coach = coachSvc
	}

	return app.Run(opts)
}
