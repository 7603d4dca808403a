package cmd

import (
	"context"
	"fmt"

	"outfit-picker/core/config"
	"outfit-picker/core/logger"
	"outfit-picker/core/snapshot"
	"outfit-picker/feature/reconcile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var applyChanges bool

// reconcileCmd represents the reconcile command
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Reconcile the recorded closet shape against the filesystem",
	Long: `Diffs the recorded categories and outfits against what is actually on disk.

Reports new, deleted and changed categories. With --apply the changes are
merged into the configuration; if categories were deleted, rotation state is
reset (worn history cleared) since per-cycle bookkeeping is no longer
trustworthy.

Examples:
  # Report only
  reconcile

  # Report and commit
  reconcile --apply`,
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().BoolVar(&applyChanges, "apply", false, "Commit detected changes to the closet config")

	RootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	deps, err := buildClosetDeps(cfg)
	if err != nil {
		return err
	}

	svc := reconcile.NewService(deps.configs, deps.states, deps.lister, cfg.Closet.Extension, logg)

	cs, err := svc.DetectChanges(ctx)
	if err != nil {
		return err
	}

	printChangeSet(cs)

	if cs.IsEmpty() {
		return nil
	}
	if !applyChanges {
		fmt.Println("\nRun again with --apply to commit these changes.")
		return nil
	}

	closet, reset, err := svc.UpdateConfig(ctx, cs)
	if err != nil {
		return err
	}

	logg.Info("Closet reconciled",
		zap.Int("categories", len(closet.KnownCategories)),
		zap.Bool("rotation_reset", reset))
	fmt.Printf("\nApplied. %d categories tracked.\n", len(closet.KnownCategories))
	if reset {
		fmt.Println("Rotation state was reset because categories were deleted.")
	}
	return nil
}

func printChangeSet(cs *snapshot.ChangeSet) {
	fmt.Println("\n--- Closet Changes ---")
	if cs.IsEmpty() {
		fmt.Println("No changes. The closet matches the recorded shape.")
		fmt.Println("----------------------")
		return
	}
	for _, cat := range cs.NewCategories {
		fmt.Printf("new:      %s\n", cat)
	}
	for _, cat := range cs.DeletedCategories {
		fmt.Printf("deleted:  %s\n", cat)
	}
	for _, cat := range cs.ChangedCategories {
		fmt.Printf("changed:  %s (+%d/-%d files)\n", cat, len(cs.AddedFiles[cat]), len(cs.DeletedFiles[cat]))
	}
	fmt.Println("----------------------")
}
