package cmd

import (
	"context"
	"fmt"

	"outfit-picker/core/config"
	"outfit-picker/core/logger"
	"outfit-picker/core/pathcheck"
	"outfit-picker/core/snapshot"
	"outfit-picker/core/wardrobe"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	setupRoot     string
	setupLanguage string
	setupExclude  []string
)

// setupCmd represents the setup command
var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Configure the closet and record its initial shape",
	Long: `Validates the closet root, scans its categories and outfits, and writes
the initial closet configuration.

Examples:
  # Point at a closet on local disk
  setup --root /home/alice/closet

  # Danish labels, skipping seasonal storage
  setup --root /home/alice/closet --language da --exclude winter-storage`,
	RunE: runSetup,
}

func init() {
	setupCmd.Flags().StringVar(&setupRoot, "root", "", "Closet root directory (required)")
	setupCmd.Flags().StringVar(&setupLanguage, "language", "", "Display language (optional)")
	setupCmd.Flags().StringSliceVar(&setupExclude, "exclude", nil, "Category names to exclude from rotation")
	_ = setupCmd.MarkFlagRequired("root")

	RootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	// Validate inputs before touching anything on disk.
	opts := pathcheck.Options{SkipSymlinkCheck: cfg.Closet.SkipSymlinkCheck}
	if err := pathcheck.Validate(setupRoot, opts); err != nil {
		return fmt.Errorf("closet root rejected: %w", err)
	}
	if setupLanguage != "" && !snapshot.IsSupportedLanguage(setupLanguage) {
		return fmt.Errorf("unsupported language %q (supported: %v)", setupLanguage, snapshot.SupportedLanguages)
	}

	deps, err := buildClosetDeps(cfg)
	if err != nil {
		return err
	}

	closet := &snapshot.Config{
		Root:               setupRoot,
		Language:           setupLanguage,
		ExcludedCategories: setupExclude,
	}

	logg.Info("Scanning closet", zap.String("root", setupRoot))
	categories, files, err := wardrobe.Scan(ctx, deps.lister, setupRoot, cfg.Closet.Extension, closet.IsExcluded)
	if err != nil {
		return fmt.Errorf("closet scan failed: %w", err)
	}
	closet.SetShape(categories, files)

	if err := deps.configs.Save(ctx, closet); err != nil {
		return fmt.Errorf("failed to save closet config: %w", err)
	}

	total := 0
	for _, f := range files {
		total += len(f)
	}
	logg.Info("Closet configured",
		zap.Int("categories", len(categories)),
		zap.Int("outfits", total))

	// Pretty Console Output
	fmt.Println("\n--- Closet Setup ---")
	fmt.Printf("Root:        %s\n", closet.Root)
	if closet.Language != "" {
		fmt.Printf("Language:    %s\n", closet.Language)
	}
	if len(closet.ExcludedCategories) > 0 {
		fmt.Printf("Excluded:    %v\n", closet.ExcludedCategories)
	}
	fmt.Println("--------------------")
	for _, cat := range categories {
		fmt.Printf("%-20s %d outfits\n", cat, len(files[cat]))
	}
	return nil
}
