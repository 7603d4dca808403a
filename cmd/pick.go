package cmd

import (
	"context"
	"fmt"

	"outfit-picker/core/config"
	"outfit-picker/core/logger"
	"outfit-picker/feature/picker"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// pickCmd represents the pick command
var pickCmd = &cobra.Command{
	Use:   "pick [category]",
	Short: "Pick a random unworn outfit from a category",
	Long:  `Selects one outfit uniformly at random among the ones not yet worn this cycle. The pick is not recorded; use the wear command once the outfit is actually worn.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPick(context.Background(), args[0])
	},
}

func init() {
	RootCmd.AddCommand(pickCmd)
}

func runPick(ctx context.Context, category string) error {
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

	svc := picker.NewService(deps.configs, deps.states, deps.lister, cfg.Closet.Extension, logg)

	pick, err := svc.Next(ctx, category)
	if err != nil {
		return err
	}
	if pick == nil {
		logg.Info("No outfit available", zap.String("category", category))
		fmt.Printf("No outfit available in %q.\n", category)
		return nil
	}

	fmt.Println("\n--- Today's Pick ---")
	fmt.Printf("Category:    %s\n", pick.Category)
	fmt.Printf("Outfit:      %s\n", pick.FileName)
	fmt.Printf("Path:        %s\n", pick.Path)
	fmt.Printf("Remaining:   %d unworn after this one\n", pick.Remaining)
	fmt.Println("--------------------")
	return nil
}
