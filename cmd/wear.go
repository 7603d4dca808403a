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

// wearCmd represents the wear command
var wearCmd = &cobra.Command{
	Use:   "wear [category] [outfit]",
	Short: "Record an outfit as worn",
	Long:  `Marks the outfit as consumed in the current rotation cycle. Wearing the last unworn outfit completes the cycle and starts a fresh one.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWear(context.Background(), args[0], args[1])
	},
}

func init() {
	RootCmd.AddCommand(wearCmd)
}

func runWear(ctx context.Context, category, fileName string) error {
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

	result, err := svc.MarkWorn(ctx, category, fileName)
	if err != nil {
		return err
	}

	if result.CycleCompleted {
		logg.Info("Rotation cycle completed",
			zap.String("category", result.Category),
			zap.String("outfit", result.FileName))
		fmt.Printf("Recorded %s. That was the last one: %s starts a fresh cycle.\n",
			result.FileName, result.Category)
		return nil
	}

	logg.Info("Outfit recorded as worn",
		zap.String("category", result.Category),
		zap.String("outfit", result.FileName))
	fmt.Printf("Recorded %s as worn in %s.\n", result.FileName, result.Category)
	return nil
}
