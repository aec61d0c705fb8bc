package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/frahmantamala/expense-insights/internal/advisor"
	"github.com/frahmantamala/expense-insights/pkg/logger"
)

var categorizeCmd = &cobra.Command{
	Use:   "categorize [description]",
	Short: "Suggest a category for an expense description",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(configPath)
		if err != nil {
			return err
		}
		if err := cfg.LLM.Validate(); err != nil {
			return fmt.Errorf("invalid llm config: %w", err)
		}
		if err := cfg.Observability.Logging.Validate(); err != nil {
			return fmt.Errorf("invalid logging config: %w", err)
		}
		initLogger(cfg)
		lg := logger.L()

		service := advisor.NewService(newLLMClient(cfg, lg), nil, lg)
		category := service.Categorize(context.Background(), strings.Join(args, " "))

		fmt.Fprintln(cmd.OutOrStdout(), category)
		return nil
	},
}
