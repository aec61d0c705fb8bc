package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/frahmantamala/expense-insights/internal/auth"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Identity token commands",
}

var issueTokenCmd = &cobra.Command{
	Use:   "issue [id]",
	Short: "Issue a signed identity token",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(configPath)
		if err != nil {
			return err
		}
		if err := cfg.Security.Validate(); err != nil {
			return fmt.Errorf("invalid security config: %w", err)
		}

		issuer, err := auth.NewTokenIssuer(cfg.Security.JWTSecret, cfg.Security.TokenTTL)
		if err != nil {
			return err
		}
		token, err := issuer.Issue(args[0])
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(auth.TokenResponse{
			ID:        args[0],
			Token:     token,
			ExpiresAt: time.Now().Add(issuer.TTL()).UTC().Truncate(time.Second),
		})
	},
}

func init() {
	tokenCmd.AddCommand(issueTokenCmd)
}
