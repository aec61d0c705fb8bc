package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/frahmantamala/expense-insights/internal/theme"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Print the client style configuration as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(theme.Default())
	},
}
