package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/rscript/internal/app"
)

func (c *CLI) newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and clear the package cache",
		Args:  cobra.NoArgs,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List cached packages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c.applyVerbose(cmd)
			format, _ := cmd.Flags().GetString("format")
			return c.app.ListCache(cmd.Context(), format, cmd.OutOrStdout())
		},
	}
	listCmd.Flags().String("format", app.FormatTable, "Output format: table or yaml")

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every cached package and the build output",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c.applyVerbose(cmd)
			if err := c.app.ClearCache(cmd.Context()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "rscript cache cleared.")
			return nil
		},
	}

	cmd.AddCommand(listCmd, clearCmd)
	return cmd
}
