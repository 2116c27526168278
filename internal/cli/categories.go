package cli

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/habits/pkg/types"
)

func newCategoriesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the habit categories with their menu numbers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return newRenderer(cmd.OutOrStdout(), a.cfg.Format).categoryList(types.Categories())
		},
	}
}
