package cli

import (
	"github.com/isavita/coderev/internal/render"
	"github.com/spf13/cobra"
)

var branchesCmd = &cobra.Command{
	Use:   "branches",
	Short: "List local branches",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, _, err := openStore(cmd.Context())
		if err != nil {
			return err
		}

		branches, err := repo.ListBranches(cmd.Context())
		if err != nil {
			return err
		}

		renderer := render.New(render.DefaultOptions())
		if def, err := repo.GetDefaultBranch(cmd.Context()); err == nil {
			renderer.RenderHeader("Default base branch: " + def)
		}
		renderer.RenderBranches(branches)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(branchesCmd)
}
