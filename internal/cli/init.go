package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the per-repository config file with default settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, err := openStore(cmd.Context())
		if err != nil {
			return err
		}

		created, err := store.Init()
		if err != nil {
			return err
		}

		if created {
			fmt.Printf("Initialized config at %s\n", store.Path())
		} else {
			fmt.Printf("Config already exists at %s\n", store.Path())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
