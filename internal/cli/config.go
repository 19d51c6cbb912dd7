package cli

import (
	"fmt"
	"strings"

	"github.com/isavita/coderev/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and change per-repository settings",
	Long: `Config reads and writes the per-repository settings file. Values set here
apply to every review in this repository unless overridden by a CLI flag.

Keys: ` + strings.Join(config.Keys, ", "),
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the effective settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, err := openStore(cmd.Context())
		if err != nil {
			return err
		}

		settings, err := config.Resolve(config.Overrides{}, store)
		if err != nil {
			return err
		}

		for _, s := range settings.List() {
			fmt.Printf("%s=%s\n", s.Key, s.Value)
		}
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get KEY",
	Short: "Show the effective value for a key",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, err := openStore(cmd.Context())
		if err != nil {
			return err
		}

		settings, err := config.Resolve(config.Overrides{}, store)
		if err != nil {
			return err
		}

		value, err := settings.Get(args[0])
		if err != nil {
			return err
		}
		fmt.Println(value)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Persist a setting for this repository",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, err := openStore(cmd.Context())
		if err != nil {
			return err
		}

		if err := store.Set(args[0], args[1]); err != nil {
			return err
		}
		fmt.Printf("Set %s\n", args[0])
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, store, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(store.Path())
		return nil
	},
}

func init() {
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}
