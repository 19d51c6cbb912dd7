package cli

import (
	"fmt"

	"github.com/isavita/coderev/internal/config"
	"github.com/isavita/coderev/internal/prompt"
	"github.com/isavita/coderev/internal/provider"
	"github.com/isavita/coderev/internal/provider/claude"
	"github.com/isavita/coderev/internal/provider/openai"
	"github.com/spf13/cobra"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List known models, or pick one interactively",
	Long: `Models lists the models coderev knows how to route. On a terminal it
presents an interactive picker and persists the selection to this
repository's config; otherwise it prints the list.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		models := knownModels()

		if !prompt.IsInteractive() {
			for _, m := range models {
				fmt.Printf("%s\t%s\n", m.ID, m.Description)
			}
			return nil
		}

		selected, err := prompt.SelectModel(models)
		if err != nil {
			return err
		}

		_, store, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		if err := store.Set(config.KeyModel, selected); err != nil {
			return err
		}
		fmt.Printf("Set model to %s\n", selected)
		return nil
	},
}

func knownModels() []provider.ModelInfo {
	models := openai.Models()
	models = append(models, claude.Models()...)
	return models
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}
