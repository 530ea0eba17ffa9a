package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mselnes/forma/internal/cli/formatter"
)

func newPresetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Browse section presets",
	}

	cmd.AddCommand(
		newPresetListCmd(app),
		newPresetShowCmd(app),
	)

	return cmd
}

func newPresetListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Print(formatter.FormatPresetList(app.Presets.List()))
			return nil
		},
	}
}

func newPresetShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show preset details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, ok := app.Presets.Get(args[0])
			if !ok {
				return fmt.Errorf("preset %q not found", args[0])
			}
			fmt.Print(formatter.FormatPresetDetail(p))
			return nil
		},
	}
}
