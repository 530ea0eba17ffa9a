package cli

import (
	"github.com/spf13/cobra"

	"github.com/mselnes/forma/internal/preset"
	"github.com/mselnes/forma/internal/repository"
)

// App holds the dependencies shared by all CLI commands.
type App struct {
	Documents    repository.DocumentRepo
	SharedStyles repository.SharedStyleRepo
	Presets      *preset.Registry

	// IsInteractive reports whether stdin is a terminal; interactive
	// commands fall back to flags-only behavior when it returns false.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "forma" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "forma",
		Short: "Page builder content engine",
	}

	root.AddCommand(
		newPresetCmd(app),
		newNewCmd(app),
		newListCmd(app),
		newTreeCmd(app),
		newApplyCmd(app),
		newCSSCmd(app),
		newStyleCmd(app),
		newDeleteCmd(app),
	)

	return root
}
