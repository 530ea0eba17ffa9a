package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mselnes/forma/internal/cli/formatter"
	"github.com/mselnes/forma/internal/domain"
	"github.com/mselnes/forma/internal/style"
)

func newCSSCmd(app *App) *cobra.Command {
	viewport := viewportFlag(domain.ViewportDesktop)

	cmd := &cobra.Command{
		Use:   "css DOC_ID BLOCK_ID",
		Short: "Show a block's resolved CSS declarations",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := app.Documents.GetByID(context.Background(), args[0])
			if err != nil {
				return err
			}
			blk := domain.FindByID(doc.Blocks, args[1])
			if blk == nil {
				return fmt.Errorf("block %q not found", args[1])
			}

			v := domain.Viewport(viewport)
			resolved := style.Resolve(blk.Styles, v)
			decls := style.NewCSSResolver().Declarations(resolved)
			fmt.Print(formatter.FormatDeclarations(blk, v, decls))
			return nil
		},
	}

	cmd.Flags().Var(&viewport, "viewport", "viewport tier (desktop, tablet, mobile)")
	return cmd
}
