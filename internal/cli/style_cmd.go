package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mselnes/forma/internal/cli/formatter"
	"github.com/mselnes/forma/internal/domain"
	"github.com/mselnes/forma/internal/store"
)

func newStyleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "style",
		Short: "Manage shared styles",
	}

	cmd.AddCommand(
		newStyleListCmd(app),
		newStylePromoteCmd(app),
	)

	return cmd
}

func newStyleListCmd(app *App) *cobra.Command {
	var blockType string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List shared styles for a block type",
		RunE: func(cmd *cobra.Command, args []string) error {
			t := domain.BlockType(blockType)
			if !domain.IsValidBlockType(t) {
				return fmt.Errorf("unknown block type %q", blockType)
			}

			styles, err := app.SharedStyles.ListByBlockType(context.Background(), t)
			if err != nil {
				return err
			}
			if len(styles) == 0 {
				fmt.Println("No shared styles found.")
				return nil
			}

			headers := []string{"ID", "Name", "Type", "Updated"}
			rows := make([][]string, 0, len(styles))
			for _, s := range styles {
				rows = append(rows, []string{
					formatter.TruncID(s.ID),
					s.Name,
					formatter.TypeBadge(s.BlockType),
					formatter.HumanTimestamp(s.UpdatedAt),
				})
			}
			fmt.Print(formatter.RenderTable(headers, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&blockType, "type", "", "block type to list styles for")
	cmd.MarkFlagRequired("type")
	return cmd
}

func newStylePromoteCmd(app *App) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "promote DOC_ID BLOCK_ID",
		Short: "Promote a block's styling into a shared style",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			doc, err := app.Documents.GetByID(ctx, args[0])
			if err != nil {
				return err
			}

			ed := store.NewEditor(doc)
			s, err := ed.PromoteSharedStyle(args[1], name)
			if err != nil {
				return err
			}

			if err := app.SharedStyles.Create(ctx, s); err != nil {
				return err
			}
			if err := app.Documents.Update(ctx, ed.Document()); err != nil {
				return fmt.Errorf("saving document: %w", err)
			}

			fmt.Printf("Promoted block %s to shared style %s\n",
				args[1], formatter.Bold(s.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "shared style name")
	cmd.MarkFlagRequired("name")
	return cmd
}
