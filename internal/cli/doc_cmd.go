package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mselnes/forma/internal/cli/formatter"
)

func newNewCmd(app *App) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "new [PRESET_ID]",
		Short: "Create a document from a preset",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presetID := ""
			if len(args) > 0 {
				presetID = args[0]
			}

			if presetID == "" || name == "" {
				if !app.interactive() {
					return fmt.Errorf("preset id and --name are required in non-interactive mode")
				}
				if err := runNewDocumentForm(app, &presetID, &name); err != nil {
					return err
				}
			}

			doc, err := app.Presets.NewDocument(presetID, name)
			if err != nil {
				return err
			}
			if err := app.Documents.Create(context.Background(), doc); err != nil {
				return err
			}

			fmt.Printf("Created document %s\n", formatter.Bold(doc.ID))
			fmt.Print(formatter.FormatDocumentTree(formatter.DocumentTreeData{Document: doc}))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "document name")
	return cmd
}

func newListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List documents",
		RunE: func(cmd *cobra.Command, args []string) error {
			docs, err := app.Documents.List(context.Background())
			if err != nil {
				return err
			}

			if len(docs) == 0 {
				fmt.Println("No documents found.")
				return nil
			}

			headers := []string{"ID", "Name", "Lang", "Blocks", "Updated"}
			rows := make([][]string, 0, len(docs))
			for _, d := range docs {
				rows = append(rows, []string{
					formatter.TruncID(d.ID),
					d.Name,
					d.Language,
					fmt.Sprintf("%d", len(d.Blocks)),
					formatter.HumanTimestamp(d.UpdatedAt),
				})
			}

			fmt.Print(formatter.RenderTable(headers, rows))
			return nil
		},
	}
}

func newTreeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tree DOC_ID",
		Short: "Show a document's block tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := app.Documents.GetByID(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatDocumentTree(formatter.DocumentTreeData{Document: doc}))
			return nil
		},
	}
}

func newDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete DOC_ID",
		Short: "Delete a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			// Verify it exists so a typo'd id fails loudly.
			if _, err := app.Documents.GetByID(ctx, args[0]); err != nil {
				return err
			}
			if err := app.Documents.Delete(ctx, args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted document %s\n", args[0])
			return nil
		},
	}
}
