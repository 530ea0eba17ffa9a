package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mselnes/forma/internal/action"
	"github.com/mselnes/forma/internal/assistant"
	"github.com/mselnes/forma/internal/cli/formatter"
	"github.com/mselnes/forma/internal/store"
)

func newApplyCmd(app *App) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "apply DOC_ID FILE",
		Short: "Apply an action list to a document",
		Long: `Apply reads a JSON action list (as produced by an assistant) from FILE,
executes it against the document, and saves the result. Use "-" to read
the actions from stdin.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			raw, err := readActionsInput(args[1])
			if err != nil {
				return err
			}
			actions, err := assistant.ExtractActions(string(raw))
			if err != nil {
				return fmt.Errorf("parsing actions: %w", err)
			}

			doc, err := app.Documents.GetByID(ctx, args[0])
			if err != nil {
				return err
			}

			ed := store.NewEditor(doc)
			exec := action.NewExecutor(ed)
			results := exec.ExecuteAll(actions)

			fmt.Print(formatter.FormatResults(actions, results))

			if dryRun {
				fmt.Println(formatter.Dim("Dry run, document not saved."))
				return nil
			}
			if !anySucceeded(results) {
				return nil
			}
			if err := app.Documents.Update(ctx, ed.Document()); err != nil {
				return fmt.Errorf("saving document: %w", err)
			}
			fmt.Printf("Saved document %s\n", formatter.Bold(doc.ID))
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "execute without saving")
	return cmd
}

func readActionsInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading actions file: %w", err)
	}
	return raw, nil
}

func anySucceeded(results []action.Result) bool {
	for _, r := range results {
		if r.Success {
			return true
		}
	}
	return false
}
