package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/mselnes/forma/internal/cli"
	"github.com/mselnes/forma/internal/db"
	"github.com/mselnes/forma/internal/preset"
	"github.com/mselnes/forma/internal/repository"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.forma/forma.db
	dbPath := os.Getenv("FORMA_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".forma", "forma.db")
	}
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	registry, err := preset.NewRegistry()
	if err != nil {
		return fmt.Errorf("loading presets: %w", err)
	}

	app := &cli.App{
		Documents:    repository.NewSQLiteDocumentRepo(database),
		SharedStyles: repository.NewSQLiteSharedStyleRepo(database),
		Presets:      registry,
	}

	// Interactive forms only when stdin is a real terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
