package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/fcoelho/flashdeck/internal/backup"
	"github.com/fcoelho/flashdeck/internal/collection"
)

func newDeckCommand() *cobra.Command {
	deckCommand := &cobra.Command{
		Use:   "deck",
		Short: "Import, export and back up the whole collection",
	}

	deckCommand.AddCommand(
		newDeckExportCommand(),
		newDeckImportCommand(),
		newDeckBackupCommand(),
		newDeckRestoreCommand(),
	)
	return deckCommand
}

func newDeckExportCommand() *cobra.Command {
	var output string
	command := &cobra.Command{
		Use:   "export",
		Short: "Export the collection as a JSON array",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(store *collection.Store) error {
				text, err := store.ExportText()
				if err != nil {
					return err
				}
				if output == "" {
					fmt.Println(text)
					return nil
				}
				if err := os.WriteFile(output, []byte(text), 0644); err != nil {
					return fmt.Errorf("os.WriteFile(%s) > %w", output, err)
				}
				fmt.Printf("Exported %d cards to %s\n", store.Len(), output)
				return nil
			})
		},
	}
	command.Flags().StringVarP(&output, "output", "o", "", "write to a file instead of stdout")
	return command
}

func newDeckImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import flashcards from a JSON array",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("os.ReadFile(%s) > %w", args[0], err)
			}
			return withStore(func(store *collection.Store) error {
				imported, err := store.ImportText(string(data))
				if err != nil {
					return err
				}
				fmt.Printf("Imported %d cards.\n", imported)
				return nil
			})
		},
	}
}

func newDeckBackupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "backup",
		Short: "Write a YAML snapshot of the collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return withStore(func(store *collection.Store) error {
				path, err := backup.WriteSnapshot(cfg.Backups.Directory, store.List(), time.Now())
				if err != nil {
					return err
				}
				fmt.Printf("Wrote snapshot %s\n", path)
				return nil
			})
		},
	}
}

func newDeckRestoreCommand() *cobra.Command {
	var snapshot string
	command := &cobra.Command{
		Use:   "restore",
		Short: "Replace the collection with a YAML snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			path := snapshot
			if path == "" {
				path, err = backup.LatestSnapshot(cfg.Backups.Directory)
				if err != nil {
					return err
				}
			}

			cards, err := backup.ReadSnapshot(path)
			if err != nil {
				return err
			}
			return withStore(func(store *collection.Store) error {
				if err := store.Replace(cards); err != nil {
					return err
				}
				fmt.Printf("Restored %d cards from %s\n", len(cards), path)
				return nil
			})
		},
	}
	command.Flags().StringVar(&snapshot, "snapshot", "", "snapshot path (defaults to the most recent)")
	return command
}
