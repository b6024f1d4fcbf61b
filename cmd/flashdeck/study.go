package main

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/fcoelho/flashdeck/internal/cli"
	"github.com/fcoelho/flashdeck/internal/collection"
)

func newStudyCommand() *cobra.Command {
	var tag string
	var shuffle bool
	command := &cobra.Command{
		Use:   "study",
		Short: "Run an interactive study session over the collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(store *collection.Store) error {
				cards := store.List()
				if tag != "" {
					cards = store.FilterByTag(tag)
				}
				if len(cards) == 0 {
					return fmt.Errorf("no flashcards to study; add cards first")
				}
				if shuffle {
					rand.Shuffle(len(cards), func(i, j int) {
						cards[i], cards[j] = cards[j], cards[i]
					})
				}

				studyCLI, err := cli.NewStudyCLI(cli.NewStdioCLI(), store, cards)
				if err != nil {
					return err
				}

				fmt.Printf("Studying %d cards. Press Ctrl+C to stop at any time.\n\n", len(cards))
				return studyCLI.Run(context.Background(), studyCLI)
			})
		},
	}
	command.Flags().StringVarP(&tag, "tag", "t", "", "only study cards with this tag")
	command.Flags().BoolVar(&shuffle, "shuffle", false, "shuffle the cards before starting")
	return command
}
