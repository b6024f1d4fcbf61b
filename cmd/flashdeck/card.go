package main

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/fcoelho/flashdeck/internal/collection"
)

func newCardCommand() *cobra.Command {
	cardCommand := &cobra.Command{
		Use:   "card",
		Short: "Manage the flashcard collection",
	}

	cardCommand.AddCommand(
		newCardAddCommand(),
		newCardListCommand(),
		newCardUpdateCommand(),
		newCardRemoveCommand(),
		newCardClearCommand(),
		newCardTagsCommand(),
	)
	return cardCommand
}

// withStore loads the config, opens the store and closes it afterwards.
func withStore(run func(store *collection.Store) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, closeStore, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = closeStore() }()

	return run(store)
}

func newCardAddCommand() *cobra.Command {
	var question, answer, tag string
	command := &cobra.Command{
		Use:   "add",
		Short: "Add a flashcard to the collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(store *collection.Store) error {
				card, err := store.Add(collection.Draft{
					Question: question,
					Answer:   answer,
					Tag:      tag,
				})
				if err != nil {
					return err
				}
				fmt.Printf("Added card %s [%s]\n", card.ID, card.Tag)
				return nil
			})
		},
	}
	command.Flags().StringVarP(&question, "question", "q", "", "the card's question")
	command.Flags().StringVarP(&answer, "answer", "a", "", "the card's answer")
	command.Flags().StringVarP(&tag, "tag", "t", "", "grouping tag (defaults to \"geral\")")
	_ = command.MarkFlagRequired("question")
	_ = command.MarkFlagRequired("answer")
	return command
}

func newCardListCommand() *cobra.Command {
	var tag string
	command := &cobra.Command{
		Use:   "list",
		Short: "List flashcards, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(store *collection.Store) error {
				cards := store.List()
				if tag != "" {
					cards = store.FilterByTag(tag)
				}
				if len(cards) == 0 {
					fmt.Println("No flashcards found.")
					return nil
				}
				for _, card := range cards {
					createdAt := time.UnixMilli(card.CreatedAt).Format("2006-01-02")
					fmt.Printf("%s  [%s]  %s\n    %s\n    created %s", card.ID, card.Tag, card.Question, card.Answer, createdAt)
					if card.LastReviewed > 0 {
						fmt.Printf(", reviewed %s (%s)",
							time.UnixMilli(card.LastReviewed).Format("2006-01-02"), card.Difficulty)
					}
					fmt.Println()
				}
				return nil
			})
		},
	}
	command.Flags().StringVarP(&tag, "tag", "t", "", "only list cards with this tag")
	return command
}

func newCardUpdateCommand() *cobra.Command {
	var question, answer, tag string
	command := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a flashcard's content fields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(store *collection.Store) error {
				var patch collection.Patch
				if cmd.Flags().Changed("question") {
					patch.Question = &question
				}
				if cmd.Flags().Changed("answer") {
					patch.Answer = &answer
				}
				if cmd.Flags().Changed("tag") {
					patch.Tag = &tag
				}
				if err := store.Update(args[0], patch); err != nil {
					return err
				}
				fmt.Printf("Updated card %s\n", args[0])
				return nil
			})
		},
	}
	command.Flags().StringVarP(&question, "question", "q", "", "new question")
	command.Flags().StringVarP(&answer, "answer", "a", "", "new answer")
	command.Flags().StringVarP(&tag, "tag", "t", "", "new tag")
	return command
}

func newCardRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a flashcard from the collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(store *collection.Store) error {
				if err := store.Remove(args[0]); err != nil {
					return err
				}
				fmt.Printf("Removed card %s\n", args[0])
				return nil
			})
		},
	}
}

func newCardClearCommand() *cobra.Command {
	var yes bool
	command := &cobra.Command{
		Use:   "clear",
		Short: "Remove every flashcard from the collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to clear the collection without --yes")
			}
			return withStore(func(store *collection.Store) error {
				if err := store.Clear(); err != nil {
					return err
				}
				fmt.Println("Collection cleared.")
				return nil
			})
		},
	}
	command.Flags().BoolVar(&yes, "yes", false, "confirm clearing the collection")
	return command
}

func newCardTagsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List every tag in use with its card count",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(store *collection.Store) error {
				counts := store.Tags()
				if len(counts) == 0 {
					fmt.Println("No flashcards found.")
					return nil
				}

				tags := make([]string, 0, len(counts))
				for tag := range counts {
					tags = append(tags, tag)
				}
				sort.Strings(tags)
				for _, tag := range tags {
					fmt.Printf("%s: %d\n", tag, counts[tag])
				}
				return nil
			})
		},
	}
}
