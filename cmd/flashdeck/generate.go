package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/fcoelho/flashdeck/internal/cli"
	"github.com/fcoelho/flashdeck/internal/collection"
	"github.com/fcoelho/flashdeck/internal/generation"
)

type styleFlag generation.Style

func (s *styleFlag) Set(val string) error {
	style, err := generation.ParseStyle(val)
	if err != nil {
		return err
	}
	*s = styleFlag(style)
	return nil
}

func (s *styleFlag) String() string {
	return string(*s)
}

func (s *styleFlag) Type() string {
	return "style"
}

var _ pflag.Value = (*styleFlag)(nil)

func newGenerateCommand() *cobra.Command {
	var quantity int
	style := styleFlag(generation.StyleQuestion)
	command := &cobra.Command{
		Use:   "generate <topic>",
		Short: "Generate flashcards about a topic, preview them, and save on confirmation",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			service, err := newGenerationService(cfg)
			if err != nil {
				return err
			}

			return withStore(func(store *collection.Store) error {
				generateCLI := cli.NewGenerateCLI(cli.NewStdioCLI(), store, service)
				return generateCLI.Run(context.Background(), generation.Request{
					Topic:    strings.Join(args, " "),
					Quantity: quantity,
					Style:    generation.Style(style),
				})
			})
		},
	}
	command.Flags().IntVarP(&quantity, "quantity", "n", 5, "how many cards to generate")
	command.Flags().VarP(&style, "style", "s", "content style: definition, question, example or analogy")
	return command
}
