package cli

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/fcoelho/flashdeck/internal/collection"
	"github.com/fcoelho/flashdeck/internal/generation"
)

// GenerateCLI asks the generation service for candidate cards, previews
// them, and only adds them to the collection after an explicit confirmation.
type GenerateCLI struct {
	*InteractiveCLI
	store   *collection.Store
	service generation.Service
}

func NewGenerateCLI(
	base *InteractiveCLI,
	store *collection.Store,
	service generation.Service,
) *GenerateCLI {
	return &GenerateCLI{
		InteractiveCLI: base,
		store:          store,
		service:        service,
	}
}

// Run performs one generate-preview-save round. On generation failure
// nothing is applied.
func (r *GenerateCLI) Run(ctx context.Context, req generation.Request) error {
	fmt.Fprintf(r.stdoutWriter, "Generating %d cards about %s...\n", req.Quantity, r.bold.Sprint(req.Topic))

	cards, err := r.service.Generate(ctx, req)
	if err != nil {
		return fmt.Errorf("service.Generate() > %w", err)
	}
	if len(cards) == 0 {
		fmt.Fprintln(r.stdoutWriter, "The service returned no cards for this topic.")
		return nil
	}

	for i, card := range cards {
		fmt.Fprintf(r.stdoutWriter, "%d. %s\n   %s\n", i+1, r.bold.Sprint(card.Question), r.italic.Sprint(card.Answer))
	}

	save, err := r.confirm(fmt.Sprintf("Save these %d cards?", len(cards)))
	if err != nil {
		return err
	}
	if !save {
		fmt.Fprintln(r.stdoutWriter, "Discarded.")
		return nil
	}

	drafts := lo.Map(cards, func(card generation.Card, _ int) collection.Draft {
		return collection.Draft{
			Question: card.Question,
			Answer:   card.Answer,
			Tag:      card.Tag,
		}
	})
	added, err := r.store.AddMany(drafts)
	if err != nil {
		return fmt.Errorf("store.AddMany() > %w", err)
	}

	fmt.Fprintf(r.stdoutWriter, "Saved %d cards.\n", len(added))
	return nil
}
