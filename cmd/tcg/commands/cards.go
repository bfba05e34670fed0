package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/cardindex-io/tcgpricing/pkg/tcg"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewCardsCommand creates the cards command group.
func NewCardsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "cards",
		Aliases: []string{"card"},
		Short:   "Search cards and prices",
		Long:    "Search cards by name and look up current market prices",
	}

	cmd.AddCommand(newCardsSearchCommand())
	cmd.AddCommand(newCardsBatchCommand())

	return cmd
}

//nolint:funlen // Command setup functions naturally run long
func newCardsSearchCommand() *cobra.Command {
	var (
		game       string
		set        string
		conditions []string
		printings  []string
		allPages   bool
		perPage    int
	)

	cmd := &cobra.Command{
		Use:   "search SEARCH_TERM",
		Short: "Search cards by name",
		Long:  "Search cards by name with optional game, set, condition, and printing filters",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return ErrSearchTermRequired
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()
			params := tcg.NewParams().WithQuery(args[0]).WithLimit(clampPageSize(perPage))

			if game != "" {
				params.WithGame(game)
			}

			if set != "" {
				params.WithSet(set)
			}

			if len(conditions) > 0 {
				params.WithCondition(conditions...)
			}

			if len(printings) > 0 {
				params.WithPrinting(printings...)
			}

			var (
				cards []tcg.Card
				usage tcg.Usage
				more  bool
			)

			if allPages {
				cards, err = client.Cards().SearchAll(ctx, params)
				if err != nil {
					return fmt.Errorf("failed to search cards: %w", err)
				}
			} else {
				resp, err := client.Cards().Search(ctx, params)
				if err != nil {
					return fmt.Errorf("failed to search cards: %w", err)
				}

				if apiErr := resp.APIError(); apiErr != nil {
					return apiErr
				}

				cards = resp.Data
				usage = resp.Usage
				more = resp.Pagination != nil && resp.Pagination.HasMore
			}

			return outputCards(cards, usage, more)
		},
	}

	cmd.Flags().StringVarP(&game, "game", "g", "", "filter by game ID")
	cmd.Flags().StringVarP(&set, "set", "s", "", "filter by set ID")
	cmd.Flags().StringSliceVar(&conditions, "condition", nil, "filter variants by condition (repeatable)")
	cmd.Flags().StringSliceVar(&printings, "printing", nil, "filter variants by printing (repeatable)")
	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&perPage, "per-page", tcg.DefaultPageSize, "results per page")

	return cmd
}

func newCardsBatchCommand() *cobra.Command {
	var (
		tcgplayerIDs []string
		cardIDs      []string
		condition    string
		printing     string
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Look up prices for multiple cards",
		Long:  "Look up current prices for multiple cards in a single request",
		RunE: func(cmd *cobra.Command, args []string) error {
			lookups := make([]tcg.BatchLookup, 0, len(tcgplayerIDs)+len(cardIDs))

			for _, id := range tcgplayerIDs {
				lookups = append(lookups, tcg.BatchLookup{
					TCGPlayerID: id,
					Condition:   condition,
					Printing:    printing,
				})
			}

			for _, id := range cardIDs {
				lookups = append(lookups, tcg.BatchLookup{
					CardID:    id,
					Condition: condition,
					Printing:  printing,
				})
			}

			if len(lookups) == 0 {
				return ErrNoLookupsSpecified
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			resp, err := client.Cards().Batch(context.Background(), lookups)
			if err != nil {
				return fmt.Errorf("failed to look up cards: %w", err)
			}

			if apiErr := resp.APIError(); apiErr != nil {
				return apiErr
			}

			return outputCards(resp.Data, resp.Usage, false)
		},
	}

	cmd.Flags().StringSliceVar(&tcgplayerIDs, "id", nil, "TCGplayer product ID (repeatable)")
	cmd.Flags().StringSliceVar(&cardIDs, "card-id", nil, "card ID (repeatable)")
	cmd.Flags().StringVar(&condition, "condition", "", "narrow variants to one condition")
	cmd.Flags().StringVar(&printing, "printing", "", "narrow variants to one printing")

	return cmd
}

// outputCards renders one variant-priced row per card variant.
func outputCards(cards []tcg.Card, usage tcg.Usage, more bool) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return renderJSON(cards)
	case OutputFormatYAML:
		return renderYAML(cards)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Name", "Set", "Number", "Condition", "Printing", "Price")

		for _, card := range cards {
			number := card.Number
			if number == "" {
				number = NotAvailable
			}

			if len(card.Variants) == 0 {
				_ = table.Append(card.Name, card.Set, number, NotAvailable, NotAvailable, NotAvailable)

				continue
			}

			for _, variant := range card.Variants {
				_ = table.Append(card.Name, card.Set, number, variant.Condition, variant.Printing,
					"$"+strconv.FormatFloat(variant.Price, 'f', 2, 64))
			}
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		if more {
			fmt.Fprintln(os.Stdout, "More cards available, use --all to fetch every page")
		}

		if summary := formatUsage(usage); summary != "" {
			fmt.Fprintln(os.Stdout, summary)
		}
	}

	return nil
}
