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

// NewSetsCommand creates the sets command group.
func NewSetsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sets",
		Aliases: []string{"set"},
		Short:   "Manage sets",
		Long:    "List card sets for a game",
	}

	cmd.AddCommand(newSetsListCommand())

	return cmd
}

//nolint:funlen // Command setup functions naturally run long
func newSetsListCommand() *cobra.Command {
	var (
		game     string
		allPages bool
		perPage  int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List card sets",
		Long:  "List card sets, optionally filtered by game",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			ctx := context.Background()
			params := tcg.NewParams().WithLimit(clampPageSize(perPage))

			if game != "" {
				params.WithGame(game)
			}

			var (
				sets  []tcg.Set
				usage tcg.Usage
				more  bool
			)

			if allPages {
				sets, err = client.Sets().ListAll(ctx, params)
				if err != nil {
					return fmt.Errorf("failed to list sets: %w", err)
				}
			} else {
				resp, err := client.Sets().List(ctx, params)
				if err != nil {
					return fmt.Errorf("failed to list sets: %w", err)
				}

				if apiErr := resp.APIError(); apiErr != nil {
					return apiErr
				}

				sets = resp.Data
				usage = resp.Usage
				more = resp.Pagination != nil && resp.Pagination.HasMore
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(sets)
			case OutputFormatYAML:
				return renderYAML(sets)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Game", "Cards", "Released")

				for _, set := range sets {
					released := set.ReleaseDate
					if released == "" {
						released = NotAvailable
					}

					_ = table.Append(set.ID, set.Name, set.Game,
						strconv.Itoa(set.CardsCount), released)
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				if more {
					fmt.Fprintln(os.Stdout, "More sets available, use --all to fetch every page")
				}

				if summary := formatUsage(usage); summary != "" {
					fmt.Fprintln(os.Stdout, summary)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&game, "game", "g", "", "filter by game ID")
	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&perPage, "per-page", tcg.DefaultPageSize, "results per page")

	return cmd
}
