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

// NewGamesCommand creates the games command group.
func NewGamesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "games",
		Aliases: []string{"game"},
		Short:   "Manage games",
		Long:    "List the trading card games covered by the pricing API",
	}

	cmd.AddCommand(newGamesListCommand())

	return cmd
}

func newGamesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List supported games",
		Long:  "List all trading card games with their card and set counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			resp, err := client.Games().List(context.Background(), tcg.NewParams())
			if err != nil {
				return fmt.Errorf("failed to list games: %w", err)
			}

			if apiErr := resp.APIError(); apiErr != nil {
				return apiErr
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(resp.Data)
			case OutputFormatYAML:
				return renderYAML(resp.Data)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("ID", "Name", "Cards", "Sets")

				for _, game := range resp.Data {
					_ = table.Append(game.ID, game.Name,
						strconv.Itoa(game.CardsCount), strconv.Itoa(game.SetsCount))
				}

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}

				if summary := formatUsage(resp.Usage); summary != "" {
					fmt.Fprintln(os.Stdout, summary)
				}
			}

			return nil
		},
	}
}
