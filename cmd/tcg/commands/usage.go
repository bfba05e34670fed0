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

// NewUsageCommand creates the usage command.
func NewUsageCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "usage",
		Short: "Show API quota usage",
		Long:  "Show the account's API request quota as reported by the server",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			// Every response carries the quota counters; the games list is
			// the cheapest call to obtain them.
			resp, err := client.Games().List(context.Background(), tcg.NewParams())
			if err != nil {
				return fmt.Errorf("failed to query usage: %w", err)
			}

			if apiErr := resp.APIError(); apiErr != nil {
				return apiErr
			}

			usage := resp.Usage

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(usage)
			case OutputFormatYAML:
				return renderYAML(usage)
			default:
				plan := usage.Plan
				if plan == "" {
					plan = NotAvailable
				}

				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")
				_ = table.Append("Plan", plan)
				_ = table.Append("Request limit", strconv.Itoa(usage.RequestLimit))
				_ = table.Append("Requests used", strconv.Itoa(usage.RequestsUsed))
				_ = table.Append("Requests remaining", strconv.Itoa(usage.RequestsRemaining))
				_ = table.Append("Rate limit", strconv.Itoa(usage.RateLimit))

				if err := table.Render(); err != nil {
					return fmt.Errorf("failed to render table: %w", err)
				}
			}

			return nil
		},
	}
}
