package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/cardindex-io/tcgpricing/internal/constants"
	"github.com/cardindex-io/tcgpricing/pkg/tcg"
	"github.com/cardindex-io/tcgpricing/pkg/tcgclient"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"

	NotAvailable = "N/A"
)

// Common static errors used throughout the commands package.
var (
	ErrSearchTermRequired = errors.New("search term is required")
	ErrNoLookupsSpecified = errors.New("no lookups specified, use --id or --card-id")
	ErrValueRequired      = errors.New("a value is required")
)

// CreateClient builds an API client from the resolved CLI configuration.
// Flags win over the config file; the library itself falls back to the
// TCG_API_KEY environment variable.
func CreateClient() (tcg.Client, error) {
	config := &tcg.Config{
		APIKey:  viper.GetString("api_key"),
		BaseURL: viper.GetString("base_url"),
	}

	if viper.GetBool("debug") {
		config.Debug = true
		config.Logger = newZerologAdapter()
	}

	client, err := tcgclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("creating API client: %w", err)
	}

	return client, nil
}

// renderJSON writes data to stdout as indented JSON.
func renderJSON(data interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding to JSON: %w", err)
	}

	return nil
}

// renderYAML writes data to stdout as YAML.
func renderYAML(data interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding to YAML: %w", err)
	}

	return nil
}

// zerologAdapter bridges the library's structured logger interface onto
// zerolog for --debug output.
type zerologAdapter struct {
	logger zerolog.Logger
}

func newZerologAdapter() *zerologAdapter {
	writer := zerolog.ConsoleWriter{Out: os.Stderr}

	return &zerologAdapter{
		logger: zerolog.New(writer).Level(zerolog.DebugLevel).With().Timestamp().Logger(),
	}
}

func (a *zerologAdapter) Debug(msg string, fields map[string]interface{}) {
	a.logger.Debug().Fields(fields).Msg(msg)
}

func (a *zerologAdapter) Info(msg string, fields map[string]interface{}) {
	a.logger.Info().Fields(fields).Msg(msg)
}

func (a *zerologAdapter) Warn(msg string, fields map[string]interface{}) {
	a.logger.Warn().Fields(fields).Msg(msg)
}

func (a *zerologAdapter) Error(msg string, fields map[string]interface{}) {
	a.logger.Error().Fields(fields).Msg(msg)
}

// clampPageSize bounds a --per-page value to what the API accepts.
func clampPageSize(perPage int) int {
	if perPage <= 0 {
		return tcg.DefaultPageSize
	}

	if perPage > constants.MaxPageSize {
		return constants.MaxPageSize
	}

	return perPage
}

// formatUsage renders the quota counters appended to command output when the
// server reports them.
func formatUsage(usage tcg.Usage) string {
	if usage.RequestLimit == 0 && usage.RequestsUsed == 0 {
		return ""
	}

	return fmt.Sprintf("API requests: %d used, %d remaining", usage.RequestsUsed, usage.RequestsRemaining)
}
