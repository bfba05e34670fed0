package commands

import (
	"testing"

	"github.com/cardindex-io/tcgpricing/pkg/tcg"
	"github.com/stretchr/testify/assert"
)

func TestNewGamesCommand(t *testing.T) {
	cmd := NewGamesCommand()
	assert.Equal(t, "games", cmd.Use)
	assert.Equal(t, []string{"game"}, cmd.Aliases)
	assert.Equal(t, "Manage games", cmd.Short)

	var commandNames []string
	for _, subcmd := range cmd.Commands() {
		commandNames = append(commandNames, subcmd.Name())
	}

	assert.Contains(t, commandNames, "list")
}

func TestNewSetsCommand(t *testing.T) {
	cmd := NewSetsCommand()
	assert.Equal(t, "sets", cmd.Use)
	assert.Equal(t, []string{"set"}, cmd.Aliases)

	listCmd, _, err := cmd.Find([]string{"list"})
	assert.NoError(t, err)
	assert.NotNil(t, listCmd.RunE)

	// Check pagination flags
	assert.NotNil(t, listCmd.Flags().Lookup("all"))
	assert.NotNil(t, listCmd.Flags().Lookup("per-page"))

	gameFlag := listCmd.Flags().Lookup("game")
	assert.NotNil(t, gameFlag)
	assert.Equal(t, "g", gameFlag.Shorthand)
}

func TestNewCardsCommand(t *testing.T) {
	cmd := NewCardsCommand()
	assert.Equal(t, "cards", cmd.Use)

	var commandNames []string
	for _, subcmd := range cmd.Commands() {
		commandNames = append(commandNames, subcmd.Name())
	}

	assert.Contains(t, commandNames, "search")
	assert.Contains(t, commandNames, "batch")

	searchCmd, _, err := cmd.Find([]string{"search"})
	assert.NoError(t, err)

	flags := []string{"game", "set", "condition", "printing", "all", "per-page"}
	for _, flagName := range flags {
		flag := searchCmd.Flags().Lookup(flagName)
		assert.NotNil(t, flag, "Flag %s should exist", flagName)
	}

	batchCmd, _, err := cmd.Find([]string{"batch"})
	assert.NoError(t, err)
	assert.NotNil(t, batchCmd.Flags().Lookup("id"))
	assert.NotNil(t, batchCmd.Flags().Lookup("card-id"))
}

func TestNewConfigCommand(t *testing.T) {
	cmd := NewConfigCommand()
	assert.Equal(t, "config", cmd.Use)

	var commandNames []string
	for _, subcmd := range cmd.Commands() {
		commandNames = append(commandNames, subcmd.Name())
	}

	assert.Contains(t, commandNames, "show")
	assert.Contains(t, commandNames, "set-key")
	assert.Contains(t, commandNames, "set")
	assert.Contains(t, commandNames, "unset")
}

func TestNewVersionCommand(t *testing.T) {
	cmd := NewVersionCommand("1.2.3", "abc123", "2026-01-01")
	assert.Equal(t, "version", cmd.Use)
	assert.NotNil(t, cmd.RunE)
}

func TestNewUsageCommand(t *testing.T) {
	cmd := NewUsageCommand()
	assert.Equal(t, "usage", cmd.Use)
	assert.NotNil(t, cmd.RunE)
}

func TestClampPageSize(t *testing.T) {
	assert.Equal(t, tcg.DefaultPageSize, clampPageSize(0))
	assert.Equal(t, tcg.DefaultPageSize, clampPageSize(-5))
	assert.Equal(t, 50, clampPageSize(50))
	assert.Equal(t, 200, clampPageSize(9999))
}

func TestFormatUsage(t *testing.T) {
	assert.Empty(t, formatUsage(tcg.Usage{}))
	assert.Equal(t, "API requests: 12 used, 988 remaining",
		formatUsage(tcg.Usage{RequestLimit: 1000, RequestsUsed: 12, RequestsRemaining: 988}))
}
