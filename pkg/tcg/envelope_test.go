package tcg_test

import (
	"encoding/json"
	"testing"

	"github.com/cardindex-io/tcgpricing/pkg/tcg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_WithMeta(t *testing.T) {
	t.Parallel()

	envelope := &tcg.Envelope[[]tcg.Set]{
		Data: []tcg.Set{{ID: "base-set", Name: "Base Set", Game: "pokemon"}},
		Meta: &tcg.Pagination{Total: 120, Limit: 20, Offset: 40, HasMore: true},
		Metadata: tcg.Usage{
			RequestLimit:      1000,
			RequestsUsed:      17,
			RequestsRemaining: 983,
			Plan:              "starter",
		},
	}

	response := tcg.Normalize(envelope)

	require.NotNil(t, response.Pagination)
	assert.Equal(t, tcg.Pagination{Total: 120, Limit: 20, Offset: 40, HasMore: true}, *response.Pagination)
	assert.Equal(t, envelope.Data, response.Data)
	assert.Equal(t, envelope.Metadata, response.Usage)
	assert.Empty(t, response.Error)
	assert.Empty(t, response.Code)

	// The pagination block is copied, not aliased.
	envelope.Meta.Offset = 999
	assert.Equal(t, 40, response.Pagination.Offset)
}

func TestNormalize_WithoutMeta(t *testing.T) {
	t.Parallel()

	envelope := &tcg.Envelope[[]tcg.Game]{
		Data:     []tcg.Game{{ID: "pokemon", Name: "Pokemon"}},
		Metadata: tcg.Usage{RequestLimit: 1000, RequestsUsed: 1, RequestsRemaining: 999},
	}

	response := tcg.Normalize(envelope)

	assert.Nil(t, response.Pagination)
	assert.Equal(t, envelope.Data, response.Data)
	assert.Equal(t, envelope.Metadata, response.Usage)
}

func TestNormalize_APIFailure(t *testing.T) {
	t.Parallel()

	raw := []byte(`{"data":[],"error":"Required query parameter \"game\" is missing","code":"INVALID_REQUEST"}`)

	var envelope tcg.Envelope[[]tcg.Set]

	require.NoError(t, json.Unmarshal(raw, &envelope))

	response := tcg.Normalize(&envelope)

	assert.Empty(t, response.Data)
	assert.Nil(t, response.Pagination)
	assert.Equal(t, `Required query parameter "game" is missing`, response.Error)
	assert.Equal(t, "INVALID_REQUEST", response.Code)
	assert.True(t, response.Failed())

	err := response.APIError()
	require.Error(t, err)
	assert.False(t, tcg.IsNotFound(err))

	apiErr := &tcg.APIError{}
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "INVALID_REQUEST", apiErr.Code)
}

func TestNormalize_Pure(t *testing.T) {
	t.Parallel()

	envelope := &tcg.Envelope[[]tcg.Card]{
		Data: []tcg.Card{{ID: "c1", Name: "Pikachu"}},
		Meta: &tcg.Pagination{Total: 1, Limit: 20, HasMore: false},
	}

	first := tcg.Normalize(envelope)
	second := tcg.Normalize(envelope)

	// Normalizing the same input twice yields equal results and leaves the
	// input untouched.
	assert.Equal(t, first, second)
	assert.Equal(t, []tcg.Card{{ID: "c1", Name: "Pikachu"}}, envelope.Data)
}

func TestResponse_APIError_NilOnSuccess(t *testing.T) {
	t.Parallel()

	response := tcg.Normalize(&tcg.Envelope[[]tcg.Game]{Data: []tcg.Game{}})

	assert.False(t, response.Failed())
	assert.NoError(t, response.APIError())
}
