package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmountMarshalsAsBareNumber(t *testing.T) {
	t.Parallel()

	payload, err := json.Marshal(map[string]Amount{"price": MustAmount("78.00")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"price":78.00}`, string(payload))
}

func TestAmountUnmarshalAcceptsQuotedAndBare(t *testing.T) {
	t.Parallel()

	var bare Amount
	require.NoError(t, json.Unmarshal([]byte(`70.2`), &bare))
	assert.True(t, bare.Equal(MustAmount("70.2")))

	var quoted Amount
	require.NoError(t, json.Unmarshal([]byte(`"70.2"`), &quoted))
	assert.True(t, quoted.Equal(bare))
}

func TestAmountArithmetic(t *testing.T) {
	t.Parallel()

	price := MustAmount("48.00")
	assert.True(t, price.MulInt(3).Equal(MustAmount("144.00")))
	assert.True(t, price.Add(MustAmount("0.50")).Equal(MustAmount("48.50")))
	assert.False(t, price.IsNegative())
	assert.True(t, MustAmount("-1").IsNegative())
}

func TestNewAmountRejectsGarbage(t *testing.T) {
	t.Parallel()

	_, err := NewAmount("not-a-number")
	require.Error(t, err)
}
