package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	encoded, err := EncodeIngredients([]string{"chicken", "lettuce", "tomato"})
	require.NoError(t, err)

	decoded := DecodeIngredients(&Recipe{Ingredients: encoded})
	assert.ElementsMatch(t, []string{"chicken", "lettuce", "tomato"}, decoded)
}

func TestEncodeIngredientsEliminatesDuplicates(t *testing.T) {
	encoded, err := EncodeIngredients([]string{"Chicken", "chicken", " chicken ", "lettuce"})
	require.NoError(t, err)

	decoded := DecodeIngredients(&Recipe{Ingredients: encoded})
	assert.Len(t, decoded, 2)
}

func TestEncodeIngredientsDropsBlankTokens(t *testing.T) {
	encoded, err := EncodeIngredients([]string{"", "  ", "salt"})
	require.NoError(t, err)

	decoded := DecodeIngredients(&Recipe{Ingredients: encoded})
	assert.Equal(t, []string{"salt"}, decoded)
}

func TestEncodeIngredientsEmptySet(t *testing.T) {
	encoded, err := EncodeIngredients(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", encoded)

	decoded := DecodeIngredients(&Recipe{Ingredients: encoded})
	assert.Empty(t, decoded)
}

func TestDecodeIngredientsMalformedEncoding(t *testing.T) {
	for _, stored := range []string{"", "{not json", `{"a": 1}`, "null,"} {
		decoded := DecodeIngredients(&Recipe{Ingredients: stored})
		assert.Empty(t, decoded, "stored %q should decode to an empty set", stored)
	}
}

func TestCanonicalName(t *testing.T) {
	assert.Equal(t, "olive oil", CanonicalName("  Olive Oil "))
	assert.Equal(t, "chicken", CanonicalName("CHICKEN"))
}
