package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategories(t *testing.T) {
	s := &Settings{Categories: []string{"Ficción", "Poesía"}}

	require.NoError(t, s.AddCategory("  Aventura "))
	assert.Equal(t, []string{"Ficción", "Poesía", "Aventura"}, s.Categories)

	assert.ErrorIs(t, s.AddCategory("   "), ErrCategoryBlank)
	assert.ErrorIs(t, s.AddCategory("Poesía"), ErrCategoryExists)

	require.NoError(t, s.RemoveCategory("Poesía"))
	assert.Equal(t, []string{"Ficción", "Aventura"}, s.Categories)
	assert.ErrorIs(t, s.RemoveCategory("Poesía"), ErrCategoryNotFound)
}

func TestRemoveCategory_DoesNotAliasOriginal(t *testing.T) {
	orig := &Settings{Categories: []string{"a", "b", "c"}}
	clone := orig.Clone()

	require.NoError(t, clone.RemoveCategory("a"))
	assert.Equal(t, []string{"a", "b", "c"}, orig.Categories)
	assert.Equal(t, []string{"b", "c"}, clone.Categories)
}

func TestValidate(t *testing.T) {
	s := &Settings{WhatsappNumber: "+54 11 7202-3171", Categories: []string{"General"}}
	assert.NoError(t, s.Validate())

	s.WhatsappNumber = "call me"
	assert.Error(t, s.Validate())

	s = &Settings{Categories: []string{"A", "A"}}
	assert.Error(t, s.Validate())
}

func TestHandoffNumber(t *testing.T) {
	s := &Settings{WhatsappNumber: "+54 11 7202-3171"}
	assert.Equal(t, "541172023171", s.HandoffNumber())
}
