package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPet(t *testing.T) {
	t.Parallel()

	t.Run("valid pet", func(t *testing.T) {
		t.Parallel()
		pet, err := NewPet("Biscuit", "Dogs", "https://cdn.example.com/biscuit.jpg",
			"A very good boy", "owner@example.com")
		require.NoError(t, err)

		assert.Equal(t, "Biscuit", pet.Name)
		assert.Equal(t, "Dogs", pet.Category)
		assert.Equal(t, "owner@example.com", pet.AddedBy)
		assert.False(t, pet.Adopted, "new pets start unadopted")
		assert.NotZero(t, pet.ID)
	})

	tests := []struct {
		name     string
		petName  string
		category string
		addedBy  string
	}{
		{"missing name", "", "Dogs", "owner@example.com"},
		{"missing category", "Biscuit", "", "owner@example.com"},
		{"missing owner", "Biscuit", "Dogs", ""},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewPet(tc.petName, tc.category, "", "", tc.addedBy)
			assert.ErrorIs(t, err, ErrEmptyContent)
		})
	}
}

func TestPetPatchEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, PetPatch{}.Empty())

	name := "Biscuit"
	assert.False(t, PetPatch{Name: &name}.Empty())

	adopted := false
	assert.False(t, PetPatch{Adopted: &adopted}.Empty(),
		"a false pointer field still counts as a patch")
}
