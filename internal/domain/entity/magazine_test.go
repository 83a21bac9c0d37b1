package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMagazine(t *testing.T) {
	tests := []struct {
		name      string
		magName   string
		category  string
		wantField string
	}{
		{name: "valid", magName: "Vogue", category: "Fashion"},
		{name: "name too short", magName: "V", category: "Fashion", wantField: "name"},
		{name: "name too long", magName: "The Very Long Magazine", category: "Fashion", wantField: "name"},
		{name: "empty category", magName: "Vogue", category: "", wantField: "category"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMagazine(tt.magName, tt.category)
			if tt.wantField == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.magName, m.Name)
				assert.Equal(t, tt.category, m.Category)
				return
			}
			assert.Nil(t, m)
			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.wantField, ve.Field)
			assert.Equal(t, KindRange, ve.Kind)
		})
	}
}

func TestMagazine_Clone(t *testing.T) {
	m, err := NewMagazine("Vogue", "Fashion")
	require.NoError(t, err)

	c := m.Clone()
	c.Category = "Lifestyle"

	assert.Equal(t, "Fashion", m.Category)
}
