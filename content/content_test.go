package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableShapes(t *testing.T) {
	tables := Default()

	require.Len(t, tables.Stats, 4)
	require.Len(t, tables.Features, 4)
	require.Len(t, tables.TestTypes, 4)
	require.Len(t, tables.Benefits, 4)

	assert.Equal(t, StatEntry{Label: "Tests Created", Value: "10K+"}, tables.Stats[0])
	assert.Equal(t, "Avg Score", tables.Stats[3].Label)
	assert.Equal(t, "Secure Testing", tables.Features[3].Title)
	assert.Equal(t, Gradient{From: Yellow, To: Orange}, tables.TestTypes[2].Gradient)
	assert.Equal(t, IconUsers, tables.Benefits[3].Icon)
}

func TestTablesAreComplete(t *testing.T) {
	tables := Default()

	for i, s := range tables.Stats {
		assert.NotEmpty(t, s.Label, "stat %d", i)
		assert.NotEmpty(t, s.Value, "stat %d", i)
	}
	for i, f := range tables.Features {
		assert.NotEmpty(t, f.Title, "feature %d", i)
		assert.NotEmpty(t, f.Description, "feature %d", i)
		assert.True(t, f.Icon.Valid(), "feature %d icon %q", i, f.Icon)
	}
	for i, tt := range tables.TestTypes {
		assert.NotEmpty(t, tt.Title, "test type %d", i)
		assert.True(t, tt.Icon.Valid(), "test type %d icon %q", i, tt.Icon)
		assert.NotEmpty(t, tt.Gradient.From, "test type %d", i)
		assert.NotEmpty(t, tt.Gradient.To, "test type %d", i)
	}
	for i, b := range tables.Benefits {
		assert.NotEmpty(t, b.Title, "benefit %d", i)
		assert.True(t, b.Icon.Valid(), "benefit %d icon %q", i, b.Icon)
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	s := Stats()
	s[0].Value = "changed"
	assert.Equal(t, "10K+", Stats()[0].Value)
}

func TestIconValid(t *testing.T) {
	assert.True(t, IconStar.Valid())
	assert.False(t, IconNone.Valid())
	assert.False(t, Icon("rocket").Valid())
}

func TestCardID(t *testing.T) {
	tests := []struct {
		name  string
		fn    func(int) string
		index int
		want  string
	}{
		{"first stat", StatCardID, 0, "stat-card-0"},
		{"last stat", StatCardID, 3, "stat-card-3"},
		{"feature", FeatureCardID, 2, "feature-card-2"},
		{"test type", TestTypeCardID, 1, "test-type-card-1"},
		{"benefit", BenefitCardID, 3, "benefit-card-3"},
		{"past the end", StatCardID, 4, NoID},
		{"negative", BenefitCardID, -1, NoID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.fn(tt.index))
		})
	}

	assert.Equal(t, NoID, CardID(CardKind(42), 0))
}
