package leetcode_test

import (
	"testing"

	"leetcode-tracker/core/leetcode"

	"github.com/stretchr/testify/assert"
)

func TestParseFavoriteSlug(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      leetcode.FavoriteSlug
		wellKnown bool
	}{
		{"Empty", "", leetcode.FacebookThirtyDays, true},
		{"Blank", "   ", leetcode.FacebookThirtyDays, true},
		{"Facebook", "facebook-thirty-days", leetcode.FacebookThirtyDays, true},
		{"Uber", "uber-three-months", leetcode.UberThreeMonths, true},
		{"Custom", "my-private-list", "my-private-list", false},
		{"Trimmed", "  uber-three-months ", leetcode.UberThreeMonths, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := leetcode.ParseFavoriteSlug(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wellKnown, got.IsWellKnown())
		})
	}
}

func TestWellKnownSlugs(t *testing.T) {
	slugs := leetcode.WellKnownSlugs()
	assert.Equal(t, []leetcode.FavoriteSlug{leetcode.FacebookThirtyDays, leetcode.UberThreeMonths}, slugs)

	// Callers cannot mutate the package list.
	slugs[0] = "changed"
	assert.Equal(t, leetcode.FacebookThirtyDays, leetcode.WellKnownSlugs()[0])
}
