package leetcode

import "strings"

// FavoriteSlug identifies a curated question list on LeetCode.
// The constants below are the well-known lists; any other non-empty value is
// accepted as a custom list.
type FavoriteSlug string

const (
	FacebookThirtyDays FavoriteSlug = "facebook-thirty-days"
	UberThreeMonths    FavoriteSlug = "uber-three-months"
)

// DefaultFavoriteSlug is used when no list is requested explicitly.
const DefaultFavoriteSlug = FacebookThirtyDays

var wellKnown = []FavoriteSlug{FacebookThirtyDays, UberThreeMonths}

// WellKnownSlugs returns the well-known lists in declaration order.
func WellKnownSlugs() []FavoriteSlug {
	out := make([]FavoriteSlug, len(wellKnown))
	copy(out, wellKnown)
	return out
}

// ParseFavoriteSlug normalizes a caller-supplied identifier.
// Blank input yields DefaultFavoriteSlug.
func ParseFavoriteSlug(s string) FavoriteSlug {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultFavoriteSlug
	}
	return FavoriteSlug(s)
}

// IsWellKnown reports whether the slug is one of the named lists.
func (s FavoriteSlug) IsWellKnown() bool {
	for _, known := range wellKnown {
		if s == known {
			return true
		}
	}
	return false
}

func (s FavoriteSlug) String() string {
	return string(s)
}
