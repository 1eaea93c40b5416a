// Package report renders the current lists for the non-interactive modes.
package report

import (
	"fmt"
	"strings"

	"specialchars/internal/model"
)

// Snapshot is the JSON shape of --json output.
type Snapshot struct {
	Catalog   []model.Character `json:"catalog"`
	Recent    []model.Character `json:"recent"`    // oldest first, as stored
	Favorites []model.Character `json:"favorites"` // catalog order
}

// NewSnapshot captures the given state. Slices are never nil so they encode as [].
func NewSnapshot(recent model.RecentList, favorites model.FavoriteSet) Snapshot {
	return Snapshot{
		Catalog:   model.Catalog(),
		Recent:    recent.Items(),
		Favorites: favorites.Sorted(),
	}
}

// Generate renders a plain-text report with the same three sections as the TUI.
func Generate(recent model.RecentList, favorites model.FavoriteSet) string {
	var sb strings.Builder

	sb.WriteString("Special Characters\n")
	sb.WriteString("==================\n\n")

	fmt.Fprintf(&sb, "%s (%d/%d, newest first)\n", model.SectionRecent, recent.Len(), model.MaxRecent)
	if recent.IsEmpty() {
		sb.WriteString("  (none)\n")
	}
	for i, c := range recent.Newest() {
		fmt.Fprintf(&sb, "  %2d. %s %s\n", i+1, c, favoriteIcon(favorites, c))
	}
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "%s (%d)\n", model.SectionFavorites, favorites.Len())
	if favorites.IsEmpty() {
		sb.WriteString("  (none)\n")
	}
	for _, c := range favorites.Sorted() {
		fmt.Fprintf(&sb, "  %s\n", c)
	}
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "%s\n", model.SectionAll)
	for i, c := range model.Catalog() {
		fmt.Fprintf(&sb, "  %2d. %s %s\n", i+1, c, favoriteIcon(favorites, c))
	}

	return sb.String()
}

func favoriteIcon(favorites model.FavoriteSet, c model.Character) string {
	if favorites.Contains(c) {
		return model.IconFavorite
	}
	return model.IconNotFavorite
}
