package report

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"specialchars/internal/model"
)

func TestGenerate_Empty(t *testing.T) {
	out := Generate(model.RecentList{}, model.FavoriteSet{})

	assert.Contains(t, out, "Recently Used (0/10, newest first)\n  (none)\n")
	assert.Contains(t, out, "Favorites (0)\n  (none)\n")
	for _, c := range model.Catalog() {
		assert.Contains(t, out, string(c))
	}
}

func TestGenerate_NewestFirstWithFavoriteMarks(t *testing.T) {
	out := Generate(model.NewRecentList("©", "π"), model.NewFavoriteSet("π"))

	assert.Contains(t, out, "   1. π "+model.IconFavorite+"\n   2. © "+model.IconNotFavorite+"\n")
	assert.Contains(t, out, "Favorites (1)\n  π\n")

	all := out[strings.Index(out, model.SectionAll):]
	assert.Contains(t, all, "π "+model.IconFavorite)
	assert.Contains(t, all, "√ "+model.IconNotFavorite)
}

func TestSnapshot_JSON(t *testing.T) {
	data, err := json.Marshal(NewSnapshot(model.RecentList{}, model.FavoriteSet{}))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"recent":[]`)
	assert.Contains(t, string(data), `"favorites":[]`)

	snap := NewSnapshot(model.NewRecentList("©", "π"), model.NewFavoriteSet("√", "★"))
	assert.Equal(t, []model.Character{"©", "π"}, snap.Recent)
	assert.Equal(t, []model.Character{"★", "√"}, snap.Favorites)
	assert.Len(t, snap.Catalog, 16)
}
