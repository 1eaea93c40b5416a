package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToggleFavorite_AddsThenRemoves(t *testing.T) {
	added := ToggleFavorite("★", FavoriteSet{})
	assert.True(t, added.Equal(NewFavoriteSet("★")))

	removed := ToggleFavorite("★", added)
	assert.True(t, removed.IsEmpty())
}

func TestToggleFavorite_DoubleToggleIsIdentity(t *testing.T) {
	sets := []FavoriteSet{
		{},
		NewFavoriteSet("★"),
		NewFavoriteSet("©", "π", "√"),
		NewFavoriteSet(Catalog()...),
	}
	for _, f := range sets {
		for _, c := range append(Catalog(), "other") {
			got := ToggleFavorite(c, ToggleFavorite(c, f))
			assert.True(t, got.Equal(f), "toggle %q twice on %v", c, f.Sorted())
		}
	}
}

func TestToggleFavorite_DoesNotMutateInput(t *testing.T) {
	f := NewFavoriteSet("π")
	_ = ToggleFavorite("π", f)
	_ = ToggleFavorite("√", f)
	assert.True(t, f.Equal(NewFavoriteSet("π")))
}

func TestFavoriteSet_SortedUsesCatalogOrder(t *testing.T) {
	f := NewFavoriteSet("√", "zz", "©", "π", "aa")
	assert.Equal(t, []Character{"©", "π", "√", "aa", "zz"}, f.Sorted())
}

func TestFavoriteSet_Duplicates(t *testing.T) {
	f := NewFavoriteSet("π", "π", "π")
	assert.Equal(t, 1, f.Len())
	assert.True(t, f.Contains("π"))
	assert.False(t, f.Contains("√"))
}
