package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecentRoundTrip(t *testing.T) {
	cat := Catalog()
	for n := 0; n <= MaxRecent; n++ {
		l := NewRecentList(cat[:n]...)
		require.Equal(t, n, l.Len())

		got := DecodeRecent(EncodeRecent(l))
		assert.True(t, got.Equal(l), "n=%d: got %v want %v", n, got.Items(), l.Items())
	}
}

func TestFavoritesRoundTrip_IgnoresInsertionOrder(t *testing.T) {
	a := NewFavoriteSet("π", "©", "★")
	b := NewFavoriteSet("★", "π", "©")

	assert.Equal(t, EncodeFavorites(a), EncodeFavorites(b))
	assert.True(t, DecodeFavorites(EncodeFavorites(a)).Equal(b))
}

func TestEncode_Format(t *testing.T) {
	assert.Equal(t, "©,π,√", EncodeRecent(NewRecentList("©", "π", "√")))
	assert.Equal(t, "©,π", EncodeFavorites(NewFavoriteSet("π", "©")))
	assert.Equal(t, "", EncodeRecent(RecentList{}))
	assert.Equal(t, "", EncodeFavorites(FavoriteSet{}))
}

func TestDecode_EmptyAndMalformed(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		want   []Character
	}{
		{"empty", "", nil},
		{"only separators", ",,,", nil},
		{"trailing separator", "π,", []Character{"π"}},
		{"duplicates keep latest", "π,√,π", []Character{"√", "π"}},
		{"over cap keeps newest", "a,b,c,d,e,f,g,h,i,j,k,l", []Character{"c", "d", "e", "f", "g", "h", "i", "j", "k", "l"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeRecent(tt.stored)
			if tt.want == nil {
				assert.True(t, got.IsEmpty())
				return
			}
			assert.Equal(t, tt.want, got.Items())
		})
	}

	assert.True(t, DecodeFavorites("").IsEmpty())
	assert.True(t, DecodeFavorites(",").IsEmpty())
	assert.True(t, DecodeFavorites("π,π,√").Equal(NewFavoriteSet("π", "√")))
}

func TestParseCharacter(t *testing.T) {
	c, err := ParseCharacter("π")
	require.NoError(t, err)
	assert.Equal(t, Character("π"), c)

	_, err = ParseCharacter("a,b")
	assert.ErrorIs(t, err, ErrUnknownCharacter)

	for _, c := range Catalog() {
		assert.NotContains(t, string(c), separator)
	}
}
