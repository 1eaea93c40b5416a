package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordUsage_AppendsToEmpty(t *testing.T) {
	got := RecordUsage("π", RecentList{})
	assert.Equal(t, []Character{"π"}, got.Items())
}

func TestRecordUsage_MovesExistingToEnd(t *testing.T) {
	l := NewRecentList("a", "b", "c")
	got := RecordUsage("a", l)
	assert.Equal(t, []Character{"b", "c", "a"}, got.Items())
}

func TestRecordUsage_DropsOldestAtCap(t *testing.T) {
	l := NewRecentList("a", "b", "c", "d", "e", "f", "g", "h", "i", "j")
	require.Equal(t, MaxRecent, l.Len())

	got := RecordUsage("k", l)
	assert.Equal(t, []Character{"b", "c", "d", "e", "f", "g", "h", "i", "j", "k"}, got.Items())
}

func TestRecordUsage_ReuseAtCapKeepsAll(t *testing.T) {
	l := NewRecentList("a", "b", "c", "d", "e", "f", "g", "h", "i", "j")
	got := RecordUsage("a", l)
	assert.Equal(t, []Character{"b", "c", "d", "e", "f", "g", "h", "i", "j", "a"}, got.Items())
}

func TestRecordUsage_NeverExceedsCap(t *testing.T) {
	var l RecentList
	seq := []Character{}
	for _, c := range Catalog() {
		seq = append(seq, c, "x", c)
	}
	for _, c := range seq {
		l = RecordUsage(c, l)
		assert.LessOrEqual(t, l.Len(), MaxRecent)
	}
}

func TestRecordUsage_ExactlyOneOccurrenceAtEnd(t *testing.T) {
	base := NewRecentList("©", "®", "™", "✓")
	for _, c := range append(Catalog(), "new") {
		got := RecordUsage(c, base)

		count := 0
		for _, existing := range got.Items() {
			if existing == c {
				count++
			}
		}
		assert.Equal(t, 1, count, "occurrences of %q", c)

		last, ok := got.Last()
		require.True(t, ok)
		assert.Equal(t, c, last)
	}
}

func TestRecordUsage_DoesNotMutateInput(t *testing.T) {
	l := NewRecentList("a", "b")
	_ = RecordUsage("a", l)
	assert.Equal(t, []Character{"a", "b"}, l.Items())
}

func TestRecentList_Newest(t *testing.T) {
	l := NewRecentList("a", "b", "c")
	assert.Equal(t, []Character{"c", "b", "a"}, l.Newest())
}

func TestRecentList_Empty(t *testing.T) {
	var l RecentList
	assert.True(t, l.IsEmpty())
	_, ok := l.Last()
	assert.False(t, ok)
	assert.Empty(t, l.Items())
	assert.True(t, l.Equal(NewRecentList()))
}

func TestRecentList_ItemsIsCopy(t *testing.T) {
	l := NewRecentList("a", "b")
	items := l.Items()
	items[0] = "z"
	assert.Equal(t, []Character{"a", "b"}, l.Items())
}
