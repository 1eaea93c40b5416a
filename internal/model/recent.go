package model

// MaxRecent is the number of characters kept in the recently used list.
const MaxRecent = 10

// RecentList is an immutable snapshot of recently used characters.
// The most recently used character is last. It never holds duplicates
// and never holds more than MaxRecent entries.
type RecentList struct {
	items []Character
}

// NewRecentList builds a list from chars, oldest first. Duplicates are
// collapsed to their latest position and only the newest MaxRecent are kept.
func NewRecentList(chars ...Character) RecentList {
	var l RecentList
	for _, c := range chars {
		l = RecordUsage(c, l)
	}
	return l
}

// RecordUsage returns a new list with c moved (or appended) to the most
// recent position, truncated to the newest MaxRecent entries.
func RecordUsage(c Character, current RecentList) RecentList {
	items := make([]Character, 0, len(current.items)+1)
	for _, existing := range current.items {
		if existing != c {
			items = append(items, existing)
		}
	}
	items = append(items, c)
	if len(items) > MaxRecent {
		items = items[len(items)-MaxRecent:]
	}
	return RecentList{items: items}
}

// Items returns a copy of the entries, oldest first.
func (l RecentList) Items() []Character {
	out := make([]Character, len(l.items))
	copy(out, l.items)
	return out
}

// Newest returns a copy of the entries, most recent first.
func (l RecentList) Newest() []Character {
	out := make([]Character, len(l.items))
	for i, c := range l.items {
		out[len(l.items)-1-i] = c
	}
	return out
}

func (l RecentList) Len() int {
	return len(l.items)
}

func (l RecentList) IsEmpty() bool {
	return len(l.items) == 0
}

func (l RecentList) Contains(c Character) bool {
	for _, existing := range l.items {
		if existing == c {
			return true
		}
	}
	return false
}

// Last returns the most recently used character.
func (l RecentList) Last() (Character, bool) {
	if len(l.items) == 0 {
		return "", false
	}
	return l.items[len(l.items)-1], true
}

// Equal reports whether both lists hold the same characters in the same order.
func (l RecentList) Equal(other RecentList) bool {
	if len(l.items) != len(other.items) {
		return false
	}
	for i := range l.items {
		if l.items[i] != other.items[i] {
			return false
		}
	}
	return true
}
