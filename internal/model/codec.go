package model

import "strings"

// Persisted values are comma-joined with no escaping. The catalog contains
// no comma, so every catalog character round-trips.
const separator = ","

// EncodeRecent serializes l oldest first.
func EncodeRecent(l RecentList) string {
	return join(l.items)
}

// DecodeRecent parses a stored recent value. Empty input yields an empty
// list; empty segments are skipped and duplicates or excess entries are
// normalized the same way RecordUsage would.
func DecodeRecent(s string) RecentList {
	return NewRecentList(split(s)...)
}

// EncodeFavorites serializes s in catalog order.
func EncodeFavorites(s FavoriteSet) string {
	return join(s.Sorted())
}

// DecodeFavorites parses a stored favorites value. Order is not significant.
func DecodeFavorites(s string) FavoriteSet {
	return NewFavoriteSet(split(s)...)
}

func join(chars []Character) string {
	parts := make([]string, len(chars))
	for i, c := range chars {
		parts[i] = string(c)
	}
	return strings.Join(parts, separator)
}

func split(s string) []Character {
	if s == "" {
		return nil
	}
	var out []Character
	for _, part := range strings.Split(s, separator) {
		if part == "" {
			continue
		}
		out = append(out, Character(part))
	}
	return out
}
