package model

import "sort"

// FavoriteSet is an immutable snapshot of the characters marked as favorite.
type FavoriteSet struct {
	members map[Character]struct{}
}

// NewFavoriteSet builds a set from chars. Duplicates are ignored.
func NewFavoriteSet(chars ...Character) FavoriteSet {
	members := make(map[Character]struct{}, len(chars))
	for _, c := range chars {
		members[c] = struct{}{}
	}
	return FavoriteSet{members: members}
}

// ToggleFavorite returns a new set with c removed if present, added if absent.
func ToggleFavorite(c Character, current FavoriteSet) FavoriteSet {
	members := make(map[Character]struct{}, len(current.members)+1)
	for existing := range current.members {
		members[existing] = struct{}{}
	}
	if _, ok := members[c]; ok {
		delete(members, c)
	} else {
		members[c] = struct{}{}
	}
	return FavoriteSet{members: members}
}

func (s FavoriteSet) Contains(c Character) bool {
	_, ok := s.members[c]
	return ok
}

func (s FavoriteSet) Len() int {
	return len(s.members)
}

func (s FavoriteSet) IsEmpty() bool {
	return len(s.members) == 0
}

// Sorted returns the members in catalog order.
func (s FavoriteSet) Sorted() []Character {
	out := make([]Character, 0, len(s.members))
	for c := range s.members {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return catalogLess(out[i], out[j]) })
	return out
}

// Equal reports whether both sets hold the same members.
func (s FavoriteSet) Equal(other FavoriteSet) bool {
	if len(s.members) != len(other.members) {
		return false
	}
	for c := range s.members {
		if _, ok := other.members[c]; !ok {
			return false
		}
	}
	return true
}
