package model

import "errors"

// Character is one catalog entry: a glyph or symbol string.
type Character string

// ErrUnknownCharacter is returned when input names a character that is not in the catalog.
var ErrUnknownCharacter = errors.New("character not in catalog")

// catalog is the fixed built-in palette, in display order.
var catalog = []Character{
	"©", "®", "™", "✓", "✗", "★", "☆", "❤",
	"☺", "☹", "∞", "∑", "∂", "∆", "π", "√",
}

// catalogIndex maps a character to its position in the catalog.
var catalogIndex = func() map[Character]int {
	idx := make(map[Character]int, len(catalog))
	for i, c := range catalog {
		idx[c] = i
	}
	return idx
}()

// Catalog returns a copy of the built-in palette in display order.
func Catalog() []Character {
	out := make([]Character, len(catalog))
	copy(out, catalog)
	return out
}

// InCatalog reports whether c is part of the built-in palette.
func InCatalog(c Character) bool {
	_, ok := catalogIndex[c]
	return ok
}

// ParseCharacter validates user input against the catalog.
func ParseCharacter(s string) (Character, error) {
	c := Character(s)
	if !InCatalog(c) {
		return "", ErrUnknownCharacter
	}
	return c, nil
}

func (c Character) String() string {
	return string(c)
}

// catalogLess orders characters by catalog position. Characters outside the
// catalog (only reachable through hand-edited storage) sort after it, lexically.
func catalogLess(a, b Character) bool {
	ia, aok := catalogIndex[a]
	ib, bok := catalogIndex[b]
	switch {
	case aok && bok:
		return ia < ib
	case aok:
		return true
	case bok:
		return false
	default:
		return a < b
	}
}
