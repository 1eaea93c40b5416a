package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"specialchars/internal/actions"
	"specialchars/internal/model"
)

// row is one selectable line on screen: a character within a section.
type row struct {
	Section string
	Char    model.Character
}

// AppModel holds the TUI state.
type AppModel struct {
	// Data, mirrored from the store's last published values
	Recent          model.RecentList
	Favorites       model.FavoriteSet
	recentLoaded    bool
	favoritesLoaded bool

	// UI State
	SelectedIdx int
	WindowSize  tea.WindowSizeMsg
	ShowHelp    bool

	// Status line (the copy confirmation toast)
	Status      string
	StatusIsErr bool
	statusSeq   int

	// Components
	keys keyMap
	help help.Model

	// Collaborators
	ctx           context.Context
	actions       *actions.Service
	recentCh      <-chan model.RecentList
	favoritesCh   <-chan model.FavoriteSet
	toastDuration time.Duration
}

// InitialModel subscribes to the store behind svc. The subscriptions end
// when ctx is cancelled.
func InitialModel(ctx context.Context, svc *actions.Service, toastDuration time.Duration) AppModel {
	if toastDuration <= 0 {
		toastDuration = 2 * time.Second
	}
	return AppModel{
		keys:          defaultKeyMap(),
		help:          help.New(),
		ctx:           ctx,
		actions:       svc,
		recentCh:      svc.Store().ObserveRecent(ctx),
		favoritesCh:   svc.Store().ObserveFavorites(ctx),
		toastDuration: toastDuration,
	}
}

// Loading reports whether either list is still waiting for its first value.
func (m AppModel) Loading() bool {
	return !m.recentLoaded || !m.favoritesLoaded
}

// rows flattens the three sections in display order. Recently Used and
// Favorites are omitted while empty.
func (m AppModel) rows() []row {
	var rows []row
	for _, c := range m.Recent.Newest() {
		rows = append(rows, row{Section: model.SectionRecent, Char: c})
	}
	for _, c := range m.Favorites.Sorted() {
		rows = append(rows, row{Section: model.SectionFavorites, Char: c})
	}
	for _, c := range model.Catalog() {
		rows = append(rows, row{Section: model.SectionAll, Char: c})
	}
	return rows
}

// Selected returns the row under the cursor.
func (m AppModel) Selected() (row, bool) {
	rows := m.rows()
	if m.SelectedIdx < 0 || m.SelectedIdx >= len(rows) {
		return row{}, false
	}
	return rows[m.SelectedIdx], true
}
