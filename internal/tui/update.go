package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"specialchars/internal/actions"
	"specialchars/internal/model"
	"specialchars/internal/store"
)

// MsgRecent carries a value published by the store's recent subscription.
type MsgRecent model.RecentList

// MsgFavorites carries a value published by the store's favorites subscription.
type MsgFavorites model.FavoriteSet

// MsgStoreClosed indicates a subscription ended.
type MsgStoreClosed struct{}

// MsgCopied reports the outcome of a copy.
type MsgCopied struct {
	Char   model.Character
	Recent model.RecentList
	Err    error
}

// MsgFavoriteToggled reports the outcome of a favorite toggle.
type MsgFavoriteToggled struct {
	Char      model.Character
	Favorites model.FavoriteSet
	Err       error
}

// MsgRecentCleared reports the outcome of clearing the recent list.
type MsgRecentCleared struct {
	Err error
}

type msgStatusExpired struct {
	seq int
}

// Init starts listening on both store subscriptions.
func (m AppModel) Init() tea.Cmd {
	return tea.Batch(waitForRecent(m.recentCh), waitForFavorites(m.favoritesCh))
}

// Update handles events.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		m.help.Width = msg.Width
		return m, nil

	case MsgRecent:
		prev, _ := m.Selected()
		m.Recent = model.RecentList(msg)
		m.recentLoaded = true
		m.reselect(prev)
		return m, waitForRecent(m.recentCh)

	case MsgFavorites:
		prev, _ := m.Selected()
		m.Favorites = model.FavoriteSet(msg)
		m.favoritesLoaded = true
		m.reselect(prev)
		return m, waitForFavorites(m.favoritesCh)

	case MsgStoreClosed:
		return m, nil

	case MsgCopied:
		var writeErr *store.StorageWriteError
		switch {
		case msg.Err == nil:
			cmd := m.setStatus(model.IconCopied+" "+actions.CopiedMessage(msg.Char), false)
			return m, cmd
		case errors.As(msg.Err, &writeErr):
			// Keep showing the unsaved list until the store publishes again.
			prev, _ := m.Selected()
			m.Recent = msg.Recent
			m.reselect(prev)
			cmd := m.setStatus(fmt.Sprintf("%s %s copied, but recent list not saved: %v", model.IconFailed, msg.Char, msg.Err), true)
			return m, cmd
		default:
			cmd := m.setStatus(fmt.Sprintf("%s copy failed: %v", model.IconFailed, msg.Err), true)
			return m, cmd
		}

	case MsgFavoriteToggled:
		if msg.Err != nil {
			prev, _ := m.Selected()
			m.Favorites = msg.Favorites
			m.reselect(prev)
			cmd := m.setStatus(fmt.Sprintf("%s favorites not saved: %v", model.IconFailed, msg.Err), true)
			return m, cmd
		}
		verb := "removed from"
		if msg.Favorites.Contains(msg.Char) {
			verb = "added to"
		}
		cmd := m.setStatus(fmt.Sprintf("%s %s favorites", msg.Char, verb), false)
		return m, cmd

	case MsgRecentCleared:
		if msg.Err != nil {
			cmd := m.setStatus(fmt.Sprintf("%s could not clear recent: %v", model.IconFailed, msg.Err), true)
			return m, cmd
		}
		cmd := m.setStatus("Recently used cleared", false)
		return m, cmd

	case msgStatusExpired:
		if msg.seq == m.statusSeq && !m.StatusIsErr {
			m.Status = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.ShowHelp {
		if key.Matches(msg, m.keys.Help) || msg.String() == "esc" {
			m.ShowHelp = false
		}
		return m, nil
	}

	rows := m.rows()
	switch {
	case key.Matches(msg, m.keys.Help):
		m.ShowHelp = true
	case key.Matches(msg, m.keys.Up):
		if m.SelectedIdx > 0 {
			m.SelectedIdx--
		}
	case key.Matches(msg, m.keys.Down):
		if m.SelectedIdx < len(rows)-1 {
			m.SelectedIdx++
		}
	case key.Matches(msg, m.keys.Top):
		m.SelectedIdx = 0
	case key.Matches(msg, m.keys.Bottom):
		m.SelectedIdx = len(rows) - 1
	case key.Matches(msg, m.keys.Copy):
		if r, ok := m.Selected(); ok {
			return m, m.copyCmd(r.Char)
		}
	case key.Matches(msg, m.keys.Favorite):
		if r, ok := m.Selected(); ok {
			return m, m.toggleFavoriteCmd(r.Char)
		}
	case key.Matches(msg, m.keys.Clear):
		return m, m.clearRecentCmd()
	}
	return m, nil
}

// reselect keeps the cursor on prev after the rows change: the same row if
// it still exists, else the same character elsewhere, else clamped.
func (m *AppModel) reselect(prev row) {
	rows := m.rows()
	if prev.Char != "" {
		for i, r := range rows {
			if r == prev {
				m.SelectedIdx = i
				return
			}
		}
		for i, r := range rows {
			if r.Char == prev.Char {
				m.SelectedIdx = i
				return
			}
		}
	}
	if m.SelectedIdx >= len(rows) {
		m.SelectedIdx = len(rows) - 1
	}
	if m.SelectedIdx < 0 {
		m.SelectedIdx = 0
	}
}

// setStatus shows text on the status line; non-error messages expire.
func (m *AppModel) setStatus(text string, isErr bool) tea.Cmd {
	m.statusSeq++
	m.Status = text
	m.StatusIsErr = isErr
	if isErr {
		return nil
	}
	seq := m.statusSeq
	return tea.Tick(m.toastDuration, func(time.Time) tea.Msg {
		return msgStatusExpired{seq: seq}
	})
}

func (m AppModel) copyCmd(c model.Character) tea.Cmd {
	ctx, svc := m.ctx, m.actions
	return func() tea.Msg {
		recent, err := svc.Copy(ctx, c)
		return MsgCopied{Char: c, Recent: recent, Err: err}
	}
}

func (m AppModel) toggleFavoriteCmd(c model.Character) tea.Cmd {
	ctx, svc := m.ctx, m.actions
	return func() tea.Msg {
		favorites, err := svc.ToggleFavorite(ctx, c)
		return MsgFavoriteToggled{Char: c, Favorites: favorites, Err: err}
	}
}

func (m AppModel) clearRecentCmd() tea.Cmd {
	ctx, svc := m.ctx, m.actions
	return func() tea.Msg {
		return MsgRecentCleared{Err: svc.ClearRecent(ctx)}
	}
}

// waitForRecent blocks until the store publishes the next recent list.
func waitForRecent(ch <-chan model.RecentList) tea.Cmd {
	return func() tea.Msg {
		l, ok := <-ch
		if !ok {
			return MsgStoreClosed{}
		}
		return MsgRecent(l)
	}
}

// waitForFavorites blocks until the store publishes the next favorite set.
func waitForFavorites(ch <-chan model.FavoriteSet) tea.Cmd {
	return func() tea.Msg {
		f, ok := <-ch
		if !ok {
			return MsgStoreClosed{}
		}
		return MsgFavorites(f)
	}
}
