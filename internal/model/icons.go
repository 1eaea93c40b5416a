package model

// Centralized icons for the UI components
// Using simple single-width characters for consistent terminal rendering
const (
	IconFavorite    = "♥" // Marked as favorite
	IconNotFavorite = "♡" // Not a favorite
	IconCursor      = "›" // Selected row
	IconCopied      = "✔" // Copy confirmation
	IconFailed      = "!" // Failed operation
)

// Section titles shared by the TUI and the text report.
const (
	SectionRecent    = "Recently Used"
	SectionFavorites = "Favorites"
	SectionAll       = "All Characters"
)
