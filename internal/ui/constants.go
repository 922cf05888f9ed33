package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFile     = "📄"
	IconSave     = "💾"
	IconError    = "❌"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	ScoreLineFormat    = "%s / 100"
	PageCountFormat    = "%d pages"
	SinglePageLabel    = "1 page"
)

// File size formatting
const (
	FileSizeUnit  = 1024
	FileSizeUnits = "KMGTPE"
)

// Layout sizing
const (
	ResultMinHeight float32 = 320

	SettingsDialogWidth  float32 = 520
	SettingsDialogHeight float32 = 420
)
