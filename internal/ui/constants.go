package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFile     = "📄"
	IconClose    = "×"
	IconError    = "❌"
	IconSuccess  = "✔"
	IconUpload   = "⬆"
	IconSun      = "☀"
	IconMoon     = "☾"
	IconAuto     = "◐"
	IconMerge    = "⧉"
	IconSplit    = "✂"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
)

// Layout sizing
const (
	RowMinWidth     float32 = 360
	RowMinHeight    float32 = 44
	DropZoneHeight  float32 = 180
	RangeEntryWidth float32 = 220
)

// Toast notification sizing
const (
	ToastWidth  float32 = 320
	ToastMargin float32 = 20
)

// Preview modal sizing
const (
	PreviewWidth  float32 = 420
	PreviewHeight float32 = 260
)

// Settings dialog sizing
const (
	SettingsDialogWidth  float32 = 520
	SettingsDialogHeight float32 = 460
)

// Timeouts
const (
	IntakeTimeout    = 2 * time.Minute
	OperationTimeout = 10 * time.Minute
)
