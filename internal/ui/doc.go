package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires user interactions to the session workspace and renders loaded files,
// page-range entries, results, toasts, the preview modal and settings. All UI
// strings are localized via Localization.
