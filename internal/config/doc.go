package config

// Package config persists user settings in Fyne preferences: output
// directory, language, theme, toast lifetime, validation mode and the last
// used operation. Getters store the default back when a key is missing.
