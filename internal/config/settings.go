package config

import (
	"os"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"

	"github.com/pdftoolkit/pdf-toolkit/internal/model"
	"github.com/pdftoolkit/pdf-toolkit/internal/pdfops"
	"github.com/pdftoolkit/pdf-toolkit/internal/platform"
)

// ThemeVariant selects the colour scheme
type ThemeVariant string

const (
	ThemeSystem ThemeVariant = "system"
	ThemeLight  ThemeVariant = "light"
	ThemeDark   ThemeVariant = "dark"
)

// Settings keys for Fyne preferences
const (
	KeyOutputDir       = "output_directory"
	KeyLanguage        = "app_language"
	KeyThemeVariant    = "theme_variant"
	KeyToastSeconds    = "toast_seconds"
	KeyValidationMode  = "validation_mode"
	KeyRevealAfterSave = "reveal_after_save"
	KeyLastOperation   = "last_operation"
)

// Default values
const (
	DefaultLanguage        = "system"
	DefaultThemeVariant    = ThemeSystem
	DefaultToastSeconds    = 5
	DefaultValidationMode  = pdfops.ValidationRelaxed
	DefaultRevealAfterSave = true
	DefaultLastOperation   = model.OperationMerge

	MinToastSeconds = 1
	MaxToastSeconds = 30
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetOutputDirectory returns where saved results go
func (s *Settings) GetOutputDirectory() string {
	dir := s.app.Preferences().String(KeyOutputDir)
	if dir == "" {
		// Use system default Downloads directory
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = filepath.Join(os.TempDir(), "pdf-toolkit")
		}
		s.SetOutputDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetOutputDirectory sets the output directory
func (s *Settings) SetOutputDirectory(dir string) {
	s.app.Preferences().SetString(KeyOutputDir, dir)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// GetThemeVariant returns the configured theme variant
func (s *Settings) GetThemeVariant() ThemeVariant {
	switch v := ThemeVariant(s.app.Preferences().String(KeyThemeVariant)); v {
	case ThemeSystem, ThemeLight, ThemeDark:
		return v
	default:
		s.SetThemeVariant(DefaultThemeVariant)
		return DefaultThemeVariant
	}
}

// SetThemeVariant sets the theme variant, unknown values fall back to system
func (s *Settings) SetThemeVariant(variant ThemeVariant) {
	switch variant {
	case ThemeSystem, ThemeLight, ThemeDark:
	default:
		variant = DefaultThemeVariant
	}
	s.app.Preferences().SetString(KeyThemeVariant, string(variant))
}

// GetThemeVariantOptions returns available theme variants
func (s *Settings) GetThemeVariantOptions() []ThemeVariant {
	return []ThemeVariant{ThemeSystem, ThemeLight, ThemeDark}
}

// GetToastSeconds returns how long notifications stay visible
func (s *Settings) GetToastSeconds() int {
	value := s.app.Preferences().Int(KeyToastSeconds)
	if value <= 0 {
		s.SetToastSeconds(DefaultToastSeconds)
		return DefaultToastSeconds
	}
	return value
}

// SetToastSeconds sets the notification lifetime in seconds
func (s *Settings) SetToastSeconds(seconds int) {
	if seconds < MinToastSeconds {
		seconds = MinToastSeconds
	}
	if seconds > MaxToastSeconds {
		seconds = MaxToastSeconds
	}
	s.app.Preferences().SetInt(KeyToastSeconds, seconds)
}

// GetToastLifetime returns the notification lifetime as a duration
func (s *Settings) GetToastLifetime() time.Duration {
	return time.Duration(s.GetToastSeconds()) * time.Second
}

// GetValidationMode returns the PDF validation mode
func (s *Settings) GetValidationMode() string {
	mode := s.app.Preferences().String(KeyValidationMode)
	if mode != pdfops.ValidationRelaxed && mode != pdfops.ValidationStrict {
		s.SetValidationMode(DefaultValidationMode)
		return DefaultValidationMode
	}
	return mode
}

// SetValidationMode sets the PDF validation mode
func (s *Settings) SetValidationMode(mode string) {
	if mode != pdfops.ValidationStrict {
		mode = pdfops.ValidationRelaxed
	}
	s.app.Preferences().SetString(KeyValidationMode, mode)
}

// GetValidationModeOptions returns available validation modes
func (s *Settings) GetValidationModeOptions() []string {
	return []string{pdfops.ValidationRelaxed, pdfops.ValidationStrict}
}

// GetRevealAfterSave returns whether to reveal saved files in the file manager
func (s *Settings) GetRevealAfterSave() bool {
	return s.app.Preferences().BoolWithFallback(KeyRevealAfterSave, DefaultRevealAfterSave)
}

// SetRevealAfterSave sets whether to reveal saved files in the file manager
func (s *Settings) SetRevealAfterSave(reveal bool) {
	s.app.Preferences().SetBool(KeyRevealAfterSave, reveal)
}

// GetLastOperation returns the operation selected when the app was last closed
func (s *Settings) GetLastOperation() model.Operation {
	op := model.Operation(s.app.Preferences().String(KeyLastOperation))
	if !op.Valid() {
		return DefaultLastOperation
	}
	return op
}

// SetLastOperation remembers the selected operation
func (s *Settings) SetLastOperation(op model.Operation) {
	if !op.Valid() {
		return
	}
	s.app.Preferences().SetString(KeyLastOperation, op.String())
}
