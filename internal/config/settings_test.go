package config

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	"github.com/pdftoolkit/pdf-toolkit/internal/model"
	"github.com/pdftoolkit/pdf-toolkit/internal/pdfops"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestOutputDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	dir := settings.GetOutputDirectory()
	if dir == "" {
		t.Error("Output directory should not be empty")
	}
	if app.Preferences().String(KeyOutputDir) != dir {
		t.Error("Default output directory should be written back")
	}

	customDir := "/custom/pdfs"
	settings.SetOutputDirectory(customDir)

	if got := settings.GetOutputDirectory(); got != customDir {
		t.Errorf("Expected output directory %s, got %s", customDir, got)
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if lang := settings.GetLanguage(); lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("ru")
	if lang := settings.GetLanguage(); lang != "ru" {
		t.Errorf("Expected language ru, got %s", lang)
	}

	options := settings.GetLanguageOptions()
	for _, key := range []string{"system", "en", "ru", "pt"} {
		if _, ok := options[key]; !ok {
			t.Errorf("Language option %s is missing", key)
		}
	}
}

func TestThemeVariant(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if v := settings.GetThemeVariant(); v != DefaultThemeVariant {
		t.Errorf("Expected default theme %s, got %s", DefaultThemeVariant, v)
	}

	settings.SetThemeVariant(ThemeDark)
	if v := settings.GetThemeVariant(); v != ThemeDark {
		t.Errorf("Expected theme dark, got %s", v)
	}

	settings.SetThemeVariant("neon")
	if v := settings.GetThemeVariant(); v != ThemeSystem {
		t.Errorf("Unknown theme should fall back to system, got %s", v)
	}

	if len(settings.GetThemeVariantOptions()) != 3 {
		t.Error("Expected 3 theme variants")
	}
}

func TestToastSeconds(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if s := settings.GetToastSeconds(); s != DefaultToastSeconds {
		t.Errorf("Expected default toast seconds %d, got %d", DefaultToastSeconds, s)
	}
	if d := settings.GetToastLifetime(); d != 5*time.Second {
		t.Errorf("Expected toast lifetime 5s, got %s", d)
	}

	tests := []struct {
		input    int
		expected int
	}{
		{10, 10},
		{0, MinToastSeconds},
		{-3, MinToastSeconds},
		{90, MaxToastSeconds},
	}

	for _, tt := range tests {
		settings.SetToastSeconds(tt.input)
		if got := settings.GetToastSeconds(); got != tt.expected {
			t.Errorf("SetToastSeconds(%d): got %d, want %d", tt.input, got, tt.expected)
		}
	}
}

func TestValidationMode(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if mode := settings.GetValidationMode(); mode != pdfops.ValidationRelaxed {
		t.Errorf("Expected default validation mode relaxed, got %s", mode)
	}

	settings.SetValidationMode(pdfops.ValidationStrict)
	if mode := settings.GetValidationMode(); mode != pdfops.ValidationStrict {
		t.Errorf("Expected validation mode strict, got %s", mode)
	}

	settings.SetValidationMode("paranoid")
	if mode := settings.GetValidationMode(); mode != pdfops.ValidationRelaxed {
		t.Errorf("Unknown mode should fall back to relaxed, got %s", mode)
	}
}

func TestRevealAfterSave(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if !settings.GetRevealAfterSave() {
		t.Error("Reveal after save should default to true")
	}

	settings.SetRevealAfterSave(false)
	if settings.GetRevealAfterSave() {
		t.Error("Reveal after save should be false after setting")
	}
}

func TestLastOperation(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if op := settings.GetLastOperation(); op != model.OperationMerge {
		t.Errorf("Expected default operation merge, got %s", op)
	}

	settings.SetLastOperation(model.OperationSplit)
	if op := settings.GetLastOperation(); op != model.OperationSplit {
		t.Errorf("Expected operation split, got %s", op)
	}

	settings.SetLastOperation("rotate")
	if op := settings.GetLastOperation(); op != model.OperationSplit {
		t.Errorf("Invalid operation should be ignored, got %s", op)
	}
}
