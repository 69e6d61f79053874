package ui

import (
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/pdftoolkit/pdf-toolkit/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	outputDirEntry   *widget.Entry
	toastEntry       *widget.Entry
	validationSelect *widget.Select
	revealCheck      *widget.Check
	themeSelect      *widget.Select
	languageSelect   *widget.Select
}

// NewSettingsDialog creates a new settings dialog; onSaved runs after a save
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	l := sd.localization

	// Output directory selection
	sd.outputDirEntry = widget.NewEntry()
	sd.outputDirEntry.SetPlaceHolder(l.GetText(KeyOutputDirectory))

	browseDirBtn := widget.NewButton(l.GetText(KeyBrowse), sd.onBrowseDirectory)
	outputDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.outputDirEntry)

	sd.toastEntry = widget.NewEntry()
	sd.toastEntry.SetPlaceHolder(strconv.Itoa(config.MinToastSeconds) + "-" + strconv.Itoa(config.MaxToastSeconds))

	sd.validationSelect = widget.NewSelect(sd.settings.GetValidationModeOptions(), nil)

	sd.revealCheck = widget.NewCheck(l.GetText(KeyRevealAfterSave), nil)

	themeOptions := []string{}
	for _, v := range sd.settings.GetThemeVariantOptions() {
		themeOptions = append(themeOptions, string(v))
	}
	sd.themeSelect = widget.NewSelect(themeOptions, nil)

	// Language selection
	languageOptions := []string{}
	for code := range sd.settings.GetLanguageOptions() {
		languageOptions = append(languageOptions, code)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)
	sd.languageSelect.PlaceHolder = l.GetText(KeyLanguage)

	form := container.NewVBox(
		widget.NewLabel(l.GetText(KeyOutputSettings)),
		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyOutputDirectory)+":"),
		outputDirRow,

		widget.NewLabel(l.GetText(KeyValidationMode)+":"),
		sd.validationSelect,

		sd.revealCheck,

		widget.NewSeparator(),
		widget.NewLabel(l.GetText(KeyInterfaceSettings)),
		widget.NewSeparator(),

		widget.NewLabel(l.GetText(KeyToastSeconds)+":"),
		sd.toastEntry,

		widget.NewLabel(l.GetText(KeyTheme)+":"),
		sd.themeSelect,

		widget.NewLabel(l.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		l.GetText(KeySettings),
		l.GetText(KeySave),
		l.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.outputDirEntry.SetText(sd.settings.GetOutputDirectory())
	sd.toastEntry.SetText(strconv.Itoa(sd.settings.GetToastSeconds()))
	sd.validationSelect.SetSelected(sd.settings.GetValidationMode())
	sd.revealCheck.SetChecked(sd.settings.GetRevealAfterSave())
	sd.themeSelect.SetSelected(string(sd.settings.GetThemeVariant()))
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.outputDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()

	if sd.onSaved != nil {
		sd.onSaved()
	}

	// Show confirmation
	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}

// apply writes the form values to settings
func (sd *SettingsDialog) apply() {
	if dir := sd.outputDirEntry.Text; dir != "" {
		sd.settings.SetOutputDirectory(dir)
	}

	if secondsStr := sd.toastEntry.Text; secondsStr != "" {
		if seconds, err := strconv.Atoi(secondsStr); err == nil {
			sd.settings.SetToastSeconds(seconds)
		}
	}

	if sd.validationSelect.Selected != "" {
		sd.settings.SetValidationMode(sd.validationSelect.Selected)
	}

	sd.settings.SetRevealAfterSave(sd.revealCheck.Checked)

	if sd.themeSelect.Selected != "" {
		sd.settings.SetThemeVariant(config.ThemeVariant(sd.themeSelect.Selected))
	}

	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}
}
