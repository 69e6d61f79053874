package ui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/pdftoolkit/pdf-toolkit/internal/config"
	"github.com/pdftoolkit/pdf-toolkit/internal/model"
	"github.com/pdftoolkit/pdf-toolkit/internal/notify"
	"github.com/pdftoolkit/pdf-toolkit/internal/pdfops"
	"github.com/pdftoolkit/pdf-toolkit/internal/platform"
	"github.com/pdftoolkit/pdf-toolkit/internal/session"
)

// Services are the non-UI collaborators of the root window
type Services struct {
	Settings  *config.Settings
	Workspace *session.Workspace
	Processor pdfops.Processor
	Toasts    *notify.Queue
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	localization *Localization
	workspace    *session.Workspace
	processor    pdfops.Processor
	toasts       *notify.Queue

	ctx    context.Context
	cancel context.CancelFunc

	titleLabel  *widget.Label
	mergeTabBtn *widget.Button
	splitTabBtn *widget.Button
	themeBtn    *widget.Button
	settingsBtn *widget.Button

	mergeView  *MergeView
	splitView  *SplitView
	toastLayer *ToastLayer
	preview    *PreviewDialog
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, services Services) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(services.Settings.GetLanguage())

	ctx, cancel := context.WithCancel(context.Background())

	ui := &RootUI{
		window:       window,
		app:          app,
		settings:     services.Settings,
		localization: localization,
		workspace:    services.Workspace,
		processor:    services.Processor,
		toasts:       services.Toasts,
		ctx:          ctx,
		cancel:       cancel,
	}

	ui.workspace.SetMessages(localization.Messages())
	if err := ui.workspace.SetOperation(ui.settings.GetLastOperation()); err != nil {
		log.Printf("Failed to restore last operation: %v", err)
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()

	// Workspace changes may come from worker goroutines
	ui.workspace.SetChangeCallback(func() {
		fyne.Do(ui.render)
	})
	window.SetOnDropped(func(_ fyne.Position, uris []fyne.URI) {
		ui.onDropped(uris)
	})
	window.SetOnClosed(ui.shutdown)

	ui.render()
	log.Printf("RootUI initialized in %s mode", ui.workspace.Operation())
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	actions := viewActions{
		Browse:      ui.onBrowse,
		RemoveFile:  ui.onRemoveFile,
		Run:         ui.onRun,
		View:        ui.onView,
		Download:    ui.onDownload,
		DownloadAll: ui.onDownloadAll,
		StartOver:   ui.onStartOver,
		AddRange:    ui.workspace.AddRange,
		RemoveRange: func(i int) { ui.workspace.RemoveRange(i) },
		UpdateRange: func(i int, text string) { ui.workspace.UpdateRange(i, text) },
	}
	ui.mergeView = NewMergeView(ui.localization, actions)
	ui.splitView = NewSplitView(ui.localization, actions)
	ui.toastLayer = NewToastLayer(ui.toasts)

	logo := canvas.NewImageFromResource(LoadLogoResource())
	logo.SetMinSize(fyne.NewSize(28, 28))
	logo.FillMode = canvas.ImageFillContain

	ui.titleLabel = widget.NewLabel("")
	ui.titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	ui.themeBtn = widget.NewButton(themeIcon(ui.settings.GetThemeVariant()), ui.onToggleTheme)
	ui.themeBtn.Importance = widget.LowImportance

	ui.settingsBtn = widget.NewButton(IconSettings, ui.onShowSettings)
	ui.settingsBtn.Importance = widget.LowImportance

	header := container.NewBorder(nil, nil,
		container.NewHBox(logo, ui.titleLabel),
		container.NewHBox(ui.themeBtn, ui.settingsBtn),
	)

	ui.mergeTabBtn = widget.NewButton("", func() { ui.onOperationChange(model.OperationMerge) })
	ui.splitTabBtn = widget.NewButton("", func() { ui.onOperationChange(model.OperationSplit) })
	tabs := container.NewHBox(layout.NewSpacer(), ui.mergeTabBtn, ui.splitTabBtn, layout.NewSpacer())

	views := container.NewVBox(ui.mergeView.Container(), ui.splitView.Container())
	scroll := container.NewVScroll(container.NewPadded(views))

	body := container.NewBorder(container.NewVBox(header, tabs, widget.NewSeparator()), nil, nil, nil, scroll)
	ui.window.SetContent(container.NewStack(body, ui.toastLayer.Container()))

	ui.refreshUITexts()
	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)
	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.workspace.SetMessages(ui.localization.Messages())

	ui.refreshUITexts()
	ui.createMenu()
	ui.render()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.titleLabel.SetText(ui.localization.GetText(KeyAppTitle))
	ui.mergeTabBtn.SetText(IconMerge + " " + ui.localization.GetText(KeyMergeTab))
	ui.splitTabBtn.SetText(IconSplit + " " + ui.localization.GetText(KeySplitTab))
	ui.mergeView.RefreshTexts()
	ui.splitView.RefreshTexts()
}

// render redraws everything from a workspace snapshot; UI thread only
func (ui *RootUI) render() {
	snap := ui.workspace.Snapshot()
	busy := snap.Phase.IsBusy()

	if snap.Operation == model.OperationSplit {
		ui.mergeTabBtn.Importance = widget.MediumImportance
		ui.splitTabBtn.Importance = widget.HighImportance
		ui.mergeView.Container().Hide()
		ui.splitView.Container().Show()
		ui.splitView.Update(snap)
	} else {
		ui.mergeTabBtn.Importance = widget.HighImportance
		ui.splitTabBtn.Importance = widget.MediumImportance
		ui.splitView.Container().Hide()
		ui.mergeView.Container().Show()
		ui.mergeView.Update(snap)
	}

	for _, btn := range []*widget.Button{ui.mergeTabBtn, ui.splitTabBtn} {
		if busy {
			btn.Disable()
		} else {
			btn.Enable()
		}
		btn.Refresh()
	}

	ui.syncPreview(snap.Viewing)
}

// syncPreview opens or closes the modal to match the workspace
func (ui *RootUI) syncPreview(viewing *model.Artifact) {
	if ui.preview != nil && (viewing == nil || viewing.ID != ui.preview.ArtifactID()) {
		p := ui.preview
		ui.preview = nil
		p.Hide()
	}
	if viewing != nil && ui.preview == nil {
		var p *PreviewDialog
		p = NewPreviewDialog(viewing, ui.localization, ui.window, ui.onOpenInViewer, ui.onSaveAs, func() {
			// Only a user dismissal clears the workspace view
			if ui.preview == p {
				ui.preview = nil
				ui.workspace.CloseView()
			}
		})
		ui.preview = p
		p.Show()
	}
}

// onOperationChange switches between merge and split
func (ui *RootUI) onOperationChange(op model.Operation) {
	if err := ui.workspace.SetOperation(op); err != nil {
		log.Printf("Cannot switch to %s: %v", op, err)
		return
	}
	ui.settings.SetLastOperation(op)
}

// onToggleTheme cycles the theme variant
func (ui *RootUI) onToggleTheme() {
	variant := nextThemeVariant(ui.settings.GetThemeVariant())
	ui.settings.SetThemeVariant(variant)
	ui.applyTheme()
}

func (ui *RootUI) applyTheme() {
	variant := ui.settings.GetThemeVariant()
	ui.app.Settings().SetTheme(NewToolkitTheme(variant))
	ui.themeBtn.SetText(themeIcon(variant))
	log.Printf("Theme set to %s", variant)
}

// onShowSettings opens the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.applySettings).Show()
}

// applySettings pushes saved settings into running services
func (ui *RootUI) applySettings() {
	ui.toasts.SetLifetime(ui.settings.GetToastLifetime())
	ui.processor.SetValidationMode(ui.settings.GetValidationMode())
	ui.applyTheme()

	if lang := ui.settings.GetLanguage(); lang != ui.localization.GetCurrentLanguage() {
		ui.onLanguageChange(lang)
	}
}

// onBrowse opens the PDF picker
func (ui *RootUI) onBrowse() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			log.Printf("File dialog error: %v", err)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		upload, err := readUpload(reader.URI().Name(), reader)
		if err != nil {
			log.Printf("Failed to read picked file: %v", err)
			ui.toasts.Error(fmt.Sprintf(ui.localization.GetText(KeyErrorReadingFile), reader.URI().Name()))
			return
		}
		ui.addUploads([]session.Upload{upload})
	}, ui.window)

	d.SetFilter(pdfFilter())
	if lister, err := storage.ListerForURI(storage.NewFileURI(ui.settings.GetOutputDirectory())); err == nil {
		d.SetLocation(lister)
	}
	d.Show()
}

// onDropped routes window drops to the active view
func (ui *RootUI) onDropped(uris []fyne.URI) {
	log.Printf("Dropped %d item(s)", len(uris))
	uploads, failed := readURIs(uris)
	for _, name := range failed {
		ui.toasts.Error(fmt.Sprintf(ui.localization.GetText(KeyErrorReadingFile), name))
	}
	if len(uploads) > 0 {
		ui.addUploads(uploads)
	}
}

// addUploads loads files off the UI thread
func (ui *RootUI) addUploads(uploads []session.Upload) {
	go func() {
		if err := ui.loadUploads(uploads); err != nil {
			log.Printf("Failed to load files: %v", err)
		}
	}()
}

func (ui *RootUI) loadUploads(uploads []session.Upload) error {
	ctx, cancel := context.WithTimeout(ui.ctx, IntakeTimeout)
	defer cancel()

	n, err := ui.workspace.AddFiles(ctx, uploads)
	if err != nil {
		return err
	}
	log.Printf("Accepted %d of %d file(s)", n, len(uploads))
	return nil
}

// onRemoveFile removes a loaded file
func (ui *RootUI) onRemoveFile(id string) {
	if !ui.workspace.RemoveFile(id) {
		log.Printf("File %s could not be removed", id)
	}
}

// onRun starts the current operation off the UI thread
func (ui *RootUI) onRun() {
	go func() {
		if err := ui.runOperation(); err != nil {
			log.Printf("Operation failed: %v", err)
		}
	}()
}

func (ui *RootUI) runOperation() error {
	ctx, cancel := context.WithTimeout(ui.ctx, OperationTimeout)
	defer cancel()
	return ui.workspace.Run(ctx)
}

// onView opens the preview modal for a result
func (ui *RootUI) onView(id string) {
	if !ui.workspace.View(id) {
		log.Printf("Result %s not found", id)
	}
}

// onDownload saves one result into the output directory
func (ui *RootUI) onDownload(id string) {
	path, err := ui.workspace.Export(id, ui.settings.GetOutputDirectory())
	ui.afterSave(path, err)
}

// onDownloadAll saves every split result as one zip archive
func (ui *RootUI) onDownloadAll() {
	path, err := ui.workspace.ExportAll(ui.settings.GetOutputDirectory())
	ui.afterSave(path, err)
}

func (ui *RootUI) afterSave(path string, err error) {
	if err != nil {
		log.Printf("Error saving: %v", err)
		ui.toasts.Error(ui.localization.GetText(KeyErrorSaving) + ": " + err.Error())
		return
	}

	ui.toasts.Success(fmt.Sprintf(ui.localization.GetText(KeySavedTo), path))
	if ui.settings.GetRevealAfterSave() {
		ui.onRevealFile(path)
	}
}

// onSaveAs lets the user pick where a previewed result is written
func (ui *RootUI) onSaveAs(id string) {
	artifact, err := ui.workspace.Artifact(id)
	if err != nil {
		log.Printf("Save as: %v", err)
		return
	}

	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			log.Printf("Save dialog error: %v", err)
			return
		}
		if writer == nil {
			return
		}

		writeErr := ui.workspace.WriteArtifact(id, writer)
		closeErr := writer.Close()
		if writeErr == nil {
			writeErr = closeErr
		}
		ui.afterSave(writer.URI().Path(), writeErr)
	}, ui.window)

	d.SetFileName(artifact.FileName)
	d.SetFilter(pdfFilter())
	if lister, err := storage.ListerForURI(storage.NewFileURI(ui.settings.GetOutputDirectory())); err == nil {
		d.SetLocation(lister)
	}
	d.Show()
}

// onOpenInViewer writes the result to a temp file and opens the default viewer
func (ui *RootUI) onOpenInViewer(id string) {
	path, err := ui.workspace.Preview(id)
	if err != nil {
		log.Printf("Error writing preview for %s: %v", id, err)
		ui.toasts.Error(ui.localization.GetText(KeyErrorOpeningFile) + ": " + err.Error())
		return
	}

	if err := platform.OpenFileWithDefaultApp(path); err != nil {
		log.Printf("Error opening file %s: %v", path, err)
		ui.toasts.Error(ui.localization.GetText(KeyErrorOpeningFile) + ": " + err.Error())
		return
	}
	log.Printf("File opened successfully: %s", path)
}

// onRevealFile shows a saved file in the system file manager
func (ui *RootUI) onRevealFile(filePath string) {
	if strings.TrimSpace(filePath) == "" {
		return
	}
	if err := platform.OpenFileInManager(filePath); err != nil {
		log.Printf("Error revealing file %s: %v", filePath, err)
		return
	}
	log.Printf("File revealed successfully: %s", filePath)
}

// onStartOver drops files and results
func (ui *RootUI) onStartOver() {
	if err := ui.workspace.Reset(); err != nil {
		if errors.Is(err, session.ErrBusy) {
			log.Printf("Cannot start over while processing")
			return
		}
		log.Printf("Reset failed: %v", err)
	}
}

// shutdown cancels running work and removes preview files
func (ui *RootUI) shutdown() {
	ui.cancel()
	ui.toasts.Clear()
	if err := platform.CleanPreviewDir(); err != nil {
		log.Printf("Failed to clean preview files: %v", err)
	}
}
