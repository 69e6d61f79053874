package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/pdftoolkit/pdf-toolkit/internal/config"
	"github.com/pdftoolkit/pdf-toolkit/internal/notify"
	"github.com/pdftoolkit/pdf-toolkit/internal/pdfops"
	"github.com/pdftoolkit/pdf-toolkit/internal/platform"
	"github.com/pdftoolkit/pdf-toolkit/internal/session"
	"github.com/pdftoolkit/pdf-toolkit/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.pdftoolkit.pdf-toolkit"
	AppName = "PDF Toolkit"

	WindowWidth  = 760
	WindowHeight = 680
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	myApp.SetIcon(ui.LoadLogoResource())

	settings := config.NewSettings(myApp)
	myApp.Settings().SetTheme(ui.NewToolkitTheme(settings.GetThemeVariant()))

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	outputDir := settings.GetOutputDirectory()
	if err := platform.CreateDirectoryIfNotExists(outputDir); err != nil {
		log.Printf("failed to ensure output dir: %v", err)
	}

	processor := pdfops.NewService(settings.GetValidationMode())
	toasts := notify.NewQueue(settings.GetToastLifetime())
	workspace := session.NewWorkspace(processor, toasts)

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, ui.Services{
		Settings:  settings,
		Workspace: workspace,
		Processor: processor,
		Toasts:    toasts,
	})

	// Show and run
	myWindow.ShowAndRun()
}
