package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

const (
	AppIcon = "pdf-toolkit.png"
)

// LoadLogoResource loads the logo from file path, falling back to the document icon
func LoadLogoResource() fyne.Resource {
	if res, err := fyne.LoadResourceFromPath(AppIcon); err == nil {
		return res
	}
	return theme.DocumentIcon()
}
