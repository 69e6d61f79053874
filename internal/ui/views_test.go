package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/pdftoolkit/pdf-toolkit/internal/model"
	"github.com/pdftoolkit/pdf-toolkit/internal/session"
)

func TestMergeView_AddMoreOpensPicker(t *testing.T) {
	test.NewApp()

	browsed := 0
	v := NewMergeView(NewLocalization(), viewActions{Browse: func() { browsed++ }})

	files := []*model.LoadedFile{model.NewLoadedFile("a.pdf", nil, 1)}
	v.Update(session.Snapshot{Operation: model.OperationMerge, Phase: model.PhaseLoaded, Files: files})

	if !v.addMoreBtn.Visible() || v.addMoreBtn.Disabled() {
		t.Fatal("Add More PDFs should be available once a file is loaded")
	}
	if v.addMoreBtn.Text != "Add More PDFs" {
		t.Errorf("button text = %q", v.addMoreBtn.Text)
	}

	test.Tap(v.addMoreBtn)
	test.Tap(v.addMoreBtn)
	if browsed != 2 {
		t.Errorf("picker opened %d times, want 2", browsed)
	}

	v.Update(session.Snapshot{Operation: model.OperationMerge, Phase: model.PhaseProcessing, Files: files})
	if !v.addMoreBtn.Disabled() {
		t.Error("Add More PDFs should be disabled while processing")
	}
}

func TestRootUI_BrowseAppendsInMerge(t *testing.T) {
	ui := newTestRootUI(t)

	// each picker round delivers one file
	for _, upload := range fixtureUploads(t, 1, 2, 3) {
		if err := ui.loadUploads([]session.Upload{upload}); err != nil {
			t.Fatalf("loadUploads(%s) error = %v", upload.Name, err)
		}
	}

	files := ui.workspace.Files()
	if len(files) != 3 || files[0].Name != "doc1.pdf" || files[2].Name != "doc3.pdf" {
		t.Errorf("files = %d, want doc1..doc3 in order", len(files))
	}
}
