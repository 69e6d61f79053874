package ui

import (
	"strings"
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
)

func TestRangeInput_Update(t *testing.T) {
	test.NewApp()

	ri := NewRangeInput(NewLocalization(), nil, nil, nil)
	ri.Update([]string{"1-3", "9", ""}, 5, true)

	if len(ri.rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(ri.rows))
	}

	if got := ri.rows[0].hint.Text; !strings.Contains(got, "3 pages") {
		t.Errorf("hint for 1-3 = %q", got)
	}
	if ri.rows[1].hint.Importance != widget.DangerImportance {
		t.Errorf("hint for out-of-range entry should be danger, got %q", ri.rows[1].hint.Text)
	}
	if ri.rows[2].hint.Text != "" {
		t.Errorf("blank entry should have no hint, got %q", ri.rows[2].hint.Text)
	}

	got := make([]string, len(ri.rows))
	for i, row := range ri.rows {
		got[i] = row.entry.Text
	}
	if strings.Join(got, "|") != "1-3|9|" {
		t.Errorf("entry texts = %q", got)
	}
}

func TestRangeInput_Callbacks(t *testing.T) {
	test.NewApp()

	var changedIndex int
	var changedText string
	added, removed := 0, -1

	ri := NewRangeInput(NewLocalization(),
		func(i int, text string) { changedIndex, changedText = i, text },
		func() { added++ },
		func(i int) { removed = i },
	)
	ri.Update([]string{"", ""}, 4, true)

	test.Type(ri.rows[1].entry, "2,4")
	if changedIndex != 1 || changedText != "2,4" {
		t.Errorf("onChanged got (%d, %q)", changedIndex, changedText)
	}
	if !strings.Contains(ri.rows[1].hint.Text, "2 pages") {
		t.Errorf("hint = %q", ri.rows[1].hint.Text)
	}

	test.Tap(ri.addBtn)
	if added != 1 {
		t.Errorf("onAdd called %d times", added)
	}

	test.Tap(ri.rows[0].removeBtn)
	if removed != 0 {
		t.Errorf("onRemove index = %d, want 0", removed)
	}
}

func TestRangeInput_Disabled(t *testing.T) {
	test.NewApp()

	ri := NewRangeInput(NewLocalization(), nil, nil, nil)
	ri.Update([]string{"1"}, 2, false)

	if !ri.rows[0].entry.Disabled() || !ri.addBtn.Disabled() {
		t.Error("controls should be disabled while busy")
	}
}
