package pagerange

import (
	"errors"
	"reflect"
	"testing"
)

func TestParse_IntervalOnFivePages(t *testing.T) {
	selections := Parse([]string{"1-3"}, 5)

	if len(selections) != 1 {
		t.Fatalf("Expected 1 selection, got %d", len(selections))
	}

	expected := []int{1, 2, 3}
	if got := selections[0].Pages(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Pages() = %v, expected %v", got, expected)
	}
	if got := selections[0].Indices(); !reflect.DeepEqual(got, []int{0, 1, 2}) {
		t.Errorf("Indices() = %v, expected [0 1 2]", got)
	}
}

func TestParseEntry(t *testing.T) {
	tests := []struct {
		entry    string
		total    int
		ok       bool
		expected []int
	}{
		{"1-3", 5, true, []int{1, 2, 3}},
		{" 2 - 4 ", 5, true, []int{2, 3, 4}},
		{"5", 5, true, []int{5}},
		{"3-", 5, true, []int{3}},
		{"4-0", 5, true, []int{4}},
		{"1-5", 5, true, []int{1, 2, 3, 4, 5}},
		{"1-6", 5, false, nil},
		{"0-2", 5, false, nil},
		{"-2", 5, false, nil},
		{"4-2", 5, false, nil},
		{"2-4-5", 5, true, []int{2, 3, 4}},
		{"7, 8", 10, true, []int{7, 8}},
		{"3,1,3", 5, true, []int{3, 1, 3}},
		{"1, 6", 5, false, nil},
		{"1,,2", 5, false, nil},
		{"abc", 5, false, nil},
		{"2abc", 5, true, []int{2}},
		{"+2", 5, true, []int{2}},
		{"0", 5, false, nil},
		{"1", 0, false, nil},
		{"", 5, false, nil},
	}

	for _, test := range tests {
		sel, ok := ParseEntry(test.entry, test.total)
		if ok != test.ok {
			t.Errorf("ParseEntry(%q, %d) ok = %v, expected %v", test.entry, test.total, ok, test.ok)
			continue
		}
		if !ok {
			continue
		}
		if got := sel.Pages(); !reflect.DeepEqual(got, test.expected) {
			t.Errorf("ParseEntry(%q, %d) pages = %v, expected %v", test.entry, test.total, got, test.expected)
		}
		if sel.Len() != len(test.expected) {
			t.Errorf("ParseEntry(%q, %d) Len() = %d, expected %d", test.entry, test.total, sel.Len(), len(test.expected))
		}
	}
}

func TestParse_FiltersOutOfRangeAndBlank(t *testing.T) {
	entries := []string{"", "1-2", "   ", "9", "4, 5", "3-12"}
	selections := Parse(entries, 5)

	if len(selections) != 2 {
		t.Fatalf("Expected 2 selections, got %d: %v", len(selections), selections)
	}
	if selections[0].Kind != KindInterval {
		t.Errorf("Expected first selection to be an interval, got %s", selections[0].Kind)
	}
	if selections[1].Kind != KindList {
		t.Errorf("Expected second selection to be a list, got %s", selections[1].Kind)
	}
	if got := selections[1].Pages(); !reflect.DeepEqual(got, []int{4, 5}) {
		t.Errorf("Expected second selection pages [4 5], got %v", got)
	}
}

func TestParseStrict_NoValidRanges(t *testing.T) {
	_, err := ParseStrict([]string{"8-9", "x"}, 5)
	if !errors.Is(err, ErrNoValidRanges) {
		t.Errorf("Expected ErrNoValidRanges, got %v", err)
	}

	selections, err := ParseStrict([]string{"2"}, 5)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(selections) != 1 {
		t.Errorf("Expected 1 selection, got %d", len(selections))
	}
}

func TestSelection_String(t *testing.T) {
	tests := []struct {
		entry    string
		expected string
	}{
		{"1-3", "1-3"},
		{"4-", "4"},
		{"7,8", "7, 8"},
		{"2", "2"},
	}

	for _, test := range tests {
		sel, ok := ParseEntry(test.entry, 10)
		if !ok {
			t.Fatalf("ParseEntry(%q) unexpectedly failed", test.entry)
		}
		if got := sel.String(); got != test.expected {
			t.Errorf("String() for %q = %q, expected %q", test.entry, got, test.expected)
		}
	}
}

func TestHasInput(t *testing.T) {
	if HasInput([]string{"", "  "}) {
		t.Error("Blank entries should not count as input")
	}
	if !HasInput([]string{"", "3"}) {
		t.Error("Expected non-blank entry to count as input")
	}
	if HasInput(nil) {
		t.Error("Nil entries should not count as input")
	}
}

func TestSelection_PagesIsACopy(t *testing.T) {
	sel, _ := ParseEntry("1,2", 5)
	pages := sel.Pages()
	pages[0] = 99

	if sel.List[0] != 1 {
		t.Error("Mutating Pages() result must not change the selection")
	}
}
