package pagerange

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Separators recognised inside an entry
const (
	IntervalSeparator = "-"
	ListSeparator     = ","
)

// ErrNoValidRanges is returned when every entry was filtered out
var ErrNoValidRanges = errors.New("no valid page ranges")

// Kind distinguishes the two entry shapes
type Kind string

const (
	KindInterval Kind = "interval"
	KindList     Kind = "list"
)

// Selection is one parsed entry: the pages of one output document
type Selection struct {
	Kind  Kind
	Start int   // first page (1-based), interval only
	End   int   // last page (1-based, inclusive), interval only
	List  []int // pages (1-based) in entry order, list only
}

// Pages returns the selected 1-based page numbers in output order
func (s Selection) Pages() []int {
	if s.Kind == KindInterval {
		pages := make([]int, 0, s.End-s.Start+1)
		for p := s.Start; p <= s.End; p++ {
			pages = append(pages, p)
		}
		return pages
	}
	pages := make([]int, len(s.List))
	copy(pages, s.List)
	return pages
}

// Indices returns the selected 0-based page indices in output order
func (s Selection) Indices() []int {
	pages := s.Pages()
	for i := range pages {
		pages[i]--
	}
	return pages
}

// Len returns the number of pages in the selection
func (s Selection) Len() int {
	if s.Kind == KindInterval {
		return s.End - s.Start + 1
	}
	return len(s.List)
}

// String renders the selection back in entry syntax
func (s Selection) String() string {
	if s.Kind == KindInterval {
		if s.Start == s.End {
			return strconv.Itoa(s.Start)
		}
		return fmt.Sprintf("%d-%d", s.Start, s.End)
	}
	parts := make([]string, len(s.List))
	for i, p := range s.List {
		parts[i] = strconv.Itoa(p)
	}
	return strings.Join(parts, ", ")
}

// Parse converts entries into selections valid for a document of totalPages.
// Blank and invalid entries are skipped; the result keeps entry order.
func Parse(entries []string, totalPages int) []Selection {
	var selections []Selection
	for _, entry := range entries {
		if strings.TrimSpace(entry) == "" {
			continue
		}
		if sel, ok := ParseEntry(entry, totalPages); ok {
			selections = append(selections, sel)
		}
	}
	return selections
}

// ParseStrict is Parse that fails with ErrNoValidRanges on an empty result
func ParseStrict(entries []string, totalPages int) ([]Selection, error) {
	selections := Parse(entries, totalPages)
	if len(selections) == 0 {
		return nil, ErrNoValidRanges
	}
	return selections, nil
}

// ParseEntry parses a single entry against totalPages
func ParseEntry(entry string, totalPages int) (Selection, bool) {
	entry = strings.TrimSpace(entry)
	if entry == "" || totalPages <= 0 {
		return Selection{}, false
	}

	if strings.Contains(entry, IntervalSeparator) {
		return parseInterval(entry, totalPages)
	}
	return parseList(entry, totalPages)
}

// Valid reports whether entry parses for a document of totalPages
func Valid(entry string, totalPages int) bool {
	_, ok := ParseEntry(entry, totalPages)
	return ok
}

// HasInput reports whether any entry holds non-blank text
func HasInput(entries []string) bool {
	for _, entry := range entries {
		if strings.TrimSpace(entry) != "" {
			return true
		}
	}
	return false
}

// parseInterval handles "a-b"; a missing or zero end selects page a only
func parseInterval(entry string, totalPages int) (Selection, bool) {
	fields := strings.Split(entry, IntervalSeparator)

	start, ok := leadingInt(fields[0])
	if !ok {
		return Selection{}, false
	}
	end := start
	if len(fields) > 1 {
		if e, ok := leadingInt(fields[1]); ok && e != 0 {
			end = e
		}
	}

	if start < 1 || end > totalPages || start > end {
		return Selection{}, false
	}
	return Selection{Kind: KindInterval, Start: start, End: end}, true
}

// parseList handles "a, b, c"; one bad field invalidates the whole entry
func parseList(entry string, totalPages int) (Selection, bool) {
	fields := strings.Split(entry, ListSeparator)
	pages := make([]int, 0, len(fields))
	for _, field := range fields {
		p, ok := leadingInt(field)
		if !ok || p < 1 || p > totalPages {
			return Selection{}, false
		}
		pages = append(pages, p)
	}
	return Selection{Kind: KindList, List: pages}, true
}

// leadingInt reads an optional '+' and the leading decimal digits of s,
// ignoring whatever follows ("12abc" is 12)
func leadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "+")

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
