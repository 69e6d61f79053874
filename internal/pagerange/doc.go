package pagerange

// Package pagerange turns the free-text page-range entries typed by the user
// ("1-3", "5", "7, 8") into ordered page selections for a document of known
// length. Entries that do not parse or fall outside the document are dropped
// silently; callers decide what an empty result means.
