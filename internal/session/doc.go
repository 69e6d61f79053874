package session

// Package session holds the workspace state behind the root window: the
// selected operation, the ordered list of loaded files, page-range entries,
// results of the last run and the artifact being previewed.
//
// All state transitions go through Workspace so the UI only renders
// snapshots and reacts to the change callback.
