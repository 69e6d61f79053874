package model

// Package model defines domain data structures used across the app: loaded
// files, generated artifacts, notifications, and the operation/phase enums
// that drive the workspace. Structures are plain values the UI renders from
// snapshots.
