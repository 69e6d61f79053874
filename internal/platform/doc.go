package platform

// Package platform contains OS/platform integration: PDF sniffing for file
// intake, non-clobbering writes for saved results and previews, and opening
// or revealing files with the desktop's default applications.
