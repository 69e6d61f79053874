package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Preview files live under the OS temp dir in this folder
const (
	PreviewDirName = "pdf-toolkit-preview"
	MaxUniqueTries = 1000
)

// UniquePath returns dir/name, or dir/"base (n).ext" if that already exists
func UniquePath(dir, name string) (string, error) {
	name = filepath.Base(name)
	if name == "." || name == string(filepath.Separator) || name == "" {
		return "", fmt.Errorf("invalid file name: %q", name)
	}

	candidate := filepath.Join(dir, name)
	if _, err := os.Stat(candidate); os.IsNotExist(err) {
		return candidate, nil
	}

	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	for i := 1; i <= MaxUniqueTries; i++ {
		candidate = filepath.Join(dir, fmt.Sprintf("%s (%d)%s", base, i, ext))
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no free file name for %s in %s", name, dir)
}

// WriteFile writes data to a non-clobbering path in dir and returns that path
func WriteFile(dir, name string, data []byte) (string, error) {
	if err := CreateDirectoryIfNotExists(dir); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	path, err := UniquePath(dir, name)
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(path, data, DefaultFilePermissions); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}

// PreviewDir returns the temp folder used for previews
func PreviewDir() string {
	return filepath.Join(os.TempDir(), PreviewDirName)
}

// WritePreviewFile writes data into the preview folder for an external viewer
func WritePreviewFile(name string, data []byte) (string, error) {
	return WriteFile(PreviewDir(), name, data)
}

// CleanPreviewDir removes every preview written this session
func CleanPreviewDir() error {
	return os.RemoveAll(PreviewDir())
}
