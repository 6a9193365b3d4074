package core

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/jakebark/jsoncheck/internal/config"
)

// FindJSONFiles returns the names of the immediate entries of dir ending in
// .json. Subdirectories, and symlinks to them, are skipped; nothing below dir
// is visited. A dangling symlink is kept so reading it reports the failure.
func FindJSONFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	var jsonFiles []string
	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name(), config.JSONSuffix) || isDirEntry(dir, entry) {
			continue
		}
		jsonFiles = append(jsonFiles, entry.Name())
	}
	return jsonFiles, nil
}

func isDirEntry(dir string, entry fs.DirEntry) bool {
	if entry.Type()&fs.ModeSymlink == 0 {
		return entry.IsDir()
	}
	info, err := os.Stat(filepath.Join(dir, entry.Name()))
	return err == nil && info.IsDir()
}
