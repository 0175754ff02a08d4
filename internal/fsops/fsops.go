package fsops

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ScanResult contains size calculation results with access warnings.
type ScanResult struct {
	Warnings []AccessError
	Size     int64
}

// TreeSize sums the sizes of all regular files under root.
// A missing root yields size 0: cache folders routinely disappear between
// indexing and scanning. Access errors are collected as warnings rather
// than stopping the scan. Symlinks are not followed.
func TreeSize(root string) (ScanResult, error) {
	var result ScanResult

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				result.Warnings = append(result.Warnings, ClassifyError(path, err))
			}
			return nil
		}
		if d.IsDir() || d.Type()&fs.ModeSymlink != 0 {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			result.Warnings = append(result.Warnings, ClassifyError(path, err))
			return nil
		}
		result.Size += info.Size()
		return nil
	})
	if err != nil {
		return result, fmt.Errorf("tree size %s: %w", root, err)
	}

	return result, nil
}

// ListDirs returns the names of directories directly under root.
func ListDirs(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("list dirs %s: %w", root, err)
	}

	var dirs []string
	for _, e := range entries {
		if e.IsDir() {
			dirs = append(dirs, e.Name())
		}
	}
	return dirs, nil
}

// RemoveTree deletes path and everything under it.
func RemoveTree(path string) error {
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("remove tree %s: %w", path, err)
	}
	return nil
}
