package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	gitignore "github.com/monochromegane/go-gitignore"
)

// walkOptions controls how collectFiles traverses a root.
type walkOptions struct {
	// Recursive walks the whole subtree; when false only the immediate
	// children of the root are listed (the organize pass, which must not
	// re-visit its own category subdirectories).
	Recursive bool
	// AllowFile accepts a plain file as the root instead of failing with
	// ErrNotADirectory.
	AllowFile bool
	// ShowHidden includes dotfiles and dot-directories.
	ShowHidden bool
	// NoIgnore disables .gitignore filtering on recursive walks.
	NoIgnore bool
}

// collectFiles enumerates the regular files under root in a single pass.
// Traversal order is the lexical WalkDir order, so it is stable within a run.
// Non-regular entries (directories, symlinks, devices) are skipped silently;
// entries that cannot be stat'ed are collected into ScanResult.Skipped.
func collectFiles(root string, opts walkOptions) (ScanResult, error) {
	var res ScanResult

	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return res, fmt.Errorf("%s: %w", root, ErrPathNotFound)
		}
		return res, fmt.Errorf("accessing %s: %w", root, err)
	}

	if !info.IsDir() {
		if !opts.AllowFile {
			return res, fmt.Errorf("%s: %w", root, ErrNotADirectory)
		}
		res.Files = append(res.Files, newRecord(root, info))
		return res, nil
	}

	if !opts.Recursive {
		return listDirectory(root, opts)
	}

	var matcher gitignore.IgnoreMatcher
	if !opts.NoIgnore {
		gitIgnorePath := filepath.Join(root, ".gitignore")
		if _, err := os.Stat(gitIgnorePath); err == nil {
			m, err := gitignore.NewGitIgnore(gitIgnorePath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: could not parse %s: %v\n", gitIgnorePath, err)
			} else {
				matcher = m
			}
		}
	}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			res.Skipped = append(res.Skipped, SkippedFile{Path: path, Err: err})
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if path == root {
			return nil
		}

		isDir := d.IsDir()
		if !opts.ShowHidden && isHidden(d.Name()) {
			if isDir {
				return fs.SkipDir
			}
			return nil
		}
		if matcher != nil && matcher.Match(path, isDir) {
			if isDir {
				return fs.SkipDir
			}
			return nil
		}
		if isDir {
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		fi, err := d.Info()
		if err != nil {
			res.Skipped = append(res.Skipped, SkippedFile{Path: path, Err: err})
			return nil
		}
		res.Files = append(res.Files, newRecord(path, fi))
		return nil
	})
	if err != nil {
		return res, fmt.Errorf("walking %s: %w", root, err)
	}

	return res, nil
}

// listDirectory returns records for the immediate regular-file children of
// root, in directory order.
func listDirectory(root string, opts walkOptions) (ScanResult, error) {
	var res ScanResult

	entries, err := os.ReadDir(root)
	if err != nil {
		return res, fmt.Errorf("reading %s: %w", root, err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !entry.Type().IsRegular() {
			continue
		}
		if !opts.ShowHidden && isHidden(entry.Name()) {
			continue
		}
		path := filepath.Join(root, entry.Name())
		fi, err := entry.Info()
		if err != nil {
			res.Skipped = append(res.Skipped, SkippedFile{Path: path, Err: err})
			continue
		}
		res.Files = append(res.Files, newRecord(path, fi))
	}
	return res, nil
}

func newRecord(path string, info fs.FileInfo) FileRecord {
	return FileRecord{
		Path:    path,
		Size:    info.Size(),
		ModTime: info.ModTime(),
		Ext:     fileExt(info.Name()),
	}
}

// isHidden checks if a base name is hidden (starts with '.').
func isHidden(name string) bool {
	if name == "." || name == ".." {
		return false
	}
	base := filepath.Base(name)
	return len(base) > 0 && base[0] == '.'
}
