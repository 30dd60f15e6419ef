package main

import (
	"archive/tar"
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// Supported container formats. Detection on extraction is by file extension
// only, never by content sniffing; a misnamed archive is rejected rather
// than auto-detected.
const (
	formatZip = "zip"
	formatTar = "tar"
)

// packArchive serializes folder into a single archive file in outDir. The
// output name is the folder's base name plus the format's canonical
// extension; entry paths are relative to the folder's parent so extraction
// recreates the folder itself.
func packArchive(folder, format, outDir string) (string, error) {
	info, err := os.Stat(folder)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%s: %w", folder, ErrPathNotFound)
		}
		return "", fmt.Errorf("accessing %s: %w", folder, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s: %w", folder, ErrSourceNotDirectory)
	}

	// Resolve before taking the base name so "tidy archive ." names the
	// archive after the directory, not after ".".
	folderAbs, err := filepath.Abs(folder)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", folder, err)
	}
	base := filepath.Base(folderAbs)
	switch format {
	case formatZip:
		out := filepath.Join(outDir, base+".zip")
		return out, packZip(folder, base, out)
	case formatTar:
		out := filepath.Join(outDir, base+".tar.gz")
		return out, packTarGz(folder, base, out)
	default:
		return "", fmt.Errorf("%s: %w", format, ErrUnsupportedFormat)
	}
}

func packZip(folder, base, out string) error {
	zipFile, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating %s: %w", out, err)
	}
	defer zipFile.Close()

	zw := zip.NewWriter(zipFile)
	defer zw.Close()

	err = walkArchiveEntries(folder, func(path, relPath string, d fs.DirEntry) error {
		if d.IsDir() {
			return nil
		}
		w, err := zw.Create(filepath.ToSlash(filepath.Join(base, relPath)))
		if err != nil {
			return err
		}
		return copyFileInto(w, path)
	})
	if err != nil {
		return fmt.Errorf("packing %s: %w", folder, err)
	}
	return zw.Close()
}

func packTarGz(folder, base, out string) error {
	outFile, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating %s: %w", out, err)
	}
	defer outFile.Close()

	gzw := gzip.NewWriter(outFile)
	defer gzw.Close()
	tw := tar.NewWriter(gzw)
	defer tw.Close()

	err = walkArchiveEntries(folder, func(path, relPath string, d fs.DirEntry) error {
		info, err := d.Info()
		if err != nil {
			return err
		}
		header, err := tar.FileInfoHeader(info, "")
		if err != nil {
			return err
		}
		header.Name = filepath.ToSlash(filepath.Join(base, relPath))
		if d.IsDir() {
			header.Name += "/"
		}
		if err := tw.WriteHeader(header); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		return copyFileInto(tw, path)
	})
	if err != nil {
		return fmt.Errorf("packing %s: %w", folder, err)
	}
	if err := tw.Close(); err != nil {
		return err
	}
	return gzw.Close()
}

// walkArchiveEntries visits every entry under folder except the folder
// itself, handing relative paths to fn. Non-regular files other than
// directories are skipped.
func walkArchiveEntries(folder string, fn func(path, relPath string, d fs.DirEntry) error) error {
	return filepath.WalkDir(folder, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path == folder {
			return nil
		}
		if !d.IsDir() && !d.Type().IsRegular() {
			return nil
		}
		relPath, err := filepath.Rel(folder, path)
		if err != nil {
			return err
		}
		return fn(path, relPath, d)
	})
}

func copyFileInto(w io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.Copy(w, f)
	return err
}

// extractArchive unpacks an archive into dest, recreating its relative
// directory structure, and returns the number of files written. The format
// is implied by the archive's extension. Archives are all-or-nothing: a
// parse failure aborts the whole command.
func extractArchive(archivePath, dest string) (int, error) {
	if _, err := os.Stat(archivePath); err != nil {
		if os.IsNotExist(err) {
			return 0, fmt.Errorf("%s: %w", archivePath, ErrPathNotFound)
		}
		return 0, fmt.Errorf("accessing %s: %w", archivePath, err)
	}

	lower := strings.ToLower(archivePath)
	switch {
	case strings.HasSuffix(lower, ".zip"):
		return extractZip(archivePath, dest)
	case strings.HasSuffix(lower, ".tar.gz"), strings.HasSuffix(lower, ".tgz"):
		return extractTarGz(archivePath, dest)
	default:
		return 0, fmt.Errorf("%s: %w", archivePath, ErrUnsupportedFormat)
	}
}

func extractZip(archivePath, dest string) (int, error) {
	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", archivePath, ErrCorruptArchive)
	}
	defer reader.Close()

	count := 0
	for _, file := range reader.File {
		destPath, ok := safeJoin(dest, file.Name)
		if !ok {
			continue
		}
		if file.FileInfo().IsDir() {
			if err := os.MkdirAll(destPath, 0755); err != nil {
				return count, fmt.Errorf("creating %s: %w", destPath, err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
			return count, fmt.Errorf("creating %s: %w", filepath.Dir(destPath), err)
		}
		src, err := file.Open()
		if err != nil {
			return count, fmt.Errorf("%s: %w", archivePath, ErrCorruptArchive)
		}
		err = writeFileFrom(destPath, src)
		src.Close()
		if err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

func extractTarGz(archivePath, dest string) (int, error) {
	f, err := os.Open(archivePath)
	if err != nil {
		return 0, fmt.Errorf("opening %s: %w", archivePath, err)
	}
	defer f.Close()

	gzr, err := gzip.NewReader(f)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", archivePath, ErrCorruptArchive)
	}
	defer gzr.Close()
	tr := tar.NewReader(gzr)

	count := 0
	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return count, fmt.Errorf("%s: %w", archivePath, ErrCorruptArchive)
		}
		destPath, ok := safeJoin(dest, header.Name)
		if !ok {
			continue
		}
		switch header.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(destPath, 0755); err != nil {
				return count, fmt.Errorf("creating %s: %w", destPath, err)
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
				return count, fmt.Errorf("creating %s: %w", filepath.Dir(destPath), err)
			}
			if err := writeFileFrom(destPath, tr); err != nil {
				return count, err
			}
			count++
		}
	}
	return count, nil
}

// safeJoin joins an archive entry name onto dest, rejecting entries that
// would escape it (zip-slip). The containment check is relation-based so a
// relative dest like "." works the same as an absolute one.
func safeJoin(dest, name string) (string, bool) {
	destPath := filepath.Join(dest, filepath.FromSlash(name))
	rel, err := filepath.Rel(filepath.Clean(dest), destPath)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(os.PathSeparator)) {
		return "", false
	}
	return destPath, true
}

func writeFileFrom(destPath string, src io.Reader) error {
	out, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", destPath, err)
	}
	_, err = io.Copy(out, src)
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", destPath, err)
	}
	return nil
}
