package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildSourceTree creates a small directory tree and returns its root plus
// the relative path -> content mapping it contains.
func buildSourceTree(t *testing.T) (string, map[string]string) {
	t.Helper()
	parent := t.TempDir()
	root := filepath.Join(parent, "project")
	contents := map[string]string{
		"readme.md":              "hello",
		"data/values.csv":        "1,2,3\n4,5,6",
		"data/nested/deep.bin":   string([]byte{0, 1, 2, 255, 254}),
		"empty.txt":              "",
		"assets/img/logo.fake":   "not really an image",
		"assets/img/logo2.fake":  "not really an image",
		"weird name with sp.txt": "spaces are fine",
	}
	for rel, content := range contents {
		writeFile(t, filepath.Join(root, filepath.FromSlash(rel)), content)
	}
	return root, contents
}

// readTreeFiles returns the relative path -> content mapping of every
// regular file under root.
func readTreeFiles(t *testing.T, root string) map[string]string {
	t.Helper()
	found := make(map[string]string)
	scan, err := collectFiles(root, walkOptions{Recursive: true, ShowHidden: true, NoIgnore: true})
	require.NoError(t, err)
	for _, rec := range scan.Files {
		rel, err := filepath.Rel(root, rec.Path)
		require.NoError(t, err)
		data, err := os.ReadFile(rec.Path)
		require.NoError(t, err)
		found[filepath.ToSlash(rel)] = string(data)
	}
	return found
}

func TestArchiveRoundTrip(t *testing.T) {
	tests := []struct {
		format  string
		wantExt string
	}{
		{formatZip, "project.zip"},
		{formatTar, "project.tar.gz"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			root, contents := buildSourceTree(t)
			outDir := t.TempDir()

			archivePath, err := packArchive(root, tt.format, outDir)
			require.NoError(t, err)
			assert.Equal(t, filepath.Join(outDir, tt.wantExt), archivePath)
			require.FileExists(t, archivePath)

			dest := t.TempDir()
			count, err := extractArchive(archivePath, dest)
			require.NoError(t, err)
			assert.Equal(t, len(contents), count)

			// Entries are relative to the folder's parent, so extraction
			// recreates the folder itself.
			extracted := readTreeFiles(t, filepath.Join(dest, "project"))
			assert.Equal(t, contents, extracted)
		})
	}
}

func TestPackArchiveErrors(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "plain.txt")
	writeFile(t, file, "not a directory")

	_, err := packArchive(filepath.Join(root, "missing"), formatZip, root)
	assert.ErrorIs(t, err, ErrPathNotFound)

	_, err = packArchive(file, formatZip, root)
	assert.ErrorIs(t, err, ErrSourceNotDirectory)

	_, err = packArchive(root, "rar", root)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestExtractArchiveUnsupportedFormat(t *testing.T) {
	root := t.TempDir()
	odd := filepath.Join(root, "payload.rar")
	writeFile(t, odd, "whatever")

	_, err := extractArchive(odd, root)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.Contains(t, err.Error(), "payload.rar")
}

func TestExtractArchiveMissing(t *testing.T) {
	root := t.TempDir()
	_, err := extractArchive(filepath.Join(root, "nothing.zip"), root)
	assert.ErrorIs(t, err, ErrPathNotFound)
}

func TestExtractArchiveCorrupt(t *testing.T) {
	root := t.TempDir()

	badZip := filepath.Join(root, "broken.zip")
	writeFile(t, badZip, "this is not a zip archive")
	_, err := extractArchive(badZip, root)
	assert.ErrorIs(t, err, ErrCorruptArchive)

	badTar := filepath.Join(root, "broken.tar.gz")
	writeFile(t, badTar, "this is not gzip data either")
	_, err = extractArchive(badTar, root)
	assert.ErrorIs(t, err, ErrCorruptArchive)
}

func TestSafeJoinRejectsEscapes(t *testing.T) {
	dest := filepath.Join("tmp", "out")

	joined, ok := safeJoin(dest, "sub/file.txt")
	assert.True(t, ok)
	assert.Equal(t, filepath.Join(dest, "sub", "file.txt"), joined)

	_, ok = safeJoin(dest, "../escape.txt")
	assert.False(t, ok)

	_, ok = safeJoin(dest, "sub/../../escape.txt")
	assert.False(t, ok)

	// A relative destination such as "." must contain its entries too.
	joined, ok = safeJoin(".", "project/readme.md")
	assert.True(t, ok)
	assert.Equal(t, filepath.Join("project", "readme.md"), joined)

	_, ok = safeJoin(".", "../escape.txt")
	assert.False(t, ok)
}

func TestExtractIntoCurrentDirectory(t *testing.T) {
	root, contents := buildSourceTree(t)
	outDir := t.TempDir()
	archivePath, err := packArchive(root, formatZip, outDir)
	require.NoError(t, err)

	workDir := t.TempDir()
	t.Chdir(workDir)

	count, err := extractArchive(archivePath, ".")
	require.NoError(t, err)
	assert.Equal(t, len(contents), count)
	assert.Equal(t, contents, readTreeFiles(t, filepath.Join(workDir, "project")))
}

func TestPackArchiveDotFolder(t *testing.T) {
	root, contents := buildSourceTree(t)
	outDir := t.TempDir()
	t.Chdir(root)

	archivePath, err := packArchive(".", formatTar, outDir)
	require.NoError(t, err)
	// The archive is named after the directory, not after ".".
	assert.Equal(t, filepath.Join(outDir, filepath.Base(root)+".tar.gz"), archivePath)

	dest := t.TempDir()
	count, err := extractArchive(archivePath, dest)
	require.NoError(t, err)
	assert.Equal(t, len(contents), count)
	assert.Equal(t, contents, readTreeFiles(t, filepath.Join(dest, filepath.Base(root))))
}

func TestPackArchiveDetectsFormatByName(t *testing.T) {
	root, _ := buildSourceTree(t)
	outDir := t.TempDir()

	zipPath, err := packArchive(root, formatZip, outDir)
	require.NoError(t, err)
	tarPath, err := packArchive(root, formatTar, outDir)
	require.NoError(t, err)

	// Extension drives extraction; both containers live side by side.
	dest1 := t.TempDir()
	_, err = extractArchive(zipPath, dest1)
	require.NoError(t, err)
	dest2 := t.TempDir()
	_, err = extractArchive(tarPath, dest2)
	require.NoError(t, err)

	assert.Equal(t, readTreeFiles(t, filepath.Join(dest1, "project")), readTreeFiles(t, filepath.Join(dest2, "project")))
}
