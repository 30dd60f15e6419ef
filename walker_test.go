package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func recordPaths(records []FileRecord) []string {
	paths := make([]string, 0, len(records))
	for _, r := range records {
		paths = append(paths, r.Path)
	}
	return paths
}

func TestCollectFilesPathNotFound(t *testing.T) {
	_, err := collectFiles(filepath.Join(t.TempDir(), "missing"), walkOptions{Recursive: true})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPathNotFound)
	assert.Contains(t, err.Error(), "missing")
}

func TestCollectFilesNotADirectory(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "plain.txt")
	writeFile(t, file, "content")

	_, err := collectFiles(file, walkOptions{Recursive: true})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotADirectory)

	res, err := collectFiles(file, walkOptions{Recursive: true, AllowFile: true})
	require.NoError(t, err)
	require.Len(t, res.Files, 1)
	assert.Equal(t, file, res.Files[0].Path)
	assert.Equal(t, int64(7), res.Files[0].Size)
	assert.Equal(t, ".txt", res.Files[0].Ext)
}

func TestCollectFilesRecursive(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), "aaa")
	writeFile(t, filepath.Join(root, "sub", "b.PDF"), "bbbb")
	writeFile(t, filepath.Join(root, "sub", "deep", "c.tar.gz"), "ccccc")
	writeFile(t, filepath.Join(root, ".hidden"), "secret")
	require.NoError(t, os.Mkdir(filepath.Join(root, "empty"), 0755))
	require.NoError(t, os.Symlink(filepath.Join(root, "a.txt"), filepath.Join(root, "link.txt")))

	res, err := collectFiles(root, walkOptions{Recursive: true})
	require.NoError(t, err)
	assert.Empty(t, res.Skipped)

	assert.ElementsMatch(t, []string{
		filepath.Join(root, "a.txt"),
		filepath.Join(root, "sub", "b.PDF"),
		filepath.Join(root, "sub", "deep", "c.tar.gz"),
	}, recordPaths(res.Files))

	byPath := make(map[string]FileRecord)
	for _, r := range res.Files {
		byPath[r.Path] = r
	}
	assert.Equal(t, ".pdf", byPath[filepath.Join(root, "sub", "b.PDF")].Ext)
	assert.Equal(t, ".tar.gz", byPath[filepath.Join(root, "sub", "deep", "c.tar.gz")].Ext)
}

func TestCollectFilesShowHidden(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".hidden"), "secret")
	writeFile(t, filepath.Join(root, "visible.txt"), "x")

	res, err := collectFiles(root, walkOptions{Recursive: true, ShowHidden: true})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(root, ".hidden"),
		filepath.Join(root, "visible.txt"),
	}, recordPaths(res.Files))
}

func TestCollectFilesNonRecursive(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "top.txt"), "top")
	writeFile(t, filepath.Join(root, "Documents", "nested.pdf"), "nested")
	writeFile(t, filepath.Join(root, ".hidden"), "secret")

	res, err := collectFiles(root, walkOptions{Recursive: false})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "top.txt")}, recordPaths(res.Files))
}

func TestCollectFilesGitignore(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".gitignore"), "*.log\nbuild/\n")
	writeFile(t, filepath.Join(root, "keep.txt"), "keep")
	writeFile(t, filepath.Join(root, "debug.log"), "noise")
	writeFile(t, filepath.Join(root, "build", "out.bin"), "bin")

	res, err := collectFiles(root, walkOptions{Recursive: true})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "keep.txt")}, recordPaths(res.Files))

	res, err = collectFiles(root, walkOptions{Recursive: true, NoIgnore: true})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(root, "keep.txt"),
		filepath.Join(root, "debug.log"),
		filepath.Join(root, "build", "out.bin"),
	}, recordPaths(res.Files))
}

func TestCollectFilesStableOrder(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "b.txt"), "b")
	writeFile(t, filepath.Join(root, "a.txt"), "a")
	writeFile(t, filepath.Join(root, "c.txt"), "c")

	first, err := collectFiles(root, walkOptions{Recursive: true})
	require.NoError(t, err)
	second, err := collectFiles(root, walkOptions{Recursive: true})
	require.NoError(t, err)
	assert.Equal(t, recordPaths(first.Files), recordPaths(second.Files))
}
