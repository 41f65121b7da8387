package fs_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gom/internal/adapters/fs"
	"go.trai.ch/gom/internal/core/domain"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte(content), domain.FilePerm))
}

func TestWalker_ListSources(t *testing.T) {
	// tmp/
	//   y.go
	//   x.go
	//   README.md
	//   notgo.go.txt
	//   sub/z.go
	//   dir.go/        (a directory matching the extension)
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "y.go"), "package a")
	writeFile(t, filepath.Join(tmpDir, "x.go"), "package a")
	writeFile(t, filepath.Join(tmpDir, "README.md"), "# a")
	writeFile(t, filepath.Join(tmpDir, "notgo.go.txt"), "")
	writeFile(t, filepath.Join(tmpDir, "sub", "z.go"), "package sub")
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, "dir.go"), domain.DirPerm))

	names, err := fs.NewWalker().ListSources(tmpDir, ".go")
	require.NoError(t, err)

	assert.Equal(t, []string{"x.go", "y.go"}, names)
}

func TestWalker_ListSources_SymlinksAndDotfiles(t *testing.T) {
	// tmp/
	//   x.go
	//   link.go     -> other/real.go
	//   dirlink.go  -> other
	//   broken.go   -> missing.go
	//   .hidden.go
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "x.go"), "package a")
	writeFile(t, filepath.Join(tmpDir, ".hidden.go"), "package a")
	writeFile(t, filepath.Join(tmpDir, "other", "real.go"), "package a")
	require.NoError(t, os.Symlink(filepath.Join("other", "real.go"), filepath.Join(tmpDir, "link.go")))
	require.NoError(t, os.Symlink("other", filepath.Join(tmpDir, "dirlink.go")))
	require.NoError(t, os.Symlink("missing.go", filepath.Join(tmpDir, "broken.go")))

	names, err := fs.NewWalker().ListSources(tmpDir, ".go")
	require.NoError(t, err)

	assert.Equal(t, []string{"link.go", "x.go"}, names)
}

func TestWalker_ListSources_Empty(t *testing.T) {
	names, err := fs.NewWalker().ListSources(t.TempDir(), ".go")
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestWalker_ListSources_Missing(t *testing.T) {
	_, err := fs.NewWalker().ListSources(filepath.Join(t.TempDir(), "nope"), ".go")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrPackageSourceMissing.Error())
}

func TestCopier_CopyFile_PreservesModeAndMtime(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "x.go")
	dst := filepath.Join(tmpDir, "out", "x.go")
	writeFile(t, src, "package a\n")
	require.NoError(t, os.Chmod(src, 0o600))
	require.NoError(t, os.Mkdir(filepath.Dir(dst), domain.DirPerm))

	mtime := time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, os.Chtimes(src, mtime, mtime))

	require.NoError(t, fs.NewCopier().CopyFile(src, dst))

	content, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "package a\n", string(content))

	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	assert.True(t, info.ModTime().Equal(mtime), "mtime = %v, want %v", info.ModTime(), mtime)
}

func TestCopier_CopyFile_FollowsSymlink(t *testing.T) {
	tmpDir := t.TempDir()
	target := filepath.Join(tmpDir, "other", "real.go")
	writeFile(t, target, "package real\n")
	link := filepath.Join(tmpDir, "link.go")
	require.NoError(t, os.Symlink(target, link))
	dst := filepath.Join(tmpDir, "out.go")

	require.NoError(t, fs.NewCopier().CopyFile(link, dst))

	info, err := os.Lstat(dst)
	require.NoError(t, err)
	assert.True(t, info.Mode().IsRegular(), "copy must be a regular file, not a link")

	content, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "package real\n", string(content))
}

func TestCopier_CopyFile_Overwrites(t *testing.T) {
	tmpDir := t.TempDir()
	src := filepath.Join(tmpDir, "x.go")
	dst := filepath.Join(tmpDir, "y.go")
	writeFile(t, src, "new")
	writeFile(t, dst, "old content that is longer")

	require.NoError(t, fs.NewCopier().CopyFile(src, dst))

	content, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "new", string(content))
}

func TestCopier_CopyFile_Errors(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "x.go"), "package a")

	err := fs.NewCopier().CopyFile(filepath.Join(tmpDir, "missing.go"), filepath.Join(tmpDir, "out.go"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrFileOpenFailed.Error())

	err = fs.NewCopier().CopyFile(filepath.Join(tmpDir, "x.go"), filepath.Join(tmpDir, "no-dir", "x.go"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrPackageCopyFailed.Error())
}

func TestHasher_ComputeFileHash(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.go")
	writeFile(t, path, "hello world")

	hasher := fs.NewHasher()

	hash1, err := hasher.ComputeFileHash(path)
	require.NoError(t, err)
	assert.NotZero(t, hash1)

	hash2, err := hasher.ComputeFileHash(path)
	require.NoError(t, err)
	assert.Equal(t, hash1, hash2, "expected deterministic hash")
}

func TestHasher_DigestFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "x.go"), "package a")
	writeFile(t, filepath.Join(dir, "y.go"), "package a")

	hasher := fs.NewHasher()

	digest, err := hasher.DigestFiles(dir, []string{"x.go", "y.go"})
	require.NoError(t, err)
	assert.Len(t, digest, 16)

	again, err := hasher.DigestFiles(dir, []string{"x.go", "y.go"})
	require.NoError(t, err)
	assert.Equal(t, digest, again)

	// Order is part of the digest.
	renamed, err := hasher.DigestFiles(dir, []string{"y.go", "x.go"})
	require.NoError(t, err)
	assert.NotEqual(t, digest, renamed)

	writeFile(t, filepath.Join(dir, "y.go"), "package b")
	changed, err := hasher.DigestFiles(dir, []string{"x.go", "y.go"})
	require.NoError(t, err)
	assert.NotEqual(t, digest, changed)
}

func TestHasher_DigestFiles_Missing(t *testing.T) {
	_, err := fs.NewHasher().DigestFiles(t.TempDir(), []string{"x.go"})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrFileOpenFailed.Error())
}
