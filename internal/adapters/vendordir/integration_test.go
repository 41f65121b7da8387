package vendordir_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gom/internal/adapters/fs"
	"go.trai.ch/gom/internal/adapters/lockfile"
	"go.trai.ch/gom/internal/adapters/telemetry/progrock"
	"go.trai.ch/gom/internal/adapters/vendordir"
	"go.trai.ch/gom/internal/core/domain"
	"go.trai.ch/gom/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// Two gom processes building into the same vendor directory at once can
// interleave removal and copying. Nothing locks the directory; the tests
// below only cover sequential builds.
func TestPrepareAndCopy_Proj1(t *testing.T) {
	root := t.TempDir()
	source := t.TempDir()
	writeSource(t, source, map[string]string{
		"libs/a/x.go":     "package a\n",
		"libs/a/y.go":     "package a\n",
		"libs/a/sub/z.go": "package sub\n",
	})
	s := testSettings(root)
	cfg := testConfig()
	target := cfg.VendorDir(root)

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()

	recorder := progrock.New()
	t.Cleanup(func() { _ = recorder.Close() })

	reconciler := vendordir.NewReconciler(lockfile.NewManager(s), mockLogger, s)
	copier := vendordir.NewCopier(fs.NewWalker(), fs.NewCopier(), fs.NewHasher(), recorder, mockLogger, s)

	first, err := reconciler.Prepare(target, source, cfg)
	require.NoError(t, err)
	results := copier.CopyAll(t.Context(), target, source, cfg)
	require.Len(t, results, 1)
	require.NoError(t, results[0].Err)

	assert.ElementsMatch(t, []string{domain.LockfileName, domain.SnapshotName, "pkgA"}, listDir(t, target))
	assert.Equal(t, []string{"x.go", "y.go"}, listDir(t, filepath.Join(target, "pkgA")))
	assert.Equal(t, first.Build, first.Created)

	second, err := reconciler.Prepare(target, source, cfg)
	require.NoError(t, err)
	again := copier.CopyAll(t.Context(), target, source, cfg)
	require.Len(t, again, 1)

	assert.Equal(t, first.Created, second.Created)
	assert.True(t, second.Build.After(first.Build))
	assert.Equal(t, results[0].Digest, again[0].Digest, "unchanged sources produce the same digest")
	assert.Equal(t, []string{"x.go", "y.go"}, listDir(t, filepath.Join(target, "pkgA")))
}
