package lockfile_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gom/internal/adapters/lockfile"
	"go.trai.ch/gom/internal/core/domain"
)

var testNow = time.Date(2026, 3, 1, 12, 30, 0, 123456789, time.UTC)

func newManager() *lockfile.Manager {
	s := domain.DefaultSettings("0.0.1")
	s.Now = func() time.Time { return testNow }
	return lockfile.NewManager(s)
}

func TestManager_Build_Fresh(t *testing.T) {
	got := newManager().Build("/home/a/proj", nil)

	assert.Equal(t, domain.Lockfile{
		Source:     "/home/a/proj",
		GomVersion: "0.0.1",
		Build:      testNow,
		Created:    testNow,
	}, got)
}

func TestManager_Build_CarriesCreated(t *testing.T) {
	first := testNow.Add(-48 * time.Hour)

	got := newManager().Build("/home/a/proj", &first)

	assert.Equal(t, first, got.Created)
	assert.Equal(t, testNow, got.Build)
}

func TestManager_WriteRead_RoundTrip(t *testing.T) {
	m := newManager()
	dir := t.TempDir()
	record := m.Build("/home/a/proj", nil)

	require.NoError(t, m.Write(dir, record))

	got := m.Read(dir)
	require.NotNil(t, got)
	assert.Equal(t, record.Source, got.Source)
	assert.Equal(t, record.GomVersion, got.GomVersion)
	assert.True(t, record.Build.Equal(got.Build))
	assert.True(t, record.Created.Equal(got.Created))
}

func TestManager_Write_Format(t *testing.T) {
	m := newManager()
	dir := t.TempDir()

	require.NoError(t, m.Write(dir, m.Build("/home/a/proj", nil)))

	data, err := os.ReadFile(filepath.Join(dir, domain.LockfileName))
	require.NoError(t, err)

	var raw map[string]string
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, map[string]string{
		"source":  "/home/a/proj",
		"gomV":    "0.0.1",
		"build":   "2026-03-01T12:30:00.123456789Z",
		"created": "2026-03-01T12:30:00.123456789Z",
	}, raw)
}

func TestManager_Write_MissingDirIsNoOp(t *testing.T) {
	m := newManager()
	dir := filepath.Join(t.TempDir(), "absent")

	require.NoError(t, m.Write(dir, m.Build("/home/a/proj", nil)))

	_, err := os.Stat(dir)
	assert.True(t, os.IsNotExist(err), "Write must not create the directory")
}

func TestManager_Write_Replaces(t *testing.T) {
	m := newManager()
	dir := t.TempDir()

	require.NoError(t, m.Write(dir, m.Build("/first", nil)))
	require.NoError(t, m.Write(dir, m.Build("/second", nil)))

	got := m.Read(dir)
	require.NotNil(t, got)
	assert.Equal(t, "/second", got.Source)
}

func TestManager_Write_Error(t *testing.T) {
	m := newManager()
	dir := t.TempDir()
	// A directory occupying the lockfile name makes the write fail.
	require.NoError(t, os.Mkdir(filepath.Join(dir, domain.LockfileName), domain.DirPerm))

	err := m.Write(dir, m.Build("/home/a/proj", nil))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrLockfileWriteFailed.Error())
}

func TestManager_Read_Absent(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) string
	}{
		{
			name: "missing directory",
			setup: func(t *testing.T) string {
				t.Helper()
				return filepath.Join(t.TempDir(), "absent")
			},
		},
		{
			name: "missing file",
			setup: func(t *testing.T) string {
				t.Helper()
				return t.TempDir()
			},
		},
		{
			name: "malformed file",
			setup: func(t *testing.T) string {
				t.Helper()
				dir := t.TempDir()
				require.NoError(t, os.WriteFile(filepath.Join(dir, domain.LockfileName), []byte("{not json"), domain.FilePerm))
				return dir
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, newManager().Read(tt.setup(t)))
		})
	}
}

func TestManager_CustomLockfileName(t *testing.T) {
	s := domain.DefaultSettings("dev")
	s.LockfileName = "vendor.lock"
	m := lockfile.NewManager(s)
	dir := t.TempDir()

	require.NoError(t, m.Write(dir, m.Build("/src", nil)))

	_, err := os.Stat(filepath.Join(dir, "vendor.lock"))
	require.NoError(t, err)
	assert.NotNil(t, m.Read(dir))
}
