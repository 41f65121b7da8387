package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/gom/internal/adapters/config"
	"go.trai.ch/gom/internal/core/domain"
	"go.trai.ch/gom/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T) (*config.Loader, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	return config.NewLoader(mockLogger, domain.DefaultSettings("dev")), mockLogger
}

func createFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), domain.FilePerm))
}

func TestLoader_Load_JSON(t *testing.T) {
	loader, _ := newLoader(t)
	dir := t.TempDir()

	// Tab indentation as written by hand in existing projects.
	createFile(t, dir, domain.ConfigFileName, "{\n\t\"vendor\": \"proj1\",\n\t\"packages\": [\n\t\t{\"name\": \"pkgA\", \"path\": \"libs/a\"},\n\t\t{\"name\": \"pkgB\", \"path\": \"libs/b\"}\n\t]\n}\n")

	cfg, err := loader.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "proj1", cfg.Vendor)
	assert.Equal(t, []domain.PackageSpec{
		{Name: "pkgA", Path: "libs/a"},
		{Name: "pkgB", Path: "libs/b"},
	}, cfg.Packages)
}

func TestLoader_Load_YAML(t *testing.T) {
	loader, _ := newLoader(t)
	dir := t.TempDir()

	createFile(t, dir, domain.ConfigFileName, `
vendor: proj1
packages:
  - name: pkgA
    path: libs/a
  - name: pkgA
    path: libs/b
`)

	cfg, err := loader.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "proj1", cfg.Vendor)
	require.Len(t, cfg.Packages, 2, "duplicate names are accepted at load time")
	assert.Equal(t, "libs/b", cfg.Packages[1].Path)
}

func TestLoader_Load_NoPackagesWarns(t *testing.T) {
	loader, mockLogger := newLoader(t)
	dir := t.TempDir()
	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)

	createFile(t, dir, domain.ConfigFileName, `{"vendor": "proj1", "packages": []}`)

	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Empty(t, cfg.Packages)
}

func TestLoader_Load_CustomFileName(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := domain.DefaultSettings("dev")
	s.ConfigName = "gom.yaml"
	loader := config.NewLoader(mocks.NewMockLogger(ctrl), s)

	dir := t.TempDir()
	createFile(t, dir, "gom.yaml", "vendor: proj1\npackages:\n  - {name: pkgA, path: libs/a}\n")

	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "pkgA", cfg.Packages[0].Name)
}

func TestLoader_Load_ReservedNamesFollowSettings(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := domain.DefaultSettings("dev")
	s.LockfileName = "vendor.lock"
	loader := config.NewLoader(mocks.NewMockLogger(ctrl), s)

	dir := t.TempDir()
	createFile(t, dir, domain.ConfigFileName, `{"vendor": "proj1", "packages": [{"name": "vendor.lock", "path": "libs/a"}]}`)
	_, err := loader.Load(dir)
	require.ErrorContains(t, err, domain.ErrReservedPackageName.Error())

	createFile(t, dir, domain.ConfigFileName, `{"vendor": "proj1", "packages": [{"name": "gom-lock", "path": "libs/a"}]}`)
	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "gom-lock", cfg.Packages[0].Name)
}

func TestLoader_Load_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content *string
		wantErr error
	}{
		{
			name:    "missing file",
			content: nil,
			wantErr: domain.ErrConfigNotFound,
		},
		{
			name:    "malformed json",
			content: ptr(`{"vendor": "proj1",`),
			wantErr: domain.ErrConfigParseFailed,
		},
		{
			name:    "malformed yaml",
			content: ptr("vendor: [proj1\n"),
			wantErr: domain.ErrConfigParseFailed,
		},
		{
			name:    "missing vendor",
			content: ptr(`{"packages": [{"name": "pkgA", "path": "libs/a"}]}`),
			wantErr: domain.ErrMissingVendor,
		},
		{
			name:    "vendor escapes root",
			content: ptr(`{"vendor": "../etc", "packages": []}`),
			wantErr: domain.ErrInvalidVendorPath,
		},
		{
			name:    "vendor is the root",
			content: ptr(`{"vendor": ".", "packages": []}`),
			wantErr: domain.ErrInvalidVendorPath,
		},
		{
			name:    "package named after the lockfile",
			content: ptr(`{"vendor": "proj1", "packages": [{"name": "gom-lock", "path": "libs/a"}]}`),
			wantErr: domain.ErrReservedPackageName,
		},
		{
			name:    "package named after the snapshot",
			content: ptr(`{"vendor": "proj1", "packages": [{"name": "gom.config", "path": "libs/a"}]}`),
			wantErr: domain.ErrReservedPackageName,
		},
		{
			name:    "package without path",
			content: ptr(`{"vendor": "proj1", "packages": [{"name": "pkgA"}]}`),
			wantErr: domain.ErrMissingPackageField,
		},
		{
			name:    "nested package name",
			content: ptr(`{"vendor": "proj1", "packages": [{"name": "a/b", "path": "libs/a"}]}`),
			wantErr: domain.ErrInvalidPackageName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader, _ := newLoader(t)
			dir := t.TempDir()
			if tt.content != nil {
				createFile(t, dir, domain.ConfigFileName, *tt.content)
			}

			cfg, err := loader.Load(dir)
			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.ErrorContains(t, err, tt.wantErr.Error())
		})
	}
}

func ptr(s string) *string {
	return &s
}
