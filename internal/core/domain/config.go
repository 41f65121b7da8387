package domain

import (
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// Config is the project configuration read from gom.config.
type Config struct {
	// Vendor is the vendor directory name, relative to the vendor root.
	Vendor string `json:"vendor" yaml:"vendor"`

	// Packages lists the packages to vendor, in build order.
	Packages []PackageSpec `json:"packages" yaml:"packages"`
}

// PackageSpec maps a source subdirectory to a vendor subdirectory.
type PackageSpec struct {
	// Name is the vendor subdirectory the package is copied into.
	Name string `json:"name" yaml:"name"`

	// Path is the package source directory, relative to the source directory.
	Path string `json:"path" yaml:"path"`
}

// Validate checks that the config has every field a build needs.
// reserved lists file names gom itself writes into the vendor directory; no
// package may be named after one of them.
// Duplicate package names are accepted; they are reported per package at copy time.
func (c *Config) Validate(reserved ...string) error {
	if strings.TrimSpace(c.Vendor) == "" {
		return ErrMissingVendor
	}
	// "." would make the vendor root itself the vendor directory.
	if !IsLocalPath(c.Vendor) || filepath.Clean(c.Vendor) == "." {
		return zerr.With(ErrInvalidVendorPath, "vendor", c.Vendor)
	}

	for i, pkg := range c.Packages {
		if pkg.Name == "" || pkg.Path == "" {
			err := zerr.With(ErrMissingPackageField, "index", i)
			return zerr.With(err, "name", pkg.Name)
		}
		if !isSingleElement(pkg.Name) {
			return zerr.With(ErrInvalidPackageName, "name", pkg.Name)
		}
		if slices.Contains(reserved, pkg.Name) {
			return zerr.With(ErrReservedPackageName, "name", pkg.Name)
		}
	}
	return nil
}

// VendorDir returns the vendor directory for this config under root.
func (c *Config) VendorDir(root string) string {
	return filepath.Join(root, c.Vendor)
}

// IsLocalPath reports whether p is relative and stays inside its base directory once cleaned.
func IsLocalPath(p string) bool {
	if filepath.IsAbs(p) {
		return false
	}
	return filepath.IsLocal(p)
}

func isSingleElement(name string) bool {
	if name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`)
}
