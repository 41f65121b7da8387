// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/gom/internal/core/domain"
)

// Reconciler decides whether a vendor directory may be rebuilt and prepares it.
//
//go:generate go run go.uber.org/mock/mockgen -source=vendor.go -destination=mocks/mock_vendor.go -package=mocks
type Reconciler interface {
	// Prepare empties and recreates targetDir for a build of sourceDir, writing the
	// lockfile and a config snapshot into it. It returns the lockfile it wrote.
	//
	// A foreign targetDir is an error and is left untouched.
	Prepare(targetDir, sourceDir string, cfg *domain.Config) (*domain.Lockfile, error)
}

// PackageCopier copies the configured packages into a prepared vendor directory.
type PackageCopier interface {
	// CopyAll copies every package in cfg order and reports one result per package.
	// Failures are per package and never abort the remaining packages.
	CopyAll(ctx context.Context, targetDir, sourceDir string, cfg *domain.Config) []domain.PackageResult
}
