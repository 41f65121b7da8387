// Package app implements the application layer for gom.
package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"go.trai.ch/gom/internal/core/domain"
	"go.trai.ch/gom/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	reconciler   ports.Reconciler
	copier       ports.PackageCopier
	reporter     ports.Reporter
	logger       ports.Logger
	settings     domain.Settings
	workDir      string
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	reconciler ports.Reconciler,
	copier ports.PackageCopier,
	reporter ports.Reporter,
	log ports.Logger,
	settings domain.Settings,
) *App {
	return &App{
		configLoader: loader,
		reconciler:   reconciler,
		copier:       copier,
		reporter:     reporter,
		logger:       log,
		settings:     settings,
	}
}

// WithWorkDir makes the App build from dir instead of the process working directory.
func (a *App) WithWorkDir(dir string) *App {
	a.workDir = dir
	return a
}

// Build vendors the packages named in the working directory's config.
//
// Per-package failures are part of the returned report and do not fail the
// build. Any other failure is returned joined with domain.ErrBuildFailed.
func (a *App) Build(ctx context.Context) (*domain.BuildReport, error) {
	// 1. Resolve the source directory
	source, err := a.sourceDir()
	if err != nil {
		return nil, errors.Join(domain.ErrBuildFailed, err)
	}

	// 2. Load the configuration
	cfg, err := a.configLoader.Load(source)
	if err != nil {
		return nil, errors.Join(domain.ErrBuildFailed, zerr.Wrap(err, "failed to load configuration"))
	}

	// 3. Prepare the vendor directory
	vendorDir := cfg.VendorDir(a.settings.Root)
	lock, err := a.reconciler.Prepare(vendorDir, source, cfg)
	if err != nil {
		return nil, errors.Join(domain.ErrBuildFailed, err)
	}

	// 4. Copy packages
	report := &domain.BuildReport{
		VendorDir: vendorDir,
		SourceDir: source,
		Lockfile:  *lock,
		Packages:  a.copier.CopyAll(ctx, vendorDir, source, cfg),
	}

	// 5. Present the outcome
	if err := a.reporter.Render(report); err != nil {
		a.logger.Error(zerr.Wrap(err, "failed to render build report"))
	}

	return report, nil
}

func (a *App) sourceDir() (string, error) {
	dir := a.workDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", zerr.Wrap(err, domain.ErrFailedToGetSource.Error())
		}
		dir = wd
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrFailedToGetSource.Error()), "dir", dir)
	}
	return abs, nil
}
