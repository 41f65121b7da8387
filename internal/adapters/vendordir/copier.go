package vendordir

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/gom/internal/core/domain"
	"go.trai.ch/gom/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.PackageCopier = (*Copier)(nil)

// Copier implements ports.PackageCopier.
type Copier struct {
	walker    ports.SourceWalker
	files     ports.FileCopier
	hasher    ports.Hasher
	telemetry ports.Telemetry
	logger    ports.Logger
	extension string
}

// NewCopier creates a Copier.
func NewCopier(
	walker ports.SourceWalker,
	files ports.FileCopier,
	hasher ports.Hasher,
	telemetry ports.Telemetry,
	logger ports.Logger,
	settings domain.Settings,
) *Copier {
	ext := settings.Extension
	if ext == "" {
		ext = domain.SourceExtension
	}
	return &Copier{
		walker:    walker,
		files:     files,
		hasher:    hasher,
		telemetry: telemetry,
		logger:    logger,
		extension: ext,
	}
}

// CopyAll copies each package of cfg into targetDir in order.
// Once ctx is done the remaining packages are reported as copy-failed.
func (c *Copier) CopyAll(ctx context.Context, targetDir, sourceDir string, cfg *domain.Config) []domain.PackageResult {
	results := make([]domain.PackageResult, 0, len(cfg.Packages))

	for _, pkg := range cfg.Packages {
		result := domain.PackageResult{
			Name:       pkg.Name,
			BuildPath:  filepath.Join(targetDir, pkg.Name),
			SourcePath: filepath.Join(sourceDir, pkg.Path),
		}

		if err := ctx.Err(); err != nil {
			result.Status = domain.PackageCopyFailed
			result.Err = zerr.With(zerr.Wrap(err, domain.ErrPackageCopyFailed.Error()), "package", pkg.Name)
			results = append(results, result)
			continue
		}

		vctx, vertex := c.telemetry.Record(ctx, pkg.Name)
		c.copyPackage(vctx, &result)
		if result.Err != nil {
			reason := failureReason(result)
			vertex.Log(domain.LogLevelWarn, reason)
			c.logger.Warn(fmt.Sprintf("skipping %s: %s", pkg.Name, reason))
		}
		vertex.Complete(result.Err)
		results = append(results, result)
	}

	return results
}

func (c *Copier) copyPackage(ctx context.Context, result *domain.PackageResult) {
	vertex, _ := ports.VertexFromContext(ctx)

	if _, err := os.Stat(result.BuildPath); err == nil {
		result.Status = domain.PackageDuplicateName
		result.Err = zerr.With(domain.ErrPackageNameNotUnique, "package", result.Name)
		return
	} else if !errors.Is(err, fs.ErrNotExist) {
		c.fail(result, err)
		return
	}

	if err := os.Mkdir(result.BuildPath, domain.DirPerm); err != nil {
		c.fail(result, err)
		return
	}

	if info, err := os.Stat(result.SourcePath); err != nil || !info.IsDir() {
		result.Status = domain.PackageMissingSource
		result.Err = zerr.With(zerr.With(domain.ErrPackageSourceMissing, "package", result.Name), "path", result.SourcePath)
		return
	}

	names, err := c.walker.ListSources(result.SourcePath, c.extension)
	if err != nil {
		c.fail(result, err)
		return
	}

	for _, name := range names {
		if err := c.files.CopyFile(filepath.Join(result.SourcePath, name), filepath.Join(result.BuildPath, name)); err != nil {
			c.fail(result, err)
			return
		}
		result.Files = append(result.Files, name)
		if vertex != nil {
			vertex.Log(domain.LogLevelInfo, "copied "+name)
		}
	}

	digest, err := c.hasher.DigestFiles(result.BuildPath, result.Files)
	if err != nil {
		c.fail(result, err)
		return
	}

	result.Status = domain.PackageCopied
	result.Digest = digest
	if vertex != nil {
		vertex.Log(domain.LogLevelInfo, fmt.Sprintf("copied %d file(s), digest %s", len(result.Files), digest))
	}
}

func (c *Copier) fail(result *domain.PackageResult, err error) {
	result.Status = domain.PackageCopyFailed
	result.Err = zerr.With(zerr.Wrap(err, domain.ErrPackageCopyFailed.Error()), "package", result.Name)
}

func failureReason(result domain.PackageResult) string {
	switch result.Status {
	case domain.PackageDuplicateName:
		return domain.ErrPackageNameNotUnique.Error()
	case domain.PackageMissingSource:
		return domain.ErrPackageSourceMissing.Error() + " (" + result.SourcePath + ")"
	default:
		return result.Err.Error()
	}
}
