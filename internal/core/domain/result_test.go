package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/gom/internal/core/domain"
)

func TestBuildReport_Failed(t *testing.T) {
	report := &domain.BuildReport{
		Packages: []domain.PackageResult{
			{Name: "a", Status: domain.PackageCopied},
			{Name: "a", Status: domain.PackageDuplicateName, Err: domain.ErrPackageNameNotUnique},
			{Name: "b", Status: domain.PackageMissingSource, Err: domain.ErrPackageSourceMissing},
			{Name: "c", Status: domain.PackageCopied},
		},
	}

	failed := report.Failed()
	assert.Len(t, failed, 2)
	assert.Equal(t, domain.PackageDuplicateName, failed[0].Status)
	assert.Equal(t, domain.PackageMissingSource, failed[1].Status)
	assert.Equal(t, 2, report.CopiedCount())
}

func TestBuildReport_Empty(t *testing.T) {
	report := &domain.BuildReport{}
	assert.Empty(t, report.Failed())
	assert.Zero(t, report.CopiedCount())
}
