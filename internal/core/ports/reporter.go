package ports

import "go.trai.ch/gom/internal/core/domain"

// Reporter presents the outcome of a build.
//
//go:generate go run go.uber.org/mock/mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// Render writes a human readable summary of the report.
	Render(report *domain.BuildReport) error
}
