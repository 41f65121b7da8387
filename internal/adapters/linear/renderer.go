// Package linear prints the outcome of a build as plain, line-oriented text.
package linear

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/gom/internal/core/domain"
	"go.trai.ch/gom/internal/core/ports"
	"go.trai.ch/gom/internal/ui/output"
	"go.trai.ch/gom/internal/ui/style"
)

var _ ports.Reporter = (*Renderer)(nil)

// Renderer implements ports.Reporter.
type Renderer struct {
	out *termenv.Output
}

// NewRenderer creates a Renderer writing to w, or to os.Stdout when w is nil.
func NewRenderer(w io.Writer) *Renderer {
	if w == nil {
		w = os.Stdout
	}
	return &Renderer{out: output.New(w)}
}

// Render prints one line per package followed by a summary line.
func (r *Renderer) Render(report *domain.BuildReport) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", r.faint("source"), report.SourceDir)
	fmt.Fprintf(&b, "%s %s\n", r.faint("vendor"), report.VendorDir)

	width := 0
	for _, p := range report.Packages {
		width = max(width, lipgloss.Width(p.Name))
	}

	for _, p := range report.Packages {
		name := r.brand(p.Name) + strings.Repeat(" ", width-lipgloss.Width(p.Name))
		fmt.Fprintf(&b, "%s %s  %s\n", r.icon(p.Status), name, r.detail(p))
	}

	summary := fmt.Sprintf("vendored %d of %d package(s) into %s", report.CopiedCount(), len(report.Packages), report.VendorDir)
	if failed := len(report.Failed()); failed > 0 {
		summary += fmt.Sprintf(", %d skipped", failed)
	}
	b.WriteString(summary + "\n")

	_, err := r.out.WriteString(b.String())
	return err
}

func (r *Renderer) icon(status domain.PackageStatus) string {
	switch status {
	case domain.PackageCopied:
		return r.out.String(style.Check).Foreground(termenv.RGBColor(string(style.Green))).String()
	case domain.PackageDuplicateName:
		return r.out.String(style.Warning).Foreground(termenv.RGBColor(string(style.Yellow))).String()
	default:
		return r.out.String(style.Cross).Foreground(termenv.RGBColor(string(style.Red))).String()
	}
}

func (r *Renderer) detail(p domain.PackageResult) string {
	switch p.Status {
	case domain.PackageCopied:
		return fmt.Sprintf("%d file(s) %s %s", len(p.Files), style.Arrow, r.faint(p.Digest))
	case domain.PackageDuplicateName:
		return domain.ErrPackageNameNotUnique.Error()
	case domain.PackageMissingSource:
		return domain.ErrPackageSourceMissing.Error() + ": " + p.SourcePath
	default:
		if p.Err != nil {
			return p.Err.Error()
		}
		return string(p.Status)
	}
}

func (r *Renderer) brand(s string) string {
	return r.out.String(s).Foreground(termenv.RGBColor(string(style.Gopher))).String()
}

func (r *Renderer) faint(s string) string {
	return r.out.String(s).Foreground(termenv.RGBColor(string(style.Slate))).String()
}
