package domain

// PackageStatus is the outcome of copying one package.
type PackageStatus string

const (
	// PackageCopied indicates every matching source file was copied.
	PackageCopied PackageStatus = "copied"
	// PackageDuplicateName indicates the vendor subdirectory was already taken by an earlier package.
	PackageDuplicateName PackageStatus = "duplicate-name"
	// PackageMissingSource indicates the package source path is not a directory.
	PackageMissingSource PackageStatus = "missing-source"
	// PackageCopyFailed indicates the package could not be copied completely.
	PackageCopyFailed PackageStatus = "copy-failed"
)

// PackageResult describes what happened to a single package during a build.
type PackageResult struct {
	Name       string
	BuildPath  string
	SourcePath string
	Status     PackageStatus

	// Files holds the base names of the copied files in copy order.
	Files []string

	// Digest is an xxhash64 digest over the copied names and contents.
	Digest string

	// Err is set for every status other than PackageCopied.
	Err error
}

// OK reports whether the package was copied.
func (r PackageResult) OK() bool {
	return r.Status == PackageCopied
}

// BuildReport is the structured outcome of a build.
type BuildReport struct {
	VendorDir string
	SourceDir string
	Lockfile  Lockfile
	Packages  []PackageResult
}

// Failed returns the packages that were skipped or only partially copied.
func (r *BuildReport) Failed() []PackageResult {
	var failed []PackageResult
	for _, p := range r.Packages {
		if !p.OK() {
			failed = append(failed, p)
		}
	}
	return failed
}

// CopiedCount returns the number of packages that were copied.
func (r *BuildReport) CopiedCount() int {
	n := 0
	for _, p := range r.Packages {
		if p.OK() {
			n++
		}
	}
	return n
}
