package ports

// SourceWalker lists the files of a package source directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type SourceWalker interface {
	// ListSources returns the base names of the regular files directly inside dir
	// whose name ends in ext, in lexical order. Subdirectories are not descended into.
	ListSources(dir, ext string) ([]string, error)
}

// FileCopier copies single files.
type FileCopier interface {
	// CopyFile copies src to dst, preserving permission bits and modification time.
	CopyFile(src, dst string) error
}

// Hasher computes provenance digests of copied files.
type Hasher interface {
	// DigestFiles returns a hex digest over the names and contents of files in dir.
	DigestFiles(dir string, names []string) (string, error)
}
