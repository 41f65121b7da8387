package config

import "go.trai.ch/gom/internal/core/domain"

// Gomfile is the on-disk shape of gom.config.
type Gomfile struct {
	Vendor   string         `json:"vendor"   yaml:"vendor"`
	Packages []PackageEntry `json:"packages" yaml:"packages"`
}

// PackageEntry is one element of the packages list.
type PackageEntry struct {
	Name string `json:"name" yaml:"name"`
	Path string `json:"path" yaml:"path"`
}

func (g *Gomfile) toDomain() *domain.Config {
	cfg := &domain.Config{
		Vendor:   g.Vendor,
		Packages: make([]domain.PackageSpec, 0, len(g.Packages)),
	}
	for _, p := range g.Packages {
		cfg.Packages = append(cfg.Packages, domain.PackageSpec{Name: p.Name, Path: p.Path})
	}
	return cfg
}
