package catalog

// MemoryApplicationProvider serves a fixed application set.
type MemoryApplicationProvider struct {
	Items []Application
	Err   error
}

// Applications implements ApplicationProvider.
func (p *MemoryApplicationProvider) Applications() ([]Application, error) {
	if p.Err != nil {
		return nil, p.Err
	}
	return p.Items, nil
}

// MemoryPackageProvider serves a fixed package run-record set.
type MemoryPackageProvider struct {
	Items []Package
	Err   error
}

// Packages implements PackageProvider.
func (p *MemoryPackageProvider) Packages() ([]Package, error) {
	if p.Err != nil {
		return nil, p.Err
	}
	return p.Items, nil
}

// MemoryUpdateProvider serves a fixed update set.
type MemoryUpdateProvider struct {
	Items []Update
	Err   error
}

// Updates implements UpdateProvider.
func (p *MemoryUpdateProvider) Updates() ([]Update, error) {
	if p.Err != nil {
		return nil, p.Err
	}
	return p.Items, nil
}

// NewMemoryProviders bundles in-memory providers over fixed record sets.
func NewMemoryProviders(apps []Application, pkgs []Package, upds []Update) Providers {
	return Providers{
		Applications: &MemoryApplicationProvider{Items: apps},
		Packages:     &MemoryPackageProvider{Items: pkgs},
		Updates:      &MemoryUpdateProvider{Items: upds},
	}
}
