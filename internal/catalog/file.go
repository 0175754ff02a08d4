package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

func loadSnapshot[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	var items []T
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}

	return items, nil
}

// FileApplicationProvider reads applications from a yaml snapshot file.
type FileApplicationProvider struct {
	path string
}

func NewFileApplicationProvider(path string) *FileApplicationProvider {
	return &FileApplicationProvider{path: path}
}

// Applications implements ApplicationProvider.
func (p *FileApplicationProvider) Applications() ([]Application, error) {
	return loadSnapshot[Application](p.path)
}

// FilePackageProvider reads package run records from a yaml snapshot file.
type FilePackageProvider struct {
	path string
}

func NewFilePackageProvider(path string) *FilePackageProvider {
	return &FilePackageProvider{path: path}
}

// Packages implements PackageProvider.
func (p *FilePackageProvider) Packages() ([]Package, error) {
	return loadSnapshot[Package](p.path)
}

// FileUpdateProvider reads update records from a yaml snapshot file.
type FileUpdateProvider struct {
	path string
}

func NewFileUpdateProvider(path string) *FileUpdateProvider {
	return &FileUpdateProvider{path: path}
}

// Updates implements UpdateProvider.
func (p *FileUpdateProvider) Updates() ([]Update, error) {
	return loadSnapshot[Update](p.path)
}

// NewFileProviders binds all three providers to snapshot files.
func NewFileProviders(applications, packages, updates string) Providers {
	return Providers{
		Applications: NewFileApplicationProvider(applications),
		Packages:     NewFilePackageProvider(packages),
		Updates:      NewFileUpdateProvider(updates),
	}
}
