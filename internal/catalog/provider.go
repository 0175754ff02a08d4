package catalog

// ApplicationProvider queries the installed-applications catalog.
type ApplicationProvider interface {
	Applications() ([]Application, error)
}

// PackageProvider queries the run-packages catalog.
type PackageProvider interface {
	Packages() ([]Package, error)
}

// UpdateProvider queries the applied-updates catalog.
type UpdateProvider interface {
	Updates() ([]Update, error)
}

// Providers bundles the three catalog query providers.
type Providers struct {
	Applications ApplicationProvider
	Packages     PackageProvider
	Updates      UpdateProvider
}
