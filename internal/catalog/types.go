package catalog

// Application install states.
const (
	InstallStateInstalled    = "Installed"
	InstallStateNotInstalled = "NotInstalled"
)

// Package last-run statuses.
const (
	RunStatusSucceeded = "Succeeded"
	RunStatusFailed    = "Failed"
	RunStatusNone      = "None"
)

// Package repeat-run behaviors.
const (
	RepeatNever     = "Never"
	RepeatAlways    = "RerunAlways"
	RepeatIfSuccess = "RerunIfSuccess"
	RepeatIfFail    = "RerunIfFail"
)

// Update statuses.
const (
	UpdateStatusInstalled = "Installed"
	UpdateStatusMissing   = "Missing"
	UpdateStatusDetecting = "Detecting"
)

// Application is one deployment-type record from the application catalog.
type Application struct {
	Name            string `yaml:"name"`
	ContentID       string `yaml:"content_id"`
	InstallState    string `yaml:"install_state"`
	MachineTargeted bool   `yaml:"machine_targeted"`
}

// Eligible reports whether the application's cached content can go: the
// deployment is installed, targets the machine, and resolved a content id.
func (a Application) Eligible() bool {
	return a.InstallState == InstallStateInstalled && a.MachineTargeted && a.ContentID != ""
}

// Package is one run record from the package catalog. Several records may
// share a PackageID when a package carries multiple programs.
type Package struct {
	Name           string `yaml:"name"`
	PackageID      string `yaml:"package_id"`
	LastRunStatus  string `yaml:"last_run_status"`
	RepeatBehavior string `yaml:"repeat_behavior"`
}

// Eligible reports whether this run record permits deleting the package's
// cached content: the run succeeded and the package will not be rerun from
// cache.
func (p Package) Eligible() bool {
	if p.LastRunStatus != RunStatusSucceeded {
		return false
	}
	return p.RepeatBehavior != RepeatAlways && p.RepeatBehavior != RepeatIfSuccess
}

// Update is one record from the applied-updates catalog.
type Update struct {
	Name      string `yaml:"name"`
	ContentID string `yaml:"content_id"`
	Status    string `yaml:"status"`
}

// Eligible reports whether the update's cached content can go.
func (u Update) Eligible() bool {
	return u.Status == UpdateStatusInstalled
}
